package greedisland

// ChoiceType is the risk category of a choice
type ChoiceType string

// Choice risk categories
const (
	ChoiceAggressive ChoiceType = "AGGRESSIVE"
	ChoiceDefensive  ChoiceType = "DEFENSIVE"
	ChoiceNeutral    ChoiceType = "NEUTRAL"
	ChoiceRisky      ChoiceType = "RISKY"
)

// ChoiceTypes lists every risk category
var ChoiceTypes = []ChoiceType{ChoiceAggressive, ChoiceDefensive, ChoiceNeutral, ChoiceRisky}

// Valid reports whether t is a known risk category
func (t ChoiceType) Valid() bool {
	for _, known := range ChoiceTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Choice is one option offered by a scenario
type Choice struct {
	ID   string     `json:"id"`
	Text string     `json:"text"`
	Type ChoiceType `json:"type"`
}

// Scenario is a single encounter produced by the game master
type Scenario struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
	MonsterName string   `json:"monster_name,omitempty"`
}

// FindChoice returns the choice with id, falling back to the first choice
func (s *Scenario) FindChoice(id string) *Choice {
	if len(s.Choices) == 0 {
		return nil
	}
	for i := range s.Choices {
		if s.Choices[i].ID == id {
			return &s.Choices[i]
		}
	}
	return &s.Choices[0]
}

// Stat names a buffable player stat
type Stat string

// Buffable stats
const (
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatMaxHP   Stat = "maxHp"
)

// Valid reports whether s is a buffable stat
func (s Stat) Valid() bool {
	return s == StatAttack || s == StatDefense || s == StatMaxHP
}

// StatBuff raises one stat by Amount
type StatBuff struct {
	Stat       Stat   `json:"stat"`
	Amount     int    `json:"amount"`
	SourceName string `json:"source_name"`
}

// RewardDescriptor is the validated card reward the game master handed out.
// HasNumber is false when the game master omitted the number.
type RewardDescriptor struct {
	Name        string   `json:"name"`
	Rank        Rank     `json:"rank"`
	Type        CardType `json:"type"`
	Description string   `json:"description"`
	Number      int      `json:"number"`
	HasNumber   bool     `json:"has_number"`
}

// ActionResolution is the outcome of one choice. It is applied once and discarded.
type ActionResolution struct {
	Narrative   string            `json:"narrative"`
	DamageTaken int               `json:"damage_taken"`
	XPGained    int               `json:"xp_gained"`
	HPRestored  int               `json:"hp_restored"`
	RewardCard  *RewardDescriptor `json:"reward_card,omitempty"`
	StatBuff    *StatBuff         `json:"stat_buff,omitempty"`
}
