package greedisland

// Starting values for a new player
const (
	DefaultPlayerName = "Gon"
	StartingHP        = 100
	StartingMaxXP     = 100
	StartingAttack    = 10
	StartingDefense   = 5
)

// PlayerState is the aggregate root of a session. It is mutated only by the
// engine functions, called from the game orchestrator.
type PlayerState struct {
	Name            string                    `json:"name"`
	CurrentLocation Location                  `json:"current_location"`
	SpecifiedSlots  [SpecifiedSlotCount]*Card `json:"specified_slots"`
	FreeSlots       []*Card                   `json:"free_slots"`
	SpellCards      []*Card                   `json:"spell_cards"`
	HP              int                       `json:"hp"`
	MaxHP           int                       `json:"max_hp"`
	Level           int                       `json:"level"`
	XP              int                       `json:"xp"`
	MaxXP           int                       `json:"max_xp"`
	Attack          int                       `json:"attack"`
	Defense         int                       `json:"defense"`
}

// NewPlayerState creates the session-start player
func NewPlayerState(name string) *PlayerState {
	if name == "" {
		name = DefaultPlayerName
	}

	return &PlayerState{
		Name:            name,
		CurrentLocation: Locations[0],
		FreeSlots:       []*Card{},
		SpellCards:      InitialSpells(),
		HP:              StartingHP,
		MaxHP:           StartingHP,
		Level:           1,
		XP:              0,
		MaxXP:           StartingMaxXP,
		Attack:          StartingAttack,
		Defense:         StartingDefense,
	}
}

// SpecifiedCount returns the number of occupied specified slots
func (p *PlayerState) SpecifiedCount() int {
	count := 0
	for _, card := range p.SpecifiedSlots {
		if card != nil {
			count++
		}
	}
	return count
}

// FindOwnedCard looks a card up by id in the specified and free pools
func (p *PlayerState) FindOwnedCard(cardID string) *Card {
	for _, card := range p.SpecifiedSlots {
		if card != nil && card.ID == cardID {
			return card
		}
	}
	for _, card := range p.FreeSlots {
		if card.ID == cardID {
			return card
		}
	}
	return nil
}

// FindSpellCard looks a spell card up by id
func (p *PlayerState) FindSpellCard(cardID string) *Card {
	for _, card := range p.SpellCards {
		if card.ID == cardID {
			return card
		}
	}
	return nil
}

// FindFreeCard looks a free slot card up by id
func (p *PlayerState) FindFreeCard(cardID string) *Card {
	for _, card := range p.FreeSlots {
		if card.ID == cardID {
			return card
		}
	}
	return nil
}
