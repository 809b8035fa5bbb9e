package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
)

// CardView is a card as shown to clients
type CardView struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Label       string `json:"label"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rank        string `json:"rank"`
	Type        string `json:"type"`
	Limit       int    `json:"limit"`
}

// LocationView is the current location
type LocationView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	ImageURL    string `json:"image_url"`
}

// PlayerView is the player state. SpecifiedSlots always has one entry per
// number, null where the slot is empty.
type PlayerView struct {
	Name           string       `json:"name"`
	Location       LocationView `json:"location"`
	SpecifiedSlots []*CardView  `json:"specified_slots"`
	FreeSlots      []*CardView  `json:"free_slots"`
	SpellCards     []*CardView  `json:"spell_cards"`
	HP             int          `json:"hp"`
	MaxHP          int          `json:"max_hp"`
	Level          int          `json:"level"`
	XP             int          `json:"xp"`
	MaxXP          int          `json:"max_xp"`
	Attack         int          `json:"attack"`
	Defense        int          `json:"defense"`
}

// ChoiceView is one scenario option
type ChoiceView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// ScenarioView is the encounter awaiting a decision
type ScenarioView struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	MonsterName string       `json:"monster_name,omitempty"`
	Choices     []ChoiceView `json:"choices"`
}

// LogEntryView is one game log line
type LogEntryView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionView is the full client-visible session
type SessionView struct {
	ID              string         `json:"id"`
	State           string         `json:"state"`
	Loading         bool           `json:"loading"`
	Player          *PlayerView    `json:"player"`
	Scenario        *ScenarioView  `json:"scenario,omitempty"`
	Logs            []LogEntryView `json:"logs"`
	EndingSelection []string       `json:"ending_selection"`
	Score           int            `json:"score"`
	SpecifiedCount  int            `json:"specified_count"`
	SpecifiedTotal  int            `json:"specified_total"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// StatBuffView is a permanent stat increase
type StatBuffView struct {
	Stat       string `json:"stat"`
	Amount     int    `json:"amount"`
	SourceName string `json:"source_name"`
}

// RewardView is the card the game master handed out
type RewardView struct {
	Name        string `json:"name"`
	Rank        string `json:"rank"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Number      *int   `json:"number,omitempty"`
}

// ResolutionView is the outcome of a choice
type ResolutionView struct {
	Narrative   string        `json:"narrative"`
	DamageTaken int           `json:"damage_taken"`
	XPGained    int           `json:"xp_gained"`
	HPRestored  int           `json:"hp_restored"`
	RewardCard  *RewardView   `json:"reward_card,omitempty"`
	StatBuff    *StatBuffView `json:"stat_buff,omitempty"`
}

// SummaryView is what a winner takes home
type SummaryView struct {
	PlayerName     string      `json:"player_name"`
	KeptCards      []*CardView `json:"kept_cards"`
	Score          int         `json:"score"`
	Level          int         `json:"level"`
	CollectedCount int         `json:"collected_count"`
	Message        string      `json:"message"`
}

// NewSessionView converts an orchestrator snapshot for the wire
func NewSessionView(snapshot *game.Snapshot) *SessionView {
	if snapshot == nil || snapshot.Session == nil {
		return nil
	}
	data := snapshot.Session

	view := &SessionView{
		ID:              data.ID,
		State:           string(data.State),
		Loading:         data.Loading,
		Player:          newPlayerView(data.Player),
		Scenario:        newScenarioView(data.Scenario),
		Logs:            make([]LogEntryView, 0, len(data.Logs)),
		EndingSelection: append([]string{}, data.EndingSelection...),
		Score:           snapshot.Score,
		SpecifiedCount:  snapshot.SpecifiedCount,
		SpecifiedTotal:  greedisland.SpecifiedSlotCount,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, entry := range data.Logs {
		view.Logs = append(view.Logs, LogEntryView{
			ID:        entry.ID,
			Text:      entry.Text,
			Sender:    string(entry.Sender),
			Timestamp: entry.Timestamp,
		})
	}

	return view
}

func newCardView(card *greedisland.Card) *CardView {
	if card == nil {
		return nil
	}
	return &CardView{
		ID:          card.ID,
		Number:      card.Number,
		Label:       card.Label(),
		Name:        card.Name,
		Description: card.Description,
		Rank:        string(card.Rank),
		Type:        string(card.Type),
		Limit:       card.Limit,
	}
}

func newCardViews(cards []*greedisland.Card) []*CardView {
	views := make([]*CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, newCardView(card))
	}
	return views
}

func newPlayerView(player *greedisland.PlayerState) *PlayerView {
	if player == nil {
		return nil
	}

	slots := make([]*CardView, len(player.SpecifiedSlots))
	for i, card := range player.SpecifiedSlots {
		slots[i] = newCardView(card)
	}

	loc := player.CurrentLocation
	return &PlayerView{
		Name: player.Name,
		Location: LocationView{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
			Difficulty:  loc.Difficulty,
			ImageURL:    loc.ImageURL,
		},
		SpecifiedSlots: slots,
		FreeSlots:      newCardViews(player.FreeSlots),
		SpellCards:     newCardViews(player.SpellCards),
		HP:             player.HP,
		MaxHP:          player.MaxHP,
		Level:          player.Level,
		XP:             player.XP,
		MaxXP:          player.MaxXP,
		Attack:         player.Attack,
		Defense:        player.Defense,
	}
}

func newScenarioView(scenario *greedisland.Scenario) *ScenarioView {
	if scenario == nil {
		return nil
	}

	view := &ScenarioView{
		Title:       scenario.Title,
		Description: scenario.Description,
		MonsterName: scenario.MonsterName,
		Choices:     make([]ChoiceView, 0, len(scenario.Choices)),
	}
	for _, choice := range scenario.Choices {
		view.Choices = append(view.Choices, ChoiceView{ID: choice.ID, Text: choice.Text, Type: string(choice.Type)})
	}
	return view
}

// NewResolutionView converts an applied resolution
func NewResolutionView(resolution *greedisland.ActionResolution) *ResolutionView {
	if resolution == nil {
		return nil
	}

	view := &ResolutionView{
		Narrative:   resolution.Narrative,
		DamageTaken: resolution.DamageTaken,
		XPGained:    resolution.XPGained,
		HPRestored:  resolution.HPRestored,
	}

	if reward := resolution.RewardCard; reward != nil {
		view.RewardCard = &RewardView{
			Name:        reward.Name,
			Rank:        string(reward.Rank),
			Type:        string(reward.Type),
			Description: reward.Description,
		}
		if reward.HasNumber {
			number := reward.Number
			view.RewardCard.Number = &number
		}
	}

	if buff := resolution.StatBuff; buff != nil {
		view.StatBuff = &StatBuffView{Stat: string(buff.Stat), Amount: buff.Amount, SourceName: buff.SourceName}
	}

	return view
}

// NewSummaryView converts a finished game summary
func NewSummaryView(summary *game.GameSummary) *SummaryView {
	if summary == nil {
		return nil
	}
	return &SummaryView{
		PlayerName:     summary.PlayerName,
		KeptCards:      newCardViews(summary.KeptCards),
		Score:          summary.Score,
		Level:          summary.Level,
		CollectedCount: summary.CollectedCount,
		Message:        summary.Message,
	}
}
