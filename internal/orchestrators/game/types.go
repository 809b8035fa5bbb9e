package game

import (
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

// Snapshot is the session as seen after an operation
type Snapshot struct {
	Session        *session.SessionData
	Score          int
	SpecifiedCount int
}

// GameSummary is what the player takes home from a finished game
type GameSummary struct {
	PlayerName     string
	KeptCards      []*greedisland.Card
	Score          int
	Level          int
	CollectedCount int
	Message        string
}

// CreateSessionInput defines the request for starting a game
type CreateSessionInput struct {
	// PlayerName defaults to the configured name
	PlayerName string
}

// CreateSessionOutput defines the response for starting a game
type CreateSessionOutput struct {
	Snapshot *Snapshot
}

// GetSessionInput defines the request for reading a game
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a game
type GetSessionOutput struct {
	Snapshot *Snapshot
}

// ExploreInput defines the request for exploring the current location
type ExploreInput struct {
	SessionID string
}

// ExploreOutput defines the response for exploring. Applied is false when
// the session was not idle or a request was already outstanding.
type ExploreOutput struct {
	Snapshot *Snapshot
	Applied  bool
}

// ChooseInput defines the request for picking a scenario choice
type ChooseInput struct {
	SessionID string
	// ChoiceID falls back to the first choice when unknown
	ChoiceID string
}

// ChooseOutput defines the response for picking a choice
type ChooseOutput struct {
	Snapshot   *Snapshot
	Applied    bool
	Resolution *greedisland.ActionResolution
}

// TravelInput defines the request for moving to the next location
type TravelInput struct {
	SessionID string
}

// TravelOutput defines the response for moving
type TravelOutput struct {
	Snapshot *Snapshot
	Applied  bool
}

// UseCardInput defines the request for using a spell or item card
type UseCardInput struct {
	SessionID string
	CardID    string
}

// UseCardOutput defines the response for using a card
type UseCardOutput struct {
	Snapshot *Snapshot
	Applied  bool
}

// ConsultBookInput defines the request for asking the Book
type ConsultBookInput struct {
	SessionID string
	Query     string
}

// ConsultBookOutput defines the response from the Book
type ConsultBookOutput struct {
	Snapshot *Snapshot
	Answer   string
}

// ProceedToRewardsInput defines the request for opening reward selection
type ProceedToRewardsInput struct {
	SessionID string
}

// ProceedToRewardsOutput defines the response for opening reward selection
type ProceedToRewardsOutput struct {
	Snapshot *Snapshot
	Applied  bool
}

// ToggleEndingSelectionInput defines the request for picking a card to keep
type ToggleEndingSelectionInput struct {
	SessionID string
	CardID    string
}

// ToggleEndingSelectionOutput defines the response for picking a card to keep
type ToggleEndingSelectionOutput struct {
	Snapshot *Snapshot
	Applied  bool
	// Selected reports whether the card is in the selection afterwards
	Selected bool
}

// FinishGameInput defines the request for ending a won game
type FinishGameInput struct {
	SessionID string
}

// FinishGameOutput defines the response for ending a won game. Snapshot is
// the reset session.
type FinishGameOutput struct {
	Snapshot *Snapshot
	Applied  bool
	Summary  *GameSummary
}

// RetryInput defines the request for starting over
type RetryInput struct {
	SessionID string
}

// RetryOutput defines the response for starting over
type RetryOutput struct {
	Snapshot *Snapshot
}
