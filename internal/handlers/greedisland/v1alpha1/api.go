package v1alpha1

// CreateSessionRequest starts a game; an empty name uses the server default
type CreateSessionRequest struct {
	PlayerName string `json:"player_name,omitempty"`
}

// GetSessionRequest reads a game
type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ExploreRequest asks for an encounter at the current location
type ExploreRequest struct {
	SessionID string `json:"session_id"`
}

// ChooseRequest picks a scenario choice
type ChooseRequest struct {
	SessionID string `json:"session_id"`
	ChoiceID  string `json:"choice_id"`
}

// TravelRequest moves to the next location
type TravelRequest struct {
	SessionID string `json:"session_id"`
}

// UseCardRequest uses a spell card or a free-slot item card
type UseCardRequest struct {
	SessionID string `json:"session_id"`
	CardID    string `json:"card_id"`
}

// ConsultBookRequest asks the Book a question
type ConsultBookRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// ProceedToRewardsRequest opens reward selection after a win
type ProceedToRewardsRequest struct {
	SessionID string `json:"session_id"`
}

// ToggleEndingSelectionRequest adds or removes a card from the kept set
type ToggleEndingSelectionRequest struct {
	SessionID string `json:"session_id"`
	CardID    string `json:"card_id"`
}

// FinishGameRequest ends a won game
type FinishGameRequest struct {
	SessionID string `json:"session_id"`
}

// RetryRequest starts over
type RetryRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse carries the session after a read or create
type SessionResponse struct {
	Session *SessionView `json:"session"`
}

// ActionResponse carries the session after a player action. Applied is
// false when the action was not valid in the current state.
type ActionResponse struct {
	Session *SessionView `json:"session"`
	Applied bool         `json:"applied"`
}

// ChooseResponse adds the applied resolution
type ChooseResponse struct {
	Session    *SessionView    `json:"session"`
	Applied    bool            `json:"applied"`
	Resolution *ResolutionView `json:"resolution,omitempty"`
}

// ConsultBookResponse carries the Book's answer
type ConsultBookResponse struct {
	Session *SessionView `json:"session"`
	Answer  string       `json:"answer"`
}

// ToggleEndingSelectionResponse reports whether the card ended up selected
type ToggleEndingSelectionResponse struct {
	Session  *SessionView `json:"session"`
	Applied  bool         `json:"applied"`
	Selected bool         `json:"selected"`
}

// FinishGameResponse carries the summary and the reset session
type FinishGameResponse struct {
	Session *SessionView `json:"session"`
	Applied bool         `json:"applied"`
	Summary *SummaryView `json:"summary,omitempty"`
}
