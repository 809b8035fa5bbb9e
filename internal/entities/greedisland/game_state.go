package greedisland

// GameState is the orchestrator state machine position
type GameState string

// Orchestrator states
const (
	GameStateIdle            GameState = "IDLE"
	GameStateDecision        GameState = "DECISION"
	GameStateResolving       GameState = "RESOLVING"
	GameStateGameOver        GameState = "GAME_OVER"
	GameStateVictory         GameState = "VICTORY"
	GameStateChoosingRewards GameState = "CHOOSING_REWARDS"
)

// IsTerminal reports whether the session has ended its normal loop. The
// win/loss check is suppressed in these states.
func (s GameState) IsTerminal() bool {
	switch s {
	case GameStateGameOver, GameStateVictory, GameStateChoosingRewards:
		return true
	default:
		return false
	}
}

// EndingSelectionSize is the number of cards a winner keeps
const EndingSelectionSize = 3
