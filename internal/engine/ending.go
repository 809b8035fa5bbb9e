package engine

import (
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// EvaluateEnding runs the win/loss check after a player update. It returns
// state unchanged once the session is already over or choosing rewards.
// A full binder wins even at hp <= 0.
func EvaluateEnding(state greedisland.GameState, player *greedisland.PlayerState) greedisland.GameState {
	if state.IsTerminal() {
		return state
	}

	if player.SpecifiedCount() >= greedisland.SpecifiedSlotCount {
		return greedisland.GameStateVictory
	}

	if player.HP <= 0 {
		return greedisland.GameStateGameOver
	}

	return state
}
