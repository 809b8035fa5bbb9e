// Package gamemaster is the gateway to the game master that writes scenarios,
// judges player choices and answers Book queries.
package gamemaster

//go:generate mockgen -destination=mock/mock_client.go -package=gamemastermock github.com/KirkDiggler/greed-island/internal/clients/gamemaster Client

import (
	"context"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// Client defines the game master contract. Implementations may fail; callers
// that need total behavior wrap them with NewFallback.
type Client interface {
	// RequestScenario asks for a new encounter at the player's location
	RequestScenario(ctx context.Context, input *ScenarioInput) (*greedisland.Scenario, error)

	// RequestResolution judges the chosen action and returns its effects
	RequestResolution(ctx context.Context, input *ResolutionInput) (*greedisland.ActionResolution, error)

	// ConsultBook answers a free-form question in the voice of the Book
	ConsultBook(ctx context.Context, query string) (string, error)
}

// PlayerSummary is the slice of player state the game master sees
type PlayerSummary struct {
	Name         string
	Level        int
	LocationName string
	Difficulty   int
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
}

// SummarizePlayer builds the game master view of a player
func SummarizePlayer(player *greedisland.PlayerState) PlayerSummary {
	return PlayerSummary{
		Name:         player.Name,
		Level:        player.Level,
		LocationName: player.CurrentLocation.Name,
		Difficulty:   player.CurrentLocation.Difficulty,
		HP:           player.HP,
		MaxHP:        player.MaxHP,
		Attack:       player.Attack,
		Defense:      player.Defense,
	}
}

// ScenarioInput is the request for RequestScenario
type ScenarioInput struct {
	Player PlayerSummary
}

// ResolutionInput is the request for RequestResolution
type ResolutionInput struct {
	Player              PlayerSummary
	ScenarioDescription string
	ChoiceText          string
	// ChoiceType is informational for prompt-driven implementations
	ChoiceType greedisland.ChoiceType
}
