package testutils

import (
	"fmt"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

const (
	// TestPlayerName is the default player name for fixtures
	TestPlayerName = "Killua"

	// TestSessionID is the default session id for fixtures
	TestSessionID = "session-test-001"
)

// TestScenario returns a two-choice encounter
func TestScenario() *greedisland.Scenario {
	return &greedisland.Scenario{
		Title:       "Bandit Ambush",
		Description: "Three bandits block the road.",
		Choices: []greedisland.Choice{
			{ID: "fight", Text: "Fight them", Type: greedisland.ChoiceAggressive},
			{ID: "talk", Text: "Talk your way out", Type: greedisland.ChoiceNeutral},
		},
		MonsterName: "Bandit",
	}
}

// TestResolution returns a resolution with only a narrative
func TestResolution(narrative string) *greedisland.ActionResolution {
	return &greedisland.ActionResolution{Narrative: narrative}
}

// TestItemCard returns a free-slot item card
func TestItemCard(id string) *greedisland.Card {
	return &greedisland.Card{
		ID:          id,
		Number:      -1,
		Name:        "Healing Herb",
		Description: "Restores a little HP.",
		Rank:        greedisland.RankH,
		Type:        greedisland.CardTypeItem,
		Limit:       greedisland.GeneratedCardLimit,
	}
}

// FillSpecifiedSlots fills every specified slot except those listed in skip
func FillSpecifiedSlots(player *greedisland.PlayerState, skip ...int) {
	skipped := make(map[int]bool, len(skip))
	for _, n := range skip {
		skipped[n] = true
	}

	for n := 0; n < greedisland.SpecifiedSlotCount; n++ {
		if skipped[n] {
			continue
		}
		player.SpecifiedSlots[n] = greedisland.ResolveSpecifiedCard(n, fmt.Sprintf("card-%03d", n))
	}
}
