package greedisland_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

func TestRankOrdering(t *testing.T) {
	assert.True(t, greedisland.RankSS.Higher(greedisland.RankS))
	assert.True(t, greedisland.RankA.Higher(greedisland.RankH))
	assert.False(t, greedisland.RankH.Higher(greedisland.RankG))
	assert.False(t, greedisland.RankB.Higher(greedisland.RankB))
	assert.False(t, greedisland.Rank("Z").Higher(greedisland.RankH))
	assert.Equal(t, -1, greedisland.Rank("Z").Order())
}

func TestCardLabel(t *testing.T) {
	card := greedisland.ResolveSpecifiedCard(7, "card_1")
	assert.Equal(t, "[No.007] Pregnancy Stone", card.Label())

	item := &greedisland.Card{Name: "Healing Herb", Number: -1, Type: greedisland.CardTypeItem}
	assert.Equal(t, "Healing Herb", item.Label())
}

func TestResolveSpecifiedCard(t *testing.T) {
	t.Run("catalog entry", func(t *testing.T) {
		card := greedisland.ResolveSpecifiedCard(85, "card_1")

		assert.Equal(t, "card_1", card.ID)
		assert.Equal(t, "Blue Planet", card.Name)
		assert.Equal(t, greedisland.RankSS, card.Rank)
		assert.Equal(t, greedisland.CardTypeSpecified, card.Type)
		assert.Equal(t, greedisland.SpecifiedCardLimit, card.Limit)
	})

	t.Run("placeholder for undefined numbers", func(t *testing.T) {
		card := greedisland.ResolveSpecifiedCard(42, "card_2")

		assert.Equal(t, "Mysterious Item No.42", card.Name)
		assert.Equal(t, greedisland.RankB, card.Rank)
		assert.Equal(t, 42, card.Number)
		assert.True(t, card.IsSpecifiedNumber())
	})

	t.Run("fresh card each call", func(t *testing.T) {
		a := greedisland.ResolveSpecifiedCard(17, "a")
		b := greedisland.ResolveSpecifiedCard(17, "b")
		assert.NotSame(t, a, b)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestNewPlayerState(t *testing.T) {
	player := greedisland.NewPlayerState("")

	assert.Equal(t, greedisland.DefaultPlayerName, player.Name)
	assert.Equal(t, "start", player.CurrentLocation.ID)
	assert.Equal(t, 100, player.HP)
	assert.Equal(t, 100, player.MaxHP)
	assert.Equal(t, 1, player.Level)
	assert.Equal(t, 0, player.SpecifiedCount())
	assert.Empty(t, player.FreeSlots)
	require.Len(t, player.SpellCards, 3)
	assert.Equal(t, greedisland.SpellAccompany, player.SpellCards[1].Name)

	t.Run("initial spells are not shared between players", func(t *testing.T) {
		other := greedisland.NewPlayerState("Killua")
		assert.NotSame(t, player.SpellCards[0], other.SpellCards[0])
	})
}

func TestScenarioFindChoice(t *testing.T) {
	scenario := &greedisland.Scenario{
		Choices: []greedisland.Choice{
			{ID: "fight", Text: "Fight", Type: greedisland.ChoiceAggressive},
			{ID: "flee", Text: "Flee", Type: greedisland.ChoiceDefensive},
		},
	}

	assert.Equal(t, "flee", scenario.FindChoice("flee").ID)
	assert.Equal(t, "fight", scenario.FindChoice("unknown").ID, "unknown ids fall back to the first choice")
	assert.Nil(t, (&greedisland.Scenario{}).FindChoice("any"))
}

func TestGameStateIsTerminal(t *testing.T) {
	assert.False(t, greedisland.GameStateIdle.IsTerminal())
	assert.False(t, greedisland.GameStateDecision.IsTerminal())
	assert.False(t, greedisland.GameStateResolving.IsTerminal())
	assert.True(t, greedisland.GameStateGameOver.IsTerminal())
	assert.True(t, greedisland.GameStateVictory.IsTerminal())
	assert.True(t, greedisland.GameStateChoosingRewards.IsTerminal())
}
