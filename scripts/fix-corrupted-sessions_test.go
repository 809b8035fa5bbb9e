package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/testutils/builders"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestProblem(t *testing.T) {
	healthy := builders.NewSessionBuilder().Build()
	assert.Empty(t, problem(encode(t, healthy)))

	assert.Equal(t, "corrupted JSON", problem(`{"id":`))

	noPlayer := builders.NewSessionBuilder().Build()
	noPlayer.Player = nil
	assert.Equal(t, "missing player", problem(encode(t, noPlayer)))

	badState := builders.NewSessionBuilder().WithState("PAUSED").Build()
	assert.Equal(t, `unknown state "PAUSED"`, problem(encode(t, badState)))

	decision := builders.NewSessionBuilder().WithState(greedisland.GameStateDecision).Build()
	assert.Equal(t, "decision without a scenario", problem(encode(t, decision)))
}
