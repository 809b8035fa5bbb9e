// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
	"github.com/KirkDiggler/greed-island/internal/testutils"
)

// SessionBuilder provides a fluent interface for building test sessions
type SessionBuilder struct {
	data *session.SessionData
}

// NewSessionBuilder creates a fresh idle session with a welcome log
func NewSessionBuilder() *SessionBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		data: &session.SessionData{
			ID:     testutils.TestSessionID,
			Player: greedisland.NewPlayerState(testutils.TestPlayerName),
			State:  greedisland.GameStateIdle,
			Logs: []greedisland.LogEntry{
				{ID: "log-1", Text: "Welcome to Greed Island.", Sender: greedisland.SenderSystem, Timestamp: now},
			},
			EndingSelection: []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.data.ID = id
	return b
}

// WithState sets the game state
func (b *SessionBuilder) WithState(state greedisland.GameState) *SessionBuilder {
	b.data.State = state
	return b
}

// WithScenario sets the scenario and moves the session to DECISION
func (b *SessionBuilder) WithScenario(scenario *greedisland.Scenario) *SessionBuilder {
	b.data.Scenario = scenario
	b.data.State = greedisland.GameStateDecision
	return b
}

// WithHP sets current HP
func (b *SessionBuilder) WithHP(hp int) *SessionBuilder {
	b.data.Player.HP = hp
	return b
}

// WithFreeCards appends cards to the free slots
func (b *SessionBuilder) WithFreeCards(cards ...*greedisland.Card) *SessionBuilder {
	b.data.Player.FreeSlots = append(b.data.Player.FreeSlots, cards...)
	return b
}

// WithSpecifiedSlotsFilled fills every specified slot except skip
func (b *SessionBuilder) WithSpecifiedSlotsFilled(skip ...int) *SessionBuilder {
	testutils.FillSpecifiedSlots(b.data.Player, skip...)
	return b
}

// WithEndingSelection sets the kept card ids
func (b *SessionBuilder) WithEndingSelection(ids ...string) *SessionBuilder {
	b.data.EndingSelection = ids
	return b
}

// WithLoading marks a game master request as outstanding
func (b *SessionBuilder) WithLoading() *SessionBuilder {
	b.data.Loading = true
	return b
}

// Build returns the built session
func (b *SessionBuilder) Build() *session.SessionData {
	return b.data
}
