// Package session provides storage for Greed Island game sessions
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/greed-island/internal/repositories/session Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// Repository defines the storage interface for game sessions
type Repository interface {
	// Create stores a new session. The ID must not exist yet.
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing session
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SessionData is the persistent state of one game
type SessionData struct {
	ID       string                   `json:"id"`
	Player   *greedisland.PlayerState `json:"player"`
	State    greedisland.GameState    `json:"state"`
	Scenario *greedisland.Scenario    `json:"scenario,omitempty"`
	Logs     []greedisland.LogEntry   `json:"logs"`

	// Loading is set while a game master request is outstanding
	Loading bool `json:"loading"`

	// Epoch is bumped by every reset; responses for an older epoch are dropped
	Epoch int `json:"epoch"`

	// EndingSelection holds the card ids picked on the reward screen, in pick order
	EndingSelection []string `json:"ending_selection"`

	// SettleAt is when a RESOLVING session returns to IDLE
	SettleAt *time.Time `json:"settle_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput defines the request for creating a session
type CreateInput struct {
	Session *SessionData
}

// CreateOutput defines the response for creating a session
type CreateOutput struct {
	Session *SessionData
}

// GetInput defines the request for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput defines the response for retrieving a session
type GetOutput struct {
	Session *SessionData
}

// UpdateInput defines the request for updating a session
type UpdateInput struct {
	Session *SessionData
}

// UpdateOutput defines the response for updating a session
type UpdateOutput struct {
	Session *SessionData
}

// DeleteInput defines the request for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the response for deleting a session
type DeleteOutput struct{}
