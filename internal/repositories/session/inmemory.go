package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/greed-island/internal/errors"
)

const (
	errInputRequired     = "input is required"
	errSessionRequired   = "session is required"
	errSessionIDRequired = "session ID is required"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	data, err := encodeSession(input)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}
	r.store[input.Session.ID] = data

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID. The returned session is a copy.
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	r.mu.RLock()
	data, exists := r.store[input.SessionID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	session, err := decodeSession(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	var create *CreateInput
	if input != nil {
		create = &CreateInput{Session: input.Session}
	}
	data, err := encodeSession(create)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}
	r.store[input.Session.ID] = data

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SessionID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	delete(r.store, input.SessionID)

	return &DeleteOutput{}, nil
}

func encodeSession(input *CreateInput) ([]byte, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionRequired)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	return data, nil
}

func decodeSession(data []byte) (*SessionData, error) {
	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &session, nil
}
