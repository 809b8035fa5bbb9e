package session

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/greed-island/internal/errors"
	redisclient "github.com/KirkDiggler/greed-island/internal/redis"
)

const (
	// Key pattern: session:{id}
	sessionKeyPrefix = "session:"

	// DefaultTTL applies when Config.TTL is zero
	DefaultTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// TTL is refreshed on every write
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new session with the configured TTL
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	data, err := encodeSession(input)
	if err != nil {
		return nil, err
	}

	created, err := r.client.SetNX(ctx, buildKey(input.Session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	data, err := r.client.Get(ctx, buildKey(input.SessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get session from Redis")
	}

	session, err := decodeSession(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// Update replaces an existing session and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	var create *CreateInput
	if input != nil {
		create = &CreateInput{Session: input.Session}
	}
	data, err := encodeSession(create)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.SetXX(ctx, buildKey(input.Session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to update session in Redis")
	}
	if !updated {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete session from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
