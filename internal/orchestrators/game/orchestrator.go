// Package game implements the Greed Island scenario orchestrator: the
// explore, decide, resolve loop plus travel, card use and the ending flow.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/greed-island/internal/orchestrators/game Service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/clients/gamemaster"
	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/pkg/clock"
	"github.com/KirkDiggler/greed-island/internal/pkg/idgen"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

const (
	// DefaultResolveDelay is how long a resolved encounter stays on screen
	DefaultResolveDelay = 1500 * time.Millisecond

	// MaxLogEntries bounds the stored game log; older entries are dropped
	MaxLogEntries = 200
)

// Service defines the game operations. Invalid player actions are not
// errors: they return the unchanged snapshot with Applied set to false.
type Service interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Explore asks the game master for an encounter. Valid in IDLE.
	Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error)

	// Choose resolves a scenario choice and applies its effects. Valid in DECISION.
	Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error)

	// Travel moves to the next location. Valid in IDLE.
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)

	// UseCard uses a spell card or an item card from the free slots. Valid in IDLE.
	UseCard(ctx context.Context, input *UseCardInput) (*UseCardOutput, error)

	// ConsultBook asks the Book a question. Valid in any state, never mutates.
	ConsultBook(ctx context.Context, input *ConsultBookInput) (*ConsultBookOutput, error)

	// ProceedToRewards opens reward selection. Valid in VICTORY.
	ProceedToRewards(ctx context.Context, input *ProceedToRewardsInput) (*ProceedToRewardsOutput, error)

	// ToggleEndingSelection adds or removes an owned card from the kept set (max 3)
	ToggleEndingSelection(ctx context.Context, input *ToggleEndingSelectionInput) (*ToggleEndingSelectionOutput, error)

	// FinishGame ends a won game with exactly 3 kept cards, then resets the session
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)

	// Retry resets the session to a new game from any state
	Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	SessionRepo session.Repository
	GameMaster  gamemaster.Client
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *zap.Logger

	// ResolveDelay defaults to DefaultResolveDelay; negative settles immediately
	ResolveDelay time.Duration

	// PlayerName is used when CreateSession gets no name
	PlayerName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.GameMaster == nil {
		vb.RequiredField("GameMaster")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         session.Repository
	gm           gamemaster.Client
	idGen        idgen.Generator
	clock        clock.Clock
	logger       *zap.Logger
	resolveDelay time.Duration
	playerName   string

	// locks holds one *sync.Mutex per session id. A lock is held only
	// around read-modify-write sections, never across game master calls.
	locks sync.Map
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	delay := cfg.ResolveDelay
	if delay == 0 {
		delay = DefaultResolveDelay
	}
	if delay < 0 {
		delay = 0
	}

	name := cfg.PlayerName
	if name == "" {
		name = greedisland.DefaultPlayerName
	}

	return &orchestrator{
		repo:         cfg.SessionRepo,
		gm:           cfg.GameMaster,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
		resolveDelay: delay,
		playerName:   name,
	}, nil
}

func errInputRequired() error {
	return errors.InvalidArgument("input is required")
}

func (o *orchestrator) lock(sessionID string) func() {
	value, _ := o.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// load reads the session and applies a due settle. The returned flag reports
// whether the settle changed anything that needs saving.
func (o *orchestrator) load(ctx context.Context, sessionID string) (*session.SessionData, bool, error) {
	if sessionID == "" {
		return nil, false, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.Get(ctx, &session.GetInput{SessionID: sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			// Expired or unknown sessions have nothing left to guard
			o.locks.Delete(sessionID)
		}
		return nil, false, errors.Wrapf(err, "failed to load session %s", sessionID)
	}

	return out.Session, o.settle(out.Session), nil
}

func (o *orchestrator) save(ctx context.Context, data *session.SessionData) error {
	data.UpdatedAt = o.clock.Now()
	if len(data.Logs) > MaxLogEntries {
		data.Logs = append([]greedisland.LogEntry(nil), data.Logs[len(data.Logs)-MaxLogEntries:]...)
	}

	if _, err := o.repo.Update(ctx, &session.UpdateInput{Session: data}); err != nil {
		return errors.Wrapf(err, "failed to save session %s", data.ID)
	}
	return nil
}

// loadForRead loads a session and persists a due settle
func (o *orchestrator) loadForRead(ctx context.Context, sessionID string) (*session.SessionData, error) {
	data, settled, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if settled {
		if err := o.save(ctx, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// settle ends the post-resolution pause once it is due. Terminal states are
// left alone.
func (o *orchestrator) settle(data *session.SessionData) bool {
	if data.SettleAt == nil || o.clock.Now().Before(*data.SettleAt) {
		return false
	}

	data.SettleAt = nil
	if data.State == greedisland.GameStateResolving {
		data.State = greedisland.GameStateIdle
		data.Scenario = nil
	}
	return true
}

func (o *orchestrator) addLog(data *session.SessionData, sender greedisland.Sender, format string, args ...any) {
	o.addLogText(data, sender, fmt.Sprintf(format, args...))
}

// addLogText appends text verbatim, for narrative from the game master
func (o *orchestrator) addLogText(data *session.SessionData, sender greedisland.Sender, text string) {
	data.Logs = append(data.Logs, greedisland.LogEntry{
		ID:        o.idGen.Generate(),
		Text:      text,
		Sender:    sender,
		Timestamp: o.clock.Now(),
	})
}

// evaluateEnding applies the win/loss check after a player update
func (o *orchestrator) evaluateEnding(data *session.SessionData) {
	next := engine.EvaluateEnding(data.State, data.Player)
	if next == data.State {
		return
	}

	data.State = next
	data.Scenario = nil
	data.SettleAt = nil

	switch next {
	case greedisland.GameStateVictory:
		o.addLog(data, greedisland.SenderSystem, msgVictory)
	case greedisland.GameStateGameOver:
		data.Player.HP = 0
		o.addLog(data, greedisland.SenderSystem, msgGameOver)
	}

	o.logger.Info("game ended",
		zap.String("session_id", data.ID),
		zap.String("state", string(next)),
		zap.Int("specified_count", data.Player.SpecifiedCount()),
		zap.Int("hp", data.Player.HP))
}

func (o *orchestrator) newSessionData(id, playerName string, epoch int, createdAt time.Time) *session.SessionData {
	player := greedisland.NewPlayerState(playerName)
	data := &session.SessionData{
		ID:              id,
		Player:          player,
		State:           greedisland.GameStateIdle,
		Logs:            []greedisland.LogEntry{},
		Epoch:           epoch,
		EndingSelection: []string{},
		CreatedAt:       createdAt,
		UpdatedAt:       o.clock.Now(),
	}
	o.addLog(data, greedisland.SenderSystem, msgWelcome, player.CurrentLocation.Name)
	return data
}

// reset replaces the session with a fresh game and invalidates outstanding replies
func (o *orchestrator) reset(data *session.SessionData) *session.SessionData {
	return o.newSessionData(data.ID, data.Player.Name, data.Epoch+1, data.CreatedAt)
}

func snapshot(data *session.SessionData) *Snapshot {
	return &Snapshot{
		Session:        data,
		Score:          engine.ComputeScore(data.Player),
		SpecifiedCount: data.Player.SpecifiedCount(),
	}
}

// CreateSession starts a new game
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	name := input.PlayerName
	if name == "" {
		name = o.playerName
	}

	data := o.newSessionData(o.idGen.Generate(), name, 0, o.clock.Now())
	if _, err := o.repo.Create(ctx, &session.CreateInput{Session: data}); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	o.logger.Info("session created",
		zap.String("session_id", data.ID),
		zap.String("player", name))

	return &CreateSessionOutput{Snapshot: snapshot(data)}, nil
}

// GetSession reads a game
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	unlock := o.lock(input.SessionID)
	defer unlock()

	data, err := o.loadForRead(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Snapshot: snapshot(data)}, nil
}
