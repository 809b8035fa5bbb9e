package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
	"github.com/KirkDiggler/greed-island/internal/testutils"
)

// RepositoryTestSuite runs the same contract against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (session.Repository, func())
	repo    session.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (session.Repository, func()) {
			return session.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (session.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := session.NewRedisRepository(&session.Config{Client: client})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) newSession(id string) *session.SessionData {
	player := greedisland.NewPlayerState("Gon")
	engine.InsertCard(player, greedisland.ResolveSpecifiedCard(17, "card_1"))

	return &session.SessionData{
		ID:     id,
		Player: player,
		State:  greedisland.GameStateIdle,
		Logs: []greedisland.LogEntry{
			{ID: "log_1", Text: "Welcome", Sender: greedisland.SenderSystem, Timestamp: s.now},
		},
		EndingSelection: []string{},
		CreatedAt:       s.now,
		UpdatedAt:       s.now,
	}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created := s.newSession("session_1")

	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: created})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal(created, out.Session)
	s.Equal("Breath of Archangel", out.Session.Player.SpecifiedSlots[17].Name)
}

func (s *RepositoryTestSuite) TestCreate_AlreadyExists() {
	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: s.newSession("session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &session.CreateInput{Session: s.newSession("session_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreate_InvalidInput() {
	_, err := s.repo.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &session.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &session.CreateInput{Session: &session.SessionData{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &session.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGet_ReturnsCopy() {
	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: s.newSession("session_1")})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: "session_1"})
	s.Require().NoError(err)
	first.Session.Player.HP = 1
	first.Session.State = greedisland.GameStateGameOver

	second, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal(100, second.Session.Player.HP)
	s.Equal(greedisland.GameStateIdle, second.Session.State)
}

func (s *RepositoryTestSuite) TestUpdate() {
	data := s.newSession("session_1")
	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: data})
	s.Require().NoError(err)

	settle := s.now.Add(1500 * time.Millisecond)
	data.State = greedisland.GameStateResolving
	data.Loading = true
	data.Epoch = 2
	data.SettleAt = &settle
	data.Scenario = &greedisland.Scenario{
		Title:   "Golem",
		Choices: []greedisland.Choice{{ID: "hit", Text: "Hit", Type: greedisland.ChoiceAggressive}},
	}

	_, err = s.repo.Update(s.ctx, &session.UpdateInput{Session: data})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: "session_1"})
	s.Require().NoError(err)
	s.Equal(data, out.Session)
}

func (s *RepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(s.ctx, &session.UpdateInput{Session: s.newSession("missing")})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: s.newSession("session_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &session.DeleteInput{SessionID: "session_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &session.GetInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &session.DeleteInput{SessionID: "session_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepository_TTL(t *testing.T) {
	var mr *miniredis.Miniredis
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(m *miniredis.Miniredis) {
		mr = m
	})
	defer cleanup()

	repo, err := session.NewRedisRepository(&session.Config{Client: client, TTL: time.Hour})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	data := &session.SessionData{ID: "session_1", Player: greedisland.NewPlayerState("Gon")}
	if _, err := repo.Create(ctx, &session.CreateInput{Session: data}); err != nil {
		t.Fatal(err)
	}

	if got := mr.TTL("session:session_1"); got != time.Hour {
		t.Fatalf("expected ttl of 1h, got %s", got)
	}

	mr.FastForward(30 * time.Minute)
	if _, err := repo.Update(ctx, &session.UpdateInput{Session: data}); err != nil {
		t.Fatal(err)
	}
	if got := mr.TTL("session:session_1"); got != time.Hour {
		t.Fatalf("expected update to refresh ttl, got %s", got)
	}

	mr.FastForward(2 * time.Hour)
	if _, err := repo.Get(ctx, &session.GetInput{SessionID: "session_1"}); !errors.IsNotFound(err) {
		t.Fatalf("expected expired session to be not found, got %v", err)
	}
}

func TestNewRedisRepository_InvalidConfig(t *testing.T) {
	_, err := session.NewRedisRepository(&session.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
