package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	gamemastermock "github.com/KirkDiggler/greed-island/internal/clients/gamemaster/mock"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
	"github.com/KirkDiggler/greed-island/internal/pkg/clock"
	"github.com/KirkDiggler/greed-island/internal/pkg/idgen"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/greed-island/internal/repositories/session/mock"
	"github.com/KirkDiggler/greed-island/internal/testutils"
	"github.com/KirkDiggler/greed-island/internal/testutils/builders"
	"github.com/KirkDiggler/greed-island/internal/testutils/mocks"
)

func newMockedOrchestrator(t *testing.T, repo session.Repository, now time.Time) game.Service {
	ctrl := gomock.NewController(t)

	orch, err := game.NewOrchestrator(&game.Config{
		SessionRepo: repo,
		GameMaster:  gamemastermock.NewMockClient(ctrl),
		IDGenerator: idgen.NewSequential("id"),
		Clock:       clock.NewManual(now),
		Logger:      zap.NewNop(),
	})
	require.NoError(t, err)
	return orch
}

func TestGetSession_RepositoryUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sessionmock.NewMockRepository(ctrl)
	orch := newMockedOrchestrator(t, repo, time.Now())

	data := builders.NewSessionBuilder().Build()
	mocks.ExpectSessionGet(repo, data, errors.Unavailable("redis down"))

	_, err := orch.GetSession(context.Background(), &game.GetSessionInput{SessionID: data.ID})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestGetSession_PersistsDueSettle(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sessionmock.NewMockRepository(ctrl)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orch := newMockedOrchestrator(t, repo, now)

	due := now.Add(-time.Second)
	data := builders.NewSessionBuilder().
		WithScenario(testutils.TestScenario()).
		WithState(greedisland.GameStateResolving).
		Build()
	data.SettleAt = &due

	mocks.ExpectSessionGet(repo, data, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *session.UpdateInput) (*session.UpdateOutput, error) {
			assert.Equal(t, greedisland.GameStateIdle, input.Session.State)
			assert.Nil(t, input.Session.SettleAt)
			assert.Nil(t, input.Session.Scenario)
			return &session.UpdateOutput{Session: input.Session}, nil
		})

	out, err := orch.GetSession(context.Background(), &game.GetSessionInput{SessionID: data.ID})
	require.NoError(t, err)
	assert.Equal(t, greedisland.GameStateIdle, out.Snapshot.Session.State)
}

func TestGetSession_SettleLeavesTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sessionmock.NewMockRepository(ctrl)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orch := newMockedOrchestrator(t, repo, now)

	due := now.Add(-time.Second)
	data := builders.NewSessionBuilder().
		WithState(greedisland.GameStateGameOver).
		WithHP(0).
		Build()
	data.SettleAt = &due

	mocks.ExpectSessionGet(repo, data, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(&session.UpdateOutput{}, nil)

	out, err := orch.GetSession(context.Background(), &game.GetSessionInput{SessionID: data.ID})
	require.NoError(t, err)
	assert.Equal(t, greedisland.GameStateGameOver, out.Snapshot.Session.State)
}

func TestTravel_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sessionmock.NewMockRepository(ctrl)
	orch := newMockedOrchestrator(t, repo, time.Now())

	data := builders.NewSessionBuilder().Build()
	mocks.ExpectSessionGet(repo, data, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.NotFound("session gone"))

	_, err := orch.Travel(context.Background(), &game.TravelInput{SessionID: data.ID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestTravel_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch := newMockedOrchestrator(t, sessionmock.NewMockRepository(ctrl), time.Now())

	_, err := orch.Travel(context.Background(), nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = orch.Travel(context.Background(), &game.TravelInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
