package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	gamemastermock "github.com/KirkDiggler/greed-island/internal/clients/gamemaster/mock"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/pkg/clock"
	"github.com/KirkDiggler/greed-island/internal/pkg/idgen"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

func countLocks(o *orchestrator) int {
	n := 0
	o.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestLocks_DroppedForMissingSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := session.NewInMemory()
	ctx := context.Background()

	svc, err := NewOrchestrator(&Config{
		SessionRepo: repo,
		GameMaster:  gamemastermock.NewMockClient(ctrl),
		IDGenerator: idgen.NewSequential("id"),
		Clock:       clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		Logger:      zap.NewNop(),
	})
	require.NoError(t, err)
	o := svc.(*orchestrator)

	created, err := o.CreateSession(ctx, &CreateSessionInput{PlayerName: "Killua"})
	require.NoError(t, err)
	id := created.Snapshot.Session.ID

	_, err = o.Travel(ctx, &TravelInput{SessionID: id})
	require.NoError(t, err)
	assert.Equal(t, 1, countLocks(o))

	_, err = repo.Delete(ctx, &session.DeleteInput{SessionID: id})
	require.NoError(t, err)

	_, err = o.Travel(ctx, &TravelInput{SessionID: id})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 0, countLocks(o))

	for _, missing := range []string{"gone-1", "gone-2", "gone-3"} {
		_, err = o.GetSession(ctx, &GetSessionInput{SessionID: missing})
		assert.True(t, errors.IsNotFound(err))
	}
	assert.Equal(t, 0, countLocks(o))
}
