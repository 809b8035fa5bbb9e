package game

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

// mutate runs fn under the session lock and saves when fn applied a change
// or a due settle happened
func (o *orchestrator) mutate(
	ctx context.Context, sessionID string, fn func(data *session.SessionData) bool,
) (*session.SessionData, bool, error) {
	unlock := o.lock(sessionID)
	defer unlock()

	data, settled, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	applied := fn(data)
	if applied || settled {
		if err := o.save(ctx, data); err != nil {
			return nil, false, err
		}
	}

	return data, applied, nil
}

func idle(data *session.SessionData) bool {
	return data.State == greedisland.GameStateIdle && !data.Loading
}

// Travel moves the player to the next location in the cycle
func (o *orchestrator) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	data, applied, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		if !idle(data) {
			return false
		}
		destination := engine.AdvanceLocation(data.Player)
		o.addLog(data, greedisland.SenderSystem, msgMoved, destination.Name)
		return true
	})
	if err != nil {
		return nil, err
	}

	return &TravelOutput{Snapshot: snapshot(data), Applied: applied}, nil
}

// UseCard uses a spell card, or an item card held in the free slots. Other
// cards are not usable.
func (o *orchestrator) UseCard(ctx context.Context, input *UseCardInput) (*UseCardOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	data, applied, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		if !idle(data) {
			return false
		}

		if use := engine.UseSpellCard(data.Player, input.CardID); use != nil {
			if use.Destination != nil {
				o.addLog(data, greedisland.SenderSystem, msgMoved, use.Destination.Name)
			}
			o.addLog(data, greedisland.SenderPlayer, msgUsedSpell, use.Card.Name)
			return true
		}

		if item := engine.UseItemCard(data.Player, input.CardID); item != nil {
			o.addLog(data, greedisland.SenderPlayer, msgUsedItem, item.Name)
			o.evaluateEnding(data)
			return true
		}

		return false
	})
	if err != nil {
		return nil, err
	}

	return &UseCardOutput{Snapshot: snapshot(data), Applied: applied}, nil
}

// ConsultBook asks the Book. The session is only read.
func (o *orchestrator) ConsultBook(ctx context.Context, input *ConsultBookInput) (*ConsultBookOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	data, err := func() (*session.SessionData, error) {
		unlock := o.lock(input.SessionID)
		defer unlock()
		return o.loadForRead(ctx, input.SessionID)
	}()
	if err != nil {
		return nil, err
	}

	answer, err := o.gm.ConsultBook(ctx, query)
	if err != nil {
		o.logger.Warn("book request failed", zap.String("session_id", data.ID), zap.Error(err))
		return nil, errors.Wrap(err, "book unavailable")
	}

	return &ConsultBookOutput{Snapshot: snapshot(data), Answer: answer}, nil
}
