package game

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

// ProceedToRewards moves a won game to reward selection
func (o *orchestrator) ProceedToRewards(
	ctx context.Context, input *ProceedToRewardsInput,
) (*ProceedToRewardsOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	data, applied, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		if data.State != greedisland.GameStateVictory {
			return false
		}
		data.State = greedisland.GameStateChoosingRewards
		data.EndingSelection = []string{}
		o.addLog(data, greedisland.SenderSystem, msgChooseRewards, greedisland.EndingSelectionSize)
		return true
	})
	if err != nil {
		return nil, err
	}

	return &ProceedToRewardsOutput{Snapshot: snapshot(data), Applied: applied}, nil
}

// ToggleEndingSelection flips an owned card in or out of the kept set. A
// fourth distinct card is ignored until one is deselected.
func (o *orchestrator) ToggleEndingSelection(
	ctx context.Context, input *ToggleEndingSelectionInput,
) (*ToggleEndingSelectionOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	data, applied, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		if data.State != greedisland.GameStateChoosingRewards {
			return false
		}
		if data.Player.FindOwnedCard(input.CardID) == nil {
			return false
		}

		for i, id := range data.EndingSelection {
			if id == input.CardID {
				data.EndingSelection = append(data.EndingSelection[:i:i], data.EndingSelection[i+1:]...)
				return true
			}
		}

		if len(data.EndingSelection) >= greedisland.EndingSelectionSize {
			return false
		}
		data.EndingSelection = append(data.EndingSelection, input.CardID)
		return true
	})
	if err != nil {
		return nil, err
	}

	return &ToggleEndingSelectionOutput{
		Snapshot: snapshot(data),
		Applied:  applied,
		Selected: containsID(data.EndingSelection, input.CardID),
	}, nil
}

// FinishGame summarizes the kept cards and resets the session
func (o *orchestrator) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	var summary *GameSummary
	var fresh *session.SessionData

	data, applied, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		if data.State != greedisland.GameStateChoosingRewards ||
			len(data.EndingSelection) != greedisland.EndingSelectionSize {
			return false
		}

		summary = summarize(data)
		fresh = o.reset(data)
		*data = *fresh
		return true
	})
	if err != nil {
		return nil, err
	}

	if applied {
		o.logger.Info("game finished",
			zap.String("session_id", data.ID),
			zap.Int("score", summary.Score),
			zap.Int("level", summary.Level))
	}

	return &FinishGameOutput{Snapshot: snapshot(data), Applied: applied, Summary: summary}, nil
}

// Retry starts a new game in the same session from any state
func (o *orchestrator) Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	data, _, err := o.mutate(ctx, input.SessionID, func(data *session.SessionData) bool {
		*data = *o.reset(data)
		return true
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("session reset", zap.String("session_id", data.ID), zap.Int("epoch", data.Epoch))

	return &RetryOutput{Snapshot: snapshot(data)}, nil
}

func summarize(data *session.SessionData) *GameSummary {
	kept := make([]*greedisland.Card, 0, len(data.EndingSelection))
	names := make([]string, 0, len(data.EndingSelection))
	for _, id := range data.EndingSelection {
		if card := data.Player.FindOwnedCard(id); card != nil {
			kept = append(kept, card)
			names = append(names, card.Name)
		}
	}

	return &GameSummary{
		PlayerName:     data.Player.Name,
		KeptCards:      kept,
		Score:          engine.ComputeScore(data.Player),
		Level:          data.Player.Level,
		CollectedCount: data.Player.SpecifiedCount(),
		Message:        fmt.Sprintf(msgSummary, strings.Join(names, ", ")),
	}
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
