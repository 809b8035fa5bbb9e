package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/clients/gamemaster"
	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
)

// Explore asks the game master for a scenario. The session is marked loading
// while the request is outstanding; a second Explore in the meantime is ignored.
func (o *orchestrator) Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	summary, epoch, data, ok, err := o.beginExplore(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ExploreOutput{Snapshot: snapshot(data)}, nil
	}

	scenario, gmErr := o.gm.RequestScenario(ctx, &gamemaster.ScenarioInput{Player: summary})

	// the reply is recorded even if the caller went away, so the session
	// never stays loading
	ctx = context.WithoutCancel(ctx)

	unlock := o.lock(input.SessionID)
	defer unlock()

	data, _, err = o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if data.Epoch != epoch || !data.Loading {
		o.logger.Info("stale scenario discarded", zap.String("session_id", data.ID), zap.Int("epoch", epoch))
		return &ExploreOutput{Snapshot: snapshot(data)}, nil
	}

	data.Loading = false
	if gmErr != nil || scenario == nil || len(scenario.Choices) == 0 {
		o.logger.Warn("scenario request failed", zap.String("session_id", data.ID), zap.Error(gmErr))
		data.State = greedisland.GameStateIdle
		data.Scenario = nil
		o.addLog(data, greedisland.SenderSystem, msgConnectionLost)
	} else {
		data.State = greedisland.GameStateDecision
		data.Scenario = scenario
		o.addLogText(data, greedisland.SenderGM, scenario.Description)
	}

	if err := o.save(ctx, data); err != nil {
		return nil, err
	}

	return &ExploreOutput{Snapshot: snapshot(data), Applied: true}, nil
}

func (o *orchestrator) beginExplore(
	ctx context.Context, sessionID string,
) (gamemaster.PlayerSummary, int, *session.SessionData, bool, error) {
	unlock := o.lock(sessionID)
	defer unlock()

	data, settled, err := o.load(ctx, sessionID)
	if err != nil {
		return gamemaster.PlayerSummary{}, 0, nil, false, err
	}

	if data.State != greedisland.GameStateIdle || data.Loading {
		if settled {
			if err := o.save(ctx, data); err != nil {
				return gamemaster.PlayerSummary{}, 0, nil, false, err
			}
		}
		return gamemaster.PlayerSummary{}, 0, data, false, nil
	}

	data.Loading = true
	o.addLog(data, greedisland.SenderPlayer, msgExploring)
	if err := o.save(ctx, data); err != nil {
		return gamemaster.PlayerSummary{}, 0, nil, false, err
	}

	return gamemaster.SummarizePlayer(data.Player), data.Epoch, data, true, nil
}

// Choose resolves the chosen action. Effects are applied in a fixed order:
// narrative, damage, heal, xp, stat buff, reward card. The session then stays
// RESOLVING until the resolve delay passes.
func (o *orchestrator) Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error) {
	if input == nil {
		return nil, errInputRequired()
	}

	request, epoch, data, err := o.beginChoose(ctx, input.SessionID, input.ChoiceID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return &ChooseOutput{Snapshot: snapshot(data)}, nil
	}

	resolution, gmErr := o.gm.RequestResolution(ctx, request)
	ctx = context.WithoutCancel(ctx)

	unlock := o.lock(input.SessionID)
	defer unlock()

	data, _, err = o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if data.Epoch != epoch || !data.Loading {
		o.logger.Info("stale resolution discarded", zap.String("session_id", data.ID), zap.Int("epoch", epoch))
		return &ChooseOutput{Snapshot: snapshot(data)}, nil
	}

	data.Loading = false
	if gmErr != nil || resolution == nil {
		o.logger.Warn("resolution request failed", zap.String("session_id", data.ID), zap.Error(gmErr))
		data.State = greedisland.GameStateIdle
		data.Scenario = nil
		o.addLog(data, greedisland.SenderSystem, msgResolutionFailed)

		if err := o.save(ctx, data); err != nil {
			return nil, err
		}
		return &ChooseOutput{Snapshot: snapshot(data), Applied: true}, nil
	}

	o.applyResolution(data, resolution)
	o.evaluateEnding(data)

	if data.State == greedisland.GameStateResolving {
		settleAt := o.clock.Now().Add(o.resolveDelay)
		data.SettleAt = &settleAt
		o.settle(data)
	}

	if err := o.save(ctx, data); err != nil {
		return nil, err
	}

	return &ChooseOutput{Snapshot: snapshot(data), Applied: true, Resolution: resolution}, nil
}

func (o *orchestrator) beginChoose(
	ctx context.Context, sessionID, choiceID string,
) (*gamemaster.ResolutionInput, int, *session.SessionData, error) {
	unlock := o.lock(sessionID)
	defer unlock()

	data, settled, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, 0, nil, err
	}

	if data.State != greedisland.GameStateDecision || data.Loading || data.Scenario == nil {
		if settled {
			if err := o.save(ctx, data); err != nil {
				return nil, 0, nil, err
			}
		}
		return nil, 0, data, nil
	}

	choice := data.Scenario.FindChoice(choiceID)
	if choice == nil {
		return nil, 0, data, nil
	}

	data.State = greedisland.GameStateResolving
	data.Loading = true
	if err := o.save(ctx, data); err != nil {
		return nil, 0, nil, err
	}

	return &gamemaster.ResolutionInput{
		Player:              gamemaster.SummarizePlayer(data.Player),
		ScenarioDescription: data.Scenario.Description,
		ChoiceText:          choice.Text,
		ChoiceType:          choice.Type,
	}, data.Epoch, data, nil
}

func (o *orchestrator) applyResolution(data *session.SessionData, resolution *greedisland.ActionResolution) {
	player := data.Player

	o.addLogText(data, greedisland.SenderGM, resolution.Narrative)

	if resolution.DamageTaken > 0 {
		engine.ApplyDamage(player, resolution.DamageTaken)
		o.addLog(data, greedisland.SenderSystem, msgDamage, resolution.DamageTaken)
	}

	if resolution.HPRestored > 0 {
		engine.ApplyHeal(player, resolution.HPRestored)
		o.addLog(data, greedisland.SenderSystem, msgHeal, resolution.HPRestored)
	}

	if resolution.XPGained > 0 {
		levelUp := engine.ApplyXP(player, resolution.XPGained)
		o.addLog(data, greedisland.SenderSystem, msgXP, resolution.XPGained)
		if levelUp != nil {
			o.addLog(data, greedisland.SenderSystem, msgLevelUp, levelUp.Level)
		}
	}

	if buff := resolution.StatBuff; buff != nil && engine.ApplyStatBuff(player, buff) {
		o.addLog(data, greedisland.SenderSystem, msgStatBuff, buff.SourceName, buff.Stat, buff.Amount)
	}

	if resolution.RewardCard != nil {
		card := o.rewardCard(resolution.RewardCard)
		o.addLog(data, greedisland.SenderSystem, msgCardGained, card.Name)
		result := engine.InsertCard(player, card)
		o.addLogText(data, greedisland.SenderSystem, result.Narrative())
	}
}

// rewardCard resolves a specified reward through the catalog and builds
// every other reward from the descriptor
func (o *orchestrator) rewardCard(reward *greedisland.RewardDescriptor) *greedisland.Card {
	id := fmt.Sprintf("gen-%s", o.idGen.Generate())

	if reward.Type == greedisland.CardTypeSpecified && reward.HasNumber {
		return greedisland.ResolveSpecifiedCard(reward.Number, id)
	}

	number := -1
	if reward.HasNumber {
		number = reward.Number
	}

	return &greedisland.Card{
		ID:          id,
		Number:      number,
		Name:        reward.Name,
		Description: reward.Description,
		Rank:        reward.Rank,
		Type:        reward.Type,
		Limit:       greedisland.GeneratedCardLimit,
	}
}
