package gamemaster

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// Fallback texts
const (
	FallbackScenarioTitle       = "A quiet road"
	FallbackScenarioDescription = "You walk along the road. It is unusually quiet, and nothing in particular seems to happen."
	FallbackChoiceID            = "continue"
	FallbackChoiceText          = "Keep moving"
	FallbackNarrative           = "Something interfered. The outcome could not be determined."
	FallbackBookAnswer          = "Connection error."
	NoDataAnswer                = "No data."
)

// FallbackScenario is returned in place of a failed scenario request
func FallbackScenario() *greedisland.Scenario {
	return &greedisland.Scenario{
		Title:       FallbackScenarioTitle,
		Description: FallbackScenarioDescription,
		Choices: []greedisland.Choice{
			{ID: FallbackChoiceID, Text: FallbackChoiceText, Type: greedisland.ChoiceNeutral},
		},
	}
}

// FallbackResolution is returned in place of a failed resolution request.
// It carries no effects.
func FallbackResolution() *greedisland.ActionResolution {
	return &greedisland.ActionResolution{Narrative: FallbackNarrative}
}

// fallbackClient never returns an error
type fallbackClient struct {
	next   Client
	logger *zap.Logger
}

// NewFallback wraps next so every failure becomes the documented fallback value
func NewFallback(next Client, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fallbackClient{next: next, logger: logger}
}

func (c *fallbackClient) RequestScenario(ctx context.Context, input *ScenarioInput) (*greedisland.Scenario, error) {
	scenario, err := c.next.RequestScenario(ctx, input)
	if err != nil || scenario == nil {
		c.logger.Error("scenario request failed, using fallback", zap.Error(err))
		return FallbackScenario(), nil
	}
	return scenario, nil
}

func (c *fallbackClient) RequestResolution(
	ctx context.Context, input *ResolutionInput,
) (*greedisland.ActionResolution, error) {
	resolution, err := c.next.RequestResolution(ctx, input)
	if err != nil || resolution == nil {
		c.logger.Error("resolution request failed, using fallback", zap.Error(err))
		return FallbackResolution(), nil
	}
	return resolution, nil
}

func (c *fallbackClient) ConsultBook(ctx context.Context, query string) (string, error) {
	answer, err := c.next.ConsultBook(ctx, query)
	if err != nil {
		c.logger.Error("book request failed", zap.Error(err))
		return FallbackBookAnswer, nil
	}
	if answer == "" {
		return NoDataAnswer, nil
	}
	return answer, nil
}
