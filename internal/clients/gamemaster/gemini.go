package gamemaster

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
)

// Gemini defaults
const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 2
	DefaultBurst     = 4
)

// contentGenerator is the part of *genai.GenerativeModel the client uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures the Gemini game master
type GeminiConfig struct {
	APIKey string
	// Model defaults to gemini-2.5-flash
	Model string
	// Timeout bounds each call
	Timeout time.Duration
	// RateLimit is requests per second across all sessions
	RateLimit float64
	Burst     int
	Logger    *zap.Logger
}

// Validate validates the config and sets defaults
func (cfg *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.APIKey == "" {
		vb.RequiredField("APIKey")
	}
	if cfg.Logger == nil {
		vb.RequiredField("Logger")
	}
	if cfg.RateLimit < 0 {
		vb.InvalidField("RateLimit", "must not be negative")
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}

	return vb.Build()
}

// Gemini is the Client backed by Google's generative AI API
type Gemini struct {
	genaiClient *genai.Client
	scenario    contentGenerator
	resolution  contentGenerator
	book        contentGenerator
	limiter     *rate.Limiter
	timeout     time.Duration
	logger      *zap.Logger
}

var _ Client = (*Gemini)(nil)

// NewGemini connects to the Gemini API. Call Close when done.
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*Gemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create generative client")
	}

	scenarioModel := client.GenerativeModel(cfg.Model)
	scenarioModel.ResponseMIMEType = "application/json"
	scenarioModel.ResponseSchema = scenarioSchema()

	resolutionModel := client.GenerativeModel(cfg.Model)
	resolutionModel.ResponseMIMEType = "application/json"
	resolutionModel.ResponseSchema = resolutionSchema()

	g := newGemini(scenarioModel, resolutionModel, client.GenerativeModel(cfg.Model), cfg)
	g.genaiClient = client

	cfg.Logger.Info("gemini game master ready",
		zap.String("model", cfg.Model),
		zap.Float64("rate_limit", cfg.RateLimit),
		zap.Duration("timeout", cfg.Timeout))

	return g, nil
}

func newGemini(scenario, resolution, book contentGenerator, cfg *GeminiConfig) *Gemini {
	return &Gemini{
		scenario:   scenario,
		resolution: resolution,
		book:       book,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		timeout:    cfg.Timeout,
		logger:     cfg.Logger,
	}
}

// Close releases the underlying API client
func (g *Gemini) Close() error {
	if g.genaiClient == nil {
		return nil
	}
	return g.genaiClient.Close()
}

// RequestScenario implements Client
func (g *Gemini) RequestScenario(ctx context.Context, input *ScenarioInput) (*greedisland.Scenario, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	text, err := g.generate(ctx, g.scenario, scenarioPrompt(input))
	if err != nil {
		return nil, errors.Wrap(err, "scenario request failed")
	}

	scenario, err := DecodeScenario(text)
	if err != nil {
		g.logger.Warn("rejected scenario", zap.Error(err), zap.String("raw", text))
		return nil, err
	}

	return scenario, nil
}

// RequestResolution implements Client
func (g *Gemini) RequestResolution(
	ctx context.Context, input *ResolutionInput,
) (*greedisland.ActionResolution, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	text, err := g.generate(ctx, g.resolution, resolutionPrompt(input))
	if err != nil {
		return nil, errors.Wrap(err, "resolution request failed")
	}

	resolution, err := DecodeResolution(text)
	if err != nil {
		g.logger.Warn("rejected resolution", zap.Error(err), zap.String("raw", text))
		return nil, err
	}

	return resolution, nil
}

// ConsultBook implements Client
func (g *Gemini) ConsultBook(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.InvalidArgument("query is required")
	}

	text, err := g.generate(ctx, g.book, bookPrompt(query))
	if err != nil {
		return "", errors.Wrap(err, "book request failed")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return NoDataAnswer, nil
	}
	return text, nil
}

func (g *Gemini) generate(ctx context.Context, model contentGenerator, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeResourceExhausted, "rate limited")
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "generate content")
	}

	text := responseText(resp)
	g.logger.Debug("game master response",
		zap.Duration("latency", time.Since(start)),
		zap.Int("length", len(text)))

	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return b.String()
}
