// Package v1alpha1 handles the greedisland.v1alpha1.GameService gRPC interface.
// Messages are plain Go structs carried by the JSON codec registered in this
// package. There is no .proto file behind the service, so server reflection
// lists it by name but cannot describe its methods.
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GameServiceServer
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{gameService: cfg.GameService}, nil
}

func requireSession(sessionID string) error {
	if sessionID == "" {
		return errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	return nil
}

// CreateSession starts a new game
func (h *Handler) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	out, err := h.gameService.CreateSession(ctx, &game.CreateSessionInput{PlayerName: req.PlayerName})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: NewSessionView(out.Snapshot)}, nil
}

// GetSession reads a game
func (h *Handler) GetSession(ctx context.Context, req *GetSessionRequest) (*SessionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.GetSession(ctx, &game.GetSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: NewSessionView(out.Snapshot)}, nil
}

// Explore asks the game master for an encounter
func (h *Handler) Explore(ctx context.Context, req *ExploreRequest) (*ActionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.Explore(ctx, &game.ExploreInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ActionResponse{Session: NewSessionView(out.Snapshot), Applied: out.Applied}, nil
}

// Choose resolves a scenario choice
func (h *Handler) Choose(ctx context.Context, req *ChooseRequest) (*ChooseResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.Choose(ctx, &game.ChooseInput{SessionID: req.SessionID, ChoiceID: req.ChoiceID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ChooseResponse{
		Session:    NewSessionView(out.Snapshot),
		Applied:    out.Applied,
		Resolution: NewResolutionView(out.Resolution),
	}, nil
}

// Travel moves to the next location
func (h *Handler) Travel(ctx context.Context, req *TravelRequest) (*ActionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.Travel(ctx, &game.TravelInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ActionResponse{Session: NewSessionView(out.Snapshot), Applied: out.Applied}, nil
}

// UseCard uses a spell or item card
func (h *Handler) UseCard(ctx context.Context, req *UseCardRequest) (*ActionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.UseCard(ctx, &game.UseCardInput{SessionID: req.SessionID, CardID: req.CardID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ActionResponse{Session: NewSessionView(out.Snapshot), Applied: out.Applied}, nil
}

// ConsultBook asks the Book
func (h *Handler) ConsultBook(ctx context.Context, req *ConsultBookRequest) (*ConsultBookResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.ConsultBook(ctx, &game.ConsultBookInput{SessionID: req.SessionID, Query: req.Query})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ConsultBookResponse{Session: NewSessionView(out.Snapshot), Answer: out.Answer}, nil
}

// ProceedToRewards opens reward selection
func (h *Handler) ProceedToRewards(ctx context.Context, req *ProceedToRewardsRequest) (*ActionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.ProceedToRewards(ctx, &game.ProceedToRewardsInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ActionResponse{Session: NewSessionView(out.Snapshot), Applied: out.Applied}, nil
}

// ToggleEndingSelection toggles a kept card
func (h *Handler) ToggleEndingSelection(
	ctx context.Context, req *ToggleEndingSelectionRequest,
) (*ToggleEndingSelectionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.ToggleEndingSelection(ctx, &game.ToggleEndingSelectionInput{
		SessionID: req.SessionID,
		CardID:    req.CardID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ToggleEndingSelectionResponse{
		Session:  NewSessionView(out.Snapshot),
		Applied:  out.Applied,
		Selected: out.Selected,
	}, nil
}

// FinishGame ends a won game and returns its summary
func (h *Handler) FinishGame(ctx context.Context, req *FinishGameRequest) (*FinishGameResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.FinishGame(ctx, &game.FinishGameInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &FinishGameResponse{
		Session: NewSessionView(out.Snapshot),
		Applied: out.Applied,
		Summary: NewSummaryView(out.Summary),
	}, nil
}

// Retry starts over
func (h *Handler) Retry(ctx context.Context, req *RetryRequest) (*ActionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.gameService.Retry(ctx, &game.RetryInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ActionResponse{Session: NewSessionView(out.Snapshot), Applied: true}, nil
}
