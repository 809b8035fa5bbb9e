// Package web serves the game over HTTP/JSON for browser clients. Responses
// use the same views as the gRPC service.
package web

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
)

// RouterConfig holds dependencies for the HTTP router
type RouterConfig struct {
	GameService game.Service
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *RouterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GameService == nil {
		vb.RequiredField("GameService")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}
	return vb.Build()
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type handler struct {
	gameService game.Service
	logger      *zap.Logger
}

// NewRouter builds the gin engine with every game route registered
func NewRouter(cfg *RouterConfig) (*gin.Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &handler{gameService: cfg.GameService, logger: cfg.Logger}

	engine := gin.New()
	engine.Use(traceID(), requestLogger(cfg.Logger), recovery(cfg.Logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := engine.Group("/v1/sessions")
	sessions.POST("", h.createSession)
	sessions.GET("/:id", h.getSession)
	sessions.POST("/:id/explore", h.explore)
	sessions.POST("/:id/choose", h.choose)
	sessions.POST("/:id/travel", h.travel)
	sessions.POST("/:id/use", h.useCard)
	sessions.POST("/:id/book", h.consultBook)
	sessions.POST("/:id/rewards", h.proceedToRewards)
	sessions.POST("/:id/rewards/toggle", h.toggleEndingSelection)
	sessions.POST("/:id/finish", h.finishGame)
	sessions.POST("/:id/retry", h.retry)

	return engine, nil
}

func (h *handler) fail(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code.HTTPStatus() >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("trace_id", getTraceID(c)),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(code.HTTPStatus(), errorBody{
		Error: errorDetail{Code: code.String(), Message: errors.GetMessage(err)},
	})
}

// bind decodes an optional JSON body. An empty body leaves v untouched.
func (h *handler) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}

type createSessionBody struct {
	PlayerName string `json:"player_name"`
}

func (h *handler) createSession(c *gin.Context) {
	var body createSessionBody
	if !h.bind(c, &body) {
		return
	}

	out, err := h.gameService.CreateSession(c.Request.Context(), &game.CreateSessionInput{PlayerName: body.PlayerName})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v1alpha1.SessionResponse{Session: v1alpha1.NewSessionView(out.Snapshot)})
}

func (h *handler) getSession(c *gin.Context) {
	out, err := h.gameService.GetSession(c.Request.Context(), &game.GetSessionInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.SessionResponse{Session: v1alpha1.NewSessionView(out.Snapshot)})
}

func (h *handler) explore(c *gin.Context) {
	out, err := h.gameService.Explore(c.Request.Context(), &game.ExploreInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ActionResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Applied: out.Applied})
}

type chooseBody struct {
	ChoiceID string `json:"choice_id"`
}

func (h *handler) choose(c *gin.Context) {
	var body chooseBody
	if !h.bind(c, &body) {
		return
	}

	out, err := h.gameService.Choose(c.Request.Context(), &game.ChooseInput{
		SessionID: c.Param("id"),
		ChoiceID:  body.ChoiceID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ChooseResponse{
		Session:    v1alpha1.NewSessionView(out.Snapshot),
		Applied:    out.Applied,
		Resolution: v1alpha1.NewResolutionView(out.Resolution),
	})
}

func (h *handler) travel(c *gin.Context) {
	out, err := h.gameService.Travel(c.Request.Context(), &game.TravelInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ActionResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Applied: out.Applied})
}

type cardBody struct {
	CardID string `json:"card_id"`
}

func (h *handler) useCard(c *gin.Context) {
	var body cardBody
	if !h.bind(c, &body) {
		return
	}

	out, err := h.gameService.UseCard(c.Request.Context(), &game.UseCardInput{
		SessionID: c.Param("id"),
		CardID:    body.CardID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ActionResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Applied: out.Applied})
}

type bookBody struct {
	Query string `json:"query"`
}

func (h *handler) consultBook(c *gin.Context) {
	var body bookBody
	if !h.bind(c, &body) {
		return
	}

	out, err := h.gameService.ConsultBook(c.Request.Context(), &game.ConsultBookInput{
		SessionID: c.Param("id"),
		Query:     body.Query,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ConsultBookResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Answer: out.Answer})
}

func (h *handler) proceedToRewards(c *gin.Context) {
	out, err := h.gameService.ProceedToRewards(c.Request.Context(), &game.ProceedToRewardsInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ActionResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Applied: out.Applied})
}

func (h *handler) toggleEndingSelection(c *gin.Context) {
	var body cardBody
	if !h.bind(c, &body) {
		return
	}

	out, err := h.gameService.ToggleEndingSelection(c.Request.Context(), &game.ToggleEndingSelectionInput{
		SessionID: c.Param("id"),
		CardID:    body.CardID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ToggleEndingSelectionResponse{
		Session:  v1alpha1.NewSessionView(out.Snapshot),
		Applied:  out.Applied,
		Selected: out.Selected,
	})
}

func (h *handler) finishGame(c *gin.Context) {
	out, err := h.gameService.FinishGame(c.Request.Context(), &game.FinishGameInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.FinishGameResponse{
		Session: v1alpha1.NewSessionView(out.Snapshot),
		Applied: out.Applied,
		Summary: v1alpha1.NewSummaryView(out.Summary),
	})
}

func (h *handler) retry(c *gin.Context) {
	out, err := h.gameService.Retry(c.Request.Context(), &game.RetryInput{SessionID: c.Param("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v1alpha1.ActionResponse{Session: v1alpha1.NewSessionView(out.Snapshot), Applied: true})
}
