package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/ai"
	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/logger"
)

type AI struct {
	loggerProvider logger.Provider
	drafter        ai.Drafter
}

func NewAI(loggerProvider logger.Provider, drafter ai.Drafter) *AI {
	return &AI{
		loggerProvider: loggerProvider,
		drafter:        drafter,
	}
}

type draftRequest struct {
	Prompt string `json:"prompt"`
}

type draftResponse struct {
	Text string `json:"text"`
}

// DraftHandler resolves a free-form prompt to displayable text. The response
// is always 200 with text; drafting failures surface as fixed fallback
// strings, not errors.
func (h *AI) DraftHandler(ctx *gin.Context) error {
	var req draftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.Prompt == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	text := h.drafter.Draft(ctx, req.Prompt)

	return web.Respond(ctx, draftResponse{Text: text}, http.StatusOK)
}
