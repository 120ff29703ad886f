package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/session"
)

type Session struct {
	loggerProvider logger.Provider
	service        *session.Service
}

func NewSession(loggerProvider logger.Provider, svc *session.Service) *Session {
	return &Session{
		loggerProvider: loggerProvider,
		service:        svc,
	}
}

// StatusHandler reports the active persistence mode and, in local mode, the
// reason the remote store is unavailable.
func (h *Session) StatusHandler(ctx *gin.Context) error {
	return web.Respond(ctx, h.service.Status(), http.StatusOK)
}

// ReconnectHandler retries the remote connection. On success the session
// leaves local mode; on failure local mode and its reason are kept.
func (h *Session) ReconnectHandler(ctx *gin.Context) error {
	if err := h.service.Reconnect(ctx); err != nil {
		h.loggerProvider(ctx).Warningf("reconnect failed: %v", err)

		return web.Respond(ctx, h.service.Status(), http.StatusServiceUnavailable)
	}

	return web.Respond(ctx, h.service.Status(), http.StatusOK)
}
