package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/settings/dal"
	"github.com/homebills/tracker/settings/domain"
	"github.com/homebills/tracker/settings/service"
)

type Settings struct {
	loggerProvider logger.Provider
	service        service.Settings
}

func NewSettings(loggerProvider logger.Provider) *Settings {
	settingsDAL := dal.NewSettingsGateway(loggerProvider, iface.FromContext)
	s := service.NewSettingsService(loggerProvider, settingsDAL)

	return &Settings{
		loggerProvider: loggerProvider,
		service:        s,
	}
}

type updateSettingsRequest struct {
	ElectricityRate float64 `json:"electricityRate"`
	MilkRate        float64 `json:"milkRate"`
}

// GetHandler returns the owner's effective settings.
func (h *Settings) GetHandler(ctx *gin.Context) error {
	settings, err := h.service.Get(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, settings, http.StatusOK)
}

// UpdateHandler saves the submitted rates and returns the effective settings.
func (h *Settings) UpdateHandler(ctx *gin.Context) error {
	var req updateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	settings, err := h.service.Update(ctx, &domain.GlobalSettings{
		ElectricityRate: req.ElectricityRate,
		MilkRate:        req.MilkRate,
	})
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, settings, http.StatusOK)
}

// WatchHandler streams settings snapshots as server-sent events until the
// client disconnects.
func (h *Settings) WatchHandler(ctx *gin.Context) error {
	sub, err := h.service.Watch(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	defer sub.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return false
			}

			settings := domain.GlobalSettings{}
			if len(event.Snapshots) > 0 && event.Snapshots[0].Exists() {
				if err := event.Snapshots[0].DataTo(&settings); err != nil {
					h.loggerProvider(ctx).Errorf("settings snapshot decode: %v", err)
					return false
				}
			}

			ctx.SSEvent("settings", settings.WithDefaults())

			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})

	return nil
}
