package handlers

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/milk/dal"
	"github.com/homebills/tracker/milk/domain"
	"github.com/homebills/tracker/milk/service"
	settingsDAL "github.com/homebills/tracker/settings/dal"
)

type Milk struct {
	loggerProvider logger.Provider
	service        service.Milk
}

func NewMilk(loggerProvider logger.Provider) *Milk {
	milkDAL := dal.NewMilkGateway(loggerProvider, iface.FromContext)
	settings := settingsDAL.NewSettingsGateway(loggerProvider, iface.FromContext)
	s := service.NewMilkService(loggerProvider, milkDAL, settings)

	return &Milk{
		loggerProvider: loggerProvider,
		service:        s,
	}
}

type monthResponse struct {
	Month string               `json:"month"`
	Days  map[string][]float64 `json:"days"`
}

func toMonthResponse(ledger *domain.MonthLedger) monthResponse {
	return monthResponse{
		Month: ledger.Month,
		Days:  ledger.Days,
	}
}

func (h *Milk) respondMilkError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidMonth), errors.Is(err, service.ErrInvalidDay):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrEntryNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

// MonthHandler returns one month's ledger.
func (h *Milk) MonthHandler(ctx *gin.Context) error {
	ledger, err := h.service.Month(ctx, ctx.Param("month"))
	if err != nil {
		return h.respondMilkError(err)
	}

	return web.Respond(ctx, toMonthResponse(ledger), http.StatusOK)
}

// The picker submits the quantity as a string; anything that does not parse
// to a positive number is a no-op, same as an empty picker.
type addEntryRequest struct {
	Day      string `json:"day"`
	Quantity string `json:"quantity"`
}

// AddEntryHandler appends a delivery and returns the updated ledger.
func (h *Milk) AddEntryHandler(ctx *gin.Context) error {
	var req addEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	qty, err := strconv.ParseFloat(req.Quantity, 64)
	if err != nil {
		qty = math.NaN()
	}

	ledger, err := h.service.AddEntry(ctx, req.Day, qty)
	if err != nil {
		return h.respondMilkError(err)
	}

	return web.Respond(ctx, toMonthResponse(ledger), http.StatusOK)
}

// RemoveEntryHandler deletes the entry at the given index within a day.
func (h *Milk) RemoveEntryHandler(ctx *gin.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	ledger, err := h.service.RemoveEntry(ctx, ctx.Param("day"), index)
	if err != nil {
		return h.respondMilkError(err)
	}

	return web.Respond(ctx, toMonthResponse(ledger), http.StatusOK)
}

// SummaryHandler returns the month total and cost at the configured rate.
func (h *Milk) SummaryHandler(ctx *gin.Context) error {
	summary, err := h.service.Summary(ctx, ctx.Param("month"))
	if err != nil {
		return h.respondMilkError(err)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}

// WatchHandler streams one month's ledger as server-sent events until the
// client disconnects.
func (h *Milk) WatchHandler(ctx *gin.Context) error {
	month := ctx.Param("month")

	sub, err := h.service.Watch(ctx, month)
	if err != nil {
		return h.respondMilkError(err)
	}

	defer sub.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return false
			}

			ledger := domain.NewMonthLedger(month)

			if len(event.Snapshots) > 0 && event.Snapshots[0].Exists() {
				if err := event.Snapshots[0].DataTo(ledger); err != nil {
					h.loggerProvider(ctx).Warningf("milk snapshot decode: %v", err)
					return false
				}

				if ledger.Days == nil {
					ledger.Days = map[string][]float64{}
				}

				ledger.Month = month
			}

			ctx.SSEvent("milk", toMonthResponse(ledger))

			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})

	return nil
}
