package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/ai"
	billDAL "github.com/homebills/tracker/billing/dal"
	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/billing/service"
	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/receipt"
	settingsDAL "github.com/homebills/tracker/settings/dal"
	tenantDAL "github.com/homebills/tracker/tenant/dal"
	"github.com/homebills/tracker/times"
)

type Billing struct {
	loggerProvider logger.Provider
	service        service.Billing
	drafter        ai.Drafter
}

func NewBilling(loggerProvider logger.Provider, drafter ai.Drafter) *Billing {
	bills := billDAL.NewBillGateway(loggerProvider, iface.FromContext)
	tenants := tenantDAL.NewTenantGateway(loggerProvider, iface.FromContext)
	settings := settingsDAL.NewSettingsGateway(loggerProvider, iface.FromContext)
	s := service.NewBillingService(loggerProvider, bills, tenants, settings)

	return &Billing{
		loggerProvider: loggerProvider,
		service:        s,
		drafter:        drafter,
	}
}

// Form values arrive as strings. An empty rate means the configured
// electricity rate applies; an empty bill date means today.
type billingRequest struct {
	TenantID      string `json:"tenantId"`
	LatestReading string `json:"latestReading"`
	Rate          string `json:"rate"`
	IncludeRent   bool   `json:"includeRent"`
	BillDate      string `json:"billDate"`
}

func (r billingRequest) toInput() (service.BillingInput, error) {
	input := service.BillingInput{
		TenantID:    r.TenantID,
		IncludeRent: r.IncludeRent,
	}

	reading, err := strconv.ParseFloat(r.LatestReading, 64)
	if err != nil {
		return input, service.ErrInvalidReading
	}

	input.LatestReading = reading

	if r.Rate != "" {
		rate, err := strconv.ParseFloat(r.Rate, 64)
		if err != nil {
			return input, service.ErrInvalidRate
		}

		input.Rate = &rate
	}

	if r.BillDate != "" {
		day, err := times.ParseDay(r.BillDate)
		if err != nil {
			return input, err
		}

		input.BillDate = day
	}

	return input, nil
}

func (h *Billing) respondBillingError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidReading),
		errors.Is(err, service.ErrInvalidRate),
		errors.Is(err, service.ErrReadingRegression):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, iface.ErrNotFound):
		return web.NewRequestError(web.ErrNotFound, http.StatusNotFound)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

// CalculateHandler returns an uncommitted bill draft. Nothing is persisted.
func (h *Billing) CalculateHandler(ctx *gin.Context) error {
	var req billingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	input, err := req.toInput()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	bill, err := h.service.Calculate(ctx, input)
	if err != nil {
		return h.respondBillingError(err)
	}

	return web.Respond(ctx, bill, http.StatusOK)
}

// CreateHandler commits a billing action: the bill is appended and the
// tenant's meter state advances.
func (h *Billing) CreateHandler(ctx *gin.Context) error {
	var req billingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	input, err := req.toInput()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	bill, err := h.service.Commit(ctx, input)
	if err != nil {
		return h.respondBillingError(err)
	}

	return web.Respond(ctx, bill, http.StatusCreated)
}

func (h *Billing) ListHandler(ctx *gin.Context) error {
	bills, err := h.service.List(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, bills, http.StatusOK)
}

// ReceiptHandler returns the bill as a plain-text receipt attachment.
func (h *Billing) ReceiptHandler(ctx *gin.Context) error {
	bill, err := h.getBill(ctx)
	if err != nil {
		return err
	}

	return web.RespondDownloadFile(ctx, []byte(receipt.Render(bill)), "bill-"+bill.ID+".txt")
}

// InsightHandler drafts a short usage assessment for a committed bill.
func (h *Billing) InsightHandler(ctx *gin.Context) error {
	bill, err := h.getBill(ctx)
	if err != nil {
		return err
	}

	text := h.drafter.Draft(ctx, ai.UsageInsightPrompt(bill))

	return web.Respond(ctx, gin.H{"text": text}, http.StatusOK)
}

// ReminderHandler drafts a payment reminder message for a committed bill.
func (h *Billing) ReminderHandler(ctx *gin.Context) error {
	bill, err := h.getBill(ctx)
	if err != nil {
		return err
	}

	text := h.drafter.Draft(ctx, ai.PaymentReminderPrompt(bill))

	return web.Respond(ctx, gin.H{"text": text}, http.StatusOK)
}

// WatchHandler streams bill history as server-sent events until the client
// disconnects.
func (h *Billing) WatchHandler(ctx *gin.Context) error {
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

			bills := make([]*domain.Bill, 0, len(event.Snapshots))

			for _, snap := range event.Snapshots {
				if !snap.Exists() {
					continue
				}

				var bill domain.Bill
				if err := snap.DataTo(&bill); err != nil {
					h.loggerProvider(ctx).Warningf("bill snapshot decode: %v", err)
					continue
				}

				bill.ID = snap.ID()
				bills = append(bills, &bill)
			}

			ctx.SSEvent("bills", bills)

			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})

	return nil
}

func (h *Billing) getBill(ctx *gin.Context) (*domain.Bill, error) {
	billID := ctx.Param("id")
	if billID == "" {
		return nil, web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	bill, err := h.service.Get(ctx, billID)
	if err != nil {
		if errors.Is(err, iface.ErrNotFound) {
			return nil, web.NewRequestError(web.ErrNotFound, http.StatusNotFound)
		}

		return nil, web.NewRequestError(err, http.StatusInternalServerError)
	}

	return bill, nil
}
