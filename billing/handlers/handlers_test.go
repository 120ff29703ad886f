package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homebills/tracker/ai"
	aiMocks "github.com/homebills/tracker/ai/mocks"
	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/billing/service"
	serviceMocks "github.com/homebills/tracker/billing/service/mocks"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
)

func testLoggerProvider(_ context.Context) logger.ILogger {
	l := &loggerMocks.ILogger{}
	l.On("Warningf", mock.Anything, mock.Anything).Maybe()

	return l
}

func newTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	return ctx, w
}

func TestBilling_CreateHandler(t *testing.T) {
	svc := &serviceMocks.Billing{}
	svc.On("Commit", mock.Anything, mock.MatchedBy(func(input service.BillingInput) bool {
		return input.TenantID == "tenant-1" &&
			input.LatestReading == 1050 &&
			input.Rate != nil && *input.Rate == 6 &&
			input.IncludeRent
	})).Return(&domain.Bill{ID: "bill-1", TotalAmount: 5300}, nil)

	h := &Billing{loggerProvider: testLoggerProvider, service: svc, drafter: &aiMocks.Drafter{}}

	body, _ := json.Marshal(map[string]interface{}{
		"tenantId":      "tenant-1",
		"latestReading": "1050",
		"rate":          "6",
		"includeRent":   true,
	})
	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/bills", body)

	err := h.CreateHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestBilling_CreateHandlerInvalidReading(t *testing.T) {
	svc := &serviceMocks.Billing{}

	h := &Billing{loggerProvider: testLoggerProvider, service: svc, drafter: &aiMocks.Drafter{}}

	body, _ := json.Marshal(map[string]interface{}{
		"tenantId":      "tenant-1",
		"latestReading": "abc",
	})
	ctx, _ := newTestContext(t, http.MethodPost, "/api/v1/bills", body)

	err := h.CreateHandler(ctx)

	assert.Error(t, err)
	svc.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestBilling_CreateHandlerEmptyRateOmitted(t *testing.T) {
	svc := &serviceMocks.Billing{}
	svc.On("Commit", mock.Anything, mock.MatchedBy(func(input service.BillingInput) bool {
		return input.Rate == nil
	})).Return(&domain.Bill{ID: "bill-1"}, nil)

	h := &Billing{loggerProvider: testLoggerProvider, service: svc, drafter: &aiMocks.Drafter{}}

	body, _ := json.Marshal(map[string]interface{}{
		"tenantId":      "tenant-1",
		"latestReading": "1050",
	})
	ctx, _ := newTestContext(t, http.MethodPost, "/api/v1/bills", body)

	assert.NoError(t, h.CreateHandler(ctx))
	svc.AssertExpectations(t)
}

func TestBilling_ReceiptHandler(t *testing.T) {
	svc := &serviceMocks.Billing{}
	svc.On("Get", mock.Anything, "bill-1").Return(&domain.Bill{
		ID:          "bill-1",
		TenantName:  "Alice",
		TotalAmount: 5300,
		CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	h := &Billing{loggerProvider: testLoggerProvider, service: svc, drafter: &aiMocks.Drafter{}}

	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/bills/bill-1/receipt", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "bill-1"}}

	err := h.ReceiptHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "🧾 ELECTRICITY BILL")
	assert.Contains(t, w.Body.String(), "TOTAL DUE   : ₹5,300")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bill-bill-1.txt")
}

func TestBilling_ReminderHandler(t *testing.T) {
	bill := &domain.Bill{ID: "bill-1", TenantName: "Alice", TotalAmount: 5300}

	svc := &serviceMocks.Billing{}
	svc.On("Get", mock.Anything, "bill-1").Return(bill, nil)

	drafter := &aiMocks.Drafter{}
	drafter.On("Draft", mock.Anything, ai.PaymentReminderPrompt(bill)).
		Return("Hi Alice! Your bill is ready.")

	h := &Billing{loggerProvider: testLoggerProvider, service: svc, drafter: drafter}

	ctx, w := newTestContext(t, http.MethodPost, "/api/v1/bills/bill-1/reminder", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "bill-1"}}

	err := h.ReminderHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hi Alice! Your bill is ready.")
	drafter.AssertExpectations(t)
}
