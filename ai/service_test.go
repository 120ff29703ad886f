package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
)

func testLoggerProvider(_ context.Context) logger.ILogger {
	l := &loggerMocks.ILogger{}
	l.On("Warning", mock.Anything).Maybe()
	l.On("Errorf", mock.Anything, mock.Anything).Maybe()

	return l
}

func TestDraft_MissingKeySkipsNetwork(t *testing.T) {
	var calls int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewService(testLoggerProvider, NewClient(srv.URL, "", ""))

	got := s.Draft(context.Background(), "hello")

	assert.Equal(t, MsgMissingKey, got)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestDraft_ReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Usage looks moderate."}]}}]}`))
	}))
	defer srv.Close()

	s := NewService(testLoggerProvider, NewClient(srv.URL, "test-key", ""))

	got := s.Draft(context.Background(), "analyze this")

	assert.Equal(t, "Usage looks moderate.", got)
}

func TestDraft_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	s := NewService(testLoggerProvider, NewClient(srv.URL, "test-key", ""))

	assert.Equal(t, MsgEmpty, s.Draft(context.Background(), "analyze this"))
}

func TestDraft_ServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewService(testLoggerProvider, NewClient(srv.URL, "test-key", ""))

	assert.Equal(t, MsgUnavailable, s.Draft(context.Background(), "analyze this"))
}

func TestPaymentReminderPrompt(t *testing.T) {
	bill := &domain.Bill{
		TenantName:        "Alice",
		UnitsUsed:         50,
		TotalAmount:       5300,
		LastReadingDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		LatestReadingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	prompt := PaymentReminderPrompt(bill)

	assert.Contains(t, prompt, "my tenant Alice")
	assert.Contains(t, prompt, "Total Amount: ₹5,300")
	assert.Contains(t, prompt, "Electricity Units: 50.0 units")
	assert.Contains(t, prompt, "Reading Period: 2 Jan 2024 to 1 Feb 2024")
}

func TestUsageInsightPrompt(t *testing.T) {
	bill := &domain.Bill{
		UnitsUsed:         50,
		ElectricityAmount: 300,
		Rate:              6,
		LastReadingDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		LatestReadingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	prompt := UsageInsightPrompt(bill)

	assert.Contains(t, prompt, "Units consumed: 50.0")
	assert.Contains(t, prompt, "Days elapsed: 30")
	assert.Contains(t, prompt, "Electricity Cost: ₹300")
	assert.Contains(t, prompt, "Rate: ₹6/unit")
}
