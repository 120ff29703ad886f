package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
	"github.com/homebills/tracker/settings/domain"
	serviceMocks "github.com/homebills/tracker/settings/service/mocks"
)

func testLoggerProvider(_ context.Context) logger.ILogger {
	l := &loggerMocks.ILogger{}
	l.On("Errorf", mock.Anything, mock.Anything).Maybe()
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

func TestSettings_GetHandler(t *testing.T) {
	svc := &serviceMocks.Settings{}
	svc.On("Get", mock.Anything).
		Return(&domain.GlobalSettings{ElectricityRate: 6, MilkRate: 60}, nil)

	h := &Settings{loggerProvider: testLoggerProvider, service: svc}

	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/settings", nil)

	err := h.GetHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)

	var got domain.GlobalSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 6.0, got.ElectricityRate)
	assert.Equal(t, 60.0, got.MilkRate)
}

func TestSettings_UpdateHandler(t *testing.T) {
	svc := &serviceMocks.Settings{}
	svc.On("Update", mock.Anything, &domain.GlobalSettings{ElectricityRate: 7, MilkRate: 58}).
		Return(&domain.GlobalSettings{ElectricityRate: 7, MilkRate: 58}, nil)

	h := &Settings{loggerProvider: testLoggerProvider, service: svc}

	body, _ := json.Marshal(map[string]float64{"electricityRate": 7, "milkRate": 58})
	ctx, w := newTestContext(t, http.MethodPut, "/api/v1/settings", body)

	err := h.UpdateHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSettings_UpdateHandlerBadPayload(t *testing.T) {
	svc := &serviceMocks.Settings{}

	h := &Settings{loggerProvider: testLoggerProvider, service: svc}

	ctx, _ := newTestContext(t, http.MethodPut, "/api/v1/settings", []byte("{not json"))

	err := h.UpdateHandler(ctx)

	assert.Error(t, err)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
