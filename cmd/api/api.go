package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/ai"
	aiHandlers "github.com/homebills/tracker/ai/handlers"
	billingHandlers "github.com/homebills/tracker/billing/handlers"
	"github.com/homebills/tracker/config"
	"github.com/homebills/tracker/framework/mid"
	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/logger"
	milkHandlers "github.com/homebills/tracker/milk/handlers"
	"github.com/homebills/tracker/session"
	sessionHandlers "github.com/homebills/tracker/session/handlers"
	settingsHandlers "github.com/homebills/tracker/settings/handlers"
	tenantHandlers "github.com/homebills/tracker/tenant/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	cfg      *config.Config
	session  *session.Service
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, cfg *config.Config, sessionSvc *session.Service) *API {
	return &API{
		shutdown: shutdown,
		log:      logging,
		cfg:      cfg,
		session:  sessionSvc,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.cfg.SentryDSN,
		mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry(), mid.Identity(a.session))

	drafter := ai.NewService(loggerProvider, ai.NewClient("", a.cfg.GeminiAPIKey, a.cfg.GeminiModel))

	sessions := sessionHandlers.NewSession(loggerProvider, a.session)
	settings := settingsHandlers.NewSettings(loggerProvider)
	tenants := tenantHandlers.NewTenant(loggerProvider)
	bills := billingHandlers.NewBilling(loggerProvider, drafter)
	milk := milkHandlers.NewMilk(loggerProvider)
	drafting := aiHandlers.NewAI(loggerProvider, drafter)

	app.Get("/health", healthHandler)

	app.Get("/api/v1/session", sessions.StatusHandler)
	app.Post("/api/v1/session/reconnect", sessions.ReconnectHandler)

	app.Get("/api/v1/settings", settings.GetHandler)
	app.Put("/api/v1/settings", settings.UpdateHandler)
	app.Get("/api/v1/settings/watch", settings.WatchHandler)

	app.Get("/api/v1/tenants", tenants.ListHandler)
	app.Post("/api/v1/tenants", tenants.CreateHandler)
	app.Get("/api/v1/tenants/watch", tenants.WatchHandler)
	app.Delete("/api/v1/tenants/:id", tenants.DeleteHandler)

	app.Get("/api/v1/bills", bills.ListHandler)
	app.Post("/api/v1/bills", bills.CreateHandler)
	app.Post("/api/v1/bills/calculate", bills.CalculateHandler)
	app.Get("/api/v1/bills/watch", bills.WatchHandler)
	app.Get("/api/v1/bills/:id/receipt", bills.ReceiptHandler)
	app.Post("/api/v1/bills/:id/insight", bills.InsightHandler)
	app.Post("/api/v1/bills/:id/reminder", bills.ReminderHandler)

	app.Get("/api/v1/milk/months/:month", milk.MonthHandler)
	app.Get("/api/v1/milk/months/:month/summary", milk.SummaryHandler)
	app.Get("/api/v1/milk/months/:month/watch", milk.WatchHandler)
	app.Post("/api/v1/milk/entries", milk.AddEntryHandler)
	app.Delete("/api/v1/milk/days/:day/entries/:index", milk.RemoveEntryHandler)

	app.Post("/api/v1/ai/draft", drafting.DraftHandler)

	return app
}

func healthHandler(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"status": "ok"}, http.StatusOK)
}
