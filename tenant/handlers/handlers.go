package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/tenant/dal"
	"github.com/homebills/tracker/tenant/domain"
	"github.com/homebills/tracker/tenant/service"
)

type Tenant struct {
	loggerProvider logger.Provider
	service        service.Tenants
}

func NewTenant(loggerProvider logger.Provider) *Tenant {
	tenantDAL := dal.NewTenantGateway(loggerProvider, iface.FromContext)
	s := service.NewTenantService(loggerProvider, tenantDAL)

	return &Tenant{
		loggerProvider: loggerProvider,
		service:        s,
	}
}

// Form values arrive as strings; parsing failures are rejected up front.
type createTenantRequest struct {
	Name           string `json:"name"`
	Rent           string `json:"rent"`
	InitialReading string `json:"initialReading"`
}

func (h *Tenant) CreateHandler(ctx *gin.Context) error {
	var req createTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	rent, err := strconv.ParseFloat(req.Rent, 64)
	if err != nil {
		return web.NewRequestError(service.ErrInvalidRent, http.StatusBadRequest)
	}

	reading, err := strconv.ParseFloat(req.InitialReading, 64)
	if err != nil {
		return web.NewRequestError(service.ErrInvalidReading, http.StatusBadRequest)
	}

	tenant, err := h.service.Create(ctx, req.Name, rent, reading)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrInvalidRent),
			errors.Is(err, service.ErrInvalidReading):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, tenant, http.StatusCreated)
}

func (h *Tenant) ListHandler(ctx *gin.Context) error {
	tenants, err := h.service.List(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, tenants, http.StatusOK)
}

func (h *Tenant) DeleteHandler(ctx *gin.Context) error {
	tenantID := ctx.Param("id")
	if tenantID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.service.Delete(ctx, tenantID); err != nil {
		if errors.Is(err, iface.ErrNotFound) {
			return web.NewRequestError(web.ErrNotFound, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

// WatchHandler streams the tenant roster as server-sent events until the
// client disconnects.
func (h *Tenant) WatchHandler(ctx *gin.Context) error {
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

			tenants := make([]*domain.Tenant, 0, len(event.Snapshots))

			for _, snap := range event.Snapshots {
				if !snap.Exists() {
					continue
				}

				var tenant domain.Tenant
				if err := snap.DataTo(&tenant); err != nil {
					h.loggerProvider(ctx).Warningf("tenant snapshot decode: %v", err)
					continue
				}

				tenant.ID = snap.ID()
				tenants = append(tenants, &tenant)
			}

			ctx.SSEvent("tenants", tenants)

			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})

	return nil
}
