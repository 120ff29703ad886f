package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/homebills/tracker/common"
	"github.com/homebills/tracker/framework/web"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/session"
)

// Identity resolves the data owner for the request and binds the matching
// persistence gateway to the request context. In local mode every request is
// served under the shared demo owner. In remote mode a bearer ID token, when
// present, is verified against Firebase Auth and its uid becomes the owner;
// otherwise the configured default owner is used.
func Identity(svc *session.Service) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			log := logger.FromContext(ctx)

			owner := common.LocalOwnerID

			if svc.Mode() == session.ModeRemote {
				owner = svc.DefaultOwner()

				if token := bearerToken(ctx); token != "" {
					uid, err := svc.VerifyIDToken(ctx, token)
					if err != nil {
						if errors.Is(err, session.ErrLocalMode) {
							return web.NewRequestError(err, http.StatusServiceUnavailable)
						}

						log.Warningf("id token rejected: %v", err)

						return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
					}

					owner = uid
				}
			}

			ctx.Set(common.CtxKeys.OwnerID, owner)
			ctx.Set(iface.CtxGatewayKey, svc.Gateway(owner))

			return before(ctx)
		}

		return h
	}

	return f
}

func bearerToken(ctx *gin.Context) string {
	h := ctx.GetHeader("Authorization")
	if h == "" {
		return ""
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
