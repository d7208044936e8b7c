package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"go-health/pkg/resource"
)

// detailsAuthorizedKey marks a request whose caller may see component
// details on WHEN_AUTHORIZED groups.
const detailsAuthorizedKey = "health.details-authorized"

// SetupDetailsAuthorization registers the middleware that maps a bearer
// token to the detail-visibility claim. With no token configured, no
// caller is ever authorized and WHEN_AUTHORIZED behaves like NEVER.
//
// This is deliberately the only authentication the service carries; the
// health engine itself consumes nothing but the resulting boolean.
func SetupDetailsAuthorization(e *echo.Echo) {
	token := resource.GetString("app.health.authorization.token")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token != "" {
				presented := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
				if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1 {
					c.Set(detailsAuthorizedKey, true)
				}
			}
			return next(c)
		}
	})
}

// DetailsAuthorized reports whether the current request carries the
// detail-visibility claim.
func DetailsAuthorized(c echo.Context) bool {
	authorized, _ := c.Get(detailsAuthorizedKey).(bool)
	return authorized
}
