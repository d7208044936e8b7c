package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"go-health/pkg/resource"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *bool) {
	t.Helper()
	resource.Init("testdata/application.yml")

	e := echo.New()
	SetupDetailsAuthorization(e)

	authorized := new(bool)
	e.GET("/health/readiness", func(c echo.Context) error {
		*authorized = DetailsAuthorized(c)
		return c.NoContent(http.StatusOK)
	})
	return e, authorized
}

func TestDetailsAuthorization(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"no header", "", false},
		{"wrong token", "Bearer nope", false},
		{"valid token", "Bearer probe-secret", true},
		{"token without bearer prefix", "probe-secret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authorized := newAuthTestServer(t)

			req := httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if *authorized != tt.want {
				t.Errorf("authorized = %t, want %t", *authorized, tt.want)
			}
		})
	}
}
