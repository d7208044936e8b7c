package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-health/internal/application/middleware"
	"go-health/internal/domain/health"
	"go-health/internal/domain/model"
	"go-health/internal/domain/usecase/probe"
	"go-health/pkg/log"
	"go-health/pkg/msg"
)

// ProbeController exposes the health groups over HTTP for orchestrator
// readiness and liveness polling.
type ProbeController struct {
	api          *echo.Group
	useCase      probe.UseCase
	defaultGroup string
}

// NewProbeController creates the controller. defaultGroup is served on
// the bare /health path.
func NewProbeController(api *echo.Group, useCase probe.UseCase, defaultGroup string) *ProbeController {
	return &ProbeController{api: api, useCase: useCase, defaultGroup: defaultGroup}
}

// InitProbeRoutes initializes the probe endpoints.
func (controller *ProbeController) InitProbeRoutes() {
	controller.api.GET("", controller.Index())
	controller.api.GET("/health", controller.QueryHealth())
	controller.api.GET("/health/:group", controller.QueryHealth())
}

// Index serves a plain-text liveness-friendly index page.
func (controller *ProbeController) Index() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello")
	}
}

// QueryHealth evaluates a group and writes its aggregate. The orchestrator
// only ever sees 200, 503 or 404 here: dependency failures surface as 503,
// an unknown group as 404, and no internal error detail leaks unless the
// group's visibility policy allows it.
func (controller *ProbeController) QueryHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		groupName := c.Param("group")
		if groupName == "" {
			groupName = controller.defaultGroup
		}

		caller := model.Caller{Authorized: middleware.DetailsAuthorized(c)}

		code, response, err := controller.useCase.Query(c.Request().Context(), groupName, caller)
		if err != nil {
			if errors.Is(err, health.ErrGroupNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{
					"message": msg.GetMessage("health.group.not-found", groupName),
				})
			}
			log.Errorf(msg.GetMessage("health.query.failed", groupName, err))
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": msg.GetMessage("health.query.error"),
			})
		}

		return c.JSON(code, response)
	}
}
