package http

import (
	"net/http"

	"tracking/internal/adapters/in/http/docs"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes mounts the API, the health check, the OpenAPI document and
// the Swagger UI on e, and installs HTTPErrorHandler.
func RegisterRoutes(e *echo.Echo, server *Server) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err = docs.Register(); err != nil {
		return err
	}

	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return nil
}
