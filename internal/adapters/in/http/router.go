package http

import (
	"log/slog"
	"net/http"
	"strings"

	_ "prepcenter/internal/generated/docs"
	"prepcenter/internal/generated/servers"
	"prepcenter/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	JWTSecret []byte
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewRouter builds the echo instance: recovery, request logging, metrics, bearer-token
// authentication and OpenAPI request validation in front of the generated routes.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		Skipper:     isPublic,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				cfg.Logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			cfg.Logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))
	e.Use(Metrics(cfg.Metrics))
	e.Use(ActorMiddleware(cfg.JWTSecret, isPublic))
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}

func isPublic(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/swagger/")
}
