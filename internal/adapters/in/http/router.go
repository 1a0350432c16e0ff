package http

import (
	"log/slog"
	"net/http"

	"paperwork/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig tunes the public surface of the API.
type RouterConfig struct {
	// AvailabilityRate is the number of availability checks one client may send per second.
	AvailabilityRate float64
	// AvailabilityBurst is the burst size allowed on top of AvailabilityRate.
	AvailabilityBurst int
}

// NewRouter builds the echo instance with health, metrics, swagger and the API routes.
func NewRouter(s *Server, m *metrics.Metrics, logger *slog.Logger, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	RegisterSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	if m != nil {
		e.Use(RequestMetrics(m))
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var availability []echo.MiddlewareFunc
	if cfg.AvailabilityRate > 0 {
		burst := cfg.AvailabilityBurst
		if burst < 1 {
			burst = 1
		}
		availability = append(availability, AvailabilityRateLimiter(cfg.AvailabilityRate, burst))
	}

	api := e.Group("/api/v1", validator)
	RegisterHandlers(api, s, availability...)

	return e, nil
}
