package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the server's handlers onto a fresh echo instance. Delivery
// routes require a bearer token from /token.
func NewRouter(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelDebug
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", s.Health)
	e.GET("/token", s.Token)

	deliveries := e.Group("/deliveries", RequireRole(s.tokens))
	deliveries.POST("", s.CreateDelivery)
	deliveries.GET("/:id", s.GetDelivery)
	deliveries.PATCH("", s.UpdateDelivery)
	deliveries.DELETE("/:id", s.DeleteDelivery)

	return e
}
