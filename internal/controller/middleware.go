package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// OriginPolicy список разрешённых origin. Запросы без Origin
// (curl, health-check) разрешены всегда.
type OriginPolicy struct {
	allowed map[string]struct{}
}

func NewOriginPolicy(origins []string) *OriginPolicy {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &OriginPolicy{allowed: allowed}
}

func (p *OriginPolicy) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}

// CORS оборачивает обработчик заголовками CORS для разрешённых origin
func (p *OriginPolicy) CORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: p.Allowed,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", echo.HeaderXRequestID},
		ExposedHeaders: []string{echo.HeaderXRequestID},
	})
	return c.Handler(next)
}

// originGuard отклоняет запросы с неразрешённым Origin
func originGuard(policy *OriginPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !policy.Allowed(c.Request().Header.Get(echo.HeaderOrigin)) {
				return echo.NewHTTPError(http.StatusForbidden, "cors_blocked")
			}
			return next(c)
		}
	}
}

// requestLogger пишет по строке лога на каждый запрос
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Вызываем обработчик ошибок сразу, чтобы в логе был итоговый статус
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			logger.Info("HTTP request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("origin", req.Header.Get(echo.HeaderOrigin)),
			)

			return nil
		}
	}
}
