package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/Freeeeeet/tutoring_api/internal/controller/handlers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo       *echo.Echo
	handler    http.Handler
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(addr string, corsOrigins []string, h *handlers.Handlers, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)
	e.Validator = handlers.NewRequestValidator()

	policy := NewOriginPolicy(corsOrigins)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(originGuard(policy))

	h.Register(e.Group("/api"))

	handler := policy.CORS(e)

	return &Server{
		echo:    e,
		handler: handler,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// ServeHTTP для тестов
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Start запускает HTTP сервер, блокируется до остановки
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown останавливает сервер, дожидаясь текущих запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
