package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/signup/internal/handlers"
	"github.com/nfrund/signup/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultSubmitRate)

	s.E.GET("/", handlers.HomeGet)

	s.E.GET("/register", s.registerHandler.RegisterGet)
	s.E.POST("/register", s.registerHandler.RegisterPost, rateLimiter)

	s.E.GET(s.Cfg.GetLoginPath(), handlers.LoginGet)

	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
