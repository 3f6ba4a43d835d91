package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/signup/internal/apiclient"
	"github.com/nfrund/signup/internal/config"
	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/handlers"
	"github.com/nfrund/signup/internal/metrics"
	appmiddleware "github.com/nfrund/signup/internal/middleware"
	"github.com/nfrund/signup/internal/registration"
	"github.com/nfrund/signup/internal/rendering"
	"github.com/nfrund/signup/internal/validation"
	"github.com/nfrund/signup/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E               *echo.Echo
	Cfg             config.Provider
	Metrics         *metrics.Metrics
	registerHandler *handlers.RegisterHandler
}

// New creates a Server that submits registrations to the API configured in cfg.
func New(cfg config.Provider) *Server {
	return NewWithRegistrar(cfg, apiclient.New(cfg.GetRegisterAPIURL(), cfg.GetRegisterAPITimeout()))
}

// NewWithRegistrar creates a Server around an explicit registrar, useful for testing.
func NewWithRegistrar(cfg config.Provider, registrar domain.Registrar) *Server {
	m := metrics.New()
	v := validation.New()

	registerHandler := handlers.NewRegisterHandler(registrar, v, m, registration.Options{
		LoginPath:     cfg.GetLoginPath(),
		RedirectDelay: cfg.GetRedirectDelay(),
		ValidateFirst: cfg.GetValidateFirst(),
	})

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.GetAppEnv() == "production",
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:               e,
		Cfg:             cfg,
		Metrics:         m,
		registerHandler: registerHandler,
	}
}

// setupErrorHandling logs unexpected errors with a stack trace before handing
// them to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
