package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/metrics"
	"github.com/nfrund/signup/internal/middleware"
	"github.com/nfrund/signup/internal/registration"
	"github.com/nfrund/signup/internal/validation"
	"github.com/nfrund/signup/internal/view"
	"github.com/nfrund/signup/internal/view/dto/auth"
	"github.com/nfrund/signup/web/src/templates/layouts"
	"github.com/nfrund/signup/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

// formEmailFlash carries the registered email to the login page.
const formEmailFlash = "form_email"

// RegisterHandler serves the registration form.
type RegisterHandler struct {
	registrar domain.Registrar
	validator *validation.Validator
	metrics   *metrics.Metrics
	opts      registration.Options
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(registrar domain.Registrar, v *validation.Validator, m *metrics.Metrics, opts registration.Options) *RegisterHandler {
	return &RegisterHandler{
		registrar: registrar,
		validator: v,
		metrics:   m,
		opts:      opts,
	}
}

// RegisterGet renders the empty registration page (GET /register).
func (h *RegisterHandler) RegisterGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	data := auth.RegisterData{Errors: domain.NewErrorState()}
	return c.Render(http.StatusOK, "", layouts.Base("Register", flashes, pages.Register(data)))
}

// RegisterPost handles a submission (POST /register). The body may be
// form-encoded or JSON. Each field is applied to a freshly mounted controller,
// which then submits and validates.
func (h *RegisterHandler) RegisterPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var form domain.FormData
	if err := c.Bind(&form); err != nil {
		code := http.StatusBadRequest
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		logger.Warn("Rejected registration body", "status", code, "error", err)
		if view.WantsJSON(c.Request()) {
			return c.JSON(code, ErrorResponse{Code: "invalid_form", Message: http.StatusText(code)})
		}
		return echo.NewHTTPError(code, "invalid form submission")
	}

	capture := &registration.Capture{}
	ctrl := registration.NewController(h.registrar, capture, capture, h.validator, h.opts).WithLogger(logger)
	for _, name := range domain.FormFields {
		value, _ := form.Get(name)
		if err := ctrl.OnFieldChange(name, value); err != nil {
			return err
		}
	}

	// The controller lives for this request only, so OnSubmit cannot find
	// another submission in flight.
	res, err := ctrl.OnSubmit(c.Request().Context())
	if err != nil {
		return err
	}
	h.metrics.Observe(res)

	data := auth.RegisterData{
		Form:   ctrl.Form(),
		Errors: res.Errors,
		Toasts: capture.Toasts(),
	}
	if path, delay, ok := capture.Redirect(); ok {
		data.RedirectTo, data.RedirectAfter = path, delay
		h.carryToLogin(c, data)
	}

	if view.WantsJSON(c.Request()) {
		return c.JSON(http.StatusOK, NewRegisterResponse(res, data))
	}
	if view.IsHTMXRequest(c.Request()) {
		return c.Render(http.StatusOK, "", pages.RegisterResult(data))
	}

	var head []cmp.Node
	if data.RedirectTo != "" {
		head = append(head, pages.RefreshMeta(data.RedirectTo, data.RedirectAfter))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Register", flashesFor(data.Toasts), pages.Register(data), head...))
}

// carryToLogin stores the success toast and email so the login view shows them
// after the delayed navigation.
func (h *RegisterHandler) carryToLogin(c echo.Context, data auth.RegisterData) {
	flashes := []view.Flash{{Key: formEmailFlash, Message: data.Form.Email}}
	for _, t := range data.Toasts {
		if t.Type == domain.ToastSuccess {
			flashes = append(flashes, view.Flash{Key: view.FlashKeySuccess, Message: t.Message})
		}
	}
	view.SetFlashes(c, flashes...)
}
