package handlers

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/view"
	"github.com/nfrund/signup/internal/view/dto/auth"
	"github.com/nfrund/signup/web/src/templates/layouts"
	"github.com/nfrund/signup/web/src/templates/pages"
	"github.com/nfrund/signup/web/src/templates/partials"
)

// LoginGet renders the login view (GET /login), the target of the post-registration
// navigation. htmx navigations receive only the body.
func LoginGet(c echo.Context) error {
	var prefilledEmail string
	sess, err := session.Get("flash-session", c)
	consumed := false
	if err == nil {
		if emails := sess.Flashes(formEmailFlash); len(emails) > 0 {
			consumed = true
			if val, ok := emails[0].(string); ok {
				prefilledEmail = val
			}
		}
	}

	// GetFlashData shares the request's session and saves it when it finds
	// toasts, which also clears the consumed email.
	flashes := view.GetFlashData(c)
	if consumed && flashes.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	content := pages.Login(auth.LoginData{Email: prefilledEmail})

	if view.IsHTMXRequest(c.Request()) {
		return c.Render(http.StatusOK, "", layouts.Body(flashes, content))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Login", flashes, content))
}

// flashesFor turns toasts raised during a request into page flash data.
func flashesFor(toasts []domain.Toast) partials.FlashData {
	var data partials.FlashData
	for _, t := range toasts {
		switch t.Type {
		case domain.ToastSuccess:
			data.Success = append(data.Success, t.Message)
		case domain.ToastError:
			data.Error = append(data.Error, t.Message)
		}
	}
	return data
}
