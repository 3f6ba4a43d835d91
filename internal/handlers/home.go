package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeGet sends visitors to the registration form.
func HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/register")
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
