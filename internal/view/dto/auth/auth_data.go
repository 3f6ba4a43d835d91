package auth

import (
	"time"

	"github.com/nfrund/signup/internal/domain"
)

// RegisterData is the view model for the registration form.
type RegisterData struct {
	// Form holds the values to pre-fill. Passwords are never echoed back.
	Form   domain.FormData
	Errors domain.ErrorState
	// Toasts raised by the last submission.
	Toasts []domain.Toast
	// RedirectTo is set after a successful submission; the page navigates there
	// once RedirectAfter has passed.
	RedirectTo    string
	RedirectAfter time.Duration
}

// LoginData is the view model for the login page.
type LoginData struct {
	Email string
}
