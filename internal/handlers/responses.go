package handlers

import (
	"github.com/nfrund/signup/internal/registration"
	"github.com/nfrund/signup/internal/view/dto/auth"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToastResponse is the JSON form of a toast.
type ToastResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RegisterResponse is the DTO returned by POST /register to clients that
// accept JSON. Errors uses the same keys as the form (firstNameError, ...),
// with an empty string for fields that passed.
type RegisterResponse struct {
	Submitted       bool              `json:"submitted"`
	Accepted        bool              `json:"accepted"`
	Errors          map[string]string `json:"errors"`
	Toasts          []ToastResponse   `json:"toasts"`
	RedirectTo      string            `json:"redirectTo,omitempty"`
	RedirectAfterMs int64             `json:"redirectAfterMs,omitempty"`
}

// NewRegisterResponse creates a RegisterResponse from a submission result and its view data.
func NewRegisterResponse(res registration.Result, data auth.RegisterData) *RegisterResponse {
	out := &RegisterResponse{
		Submitted:       res.Submitted,
		Accepted:        res.Accepted,
		Errors:          data.Errors,
		Toasts:          make([]ToastResponse, 0, len(data.Toasts)),
		RedirectTo:      data.RedirectTo,
		RedirectAfterMs: data.RedirectAfter.Milliseconds(),
	}
	for _, t := range data.Toasts {
		out.Toasts = append(out.Toasts, ToastResponse{Type: string(t.Type), Message: t.Message})
	}
	return out
}
