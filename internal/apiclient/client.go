// Package apiclient talks to the remote user registration API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/signup/internal/domain"
)

// RegisterPath is the endpoint that accepts new registrations.
const RegisterPath = "/api/users/register"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// StatusError is returned when the API answers with a non-2xx status and no
// errors array.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registration API returned status %d", e.StatusCode)
}

// Client submits registrations over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Register sends form to the API with PUT and decodes the { errors: [...] } reply.
func (c *Client) Register(ctx context.Context, form domain.FormData) (*domain.RegisterResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+RegisterPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read registration response: %w", err)
	}

	slog.Debug("Registration API responded", "status", resp.StatusCode, "email", form.Email)

	var out domain.RegisterResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil && len(bytes.TrimSpace(raw)) > 0 {
			return nil, fmt.Errorf("failed to decode registration response: %w", decodeErr)
		}
		return &out, nil
	}

	if decodeErr == nil && len(out.Errors) > 0 {
		return &out, nil
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, &StatusError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	})
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
