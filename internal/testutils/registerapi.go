package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RegisterRequest is one call received by RegisterAPI.
type RegisterRequest struct {
	Method string
	Path   string
	Body   map[string]string
}

// RegisterAPI is a stand-in for the remote registration service.
type RegisterAPI struct {
	URL string

	mu       sync.Mutex
	requests []RegisterRequest
	status   int
	reply    string
}

// NewRegisterAPI starts a fake registration service that accepts every form
// until told otherwise. It is closed when the test ends.
func NewRegisterAPI(t *testing.T) *RegisterAPI {
	t.Helper()
	api := &RegisterAPI{status: http.StatusOK, reply: `{"errors":[]}`}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	api.URL = srv.URL
	return api
}

// Reply sets the status code and body returned for the following calls.
func (a *RegisterAPI) Reply(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
	a.reply = body
}

// Calls returns how many requests were received.
func (a *RegisterAPI) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

// Requests returns a copy of every request received so far.
func (a *RegisterAPI) Requests() []RegisterRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]RegisterRequest(nil), a.requests...)
}

func (a *RegisterAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	a.mu.Lock()
	a.requests = append(a.requests, RegisterRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	status, reply := a.status, a.reply
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply))
}
