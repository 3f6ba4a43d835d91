package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/signup/internal/apiclient"
	"github.com/nfrund/signup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testForm = domain.FormData{
	FirstName:       "Ada",
	LastName:        "Lovelace",
	Email:           "ada@example.com",
	PhoneNumber:     "+491701234567",
	Password:        "Secret123",
	ConfirmPassword: "Secret123",
}

func TestClient_Register_SendsPUTWithJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, apiclient.RegisterPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[]}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL+"/", time.Second)
	resp, err := client.Register(context.Background(), testForm)
	require.NoError(t, err)
	assert.True(t, resp.OK())

	assert.Equal(t, "Ada", got["firstName"])
	assert.Equal(t, "Lovelace", got["lastName"])
	assert.Equal(t, "+491701234567", got["phoneNumber"])
	assert.Equal(t, "Secret123", got["confirmPassword"])
}

func TestClient_Register_ServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"msg":"Email already registered","param":"email"},"Try again"]}`))
	}))
	defer srv.Close()

	resp, err := apiclient.New(srv.URL, time.Second).Register(context.Background(), testForm)
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, []string{"Email already registered", "Try again"}, resp.Messages())
}

func TestClient_Register_EmptyBodyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := apiclient.New(srv.URL, time.Second).Register(context.Background(), testForm)
	require.NoError(t, err)
	assert.True(t, resp.OK())
}

func TestClient_Register_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL, time.Second).Register(context.Background(), testForm)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistrationFailed))
	assert.True(t, apiclient.IsStatus(err, http.StatusInternalServerError))
}

func TestClient_Register_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := apiclient.New(url, time.Second).Register(context.Background(), testForm)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistrationFailed))
}
