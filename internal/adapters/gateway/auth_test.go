package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClientLoginSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]string
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "test@example.com", req["email"])
		assert.Equal(t, "password123", req["password"])

		_, _ = fmt.Fprint(w, `{"token":"abc"}`)
	}))
	defer server.Close()

	client := AuthClient{BaseURL: server.URL}
	token, err := client.Login(context.Background(), domain.Credentials{
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestAuthClientLoginBackendErrorCarriesMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"message":"invalid credentials"}`)
	}))
	defer server.Close()

	client := AuthClient{BaseURL: server.URL}
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnauthorized, gwErr.Status)
	assert.Equal(t, "invalid credentials", gwErr.Message)
	assert.False(t, gwErr.Transport())
}

func TestAuthClientLoginBackendErrorWithoutMessageDefaults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := AuthClient{BaseURL: server.URL}
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.Status)
	assert.Equal(t, "unknown error", gwErr.Message)
}

func TestAuthClientLoginMissingTokenIsMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer server.Close()

	client := AuthClient{BaseURL: server.URL}
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusOK, gwErr.Status)
	assert.Equal(t, "malformed response", gwErr.Message)
}

func TestAuthClientLoginTransportFailureHasStatusZero(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := AuthClient{BaseURL: server.URL}
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.Transport())
}

func TestAuthClientLoginTimeoutResolvesToTransportError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := AuthClient{BaseURL: server.URL, RequestTimeout: 50 * time.Millisecond}
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.Transport())
}
