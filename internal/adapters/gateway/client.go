package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

const maxResponseBytes = 1 << 20

const defaultRequestTimeout = 10 * time.Second

type errorResponse struct {
	Message string `json:"message"`
}

// transportError marks a call where the backend was never reached. The
// raw description is kept for operator logs; it is never shown to users.
func transportError(err error) *domain.GatewayError {
	return &domain.GatewayError{Status: 0, Message: err.Error()}
}

// backendError extracts the backend's message field, falling back to a
// generic string when the body carries none.
func backendError(resp *http.Response) *domain.GatewayError {
	var payload errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	message := payload.Message
	if message == "" {
		message = "unknown error"
	}

	return &domain.GatewayError{Status: resp.StatusCode, Message: message}
}

// malformedResponse covers a 200 whose body is missing the expected
// fields: a success status does not itself guarantee a usable payload.
func malformedResponse() *domain.GatewayError {
	return &domain.GatewayError{Status: http.StatusOK, Message: "malformed response"}
}

func buildURL(baseURL, path string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("base url scheme must be http or https")
	}

	return strings.TrimSuffix(parsed.String(), "/") + path, nil
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func httpClientOrDefault(client *http.Client) *http.Client {
	if client == nil {
		return http.DefaultClient
	}
	return client
}
