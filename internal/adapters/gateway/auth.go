package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
)

const loginPath = "/api/v1/auth/login"

// AuthClient performs the login exchange against the backend auth
// endpoint and normalizes the result. It holds no state: the caller
// decides what to do with the returned token.
type AuthClient struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.AuthGateway = AuthClient{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c AuthClient) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	endpoint, err := buildURL(c.BaseURL, loginPath)
	if err != nil {
		return "", transportError(fmt.Errorf("build login url: %w", err))
	}

	body, err := json.Marshal(loginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return "", transportError(fmt.Errorf("encode login request: %w", err))
	}

	reqCtx, cancel := requestContext(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", transportError(fmt.Errorf("create login request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClientOrDefault(c.HTTPClient).Do(req)
	if err != nil {
		return "", transportError(fmt.Errorf("request login: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", backendError(resp)
	}

	var payload loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return "", malformedResponse()
	}
	if payload.Token == "" {
		return "", malformedResponse()
	}

	return payload.Token, nil
}
