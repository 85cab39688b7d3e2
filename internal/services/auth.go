// Versus auth API [AuthService] implementation
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rkhatta1/TheVersusProject/internal/shared"
)

// AuthClient implements [AuthService] against the Versus backend.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates an auth client for the given base URL.
func NewAuthClient(baseURL string, client *http.Client) *AuthClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &AuthClient{baseURL: baseURL, httpClient: client}
}

// Login implements [AuthService].
func (a *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	body, err := a.post(ctx, "/api/login", username, password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: no token in response", shared.ErrAuthFailed)
	}

	return resp.Token, nil
}

// Register implements [AuthService].
func (a *AuthClient) Register(ctx context.Context, username, password string) error {
	_, err := a.post(ctx, "/api/register", username, password)
	return err
}

func (a *AuthClient) post(ctx context.Context, path, username, password string) ([]byte, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", shared.ErrInvalidInput)
	}

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp.StatusCode, body)
	}

	return body, nil
}
