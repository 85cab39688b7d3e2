// Versus captions API [CaptionService] implementation
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
)

// CaptionClient implements [CaptionService] against the Versus backend.
type CaptionClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCaptionClient creates a captions client for the given base URL.
func NewCaptionClient(baseURL string, client *http.Client) *CaptionClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &CaptionClient{baseURL: baseURL, httpClient: client}
}

// Save implements [CaptionService].
func (c *CaptionClient) Save(ctx context.Context, token string, item models.NewsItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode caption: %w", err)
	}

	_, err = c.do(ctx, http.MethodPost, "/api/captions", token, payload)
	return err
}

// List implements [CaptionService].
func (c *CaptionClient) List(ctx context.Context, token string) ([]models.NewsItem, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/captions", token, nil)
	if err != nil {
		return nil, err
	}

	var items []models.NewsItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode saved captions: %w", err)
	}

	// Persisted items are saved by definition; the backend doesn't echo the flag.
	for i := range items {
		items[i].Saved = true
	}

	return items, nil
}

// Delete implements [CaptionService].
func (c *CaptionClient) Delete(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/captions/"+strconv.Itoa(id), token, nil)
	return err
}

func (c *CaptionClient) do(ctx context.Context, method, path, token string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	setRequestHeaders(req, token, payload != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: status %d", shared.ErrCaptionNotFound, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp.StatusCode, body)
	}

	return body, nil
}
