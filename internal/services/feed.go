// Versus feed API [FeedService] implementation
//
// Talks to the Flask backend's /api/breaking-news, /api/halt-loop and
// /api/process-url endpoints. The aggregation endpoint blocks for the whole
// job, so the client timeout must be generous.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:5000"

// DuplicateArticleMessage is the exact sentinel the backend returns for an
// already-processed article. Matched verbatim; do not reword.
const DuplicateArticleMessage = "This article has already been processed."

// FeedClient implements [FeedService] against the Versus backend.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewFeedClient creates a feed client for the given base URL.
//
// reqPerSec gates outbound requests; zero or negative disables the gate.
func NewFeedClient(baseURL string, client *http.Client, reqPerSec float64) *FeedClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if reqPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(reqPerSec), 1)
	}

	return &FeedClient{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// breakingNewsResponse mirrors the backend's aggregation payload: either a
// batch of posts or a bare message (halted notice or empty batch).
type breakingNewsResponse struct {
	Posts     []models.NewsItem `json:"posts"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
}

// FetchBreakingNews implements [FeedService].
func (f *FeedClient) FetchBreakingNews(ctx context.Context, token string, timeLimit int) (*FeedResult, error) {
	if !models.ValidTimeLimit(timeLimit) {
		return nil, fmt.Errorf("%w: %d hours", shared.ErrInvalidTimeLimit, timeLimit)
	}

	path := "/api/breaking-news?time_limit=" + strconv.Itoa(timeLimit)
	body, err := f.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var resp breakingNewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode breaking news response: %w", err)
	}

	if resp.Message != "" && strings.Contains(resp.Message, "halted") {
		return &FeedResult{Halted: true, Notice: resp.Message}, nil
	}
	if resp.Message != "" && len(resp.Posts) == 0 {
		return &FeedResult{Notice: resp.Message}, nil
	}

	if resp.Posts == nil {
		resp.Posts = []models.NewsItem{}
	}
	return &FeedResult{Posts: resp.Posts}, nil
}

// Halt implements [FeedService].
func (f *FeedClient) Halt(ctx context.Context, token string) (string, error) {
	body, err := f.do(ctx, http.MethodPost, "/api/halt-loop", token, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode halt response: %w", err)
	}

	return resp.Message, nil
}

// ProcessURL implements [FeedService].
func (f *FeedClient) ProcessURL(ctx context.Context, token string, url string) (*IngestResult, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty URL", shared.ErrInvalidInput)
	}

	payload, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := f.do(ctx, http.MethodPost, "/api/process-url", token, payload)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Message == DuplicateArticleMessage {
		return &IngestResult{Duplicate: true, Message: probe.Message}, nil
	}

	var item models.NewsItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to decode processed article: %w", err)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: malformed article in response: %v", shared.ErrAPIRequest, err)
	}

	return &IngestResult{Item: &item}, nil
}

// do issues a request against the backend, applying the rate gate and bearer
// header, and normalizes non-2xx responses into errors per apiError.
func (f *FeedClient) do(ctx context.Context, method, path, token string, payload []byte) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	setRequestHeaders(req, token, payload != nil)

	resp, err := f.httpClient.Do(req)
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

// setRequestHeaders attaches the bearer token when an identity is present.
// Anonymous requests carry no Authorization header at all.
func setRequestHeaders(req *http.Request, token string, hasBody bool) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// apiError converts a non-2xx response into an error, preferring the
// backend's own error field over a generic status description.
func apiError(status int, body []byte) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errResp.Error)
	}
	return fmt.Errorf("%w: HTTP error! status: %d", shared.ErrAPIRequest, status)
}
