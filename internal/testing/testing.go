// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/services"
)

// MockFeedService is a configurable test double for [services.FeedService]
type MockFeedService struct {
	FetchFunc   func(ctx context.Context, token string, timeLimit int) (*services.FeedResult, error)
	HaltFunc    func(ctx context.Context, token string) (string, error)
	ProcessFunc func(ctx context.Context, token string, url string) (*services.IngestResult, error)

	FetchCalls   int
	HaltCalls    int
	ProcessCalls int
}

func (m *MockFeedService) FetchBreakingNews(ctx context.Context, token string, timeLimit int) (*services.FeedResult, error) {
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, token, timeLimit)
	}
	return &services.FeedResult{Posts: []models.NewsItem{}}, nil
}

func (m *MockFeedService) Halt(ctx context.Context, token string) (string, error) {
	m.HaltCalls++
	if m.HaltFunc != nil {
		return m.HaltFunc(ctx, token)
	}
	return "Halt signal sent.", nil
}

func (m *MockFeedService) ProcessURL(ctx context.Context, token string, url string) (*services.IngestResult, error) {
	m.ProcessCalls++
	if m.ProcessFunc != nil {
		return m.ProcessFunc(ctx, token, url)
	}
	return &services.IngestResult{Item: &models.NewsItem{Headline: "mock", Summary: "mock"}}, nil
}

// MockCaptionService is a configurable test double for [services.CaptionService]
type MockCaptionService struct {
	SaveFunc   func(ctx context.Context, token string, item models.NewsItem) error
	ListFunc   func(ctx context.Context, token string) ([]models.NewsItem, error)
	DeleteFunc func(ctx context.Context, token string, id int) error

	SaveCalls   int
	ListCalls   int
	DeleteCalls int
}

func (m *MockCaptionService) Save(ctx context.Context, token string, item models.NewsItem) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token, item)
	}
	return nil
}

func (m *MockCaptionService) List(ctx context.Context, token string) ([]models.NewsItem, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return []models.NewsItem{}, nil
}

func (m *MockCaptionService) Delete(ctx context.Context, token string, id int) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	return nil
}

// MemoryCache is an in-memory [session.CacheStore] double
type MemoryCache struct {
	Data       map[string][]models.NewsItem
	WriteErr   error
	WriteCalls int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{Data: make(map[string][]models.NewsItem)}
}

func (m *MemoryCache) Read(key string) []models.NewsItem {
	items, ok := m.Data[key]
	if !ok {
		return []models.NewsItem{}
	}
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out
}

func (m *MemoryCache) Write(key string, items []models.NewsItem) error {
	m.WriteCalls++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	stored := make([]models.NewsItem, len(items))
	copy(stored, items)
	m.Data[key] = stored
	return nil
}

func (m *MemoryCache) Clear(key string) error {
	delete(m.Data, key)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
