// package services defines interfaces for the Versus backend HTTP API.
//
// Three collaborators: the feed API (long-running aggregation, halt signal,
// single-URL ingestion), the captions API (persisted item curation), and the
// auth API (bearer token issuance). Every method takes the bearer token of
// the identity making the call; an empty token means an anonymous request
// and no Authorization header is attached.
package services

import (
	"context"

	"github.com/rkhatta1/TheVersusProject/internal/models"
)

// FeedService defines the remote operations that produce news items.
type FeedService interface {
	// FetchBreakingNews triggers the backend aggregation job over the last
	// timeLimit hours and blocks until it resolves. A halted job is a
	// recognized outcome, not an error.
	FetchBreakingNews(ctx context.Context, token string, timeLimit int) (*FeedResult, error)

	// Halt signals the backend to stop an in-progress aggregation job.
	// The signal is advisory; the pending FetchBreakingNews call still
	// resolves on its own. Returns the backend's acknowledgement message.
	Halt(ctx context.Context, token string) (string, error)

	// ProcessURL submits a single article URL for immediate processing.
	// An already-processed article is a recognized outcome, not an error.
	ProcessURL(ctx context.Context, token string, url string) (*IngestResult, error)
}

// CaptionService defines the remote operations over the persisted item store.
type CaptionService interface {
	// Save persists a news item to the caller's saved list.
	Save(ctx context.Context, token string, item models.NewsItem) error

	// List retrieves the caller's saved items, newest first.
	// Each returned item carries an ID and a saved-at timestamp.
	List(ctx context.Context, token string) ([]models.NewsItem, error)

	// Delete removes a persisted item by ID.
	Delete(ctx context.Context, token string, id int) error
}

// AuthService defines the identity-issuing operations.
type AuthService interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates an account.
	Register(ctx context.Context, username, password string) error
}

// FeedResult is the resolution of an aggregation request.
//
// Exactly one of the three shapes holds: a fresh batch in Posts, a halted
// notice, or an empty-batch notice (Notice set, Halted false, Posts nil).
type FeedResult struct {
	Posts  []models.NewsItem
	Halted bool
	Notice string
}

// IngestResult is the resolution of a single-URL ingestion request.
type IngestResult struct {
	Item      *models.NewsItem
	Duplicate bool
	Message   string
}
