// Package session implements the client-side state controller for the
// Versus feed: the in-memory working set of news items, the flags around
// in-flight remote operations, and the per-identity cache reconciliation.
//
// The controller owns two collections. The working feed holds whatever the
// last aggregation batch or URL ingestion produced, mutated optimistically
// by save/trash and mirrored to the cache store after every change. The
// saved list mirrors the server-side captions store and is only ever
// replaced wholesale from it.
//
// Remote calls are tagged with the identity active when they were issued.
// A response that resolves after the identity has changed is discarded
// rather than applied to the wrong identity's feed.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/repositories"
	"github.com/rkhatta1/TheVersusProject/internal/services"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
)

// CacheStore is the keyed persistence capability the controller writes the
// working feed through. [repositories.FeedCacheRepository] implements it.
type CacheStore interface {
	Read(key string) []models.NewsItem
	Write(key string, items []models.NewsItem) error
	Clear(key string) error
}

// AggregationOutcome is the resolution of [Controller.StartAggregation].
//
// Halted is a recognized non-error resolution that leaves the feed alone.
// Notice carries the server's message when one was sent; Replaced is true
// whenever the working feed was overwritten, an empty batch included.
type AggregationOutcome struct {
	Items    []models.NewsItem
	Replaced bool
	Halted   bool
	Notice   string
}

// IngestOutcome is the resolution of [Controller.IngestURL].
type IngestOutcome struct {
	Item      *models.NewsItem
	Duplicate bool
	Message   string
}

// Controller orchestrates the feed, captions and cache collaborators and
// owns all session state. Safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	feed     services.FeedService
	captions services.CaptionService
	cache    CacheStore
	logger   *log.Logger

	token      string // current identity; empty means guest
	items      []models.NewsItem
	savedItems []models.NewsItem

	timeLimit      int
	aggregating    bool
	aggregationErr string
	ingesting      bool
	ingestionErr   string
	savedErr       string
}

// Opts contains the collaborators for a [Controller].
type Opts struct {
	Feed     services.FeedService
	Captions services.CaptionService
	Cache    CacheStore
	Logger   *log.Logger
	Token    string
}

// NewController creates a controller and loads the working feed stored
// under the initial identity's cache key.
func NewController(opts Opts) *Controller {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	c := &Controller{
		feed:      opts.Feed,
		captions:  opts.Captions,
		cache:     opts.Cache,
		logger:    opts.Logger,
		token:     opts.Token,
		timeLimit: models.DefaultTimeLimit,
	}
	c.items = c.readCache(opts.Token)

	return c
}

// StartAggregation triggers the backend aggregation job and blocks until it
// resolves. Any non-halted success replaces the working feed wholesale and
// persists it, an empty batch included; only a halted notice leaves the
// feed untouched.
//
// Returns [shared.ErrAggregationInFlight] if an aggregation is already
// outstanding, and [shared.ErrStaleResponse] if the identity changed while
// the request was in flight (the response is discarded).
func (c *Controller) StartAggregation(ctx context.Context) (*AggregationOutcome, error) {
	c.mu.Lock()
	if c.aggregating {
		c.mu.Unlock()
		return nil, shared.ErrAggregationInFlight
	}
	c.aggregating = true
	c.aggregationErr = ""
	ident := c.token
	limit := c.timeLimit
	c.mu.Unlock()

	reqID := shared.GenerateID()
	c.logger.Debug("starting aggregation", "request_id", reqID, "time_limit", limit)

	result, err := c.feed.FetchBreakingNews(ctx, ident, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != ident {
		c.logger.Warn("discarding aggregation response for departed identity", "request_id", reqID)
		return nil, shared.ErrStaleResponse
	}
	c.aggregating = false

	if err != nil {
		c.aggregationErr = err.Error()
		return nil, err
	}

	if result.Halted {
		c.logger.Info("aggregation halted by server", "request_id", reqID, "notice", result.Notice)
		return &AggregationOutcome{Items: c.snapshot(c.items), Halted: true, Notice: result.Notice}, nil
	}

	// A non-halted success always replaces the feed, even when the batch is
	// empty and the server only sent a notice.
	batch := make([]models.NewsItem, len(result.Posts))
	copy(batch, result.Posts)
	for i := range batch {
		batch[i].CorrelationID = shared.GenerateID()
	}

	c.items = batch
	c.persist()
	c.logger.Debug("aggregation complete", "request_id", reqID, "items", len(batch))

	return &AggregationOutcome{Items: c.snapshot(c.items), Replaced: true, Notice: result.Notice}, nil
}

// HaltAggregation asks the backend to stop the running aggregation job and
// returns its acknowledgement. The signal is advisory: the outstanding
// StartAggregation call still resolves on its own, and only that resolution
// clears the aggregating flag. Safe to call when nothing is aggregating.
func (c *Controller) HaltAggregation(ctx context.Context) (string, error) {
	c.mu.Lock()
	ident := c.token
	c.mu.Unlock()

	ack, err := c.feed.Halt(ctx, ident)
	if err != nil {
		return "", err
	}

	c.logger.Info("halt signal acknowledged", "message", ack)
	return ack, nil
}

// IngestURL submits a single article URL for immediate processing and
// prepends the resulting item to the working feed. An already-processed
// article leaves the feed untouched and sets the ingestion error to the
// backend's duplicate message; it is not a failure.
func (c *Controller) IngestURL(ctx context.Context, url string) (*IngestOutcome, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty URL", shared.ErrInvalidInput)
	}

	c.mu.Lock()
	if c.ingesting {
		c.mu.Unlock()
		return nil, shared.ErrIngestionInFlight
	}
	c.ingesting = true
	c.ingestionErr = ""
	ident := c.token
	c.mu.Unlock()

	reqID := shared.GenerateID()
	c.logger.Debug("ingesting URL", "request_id", reqID, "url", url)

	result, err := c.feed.ProcessURL(ctx, ident, url)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != ident {
		c.logger.Warn("discarding ingestion response for departed identity", "request_id", reqID)
		return nil, shared.ErrStaleResponse
	}
	c.ingesting = false

	if err != nil {
		c.ingestionErr = err.Error()
		return nil, err
	}

	if result.Duplicate {
		c.ingestionErr = result.Message
		return &IngestOutcome{Duplicate: true, Message: result.Message}, nil
	}

	item := *result.Item
	item.Saved = false
	item.CorrelationID = shared.GenerateID()

	c.items = append([]models.NewsItem{item}, c.items...)
	c.persist()

	return &IngestOutcome{Item: &item}, nil
}

// SaveItem persists an item to the server-side saved list and marks every
// working-set entry sharing its headline as saved.
//
// Returns [shared.ErrAlreadySaved] without issuing a remote call when the
// item is already saved.
func (c *Controller) SaveItem(ctx context.Context, item models.NewsItem) error {
	if item.Saved {
		return shared.ErrAlreadySaved
	}

	c.mu.Lock()
	c.savedErr = ""
	ident := c.token
	c.mu.Unlock()

	if err := c.captions.Save(ctx, ident, item); err != nil {
		c.mu.Lock()
		c.savedErr = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != ident {
		c.logger.Warn("discarding save confirmation for departed identity", "headline", item.Headline)
		return shared.ErrStaleResponse
	}

	// Every entry sharing the headline is marked; headline text is the only
	// identity an unsaved item has.
	for i := range c.items {
		if c.items[i].SameStory(item) {
			c.items[i].Saved = true
		}
	}
	c.persist()

	return nil
}

// TrashItem removes every working-set entry sharing the item's headline.
// View-only: no remote call is made and server-persisted data is unaffected.
// Returns the number of entries removed.
func (c *Controller) TrashItem(item models.NewsItem) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if it.SameStory(item) {
			removed++
			continue
		}
		kept = append(kept, it)
	}

	if removed > 0 {
		c.items = kept
		c.persist()
	}

	return removed
}

// LoadPersistedItems replaces the saved list with the server-side captions
// store's contents.
func (c *Controller) LoadPersistedItems(ctx context.Context) ([]models.NewsItem, error) {
	c.mu.Lock()
	c.savedErr = ""
	ident := c.token
	c.mu.Unlock()

	items, err := c.captions.List(ctx, ident)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != ident {
		return nil, shared.ErrStaleResponse
	}

	if err != nil {
		c.savedErr = err.Error()
		return nil, err
	}

	c.savedItems = items
	return c.snapshot(c.savedItems), nil
}

// DeletePersistedItem deletes a saved item by ID, the one place identity is
// ID-based rather than headline-based, and removes it from the saved list.
func (c *Controller) DeletePersistedItem(ctx context.Context, id int) error {
	c.mu.Lock()
	c.savedErr = ""
	ident := c.token
	c.mu.Unlock()

	if err := c.captions.Delete(ctx, ident, id); err != nil {
		c.mu.Lock()
		c.savedErr = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != ident {
		return shared.ErrStaleResponse
	}

	kept := c.savedItems[:0]
	for _, it := range c.savedItems {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.savedItems = kept

	return nil
}

// SetIdentity switches the controller to a new identity: in-flight work is
// orphaned (late responses will be discarded), flags reset, and the working
// feed is replaced by whatever the new identity's cache key holds.
func (c *Controller) SetIdentity(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == c.token {
		return
	}

	c.token = token
	c.aggregating = false
	c.aggregationErr = ""
	c.ingesting = false
	c.ingestionErr = ""
	c.savedErr = ""
	c.savedItems = nil
	c.items = c.readCache(token)

	c.logger.Debug("identity changed", "guest", token == "")
}

// Logout clears the guest cache slot and switches to the guest identity.
func (c *Controller) Logout() {
	if c.cache != nil {
		if err := c.cache.Clear(repositories.GuestCacheKey); err != nil {
			c.logger.Warn("failed to clear guest cache on logout", "error", err)
		}
	}
	c.SetIdentity("")
}

// SetTimeLimit sets the aggregation look-back window in hours.
func (c *Controller) SetTimeLimit(hours int) error {
	if !models.ValidTimeLimit(hours) {
		return fmt.Errorf("%w: %d hours (allowed: %v)", shared.ErrInvalidTimeLimit, hours, models.AllowedTimeLimits)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeLimit = hours
	return nil
}

// TimeLimit returns the aggregation look-back window in hours.
func (c *Controller) TimeLimit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeLimit
}

// Identity returns the current identity token (empty for guest).
func (c *Controller) Identity() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Items returns a copy of the working feed.
func (c *Controller) Items() []models.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(c.items)
}

// SavedItems returns a copy of the saved list as of the last load.
func (c *Controller) SavedItems() []models.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(c.savedItems)
}

// IsAggregating reports whether an aggregation request is outstanding.
func (c *Controller) IsAggregating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aggregating
}

// IsIngesting reports whether an ingestion request is outstanding.
func (c *Controller) IsIngesting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ingesting
}

// AggregationError returns the standing aggregation error message, if any.
func (c *Controller) AggregationError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aggregationErr
}

// IngestionError returns the standing ingestion error message, if any.
func (c *Controller) IngestionError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ingestionErr
}

// SavedError returns the standing saved-list error message, if any.
func (c *Controller) SavedError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.savedErr
}

// persist mirrors the working feed to the cache under the current identity's
// key. Cache failures degrade to logging; the in-memory state is canonical
// for the rest of the session. Callers must hold mu.
func (c *Controller) persist() {
	if c.cache == nil {
		return
	}
	if err := c.cache.Write(repositories.CacheKey(c.token), c.items); err != nil {
		c.logger.Warn("failed to persist feed snapshot", "error", err)
	}
}

// readCache loads the feed stored under token's key, or an empty list.
func (c *Controller) readCache(token string) []models.NewsItem {
	if c.cache == nil {
		return []models.NewsItem{}
	}
	return c.cache.Read(repositories.CacheKey(token))
}

func (c *Controller) snapshot(items []models.NewsItem) []models.NewsItem {
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out
}
