package models

import (
	"fmt"
	"time"
)

// AllowedTimeLimits are the aggregation look-back windows (in hours) the
// backend accepts.
var AllowedTimeLimits = []int{1, 3, 6, 9, 12, 15, 18, 21, 24}

// DefaultTimeLimit is the look-back window used when none is chosen.
const DefaultTimeLimit = 24

// NewsItem represents a single aggregated news story with its stylized caption.
type NewsItem struct {
	Headline      string `json:"headline"`
	Summary       string `json:"summary"`
	SourceCaption string `json:"source_caption"`
	VersusCaption string `json:"versus_caption"`

	// Saved flips to true once the captions endpoint confirms persistence.
	Saved bool `json:"saved,omitempty"`

	// ID and SavedAt are only present on items returned by the captions
	// endpoint; freshly aggregated items have neither.
	ID      int        `json:"id,omitempty"`
	SavedAt *time.Time `json:"saved_at,omitempty"`

	// CorrelationID is assigned client-side when an item first enters the
	// working set. It never leaves the client and exists for log correlation;
	// headline equality remains the matching identity for save/trash.
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SameStory reports whether two items are the same logical story.
//
// Headline text equality is the only identity available before persistence.
func (n NewsItem) SameStory(other NewsItem) bool {
	return n.Headline == other.Headline
}

// Validate checks that the item carries the fields the captions endpoint requires.
func (n NewsItem) Validate() error {
	if n.Headline == "" {
		return fmt.Errorf("news item missing headline")
	}
	if n.Summary == "" {
		return fmt.Errorf("news item missing summary")
	}
	return nil
}

// ValidTimeLimit reports whether hours is one of the windows the backend accepts.
func ValidTimeLimit(hours int) bool {
	for _, h := range AllowedTimeLimits {
		if h == hours {
			return true
		}
	}
	return false
}
