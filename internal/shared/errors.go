package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrCaptionNotFound    = fmt.Errorf("caption not found")

	// Session state errors
	ErrAggregationInFlight = fmt.Errorf("aggregation already in progress")
	ErrIngestionInFlight   = fmt.Errorf("ingestion already in progress")
	ErrAlreadySaved        = fmt.Errorf("item already saved")
	ErrStaleResponse       = fmt.Errorf("response discarded: identity changed while request was in flight")

	// Input validation errors
	ErrInvalidInput     = fmt.Errorf("invalid input")
	ErrInvalidTimeLimit = fmt.Errorf("invalid time limit")
	ErrMissingArgument  = fmt.Errorf("missing required argument")
)
