package search

import (
	"context"
	"errors"

	"templatefinder/internal/model"
)

// ErrRequestFailed is the single failure kind of a template search: a
// non-success status, a transport error, or an unreadable response body.
var ErrRequestFailed = errors.New("failed to fetch templates")

// Searcher asks the search backend for templates matching a company profile.
type Searcher interface {
	// Search issues exactly one request. It is not retried.
	Search(ctx context.Context, profile model.CompanyProfile) (*model.TemplateResults, error)

	// Ping reports whether the backend answers at all.
	Ping(ctx context.Context) error
}
