package service

import (
	"context"
	"errors"

	"templatefinder/internal/logging"
	"templatefinder/internal/model"
	"templatefinder/internal/search"
)

// ErrInvalidProfile is matched by every profile validation error.
var ErrInvalidProfile = errors.New("invalid company profile")

// ValidationError describes a missing required profile field.
// Message is safe to show to users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrInvalidProfile) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidProfile }

// SearchService defines the template search use case.
type SearchService interface {
	// Search validates the profile and returns the backend's templates unchanged.
	// Errors match ErrInvalidProfile or search.ErrRequestFailed.
	Search(ctx context.Context, profile model.CompanyProfile) (*model.TemplateResults, error)

	// Ping checks that the search backend is reachable.
	Ping(ctx context.Context) error
}

type searchService struct {
	searcher search.Searcher
	log      *logging.Logger
}

// NewSearchService constructs a SearchService. A nil logger logs to stdout.
func NewSearchService(searcher search.Searcher, log *logging.Logger) SearchService {
	if log == nil {
		log = logging.Stdout(nil)
	}
	return &searchService{searcher: searcher, log: log}
}

// ValidateProfile checks the required fields are present. Values are not
// trimmed; whatever the user typed is forwarded as-is.
func ValidateProfile(p model.CompanyProfile) error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "Company name is required"}
	}
	if p.Industry == "" {
		return &ValidationError{Field: "industry", Message: "Industry is required"}
	}
	return nil
}

func (s *searchService) Search(ctx context.Context, profile model.CompanyProfile) (*model.TemplateResults, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	res, err := s.searcher.Search(ctx, profile)
	if err != nil {
		s.log.Error("template_search_failed", err, map[string]any{
			"component":  "search",
			"request_id": logging.RequestIDFromContext(ctx),
		})
		if !errors.Is(err, search.ErrRequestFailed) {
			err = errors.Join(search.ErrRequestFailed, err)
		}
		return nil, err
	}
	if res == nil {
		res = &model.TemplateResults{}
	}
	res.Normalize()
	return res, nil
}

func (s *searchService) Ping(ctx context.Context) error {
	return s.searcher.Ping(ctx)
}
