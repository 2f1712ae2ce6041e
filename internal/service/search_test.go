package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"templatefinder/internal/logging"
	"templatefinder/internal/model"
	"templatefinder/internal/search"
	searchMocks "templatefinder/internal/search/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	ctx := logging.ContextWithRequestID(context.Background(), "rid-7")

	valid := model.CompanyProfile{
		Name:           "Acme",
		Industry:       "Retail",
		Description:    "Shoes",
		TargetAudience: "Runners",
	}
	results := &model.TemplateResults{Templates: []model.Template{
		{Name: "Portfolio Showcase", URL: "https://example.com/template3", Features: []string{"Project Gallery"}},
		{Name: "Modern Business Template", URL: "https://example.com/template1", Features: []string{"Contact Form"}},
	}}

	tests := []struct {
		name       string
		profile    model.CompanyProfile
		setupMocks func(m *searchMocks.MockSearcher)
		wantErr    error
		wantField  string
		checkRes   func(t *testing.T, res *model.TemplateResults)
	}{
		{
			name:    "happy path passes templates unchanged",
			profile: valid,
			setupMocks: func(m *searchMocks.MockSearcher) {
				m.On("Search", ctx, valid).Return(results, nil).Once()
			},
			checkRes: func(t *testing.T, res *model.TemplateResults) {
				assert.Equal(t, results.Templates, res.Templates)
				assert.Equal(t, "Portfolio Showcase", res.Templates[0].Name)
			},
		},
		{
			name:       "missing name",
			profile:    model.CompanyProfile{Industry: "Retail"},
			setupMocks: func(m *searchMocks.MockSearcher) {},
			wantErr:    ErrInvalidProfile,
			wantField:  "name",
		},
		{
			name:       "missing industry",
			profile:    model.CompanyProfile{Name: "Acme"},
			setupMocks: func(m *searchMocks.MockSearcher) {},
			wantErr:    ErrInvalidProfile,
			wantField:  "industry",
		},
		{
			name:    "whitespace name is forwarded untrimmed",
			profile: model.CompanyProfile{Name: "   ", Industry: "Food"},
			setupMocks: func(m *searchMocks.MockSearcher) {
				m.On("Search", ctx, model.CompanyProfile{Name: "   ", Industry: "Food"}).
					Return(results, nil).Once()
			},
			checkRes: func(t *testing.T, res *model.TemplateResults) {
				assert.Len(t, res.Templates, 2)
			},
		},
		{
			name:    "optional fields may be empty",
			profile: model.CompanyProfile{Name: "Acme", Industry: "Retail"},
			setupMocks: func(m *searchMocks.MockSearcher) {
				m.On("Search", ctx, model.CompanyProfile{Name: "Acme", Industry: "Retail"}).
					Return(&model.TemplateResults{}, nil).Once()
			},
			checkRes: func(t *testing.T, res *model.TemplateResults) {
				assert.NotNil(t, res.Templates)
				assert.Empty(t, res.Templates)
			},
		},
		{
			name:    "request failed",
			profile: valid,
			setupMocks: func(m *searchMocks.MockSearcher) {
				m.On("Search", ctx, valid).Return(nil, search.ErrRequestFailed).Once()
			},
			wantErr: search.ErrRequestFailed,
		},
		{
			name:    "unexpected searcher error is reported as request failed",
			profile: valid,
			setupMocks: func(m *searchMocks.MockSearcher) {
				m.On("Search", ctx, valid).Return(nil, errors.New("encode profile: boom")).Once()
			},
			wantErr: search.ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(searchMocks.MockSearcher)
			var logBuf bytes.Buffer
			svc := NewSearchService(m, logging.New(&logBuf, nil))

			tt.setupMocks(m)

			res, err := svc.Search(ctx, tt.profile)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				if tt.wantField != "" {
					var vErr *ValidationError
					require.ErrorAs(t, err, &vErr)
					assert.Equal(t, tt.wantField, vErr.Field)
					m.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
				}
			} else {
				require.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			m.AssertExpectations(t)
		})
	}
}

func TestSearchService_LogsFailures(t *testing.T) {
	ctx := logging.ContextWithRequestID(context.Background(), "rid-9")
	profile := model.CompanyProfile{Name: "Acme", Industry: "Retail"}

	m := new(searchMocks.MockSearcher)
	m.On("Search", ctx, profile).Return(nil, search.ErrRequestFailed).Once()

	var logBuf bytes.Buffer
	svc := NewSearchService(m, logging.New(&logBuf, nil))

	_, err := svc.Search(ctx, profile)
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "template_search_failed", entry["msg"])
	assert.Equal(t, "rid-9", entry["request_id"])
}

func TestSearchService_Ping(t *testing.T) {
	m := new(searchMocks.MockSearcher)
	m.On("Ping", mock.Anything).Return(nil).Once()
	m.On("Ping", mock.Anything).Return(errors.New("down")).Once()

	svc := NewSearchService(m, logging.New(&bytes.Buffer{}, nil))

	assert.NoError(t, svc.Ping(context.Background()))
	assert.Error(t, svc.Ping(context.Background()))
	m.AssertExpectations(t)
}
