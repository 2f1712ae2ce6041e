package mocks

import (
	"context"

	"templatefinder/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, profile model.CompanyProfile) (*model.TemplateResults, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TemplateResults), args.Error(1)
}

func (m *MockSearcher) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
