package mocks

import (
	"context"

	"github.com/selinkose/cinema-ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheatreRegistry struct {
	mock.Mock
}

func (m *MockTheatreRegistry) Create(ctx context.Context, name string) (*domain.Theatre, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Theatre), args.Error(1)
}

func (m *MockTheatreRegistry) Load(ctx context.Context, name string) (*domain.Theatre, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Theatre), args.Error(1)
}

func (m *MockTheatreRegistry) Save(ctx context.Context, theatre *domain.Theatre) error {
	args := m.Called(ctx, theatre)

	return args.Error(0)
}

func (m *MockTheatreRegistry) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}
