package mocks

import (
	"context"

	"winklink/types"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Insert(ctx context.Context, rec types.LinkRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStorage) Lookup(ctx context.Context, token string) (types.LinkRecord, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(types.LinkRecord), args.Error(1)
}
