package planner

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Closure(ctx context.Context, root string) ([]domain.Recipe, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRepository) Items(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) Creators(ctx context.Context, itemID string) ([]*domain.Recipe, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Recipe), args.Error(1)
}

func (m *MockRepository) Suggest(itemID string, limit int) []string {
	args := m.Called(itemID, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockRepository) Reload(ctx context.Context) (*catalog.ReloadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ReloadResult), args.Error(1)
}

func (m *MockRepository) Snapshot() catalog.Snapshot {
	args := m.Called()
	return args.Get(0).(catalog.Snapshot)
}

func (m *MockRepository) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}
