package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) InsertBatch(ctx context.Context, games []models.StoredGame) (int, error) {
	args := m.Called(ctx, games)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoredGame), args.Error(1)
}

func (m *MockGameRepository) Count(ctx context.Context, filter models.GameFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) ListByProfile(ctx context.Context, profileID int64) ([]models.StoredGame, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoredGame), args.Error(1)
}
