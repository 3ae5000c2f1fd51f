package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imRanDan/chess-analytics-tool/internal/chesscom"
	"github.com/imRanDan/chess-analytics-tool/internal/lichess"
)

// MockChessComClient is a mock implementation of worker.ChessComClient
type MockChessComClient struct {
	mock.Mock
}

func (m *MockChessComClient) FetchArchives(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChessComClient) FetchMonthly(ctx context.Context, archiveURL string) ([]chesscom.MonthlyGame, error) {
	args := m.Called(ctx, archiveURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chesscom.MonthlyGame), args.Error(1)
}

// MockLichessClient is a mock implementation of worker.LichessClient
type MockLichessClient struct {
	mock.Mock
}

func (m *MockLichessClient) FetchGames(ctx context.Context, username string, max int) ([]lichess.ExportGame, error) {
	args := m.Called(ctx, username, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lichess.ExportGame), args.Error(1)
}
