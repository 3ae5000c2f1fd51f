package services

import (
	"context"

	"github.com/imRanDan/chess-analytics-tool/internal/errors"
	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
	"github.com/imRanDan/chess-analytics-tool/internal/stats"
)

// StatsService handles statistics-related business logic
type StatsService interface {
	GetStats(ctx context.Context, profileID int64) (*models.GameStats, error)
	GetGames(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, int, error)
}

type statsService struct {
	gameRepo    repository.GameRepository
	trendWindow int
}

// NewStatsService creates a new StatsService. trendWindow is the number of
// most recent games treated as the current period for the trend signal; 0
// disables the signal.
func NewStatsService(gameRepo repository.GameRepository, trendWindow int) StatsService {
	return &statsService{gameRepo: gameRepo, trendWindow: trendWindow}
}

func (s *statsService) GetStats(ctx context.Context, profileID int64) (*models.GameStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing stats: profile_id=%d", profileID)

	rows, err := s.gameRepo.ListByProfile(ctx, profileID)
	if err != nil {
		log.Error("failed to load games: %v", err)
		return nil, errors.NewInternalError(err)
	}

	games := toNormalized(rows)

	// The aggregator only carries the trend delta through; the window split
	// is decided here. The prior period is everything before the most recent
	// trendWindow games.
	if s.trendWindow > 0 && len(games) > s.trendWindow {
		prior := stats.Compute(games[:len(games)-s.trendWindow])
		out := stats.ComputeWithTrend(games, prior.OverallWinRate)
		return &out, nil
	}

	out := stats.Compute(games)
	return &out, nil
}

func (s *statsService) GetGames(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing games: profile_id=%d", filter.ProfileID)

	games, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	totalCount, err := s.gameRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count games: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	return games, totalCount, nil
}

func toNormalized(rows []models.StoredGame) []models.NormalizedGame {
	out := make([]models.NormalizedGame, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.NormalizedGame)
	}
	return out
}
