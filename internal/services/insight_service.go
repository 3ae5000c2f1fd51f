package services

import (
	"context"

	"github.com/imRanDan/chess-analytics-tool/internal/errors"
	"github.com/imRanDan/chess-analytics-tool/internal/insight"
	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
)

// InsightInput is the bundle handed to the external insight-generation
// collaborator: the condensed game projection plus the summary both as a
// value and as structured text.
type InsightInput struct {
	Games     []insight.GameSummary `json:"games"`
	Stats     models.GameStats      `json:"stats"`
	StatsText string                `json:"stats_text"`
}

// InsightService prepares the insight-generation input for a profile
type InsightService interface {
	GetInsightInput(ctx context.Context, profileID int64) (*InsightInput, error)
}

type insightService struct {
	gameRepo repository.GameRepository
	stats    StatsService
}

// NewInsightService creates a new InsightService
func NewInsightService(gameRepo repository.GameRepository, statsService StatsService) InsightService {
	return &insightService{gameRepo: gameRepo, stats: statsService}
}

func (s *insightService) GetInsightInput(ctx context.Context, profileID int64) (*InsightInput, error) {
	log := logger.FromContext(ctx)
	log.Debug("building insight input: profile_id=%d", profileID)

	rows, err := s.gameRepo.ListByProfile(ctx, profileID)
	if err != nil {
		log.Error("failed to load games: %v", err)
		return nil, errors.NewInternalError(err)
	}

	gameStats, err := s.stats.GetStats(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return &InsightInput{
		Games:     insight.Project(toNormalized(rows)),
		Stats:     *gameStats,
		StatsText: insight.FormatStats(*gameStats),
	}, nil
}
