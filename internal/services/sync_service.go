package services

import (
	"context"

	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
	"github.com/imRanDan/chess-analytics-tool/internal/worker"
)

// SyncService handles game sync business logic
type SyncService interface {
	QueueSync(ctx context.Context, profile models.Profile)
}

// SyncOptions bound how much each platform fetch pulls in.
type SyncOptions struct {
	ArchiveLimit  int
	MaxConcurrent int
	LichessMax    int
}

type syncService struct {
	gameRepo    repository.GameRepository
	profileRepo repository.ProfileRepository
	chessClient worker.ChessComClient
	lichess     worker.LichessClient
	pool        *worker.Pool
	opts        SyncOptions
}

// NewSyncService creates a new SyncService
func NewSyncService(gameRepo repository.GameRepository, profileRepo repository.ProfileRepository, chessClient worker.ChessComClient, lichessClient worker.LichessClient, pool *worker.Pool, opts SyncOptions) SyncService {
	return &syncService{
		gameRepo:    gameRepo,
		profileRepo: profileRepo,
		chessClient: chessClient,
		lichess:     lichessClient,
		pool:        pool,
		opts:        opts,
	}
}

func (s *syncService) QueueSync(ctx context.Context, profile models.Profile) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"username":   profile.Username,
		"profile_id": profile.ID,
	})
	log.Info("queueing game sync job")

	s.pool.Submit(&worker.SyncGamesJob{
		GameRepo:      s.gameRepo,
		ProfileRepo:   s.profileRepo,
		ChessClient:   s.chessClient,
		Lichess:       s.lichess,
		Profile:       profile,
		ArchiveLimit:  s.opts.ArchiveLimit,
		MaxConcurrent: s.opts.MaxConcurrent,
		LichessMax:    s.opts.LichessMax,
	})
}
