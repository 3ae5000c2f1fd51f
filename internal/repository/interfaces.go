package repository

import (
	"context"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, username string) (*models.Profile, error)
	UpdateSync(ctx context.Context, id int64, t time.Time) error
	Delete(ctx context.Context, id int64) error
}

// GameRepository handles normalized game data access
type GameRepository interface {
	InsertBatch(ctx context.Context, games []models.StoredGame) (int, error)
	List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error)
	Count(ctx context.Context, filter models.GameFilter) (int, error)
	ListByProfile(ctx context.Context, profileID int64) ([]models.StoredGame, error)
}
