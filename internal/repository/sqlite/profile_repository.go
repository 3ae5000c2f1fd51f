package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%d", id)

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, created_at, last_sync_at
FROM profiles
WHERE id = ?
`, id).Scan(&p.ID, &p.Username, &p.CreatedAt, &p.LastSyncAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found: id=%d", id)
		} else {
			log.Error("failed to get profile: %v", err)
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, username, created_at, last_sync_at
FROM profiles
ORDER BY username ASC
`)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.CreatedAt, &p.LastSyncAt); err != nil {
			log.Error("failed to scan profile row: %v", err)
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Upsert(ctx context.Context, username string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting profile: username=%s", username)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO profiles (username)
VALUES (?)
ON CONFLICT(username) DO NOTHING
`, username)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}

	var p models.Profile
	err = r.db.QueryRowContext(ctx, `
SELECT id, username, created_at, last_sync_at
FROM profiles
WHERE username = ?
`, username).Scan(&p.ID, &p.Username, &p.CreatedAt, &p.LastSyncAt)
	if err != nil {
		log.Error("failed to load upserted profile: %v", err)
		return nil, err
	}
	log.Debug("profile ready: id=%d", p.ID)
	return &p, nil
}

func (r *profileRepository) UpdateSync(ctx context.Context, id int64, t time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating last sync: id=%d", id)

	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET last_sync_at = ? WHERE id = ?`, t, id)
	if err != nil {
		log.Error("failed to update last sync: %v", err)
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("deleting profile: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete profile: %v", err)
	}
	return err
}
