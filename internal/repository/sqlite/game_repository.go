package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository implementation
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

const gameColumns = "id, profile_id, external_id, platform, result, color, opening, played_at, moves, created_at"

func scanGame(scan func(dest ...any) error) (models.StoredGame, error) {
	var g models.StoredGame
	err := scan(&g.ID, &g.ProfileID, &g.ExternalID, &g.Platform, &g.Result, &g.Color, &g.Opening, &g.Date, &g.Moves, &g.CreatedAt)
	return g, err
}

func (r *gameRepository) InsertBatch(ctx context.Context, games []models.StoredGame) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("batch inserting %d games", len(games))

	if len(games) == 0 {
		return 0, nil
	}

	inserted := 0
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO games (profile_id, external_id, platform, result, color, opening, played_at, moves)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(profile_id, external_id) DO UPDATE SET
    result = excluded.result,
    color = excluded.color,
    opening = excluded.opening,
    played_at = excluded.played_at,
    moves = excluded.moves
`)
		if err != nil {
			log.Error("failed to prepare batch insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, g := range games {
			res, err := stmt.ExecContext(ctx, g.ProfileID, g.ExternalID, g.Platform, g.Result, g.Color, g.Opening, g.Date, g.Moves)
			if err != nil {
				log.Error("failed to insert game external_id=%s: %v", g.ExternalID, err)
				return err
			}
			if n, err := res.RowsAffected(); err == nil && n > 0 {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug("batch insert completed, %d rows written", inserted)
	return inserted, nil
}

func (r *gameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing games: profile_id=%d, platform=%s, result=%s, opening=%s",
		filter.ProfileID, filter.Platform, filter.Result, filter.Opening)

	query := applyFilter(sqlBuilder.Select(
		"id", "profile_id", "external_id", "platform", "result", "color",
		"opening", "played_at", "moves", "created_at",
	).From("games"), filter)

	query = query.OrderBy("played_at DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	q, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()

	var games []models.StoredGame
	for rows.Next() {
		g, err := scanGame(rows.Scan)
		if err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		games = append(games, g)
	}
	log.Debug("found %d games", len(games))
	return games, rows.Err()
}

func (r *gameRepository) Count(ctx context.Context, filter models.GameFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")

	query := applyFilter(sqlBuilder.Select("COUNT(*)").From("games"), filter)

	q, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		log.Error("failed to count games: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *gameRepository) ListByProfile(ctx context.Context, profileID int64) ([]models.StoredGame, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing all games for profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+gameColumns+`
FROM games
WHERE profile_id = ?
ORDER BY played_at ASC
`, profileID)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()

	var games []models.StoredGame
	for rows.Next() {
		g, err := scanGame(rows.Scan)
		if err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		games = append(games, g)
	}
	log.Debug("found %d games", len(games))
	return games, rows.Err()
}

func applyFilter(query squirrel.SelectBuilder, filter models.GameFilter) squirrel.SelectBuilder {
	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.Platform != "" {
		query = query.Where(squirrel.Eq{"platform": filter.Platform})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	if filter.Opening != "" {
		query = query.Where(squirrel.Eq{"opening": filter.Opening})
	}
	return query
}
