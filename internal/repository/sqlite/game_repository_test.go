package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository/sqlite"
	"github.com/imRanDan/chess-analytics-tool/internal/testutil"
)

func storedGame(profileID int64, externalID string, result models.Result, playedAt time.Time) models.StoredGame {
	return models.StoredGame{
		ProfileID:  profileID,
		ExternalID: externalID,
		NormalizedGame: models.NormalizedGame{
			Platform: models.PlatformChessCom,
			Result:   result,
			Color:    models.ColorWhite,
			Opening:  "Italian Game",
			Date:     playedAt,
			Moves:    30,
		},
	}
}

func TestGameRepository_InsertBatchAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := sqlite.NewProfileRepository(database.DB)
	games := sqlite.NewGameRepository(database.DB)

	profile, err := profiles.Upsert(ctx, "alice")
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	batch := []models.StoredGame{
		storedGame(profile.ID, "g1", models.ResultWin, base),
		storedGame(profile.ID, "g2", models.ResultLoss, base.Add(time.Hour)),
		storedGame(profile.ID, "g3", models.ResultDraw, base.Add(2*time.Hour)),
	}

	written, err := games.InsertBatch(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	all, err := games.ListByProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "g1", all[0].ExternalID, "ListByProfile orders by played_at ascending")
	assert.Equal(t, "g3", all[2].ExternalID)
	assert.Equal(t, "Italian Game", all[0].Opening)
}

func TestGameRepository_InsertBatchIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := sqlite.NewProfileRepository(database.DB)
	games := sqlite.NewGameRepository(database.DB)

	profile, err := profiles.Upsert(ctx, "alice")
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	batch := []models.StoredGame{storedGame(profile.ID, "g1", models.ResultWin, base)}

	_, err = games.InsertBatch(ctx, batch)
	require.NoError(t, err)

	// Re-syncing the same game must not duplicate it.
	batch[0].Result = models.ResultDraw
	_, err = games.InsertBatch(ctx, batch)
	require.NoError(t, err)

	all, err := games.ListByProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.ResultDraw, all[0].Result, "upsert refreshes fields")
}

func TestGameRepository_ListWithFilter(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := sqlite.NewProfileRepository(database.DB)
	games := sqlite.NewGameRepository(database.DB)

	profile, err := profiles.Upsert(ctx, "alice")
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lichessGame := storedGame(profile.ID, "l1", models.ResultWin, base)
	lichessGame.Platform = models.PlatformLichess
	lichessGame.Opening = "Sicilian Defense"

	_, err = games.InsertBatch(ctx, []models.StoredGame{
		storedGame(profile.ID, "g1", models.ResultWin, base),
		storedGame(profile.ID, "g2", models.ResultLoss, base.Add(time.Hour)),
		lichessGame,
	})
	require.NoError(t, err)

	byPlatform, err := games.List(ctx, models.GameFilter{ProfileID: profile.ID, Platform: models.PlatformLichess})
	require.NoError(t, err)
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "l1", byPlatform[0].ExternalID)

	byResult, err := games.Count(ctx, models.GameFilter{ProfileID: profile.ID, Result: models.ResultWin})
	require.NoError(t, err)
	assert.Equal(t, 2, byResult)
}

func TestGameRepository_DeleteProfileCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := sqlite.NewProfileRepository(database.DB)
	games := sqlite.NewGameRepository(database.DB)

	profile, err := profiles.Upsert(ctx, "alice")
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err = games.InsertBatch(ctx, []models.StoredGame{storedGame(profile.ID, "g1", models.ResultWin, base)})
	require.NoError(t, err)

	require.NoError(t, profiles.Delete(ctx, profile.ID))

	count, err := games.Count(ctx, models.GameFilter{ProfileID: profile.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
