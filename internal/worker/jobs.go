package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/chesscom"
	"github.com/imRanDan/chess-analytics-tool/internal/lichess"
	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/repository"
)

// ChessComClient is the chess.com fetch surface the sync job needs.
type ChessComClient interface {
	FetchArchives(ctx context.Context, username string) ([]string, error)
	FetchMonthly(ctx context.Context, archiveURL string) ([]chesscom.MonthlyGame, error)
}

// LichessClient is the Lichess fetch surface the sync job needs.
type LichessClient interface {
	FetchGames(ctx context.Context, username string, max int) ([]lichess.ExportGame, error)
}

// SyncGamesJob fetches a profile's games from both platforms, normalizes
// them and upserts the result. The two platforms are fetched concurrently;
// a failure on one platform does not discard the other's games.
type SyncGamesJob struct {
	GameRepo    repository.GameRepository
	ProfileRepo repository.ProfileRepository
	ChessClient ChessComClient
	Lichess     LichessClient
	Profile     models.Profile

	// ArchiveLimit caps how many recent chess.com monthly archives are
	// fetched; 0 fetches all. MaxConcurrent bounds archive fan-out.
	ArchiveLimit  int
	MaxConcurrent int
	LichessMax    int
}

func (j *SyncGamesJob) Name() string {
	return fmt.Sprintf("sync-games[%s]", j.Profile.Username)
}

func (j *SyncGamesJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("username", j.Profile.Username)
	log.Info("starting game sync")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		stored    []models.StoredGame
		fetchErrs []error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		games, err := j.fetchChessCom(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			fetchErrs = append(fetchErrs, fmt.Errorf("chess.com: %w", err))
			return
		}
		stored = append(stored, games...)
	}()

	go func() {
		defer wg.Done()
		games, err := j.fetchLichess(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			fetchErrs = append(fetchErrs, fmt.Errorf("lichess: %w", err))
			return
		}
		stored = append(stored, games...)
	}()

	wg.Wait()

	if len(stored) > 0 {
		written, err := j.GameRepo.InsertBatch(ctx, stored)
		if err != nil {
			return fmt.Errorf("store games: %w", err)
		}
		log.Info("stored %d games (%d rows written)", len(stored), written)
	}

	if err := j.ProfileRepo.UpdateSync(ctx, j.Profile.ID, time.Now().UTC()); err != nil {
		log.Warn("failed to stamp last sync: %v", err)
	}

	// Surface fetch failures only after the successful platform's games are
	// safely persisted.
	if len(fetchErrs) > 0 {
		return fetchErrs[0]
	}

	log.Info("game sync finished")
	return nil
}

func (j *SyncGamesJob) fetchChessCom(ctx context.Context) ([]models.StoredGame, error) {
	log := logger.FromContext(ctx)

	archives, err := j.ChessClient.FetchArchives(ctx, j.Profile.Username)
	if err != nil {
		return nil, err
	}

	if j.ArchiveLimit > 0 && len(archives) > j.ArchiveLimit {
		archives = archives[len(archives)-j.ArchiveLimit:]
	}

	maxConcurrent := j.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out []models.StoredGame
		sem = make(chan struct{}, maxConcurrent)
	)

	for _, archiveURL := range archives {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			games, err := j.ChessClient.FetchMonthly(ctx, url)
			if err != nil {
				// One unreachable archive should not sink the whole sync.
				log.Warn("skipping archive %s: %v", url, err)
				return
			}

			batch := make([]models.StoredGame, 0, len(games))
			for _, g := range games {
				batch = append(batch, models.StoredGame{
					ProfileID:      j.Profile.ID,
					ExternalID:     g.URL,
					NormalizedGame: chesscom.Normalize(g, j.Profile.Username),
				})
			}

			mu.Lock()
			out = append(out, batch...)
			mu.Unlock()
		}(archiveURL)
	}
	wg.Wait()

	log.Debug("normalized %d chess.com games from %d archives", len(out), len(archives))
	return out, nil
}

func (j *SyncGamesJob) fetchLichess(ctx context.Context) ([]models.StoredGame, error) {
	log := logger.FromContext(ctx)

	games, err := j.Lichess.FetchGames(ctx, j.Profile.Username, j.LichessMax)
	if err != nil {
		return nil, err
	}

	out := make([]models.StoredGame, 0, len(games))
	for _, g := range games {
		out = append(out, models.StoredGame{
			ProfileID:      j.Profile.ID,
			ExternalID:     g.ID,
			NormalizedGame: lichess.Normalize(g, j.Profile.Username),
		})
	}

	log.Debug("normalized %d lichess games", len(out))
	return out, nil
}
