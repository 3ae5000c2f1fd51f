package lichess

import (
	"strings"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

// Normalize converts a raw Lichess game into the shared normalized shape from
// the viewer's perspective. It is a pure function and never fails: anything it
// cannot resolve degrades to the documented sentinels.
func Normalize(raw ExportGame, username string) models.NormalizedGame {
	color := models.ColorBlack
	if strings.EqualFold(sideName(raw.Players.White), username) {
		color = models.ColorWhite
	}

	return models.NormalizedGame{
		Platform: models.PlatformLichess,
		Result:   normalizeResult(raw.Winner, color),
		Color:    color,
		Opening:  resolveOpening(raw.Opening),
		Date:     time.UnixMilli(raw.CreatedAt).UTC(),
		Moves:    countMoves(raw),
	}
}

// sideName resolves a side's display identity: registered name, falling back
// to account id, falling back to empty string for anonymous players.
func sideName(p Player) string {
	if p.User == nil {
		return ""
	}
	if p.User.Name != "" {
		return p.User.Name
	}
	return p.User.ID
}

// normalizeResult maps the declared winner side to the viewer's outcome. A
// game without a declared winner is a draw regardless of status, which folds
// aborted and timed-out winner-less games into the draw bucket. Downstream
// statistics are calibrated against this behavior.
func normalizeResult(winner string, color models.Color) models.Result {
	if winner == "" {
		return models.ResultDraw
	}
	if winner == string(color) {
		return models.ResultWin
	}
	return models.ResultLoss
}

func resolveOpening(o *Opening) string {
	if o != nil && strings.TrimSpace(o.Name) != "" {
		return strings.TrimSpace(o.Name)
	}
	return models.UnknownOpening
}

// countMoves converts half-moves to full moves, rounding up. The move list is
// preferred; the opening ply count is the fallback when moves are absent.
func countMoves(raw ExportGame) int {
	if raw.Moves != "" {
		plies := len(strings.Fields(raw.Moves))
		return (plies + 1) / 2
	}
	if raw.Opening != nil && raw.Opening.Ply > 0 {
		return (raw.Opening.Ply + 1) / 2
	}
	return 0
}
