package chesscom

import (
	"strings"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
	"github.com/imRanDan/chess-analytics-tool/internal/pgn"
)

// drawResults are the chess.com per-side result strings that count as a draw.
// Anything that is not "win" and not in this set is a loss.
var drawResults = map[string]struct{}{
	"stalemate":          {},
	"insufficient":       {},
	"agreed":             {},
	"repetition":         {},
	"50move":             {},
	"timevsinsufficient": {},
}

// Normalize converts a raw chess.com game into the shared normalized shape
// from the viewer's perspective. It is a pure function and never fails:
// anything it cannot resolve degrades to the documented sentinels.
func Normalize(raw MonthlyGame, username string) models.NormalizedGame {
	// A username matching neither side falls through to black. Known source
	// behavior, kept so observable statistics do not shift.
	color := models.ColorBlack
	side := raw.Black
	if strings.EqualFold(raw.White.Username, username) {
		color = models.ColorWhite
		side = raw.White
	}

	return models.NormalizedGame{
		Platform: models.PlatformChessCom,
		Result:   normalizeResult(side.Result),
		Color:    color,
		Opening:  resolveOpening(raw),
		Date:     time.Unix(raw.EndTime, 0).UTC(),
		Moves:    pgn.CountMoves(raw.PGN),
	}
}

func normalizeResult(res string) models.Result {
	res = strings.ToLower(res)
	if res == "win" {
		return models.ResultWin
	}
	if _, ok := drawResults[res]; ok {
		return models.ResultDraw
	}
	return models.ResultLoss
}

// resolveOpening tries, in order: the record's ECO reference URL, the PGN
// [Opening] tag, the PGN [ECOUrl] tag, the PGN [ECO] code.
func resolveOpening(raw MonthlyGame) string {
	if name := pgn.OpeningFromECOURL(raw.ECOUrl); name != "" {
		return name
	}

	if raw.PGN != "" {
		headers := pgn.ParseHeaders(raw.PGN)
		if name := strings.TrimSpace(headers["Opening"]); name != "" {
			return name
		}
		if name := pgn.OpeningFromECOURL(headers["ECOUrl"]); name != "" {
			return name
		}
		if code := strings.TrimSpace(headers["ECO"]); code != "" {
			return code
		}
	}

	return models.UnknownOpening
}
