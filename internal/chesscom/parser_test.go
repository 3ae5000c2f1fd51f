package chesscom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imRanDan/chess-analytics-tool/internal/chesscom"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

func game(whiteUser, whiteResult, blackUser, blackResult string) chesscom.MonthlyGame {
	return chesscom.MonthlyGame{
		URL:     "https://www.chess.com/game/live/123456",
		EndTime: 1718000000,
		White:   chesscom.Player{Username: whiteUser, Result: whiteResult},
		Black:   chesscom.Player{Username: blackUser, Result: blackResult},
	}
}

func TestNormalize_ResultMapping(t *testing.T) {
	tests := []struct {
		name   string
		result string
		want   models.Result
	}{
		{"win", "win", models.ResultWin},
		{"stalemate is a draw", "stalemate", models.ResultDraw},
		{"agreed is a draw", "agreed", models.ResultDraw},
		{"repetition is a draw", "repetition", models.ResultDraw},
		{"insufficient is a draw", "insufficient", models.ResultDraw},
		{"50move is a draw", "50move", models.ResultDraw},
		{"timevsinsufficient is a draw", "timevsinsufficient", models.ResultDraw},
		{"checkmated is a loss", "checkmated", models.ResultLoss},
		{"resigned is a loss", "resigned", models.ResultLoss},
		{"timeout is a loss", "timeout", models.ResultLoss},
		{"unrecognized string is a loss", "somethingelse", models.ResultLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game("alice", tt.result, "bob", "win")
			got := chesscom.Normalize(g, "alice")
			assert.Equal(t, tt.want, got.Result)
		})
	}
}

func TestNormalize_SideDetermination(t *testing.T) {
	g := game("Alice", "win", "bob", "checkmated")

	asWhite := chesscom.Normalize(g, "alice")
	assert.Equal(t, models.ColorWhite, asWhite.Color, "white username match is case-insensitive")
	assert.Equal(t, models.ResultWin, asWhite.Result)

	asBlack := chesscom.Normalize(g, "BOB")
	assert.Equal(t, models.ColorBlack, asBlack.Color)
	assert.Equal(t, models.ResultLoss, asBlack.Result)
}

func TestNormalize_UnmatchedUsernameDefaultsToBlack(t *testing.T) {
	// A username matching neither side falls through to black; this source
	// behavior is load-bearing for existing callers.
	g := game("alice", "win", "bob", "checkmated")
	got := chesscom.Normalize(g, "charlie")
	assert.Equal(t, models.ColorBlack, got.Color)
	assert.Equal(t, models.ResultLoss, got.Result)
}

func TestNormalize_OpeningFromECOURL(t *testing.T) {
	g := game("alice", "win", "bob", "checkmated")
	g.ECOUrl = "https://www.chess.com/openings/Italian-Game-Giuoco-Piano-4...Nf6"

	got := chesscom.Normalize(g, "alice")
	assert.Contains(t, got.Opening, "Italian Game Giuoco Piano 4")
}

func TestNormalize_OpeningFromPGNTags(t *testing.T) {
	t.Run("opening tag wins", func(t *testing.T) {
		g := game("alice", "win", "bob", "checkmated")
		g.PGN = "[Event \"Live Chess\"]\n[Opening \"Sicilian Defense\"]\n[ECO \"B20\"]\n\n1. e4 c5 1-0"
		got := chesscom.Normalize(g, "alice")
		assert.Equal(t, "Sicilian Defense", got.Opening)
	})

	t.Run("eco url tag", func(t *testing.T) {
		g := game("alice", "win", "bob", "checkmated")
		g.PGN = "[Event \"Live Chess\"]\n[ECOUrl \"https://www.chess.com/openings/Queens-Pawn-Opening\"]\n\n1. d4 d5 1-0"
		got := chesscom.Normalize(g, "alice")
		assert.Equal(t, "Queens Pawn Opening", got.Opening)
	})

	t.Run("bare eco code", func(t *testing.T) {
		g := game("alice", "win", "bob", "checkmated")
		g.PGN = "[Event \"Live Chess\"]\n[ECO \"B20\"]\n\n1. e4 c5 1-0"
		got := chesscom.Normalize(g, "alice")
		assert.Equal(t, "B20", got.Opening)
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		g := game("alice", "win", "bob", "checkmated")
		got := chesscom.Normalize(g, "alice")
		assert.Equal(t, models.UnknownOpening, got.Opening)
	})
}

func TestNormalize_MoveCount(t *testing.T) {
	g := game("alice", "win", "bob", "checkmated")
	g.PGN = "[Event \"Live Chess\"]\n\n1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 1-0"

	got := chesscom.Normalize(g, "alice")
	assert.Equal(t, 4, got.Moves)
}

func TestNormalize_NoPGNYieldsZeroMoves(t *testing.T) {
	g := game("alice", "win", "bob", "checkmated")
	got := chesscom.Normalize(g, "alice")
	assert.Equal(t, 0, got.Moves)
}

func TestNormalize_Date(t *testing.T) {
	g := game("alice", "win", "bob", "checkmated")
	got := chesscom.Normalize(g, "alice")

	assert.Equal(t, time.Unix(1718000000, 0).UTC(), got.Date)
	assert.Equal(t, time.UTC, got.Date.Location())
}

func TestNormalize_Platform(t *testing.T) {
	g := game("alice", "win", "bob", "checkmated")
	got := chesscom.Normalize(g, "alice")
	assert.Equal(t, models.PlatformChessCom, got.Platform)
}
