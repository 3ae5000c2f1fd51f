// Package insight prepares the condensed inputs the downstream
// insight-generation collaborator consumes: a per-game projection and the
// aggregate summary rendered as structured text. The language-model call
// itself lives outside this repository.
package insight

import (
	"fmt"
	"strings"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

// GameSummary is the condensed per-game projection. Date keeps only the
// date portion of the normalized instant.
type GameSummary struct {
	Platform models.Platform `json:"platform"`
	Result   models.Result   `json:"result"`
	Color    models.Color    `json:"color"`
	Opening  string          `json:"opening"`
	Date     string          `json:"date"`
	Moves    int             `json:"moves"`
}

// Project condenses normalized games into their summary projection, in the
// same order.
func Project(games []models.NormalizedGame) []GameSummary {
	out := make([]GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, GameSummary{
			Platform: g.Platform,
			Result:   g.Result,
			Color:    g.Color,
			Opening:  g.Opening,
			Date:     g.Date.Format("2006-01-02"),
			Moves:    g.Moves,
		})
	}
	return out
}

// FormatStats renders a GameStats summary as structured text.
func FormatStats(s models.GameStats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total games: %d (W%d / L%d / D%d)\n", s.TotalGames, s.Wins, s.Losses, s.Draws)
	fmt.Fprintf(&sb, "Overall win rate: %.1f%%\n", s.OverallWinRate)
	fmt.Fprintf(&sb, "As white: %d games, %.1f%% win rate\n", s.WhiteGames, s.WhiteWinRate)
	fmt.Fprintf(&sb, "As black: %d games, %.1f%% win rate\n", s.BlackGames, s.BlackWinRate)
	fmt.Fprintf(&sb, "Average game length: %.1f moves\n", s.AvgMoves)

	if len(s.MostPlayed) > 0 {
		sb.WriteString("Most played openings:\n")
		for _, o := range s.MostPlayed {
			fmt.Fprintf(&sb, "  - %s: %d games, %.1f%% win rate (W%d / L%d / D%d)\n",
				o.Name, o.Total, o.WinRate, o.Wins, o.Losses, o.Draws)
		}
	}
	if s.BestOpening != nil {
		fmt.Fprintf(&sb, "Best opening: %s (%.1f%% over %d games)\n",
			s.BestOpening.Name, s.BestOpening.WinRate, s.BestOpening.Total)
	}
	if s.WorstOpening != nil {
		fmt.Fprintf(&sb, "Worst opening: %s (%.1f%% over %d games)\n",
			s.WorstOpening.Name, s.WorstOpening.WinRate, s.WorstOpening.Total)
	}
	if s.Trend != nil {
		fmt.Fprintf(&sb, "Win rate trend: %+.1f\n", *s.Trend)
	}

	return sb.String()
}
