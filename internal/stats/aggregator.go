package stats

import (
	"math"
	"sort"

	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

// minOpeningSample is the minimum game count before an opening is eligible
// for best/worst ranking. Keeps single-game flukes out of the signal.
const minOpeningSample = 2

// mostPlayedLimit caps the most-played opening leaderboard.
const mostPlayedLimit = 5

// Compute derives a GameStats summary from a list of normalized games. The
// input is never mutated and repeated calls on the same list produce
// identical output. A nil or empty list yields zeroed stats with absent
// best/worst openings.
func Compute(games []models.NormalizedGame) models.GameStats {
	out := models.GameStats{TotalGames: len(games)}

	totalMoves := 0
	for _, g := range games {
		totalMoves += g.Moves

		switch g.Result {
		case models.ResultWin:
			out.Wins++
		case models.ResultLoss:
			out.Losses++
		case models.ResultDraw:
			out.Draws++
		}

		if g.Color == models.ColorWhite {
			out.WhiteGames++
			if g.Result == models.ResultWin {
				out.WhiteWins++
			}
		} else {
			out.BlackGames++
			if g.Result == models.ResultWin {
				out.BlackWins++
			}
		}
	}

	out.OverallWinRate = winRate(out.Wins, out.TotalGames)
	out.WhiteWinRate = winRate(out.WhiteWins, out.WhiteGames)
	out.BlackWinRate = winRate(out.BlackWins, out.BlackGames)

	if out.TotalGames > 0 {
		out.AvgMoves = round1(float64(totalMoves) / float64(out.TotalGames))
	}

	openings := groupOpenings(games)
	out.MostPlayed = mostPlayed(openings)
	out.BestOpening, out.WorstOpening = bestAndWorst(openings)

	return out
}

// ComputeWithTrend is Compute plus the recency trend signal: the signed delta
// between the computed overall win rate and a caller-supplied prior-period
// rate. Window selection is the caller's concern; the delta is only carried
// through.
func ComputeWithTrend(games []models.NormalizedGame, previousWinRate float64) models.GameStats {
	out := Compute(games)
	delta := round1(out.OverallWinRate - previousWinRate)
	out.Trend = &delta
	return out
}

// winRate is the uniform rate formula: percentage to one decimal place,
// 0 when total is 0.
func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// groupOpenings buckets games by exact opening string, preserving
// first-appearance order. Blank openings fold into the Unknown sentinel.
func groupOpenings(games []models.NormalizedGame) []models.OpeningStats {
	index := make(map[string]int)
	var out []models.OpeningStats

	for _, g := range games {
		name := g.Opening
		if name == "" {
			name = models.UnknownOpening
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.OpeningStats{Name: name})
		}

		out[i].Total++
		switch g.Result {
		case models.ResultWin:
			out[i].Wins++
		case models.ResultLoss:
			out[i].Losses++
		case models.ResultDraw:
			out[i].Draws++
		}
	}

	for i := range out {
		out[i].WinRate = winRate(out[i].Wins, out[i].Total)
	}
	return out
}

// mostPlayed sorts opening groups descending by total, ties keeping grouping
// order, and truncates to the leaderboard limit.
func mostPlayed(openings []models.OpeningStats) []models.OpeningStats {
	ranked := make([]models.OpeningStats, len(openings))
	copy(ranked, openings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if len(ranked) > mostPlayedLimit {
		ranked = ranked[:mostPlayedLimit]
	}
	return ranked
}

// bestAndWorst selects the best and worst performing openings among those
// meeting the sample floor. Ties on both ends break toward the larger sample.
// When nothing qualifies the floor is ignored; with no openings at all both
// are nil.
func bestAndWorst(openings []models.OpeningStats) (best, worst *models.OpeningStats) {
	var qualified []models.OpeningStats
	for _, o := range openings {
		if o.Total >= minOpeningSample {
			qualified = append(qualified, o)
		}
	}

	pool := qualified
	if len(pool) == 0 {
		pool = openings
	}
	if len(pool) == 0 {
		return nil, nil
	}

	b, w := pool[0], pool[0]
	for _, o := range pool[1:] {
		if o.WinRate > b.WinRate || (o.WinRate == b.WinRate && o.Total > b.Total) {
			b = o
		}
		if o.WinRate < w.WinRate || (o.WinRate == w.WinRate && o.Total > w.Total) {
			w = o
		}
	}
	return &b, &w
}
