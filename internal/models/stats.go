package models

// OpeningStats is the per-opening performance row. Entries are keyed by the
// exact opening string; no fuzzy merging is attempted.
type OpeningStats struct {
	Name    string  `json:"name"`
	Total   int     `json:"total"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Draws   int     `json:"draws"`
	WinRate float64 `json:"win_rate"`
}

// GameStats is the aggregate summary derived from a list of normalized games.
// BestOpening, WorstOpening and Trend are nil when there is no basis for them.
type GameStats struct {
	TotalGames int `json:"total_games"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Draws      int `json:"draws"`

	OverallWinRate float64 `json:"overall_win_rate"`

	WhiteGames   int     `json:"white_games"`
	WhiteWins    int     `json:"white_wins"`
	WhiteWinRate float64 `json:"white_win_rate"`
	BlackGames   int     `json:"black_games"`
	BlackWins    int     `json:"black_wins"`
	BlackWinRate float64 `json:"black_win_rate"`

	AvgMoves float64 `json:"avg_moves"`

	MostPlayed   []OpeningStats `json:"most_played"`
	BestOpening  *OpeningStats  `json:"best_opening,omitempty"`
	WorstOpening *OpeningStats  `json:"worst_opening,omitempty"`

	// Trend is the signed win-rate delta against a caller-supplied prior
	// period: positive improving, negative declining, zero stable.
	Trend *float64 `json:"trend,omitempty"`
}
