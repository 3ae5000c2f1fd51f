package models

import "time"

// Platform identifies which site a game was played on.
type Platform string

const (
	PlatformChessCom Platform = "chess.com"
	PlatformLichess  Platform = "lichess"
)

// Result is the outcome of a game from the viewing player's perspective.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Color is the side the viewing player held in a game.
type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// UnknownOpening is the sentinel used when an opening cannot be determined.
const UnknownOpening = "Unknown"

// NormalizedGame is the common representation both platform parsers produce.
// Every field is fully resolved: a missing opening becomes UnknownOpening and
// a missing move list becomes 0, never an absent value.
type NormalizedGame struct {
	Platform Platform  `json:"platform"`
	Result   Result    `json:"result"`
	Color    Color     `json:"color"`
	Opening  string    `json:"opening"`
	Date     time.Time `json:"date"`
	Moves    int       `json:"moves"`
}

// StoredGame is a NormalizedGame as persisted for a profile. ExternalID is the
// platform's identifier for the game (chess.com game URL, lichess game id) and
// is the upsert key.
type StoredGame struct {
	ID         int64  `json:"id"`
	ProfileID  int64  `json:"profile_id"`
	ExternalID string `json:"external_id"`
	NormalizedGame
	CreatedAt time.Time `json:"created_at"`
}

// Profile is a tracked player identity. The same username is used against both
// platforms when syncing.
type Profile struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	CreatedAt  time.Time  `json:"created_at"`
	LastSyncAt *time.Time `json:"last_sync_at"`
}

// GameFilter narrows game listings.
type GameFilter struct {
	ProfileID int64
	Platform  Platform
	Result    Result
	Opening   string
	Limit     int
	Offset    int
}
