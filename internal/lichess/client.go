package lichess

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/logger"
)

// Client talks to the public Lichess API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client with default timeouts against the public API.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://lichess.org",
	}
}

// NewWithBaseURL creates a Client against a custom base URL (used in tests).
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// ExportGame is the raw Lichess game record from the NDJSON export, at the
// field level the normalizer depends on. Winner is empty when the game ended
// without a declared winner; Opening and per-side User may be absent.
type ExportGame struct {
	ID        string   `json:"id"`
	Rated     bool     `json:"rated"`
	Speed     string   `json:"speed"`
	Status    string   `json:"status"`
	Winner    string   `json:"winner"`
	CreatedAt int64    `json:"createdAt"`
	Moves     string   `json:"moves"`
	Opening   *Opening `json:"opening"`
	Players   Players  `json:"players"`
}

// Opening is the declared opening descriptor of a Lichess game.
type Opening struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
	Ply  int    `json:"ply"`
}

// Players holds both side descriptors.
type Players struct {
	White Player `json:"white"`
	Black Player `json:"black"`
}

// Player is one side of a Lichess game. User is nil for anonymous players.
type Player struct {
	User   *User `json:"user"`
	Rating int   `json:"rating"`
}

// User is a registered Lichess account reference.
type User struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// FetchGames streams a user's recent games from the NDJSON export endpoint.
// max limits how many games are requested; 0 leaves the limit to the server.
func (c *Client) FetchGames(ctx context.Context, username string, max int) ([]ExportGame, error) {
	log := logger.FromContext(ctx).WithPrefix("lichess").WithField("username", username)

	url := fmt.Sprintf("%s/api/games/user/%s?opening=true&moves=true", c.baseURL, username)
	if max > 0 {
		url = fmt.Sprintf("%s&max=%d", url, max)
	}

	log.Debug("fetching games from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch games: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("games response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("games request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("lichess games status %d: %s", resp.StatusCode, string(body))
	}

	var games []ExportGame
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var g ExportGame
		if err := json.Unmarshal(line, &g); err != nil {
			// One malformed line should not abort the export stream.
			log.Warn("skipping malformed game line: %v", err)
			continue
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		log.Error("failed to read games stream: %v", err)
		return nil, err
	}

	log.Info("fetched %d games for user %s", len(games), username)
	return games, nil
}
