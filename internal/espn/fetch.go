package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	directoryURL   = "https://www.espn.com/nba/teams"
	rosterURLTmpl  = "https://www.espn.com/nba/team/roster/_/name/%s/%s"
	playerStatsURL = "https://www.espn.com/nba/player/stats/_/id/%s"
)

const ua = "Mozilla/5.0 (compatible; NBARosterBot/1.0; +https://example.com/bot)"

var httpCli = &http.Client{Timeout: 30 * time.Second}

// getText performs a single blocking GET. No retries: a failed fetch is fatal
// to the run and the error names the URL.
func getText(ctx context.Context, url string) (string, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp, err := httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(b), nil
}

func envDelay(key string, def int) time.Duration {
	ms := def
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && v >= 0 && v <= 5000 {
		ms = v
	}
	return time.Duration(ms) * time.Millisecond
}

// TeamDelay is the politeness pause after each roster fetch (env TEAM_DELAY_MS).
func TeamDelay() time.Duration { return envDelay("TEAM_DELAY_MS", 500) }

// PlayerDelay is the politeness pause after each player stats fetch
// (env PLAYER_DELAY_MS).
func PlayerDelay() time.Duration { return envDelay("PLAYER_DELAY_MS", 300) }
