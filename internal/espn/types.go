// Package espn scrapes the league directory, team rosters and per-player
// career totals from the public site's pages. Extraction is coupled to the
// current page layout and is expected to break when that layout changes.
package espn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Team is one league team discovered on the directory page.
type Team struct {
	Slug      string // URL path token, e.g. "gs"
	Name      string // display fragment, e.g. "golden-state-warriors"
	RosterURL string
}

// Salary distinguishes a published amount from the undisclosed placeholder.
// The zero value is "not disclosed"; Amount is only meaningful when
// Disclosed is true.
type Salary struct {
	Amount    int
	Disclosed bool
}

// Player is one roster entry. Height, Weight and SalaryRaw keep the page's
// original strings for the raw export; Salary carries the parsed value.
type Player struct {
	ID        string
	Name      string
	Team      string
	Pos       string
	Age       int
	Height    string // e.g. `6' 3"`
	Weight    string // e.g. "190 lbs"
	College   string
	SalaryRaw string
	Salary    Salary
}

// CareerStats is the single all-time regular-season totals row for a player.
// Field order mirrors the page's career record after make-attempt pairs are
// split apart.
type CareerStats struct {
	PlayerID         string
	GamesPlayed      float64
	GamesStarted     float64
	Minutes          float64
	FGMade           float64
	FGAttempted      float64
	FGPct            float64
	ThreePtMade      float64
	ThreePtAttempted float64
	ThreePtPct       float64
	FTMade           float64
	FTAttempted      float64
	FTPct            float64
	OffRebounds      float64
	DefRebounds      float64
	Rebounds         float64
	Assists          float64
	Blocks           float64
	Steals           float64
	Fouls            float64
	Turnovers        float64
	Points           float64
}

const careerFieldCount = 21

// CareerColumns returns the export header for the 21 stat fields, in the
// same order as Values.
func CareerColumns() []string {
	return []string{
		"GP", "GS", "MIN",
		"FGM", "FGA", "FG%",
		"3PTM", "3PTA", "3P%",
		"FTM", "FTA", "FT%",
		"OR", "DR", "REB",
		"AST", "BLK", "STL",
		"PF", "TO", "PTS",
	}
}

// Values returns the stat fields in column order.
func (c CareerStats) Values() []float64 {
	return []float64{
		c.GamesPlayed, c.GamesStarted, c.Minutes,
		c.FGMade, c.FGAttempted, c.FGPct,
		c.ThreePtMade, c.ThreePtAttempted, c.ThreePtPct,
		c.FTMade, c.FTAttempted, c.FTPct,
		c.OffRebounds, c.DefRebounds, c.Rebounds,
		c.Assists, c.Blocks, c.Steals,
		c.Fouls, c.Turnovers, c.Points,
	}
}

func careerStatsFromValues(vals []float64) (CareerStats, error) {
	if len(vals) != careerFieldCount {
		return CareerStats{}, fmt.Errorf("career record has %d fields, want %d", len(vals), careerFieldCount)
	}
	return CareerStats{
		GamesPlayed: vals[0], GamesStarted: vals[1], Minutes: vals[2],
		FGMade: vals[3], FGAttempted: vals[4], FGPct: vals[5],
		ThreePtMade: vals[6], ThreePtAttempted: vals[7], ThreePtPct: vals[8],
		FTMade: vals[9], FTAttempted: vals[10], FTPct: vals[11],
		OffRebounds: vals[12], DefRebounds: vals[13], Rebounds: vals[14],
		Assists: vals[15], Blocks: vals[16], Steals: vals[17],
		Fouls: vals[18], Turnovers: vals[19], Points: vals[20],
	}, nil
}

func Atoi(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

var wsRe = regexp.MustCompile(`\s+`)

func cleanName(s string) string {
	return wsRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
