package espn

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The career totals row sits in the stats page scripts right before the
// "Regular Season Totals" block.
var careerRowRe = regexp.MustCompile(`\["Career","",(.*?)\]\},\{"ttl":"Regular Season Totals"`)

// ParseCareerTotals extracts the career totals record from a player stats
// page. found is false when the page carries no such record, the normal
// state for a player with no regular-season appearances. A non-nil err means
// the record was present but malformed, which is a parser bug or a layout
// change, never the rookie case.
func ParseCareerTotals(html string) (CareerStats, bool, error) {
	m := careerRowRe.FindStringSubmatch(html)
	if m == nil {
		return CareerStats{}, false, nil
	}

	vals, err := splitCareerTokens(m[1])
	if err != nil {
		return CareerStats{}, true, err
	}
	stats, err := careerStatsFromValues(vals)
	if err != nil {
		return CareerStats{}, true, err
	}
	return stats, true, nil
}

// splitCareerTokens turns the raw comma-separated record into a flat numeric
// sequence, splitting make-attempt pairs like "9.2-18.0" into two fields.
func splitCareerTokens(raw string) ([]float64, error) {
	raw = strings.ReplaceAll(raw, `"`, "")
	vals := make([]float64, 0, careerFieldCount)
	for _, tok := range strings.Split(raw, ",") {
		for _, part := range strings.Split(tok, "-") {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("career token %q: %w", part, err)
			}
			vals = append(vals, f)
		}
	}
	return vals, nil
}

// FetchCareerStats fetches and parses one player's career totals.
func FetchCareerStats(ctx context.Context, playerID string) (CareerStats, bool, error) {
	html, err := getText(ctx, fmt.Sprintf(playerStatsURL, playerID))
	if err != nil {
		return CareerStats{}, false, fmt.Errorf("fetch player stats: %w", err)
	}
	stats, found, err := ParseCareerTotals(html)
	if err != nil {
		return CareerStats{}, found, err
	}
	stats.PlayerID = playerID
	return stats, found, nil
}
