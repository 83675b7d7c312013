package espn

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTeams means the directory page fetched fine but no team links matched,
// which almost always means the page layout changed.
var ErrNoTeams = errors.New("no team links found on directory page")

var teamHrefRe = regexp.MustCompile(`/nba/team/_/name/(\w+)/([\w-]+)`)

// FetchTeams scrapes the league directory page and returns one entry per
// team, with its roster page URL built from the known template.
func FetchTeams(ctx context.Context) ([]Team, error) {
	html, err := getText(ctx, directoryURL)
	if err != nil {
		return nil, fmt.Errorf("fetch team directory: %w", err)
	}
	return ParseTeamDirectory(html)
}

// ParseTeamDirectory extracts (slug, name) pairs from anchors linking to
// per-team pages. Duplicate links to the same team collapse to one entry;
// document order is preserved.
func ParseTeamDirectory(html string) ([]Team, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse team directory: %w", err)
	}

	seen := make(map[string]bool, 30)
	teams := make([]Team, 0, 30)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		m := teamHrefRe.FindStringSubmatch(a.AttrOr("href", ""))
		if m == nil {
			return
		}
		slug, name := m[1], m[2]
		if seen[slug] {
			return
		}
		seen[slug] = true
		teams = append(teams, Team{
			Slug:      slug,
			Name:      name,
			RosterURL: fmt.Sprintf(rosterURLTmpl, slug, name),
		})
	})
	if len(teams) == 0 {
		return nil, ErrNoTeams
	}
	return teams, nil
}
