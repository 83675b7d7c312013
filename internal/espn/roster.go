package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoPlayers means a roster page fetched fine but neither extraction
// strategy matched any player entry. Callers must treat this differently
// from a roster that simply has no disclosed salaries.
var ErrNoPlayers = errors.New("no player entries found on roster page")

// FetchRoster retrieves one team's roster page and extracts its players.
// The embedded JSON fragments are tried first; the HTML table is the
// fallback for the older page layout.
func FetchRoster(ctx context.Context, team Team) ([]Player, error) {
	html, err := getText(ctx, team.RosterURL)
	if err != nil {
		return nil, fmt.Errorf("fetch roster %s: %w", team.Name, err)
	}
	players, err := ParseRosterEmbedded(html, team.Name)
	if errors.Is(err, ErrNoPlayers) {
		return ParseRosterTable(html, team.Name)
	}
	return players, err
}

// Player entries are embedded in page scripts as compact object fragments:
//
//	{"name":"Stephen Curry","href":"https://www.espn.com/nba/player/...","id":"3975","position":"PG",...}
var playerFragRe = regexp.MustCompile(`\{"name":"([^"]+)","href":"https?://www\.espn\.com/nba/player/[^"]*",([^{}]*)\}`)

type rosterEntry struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	College  string `json:"college"`
	Salary   string `json:"salary"`
}

// ParseRosterEmbedded extracts players from the embedded object fragments by
// reshaping each fragment into a standalone object literal and decoding its
// attribute map.
func ParseRosterEmbedded(html, team string) ([]Player, error) {
	frags := playerFragRe.FindAllStringSubmatch(html, -1)
	if len(frags) == 0 {
		return nil, ErrNoPlayers
	}

	players := make([]Player, 0, len(frags))
	for _, m := range frags {
		var e rosterEntry
		if err := json.Unmarshal([]byte("{"+m[2]+"}"), &e); err != nil {
			return nil, fmt.Errorf("decode roster entry for %q: %w", m[1], err)
		}
		players = append(players, Player{
			ID:        e.ID,
			Name:      cleanName(m[1]),
			Team:      team,
			Pos:       e.Position,
			Age:       e.Age,
			Height:    e.Height,
			Weight:    e.Weight,
			College:   e.College,
			SalaryRaw: e.Salary,
			Salary:    ParseSalary(e.Salary),
		})
	}
	return players, nil
}

var playerHrefRe = regexp.MustCompile(`/nba/player/_/id/(\d+)(?:/|"|$)`)

type rosterHeader struct {
	idxName    int
	idxPos     int
	idxAge     int
	idxHeight  int
	idxWeight  int
	idxCollege int
	idxSalary  int
}

func mapRosterTableHeader(table *goquery.Selection) (rosterHeader, bool) {
	h := rosterHeader{-1, -1, -1, -1, -1, -1, -1}
	head := table.Find("thead tr").First()
	if head.Length() == 0 {
		head = table.Find("tr").First()
	}
	head.Find("th,td").Each(func(i int, cell *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(cell.Text())) {
		case "name", "player":
			h.idxName = i
		case "pos", "position":
			h.idxPos = i
		case "age":
			h.idxAge = i
		case "ht", "height":
			h.idxHeight = i
		case "wt", "weight":
			h.idxWeight = i
		case "college":
			h.idxCollege = i
		case "salary":
			h.idxSalary = i
		}
	})
	ok := h.idxName >= 0 && h.idxPos >= 0 && h.idxSalary >= 0
	return h, ok
}

func extractPlayerIDFromCell(cell *goquery.Selection) string {
	id := ""
	cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if m := playerHrefRe.FindStringSubmatch(a.AttrOr("href", "")); m != nil {
			id = m[1]
			return false
		}
		return true
	})
	return id
}

// ParseRosterTable extracts players from the roster HTML table, mapping
// columns by header text so a reordered table still parses.
func ParseRosterTable(html, team string) ([]Player, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse roster page: %w", err)
	}

	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, cand *goquery.Selection) bool {
		if _, ok := mapRosterTableHeader(cand); ok {
			table = cand
			return false
		}
		return true
	})
	if table == nil {
		return nil, ErrNoPlayers
	}
	hdr, _ := mapRosterTableHeader(table)

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		rows = table.Find("tr")
	}

	var players []Player
	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("th,td")
		if cells.Length() == 0 {
			return
		}
		get := func(idx int) string {
			if idx < 0 || idx >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		nameCell := cells.Eq(hdr.idxName)
		id := extractPlayerIDFromCell(nameCell)
		if id == "" {
			// header or spacer row
			return
		}
		salaryRaw := get(hdr.idxSalary)
		players = append(players, Player{
			ID:        id,
			Name:      cleanName(nameCell.Text()),
			Team:      team,
			Pos:       get(hdr.idxPos),
			Age:       Atoi(get(hdr.idxAge), 0),
			Height:    get(hdr.idxHeight),
			Weight:    get(hdr.idxWeight),
			College:   get(hdr.idxCollege),
			SalaryRaw: salaryRaw,
			Salary:    ParseSalary(salaryRaw),
		})
	})
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	return players, nil
}
