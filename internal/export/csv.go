// Package export writes the flat tabular outputs of a scrape run.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/tyler180/nba-roster-stats/internal/espn"
)

// Export file names, kept stable so downstream notebooks keep working.
const (
	PlayersFile = "NBA_roster_info_all_players.csv"
	CareerFile  = "NBA_player_career_stats_all_players.csv"
	JoinedFile  = "NBA_player_info_and_stats_joined_clean.csv"
)

var playerColumns = []string{"id", "name", "team", "position", "age", "height", "weight", "college", "salary"}

// WriteAll writes the three exports into dir, fully overwriting any previous
// run, and returns the paths written: the raw player table, the raw career
// table, and the joined cleaned table.
func WriteAll(dir string, players []espn.Player, career map[string]espn.CareerStats) ([]string, error) {
	paths := []string{
		filepath.Join(dir, PlayersFile),
		filepath.Join(dir, CareerFile),
		filepath.Join(dir, JoinedFile),
	}
	if err := writeCSV(paths[0], playersRows(players)); err != nil {
		return nil, err
	}
	if err := writeCSV(paths[1], careerRows(players, career)); err != nil {
		return nil, err
	}
	if err := writeCSV(paths[2], joinedRows(players, career)); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	return errors.Wrapf(f.Close(), "close %s", filepath.Base(path))
}

func playersRows(players []espn.Player) [][]string {
	rows := make([][]string, 0, len(players)+1)
	rows = append(rows, playerColumns)
	for _, p := range players {
		rows = append(rows, []string{
			p.ID, p.Name, p.Team, p.Pos, strconv.Itoa(p.Age),
			p.Height, p.Weight, p.College, p.SalaryRaw,
		})
	}
	return rows
}

func careerRows(players []espn.Player, career map[string]espn.CareerStats) [][]string {
	header := append([]string{"id", "name"}, espn.CareerColumns()...)
	rows := [][]string{header}
	// roster order keeps the export deterministic
	for _, p := range players {
		c, ok := career[p.ID]
		if !ok {
			continue
		}
		row := []string{p.ID, p.Name}
		for _, v := range c.Values() {
			row = append(row, formatStat(v))
		}
		rows = append(rows, row)
	}
	return rows
}

// joinedRows left-joins player attributes with career stats on player ID and
// normalizes height, weight and salary. A player without career stats keeps
// the attribute columns and leaves every stat column empty; an undisclosed
// salary is an empty cell, not zero.
func joinedRows(players []espn.Player, career map[string]espn.CareerStats) [][]string {
	header := append([]string{"id", "name", "team", "position", "age", "height_in", "weight_lb", "college", "salary"},
		espn.CareerColumns()...)
	rows := [][]string{header}
	for _, p := range players {
		row := []string{
			p.ID, p.Name, p.Team, p.Pos, strconv.Itoa(p.Age),
			normalized(espn.ConvertHeight, p.Height),
			normalized(espn.ConvertWeight, p.Weight),
			p.College,
			salaryCell(p.Salary),
		}
		if c, ok := career[p.ID]; ok {
			for _, v := range c.Values() {
				row = append(row, formatStat(v))
			}
		} else {
			row = append(row, make([]string, len(espn.CareerColumns()))...)
		}
		rows = append(rows, row)
	}
	return rows
}

func normalized(convert func(string) (float64, error), raw string) string {
	v, err := convert(raw)
	if err != nil {
		return ""
	}
	return formatStat(v)
}

func salaryCell(s espn.Salary) string {
	if !s.Disclosed {
		return ""
	}
	return strconv.Itoa(s.Amount)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
