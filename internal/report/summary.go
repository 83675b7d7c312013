// Package report computes and prints the salary summary reports.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/tyler180/nba-roster-stats/internal/espn"
)

// TeamSummary is one team's salary aggregates over players with disclosed
// salaries.
type TeamSummary struct {
	Team          string
	AverageSalary float64
	TopPlayer     string
	TopSalary     int
	Disclosed     int
}

// Summarize computes salary aggregates for one team. ok is false when no
// player on the roster has a disclosed salary; such teams are excluded from
// the ranked reports so the average never divides by zero.
func Summarize(team string, players []espn.Player) (TeamSummary, bool) {
	s := TeamSummary{Team: team}
	sum := 0
	for _, p := range players {
		if !p.Salary.Disclosed {
			continue
		}
		sum += p.Salary.Amount
		s.Disclosed++
		// strictly-greater keeps the first player seen on a tie
		if p.Salary.Amount > s.TopSalary || s.Disclosed == 1 {
			s.TopPlayer = p.Name
			s.TopSalary = p.Salary.Amount
		}
	}
	if s.Disclosed == 0 {
		return TeamSummary{Team: team}, false
	}
	s.AverageSalary = float64(sum) / float64(s.Disclosed)
	return s, true
}

const labelWidth = 28

// WriteAverageReport prints teams ranked by ascending mean salary.
func WriteAverageReport(w io.Writer, summaries []TeamSummary) {
	ranked := append([]TeamSummary(nil), summaries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageSalary < ranked[j].AverageSalary
	})
	fmt.Fprintf(w, "\nAverage Team Salaries in the NBA\n(Average amount spent on each player)\n\n")
	for _, s := range ranked {
		fmt.Fprintf(w, "%-*s %.2f\n", labelWidth, s.Team, s.AverageSalary)
	}
}

// WriteTopSalaryReport prints each team's highest-paid player, teams ranked
// by ascending top salary.
func WriteTopSalaryReport(w io.Writer, summaries []TeamSummary) {
	ranked := append([]TeamSummary(nil), summaries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TopSalary < ranked[j].TopSalary
	})
	fmt.Fprintf(w, "\nPlayer with the highest salary per team in the NBA\n\n")
	for _, s := range ranked {
		fmt.Fprintf(w, "%-*s %s %d\n", labelWidth, s.Team, s.TopPlayer, s.TopSalary)
	}
}
