package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tyler180/nba-roster-stats/internal/espn"
	"github.com/tyler180/nba-roster-stats/internal/report"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	teams, err := espn.FetchTeams(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("locate team rosters")
	}
	log.Info().Int("teams", len(teams)).Msg("team directory scraped")

	delay := espn.TeamDelay()
	summaries := make([]report.TeamSummary, 0, len(teams))
	for _, team := range teams {
		players, err := espn.FetchRoster(ctx, team)
		if err != nil {
			if errors.Is(err, espn.ErrNoPlayers) {
				log.Warn().Str("team", team.Name).Msg("no player entries matched; skipping team")
				time.Sleep(delay)
				continue
			}
			log.Fatal().Err(err).Str("url", team.RosterURL).Msg("fetch roster")
		}

		s, ok := report.Summarize(team.Name, players)
		if !ok {
			log.Warn().Str("team", team.Name).Msg("no disclosed salaries; excluded from rankings")
		} else {
			summaries = append(summaries, s)
		}
		log.Info().Str("team", team.Name).Int("players", len(players)).Int("disclosed", s.Disclosed).Msg("roster scraped")
		time.Sleep(delay)
	}

	report.WriteAverageReport(os.Stdout, summaries)
	report.WriteTopSalaryReport(os.Stdout, summaries)
}
