package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/tyler180/nba-roster-stats/internal/espn"
	"github.com/tyler180/nba-roster-stats/internal/export"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	teams, err := espn.FetchTeams(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("locate team rosters")
	}
	log.Info().Int("teams", len(teams)).Msg("team directory scraped")

	teamDelay := espn.TeamDelay()
	var players []espn.Player
	for _, team := range teams {
		roster, err := espn.FetchRoster(ctx, team)
		if err != nil {
			log.Fatal().Err(err).Str("url", team.RosterURL).Msg("fetch roster")
		}
		log.Info().Str("team", team.Name).Int("players", len(roster)).Msg("gathering player info")
		players = append(players, roster...)
		time.Sleep(teamDelay)
	}

	log.Info().Int("players", len(players)).Msg("gathering career stats on all players (may take a while)")
	playerDelay := espn.PlayerDelay()
	career := make(map[string]espn.CareerStats, len(players))
	for _, p := range players {
		stats, found, err := espn.FetchCareerStats(ctx, p.ID)
		switch {
		case err != nil:
			// malformed record: skip but keep it loud, this is not the rookie case
			log.Error().Err(err).Str("player", p.Name).Str("id", p.ID).Msg("career stats unparseable; skipping")
		case !found:
			log.Warn().Str("player", p.Name).Msg("no career stats; rookie with no games played")
		default:
			career[p.ID] = stats
		}
		time.Sleep(playerDelay)
	}

	outDir := getenv("OUT_DIR", ".")
	paths, err := export.WriteAll(outDir, players, career)
	if err != nil {
		log.Fatal().Err(err).Msg("write exports")
	}
	for _, p := range paths {
		log.Info().Str("path", p).Msg("export written")
	}

	if bucket := os.Getenv("EXPORT_BUCKET"); bucket != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("load aws config")
		}
		up := export.NewUploader(s3.NewFromConfig(cfg), bucket, getenv("EXPORT_PREFIX", "nba"))
		if err := up.UploadFiles(ctx, paths); err != nil {
			log.Fatal().Err(err).Msg("upload exports")
		}
		log.Info().Str("bucket", bucket).Msg("exports uploaded")
	}
}
