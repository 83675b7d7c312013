package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"github.com/tyler180/nba-roster-stats/internal/espn"
	"github.com/tyler180/nba-roster-stats/internal/store"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatal().Str("env", k).Msg("missing env")
	}
	return v
}

func handler(ctx context.Context) error {
	mode := strings.ToLower(getenv("MODE", "all")) // players | career | all

	rosterTable := mustenv("ROSTER_TABLE_NAME")
	careerTable := getenv("CAREER_TABLE_NAME", "")

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	ddbc := ddb.NewFromConfig(cfg)

	teams, err := espn.FetchTeams(ctx)
	if err != nil {
		return err
	}

	teamDelay := espn.TeamDelay()
	var players []espn.Player
	for _, team := range teams {
		roster, err := espn.FetchRoster(ctx, team)
		if err != nil {
			return err
		}
		players = append(players, roster...)
		time.Sleep(teamDelay)
	}

	// 1) Ingest raw roster rows
	if mode == "players" || mode == "all" {
		if err := store.PutPlayerRows(ctx, ddbc, rosterTable, players); err != nil {
			return err
		}
		log.Info().Int("rows", len(players)).Str("table", rosterTable).Msg("OK ingest: roster rows")
	}

	// 2) Ingest career totals per player
	if (mode == "career" || mode == "all") && careerTable != "" {
		playerDelay := espn.PlayerDelay()
		rows := make([]espn.CareerStats, 0, len(players))
		for _, p := range players {
			stats, found, err := espn.FetchCareerStats(ctx, p.ID)
			switch {
			case err != nil:
				log.Error().Err(err).Str("player", p.Name).Msg("career stats unparseable; skipping")
			case !found:
				log.Warn().Str("player", p.Name).Msg("no career stats")
			default:
				rows = append(rows, stats)
			}
			time.Sleep(playerDelay)
		}
		if err := store.PutCareerRows(ctx, ddbc, careerTable, rows); err != nil {
			return err
		}
		log.Info().Int("rows", len(rows)).Str("table", careerTable).Msg("OK ingest: career rows")
	}

	return nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(handler)
		return
	}
	if err := handler(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ingest failed")
	}
}
