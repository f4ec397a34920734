package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"

	"github.com/maxviazov/football-match-engine/internal/config"
	"github.com/maxviazov/football-match-engine/internal/logger"
	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository/memory"
	"github.com/maxviazov/football-match-engine/internal/service"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to the config file")
	fixturePath := pflag.StringP("fixture", "f", "fixtures/classico.yaml", "path to the fixture file")
	pretty := pflag.Bool("pretty", false, "indent the JSON result")
	pflag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	f, fixtureID, err := readFixture(*fixturePath)
	if err != nil {
		log.Fatalf("❌ Fixture loading failed: %v", err)
	}

	fixtures := memory.NewFixtures()
	clubs := memory.NewClubs()
	home := clubs.Add(f.Home)
	away := clubs.Add(f.Away)
	fixtures.Add(model.Fixture{ID: fixtureID, HomeClubID: home.ID, AwayClubID: away.ID})

	matches := memory.NewMatches()
	tx := memory.NewTxManager(fixtures, clubs, matches)

	svc := service.NewFixtureService(fixtures, clubs, matches, tx, clockwork.NewRealClock(), service.Settings{
		SeedPrefix:        cfg.Simulation.SeedPrefix,
		DefaultFormation:  cfg.Simulation.DefaultFormation,
		DefaultAggression: cfg.Simulation.DefaultAggression,
		DefaultPressure:   cfg.Simulation.DefaultPressure,
	}, appLogger)

	rec, err := svc.PlayFixture(context.Background(), fixtureID)
	if err != nil {
		appLogger.Fatal().Err(err).Str("fixture", *fixturePath).Msg("fixture could not be played")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		appLogger.Fatal().Err(err).Msg("write result failed")
	}
}
