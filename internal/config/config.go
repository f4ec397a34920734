package config

import (
	"github.com/maxviazov/football-match-engine/internal/logger"
)

type Config struct {
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Simulation SimulationConfig    `mapstructure:"simulation"`
}

// SimulationConfig holds the knobs the fixture service applies when a club
// has no saved tactic.
type SimulationConfig struct {
	SeedPrefix        string `mapstructure:"seed_prefix" validate:"required"`
	DefaultFormation  string `mapstructure:"default_formation" validate:"required"`
	DefaultAggression int    `mapstructure:"default_aggression" validate:"gte=0,lte=100"`
	DefaultPressure   int    `mapstructure:"default_pressure" validate:"gte=0,lte=100"`
}
