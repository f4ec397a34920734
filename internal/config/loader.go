package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/maxviazov/football-match-engine/internal/lineup"
)

func Load(path string) (*Config, error) {
	// a missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.Simulation); err != nil {
		return nil, fmt.Errorf("simulation config validation error: %w", err)
	}
	if _, err := lineup.ParseFormation(config.Simulation.DefaultFormation); err != nil {
		return nil, fmt.Errorf("simulation config validation error: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.seed_prefix", "match-")
	v.SetDefault("simulation.default_formation", "4-4-2")
	v.SetDefault("simulation.default_aggression", 50)
	v.SetDefault("simulation.default_pressure", 50)
}
