// Package service holds use-case orchestration around the match engine.
// Kept intentionally lean: load inputs from repositories, pick lineups, run the
// engine, hand the results back to persistence. No simulation logic lives here.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/maxviazov/football-match-engine/internal/lineup"
	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository"
)

var (
	// ErrFixturePlayed is returned when a fixture already has a result.
	ErrFixturePlayed = errors.New("fixture already played")
	// ErrIncompleteLineup wraps lineup failures where not even an emergency XI exists.
	ErrIncompleteLineup = lineup.ErrIncomplete
	// ErrMissingFixtureID rejects the zero UUID before any repository call.
	ErrMissingFixtureID = errors.New("fixture id must be set")
)

// Settings are the simulation defaults applied when a club has no saved tactic.
type Settings struct {
	SeedPrefix        string
	DefaultFormation  string
	DefaultAggression int
	DefaultPressure   int
}

// FixtureService plays scheduled fixtures.
type FixtureService interface {
	// PlayFixture simulates the fixture and persists the record and the
	// updated squads. Replaying the same fixture ID with unchanged squads
	// reproduces the same match.
	PlayFixture(ctx context.Context, fixtureID uuid.UUID) (model.MatchRecord, error)
	ListResults(ctx context.Context, page repository.Page) (repository.PageResult[model.MatchRecord], error)
}
