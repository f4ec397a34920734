package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/maxviazov/football-match-engine/internal/model"
)

// TxFunc is a unit of work executed within a transaction.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// FixtureRepository declares the schedule operations the fixture use case needs.
type FixtureRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Fixture, error)
	// MarkPlayed flips IsPlayed; it returns ErrConflict if the fixture was already played.
	MarkPlayed(ctx context.Context, id uuid.UUID) error
}

// ClubRepository declares persistence operations for squads.
// I return domain models and surface domain errors from errors.go.
type ClubRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Club, error)
	// SavePlayers writes back post-match snapshots (fitness, cards, injuries, goals).
	// Players are matched by ID; unknown IDs yield ErrNotFound.
	SavePlayers(ctx context.Context, clubID uuid.UUID, players []model.Player) error
}

// MatchRepository stores played matches.
type MatchRepository interface {
	Create(ctx context.Context, m model.MatchRecord) (model.MatchRecord, error)
	GetByFixture(ctx context.Context, fixtureID uuid.UUID) (model.MatchRecord, error)
	List(ctx context.Context, p Page) (PageResult[model.MatchRecord], error)
}
