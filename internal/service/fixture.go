package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/maxviazov/football-match-engine/internal/engine"
	"github.com/maxviazov/football-match-engine/internal/lineup"
	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository"
)

// fixtureService holds fixture use-case logic: orchestration only, no simulation or storage details.
type fixtureService struct {
	fixtures repository.FixtureRepository
	clubs    repository.ClubRepository
	matches  repository.MatchRepository
	tx       repository.TxManager
	clock    clockwork.Clock
	settings Settings
	log      zerolog.Logger
}

// NewFixtureService wires the fixture use case; tx must cover all three repositories.
func NewFixtureService(
	fixtures repository.FixtureRepository,
	clubs repository.ClubRepository,
	matches repository.MatchRepository,
	tx repository.TxManager,
	clock clockwork.Clock,
	settings Settings,
	logger zerolog.Logger,
) FixtureService {
	l := logger.With().Str("module", "service").Str("component", "fixture").Logger()
	return &fixtureService{
		fixtures: fixtures,
		clubs:    clubs,
		matches:  matches,
		tx:       tx,
		clock:    clock,
		settings: settings,
		log:      l,
	}
}

func (s *fixtureService) PlayFixture(ctx context.Context, fixtureID uuid.UUID) (model.MatchRecord, error) {
	if fixtureID == uuid.Nil {
		return model.MatchRecord{}, ErrMissingFixtureID
	}
	start := s.clock.Now()

	fx, err := s.fixtures.GetByID(ctx, fixtureID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Str("fixture_id", fixtureID.String()).Msg("load fixture failed")
		}
		return model.MatchRecord{}, err
	}
	if fx.IsPlayed {
		return model.MatchRecord{}, ErrFixturePlayed
	}

	homeClub, err := s.clubs.GetByID(ctx, fx.HomeClubID)
	if err != nil {
		return model.MatchRecord{}, fmt.Errorf("home club: %w", err)
	}
	awayClub, err := s.clubs.GetByID(ctx, fx.AwayClubID)
	if err != nil {
		return model.MatchRecord{}, fmt.Errorf("away club: %w", err)
	}

	home, err := s.matchTeam(homeClub, true)
	if err != nil {
		return model.MatchRecord{}, err
	}
	away, err := s.matchTeam(awayClub, false)
	if err != nil {
		return model.MatchRecord{}, err
	}

	seed := FixtureSeed(s.settings.SeedPrefix, fx.ID)
	res, err := engine.New(seed, engine.WithLogger(s.log)).Simulate(home, away)
	if err != nil {
		s.log.Error().Err(err).Str("fixture_id", fx.ID.String()).Msg("simulation rejected input")
		return model.MatchRecord{}, err
	}

	// record, squads and fixture flag land together or not at all
	var rec model.MatchRecord
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.matches.Create(ctx, model.MatchRecord{
			FixtureID: fx.ID,
			HomeClub:  homeClub.Name,
			AwayClub:  awayClub.Name,
			PlayedAt:  s.clock.Now(),
			Result:    res,
		})
		if err != nil {
			return err
		}
		if err := s.clubs.SavePlayers(ctx, homeClub.ID, res.HomePlayers); err != nil {
			return fmt.Errorf("save %s players: %w", homeClub.Name, err)
		}
		if err := s.clubs.SavePlayers(ctx, awayClub.ID, res.AwayPlayers); err != nil {
			return fmt.Errorf("save %s players: %w", awayClub.Name, err)
		}
		if err := s.fixtures.MarkPlayed(ctx, fx.ID); err != nil {
			return err
		}
		rec = created
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) || errors.Is(err, repository.ErrConflict) {
			return model.MatchRecord{}, ErrFixturePlayed
		}
		s.log.Error().Err(err).Str("fixture_id", fx.ID.String()).Msg("store fixture result failed")
		return model.MatchRecord{}, err
	}

	s.log.Info().
		Str("fixture_id", fx.ID.String()).
		Str("home", homeClub.Name).
		Str("away", awayClub.Name).
		Int("home_score", res.HomeScore).
		Int("away_score", res.AwayScore).
		Dur("took", s.clock.Since(start)).
		Msg("fixture played")
	return rec, nil
}

func (s *fixtureService) ListResults(ctx context.Context, page repository.Page) (repository.PageResult[model.MatchRecord], error) {
	p := page.Normalize()
	res, err := s.matches.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list results failed")
		return repository.PageResult[model.MatchRecord]{}, err
	}
	return res, nil
}

// FixtureSeed derives the reproducible per-fixture seed, e.g. "match-<uuid>".
func FixtureSeed(prefix string, id uuid.UUID) string {
	return prefix + id.String()
}

// matchTeam turns a stored club into engine input. A saved tactic is used as
// is; without one the configured defaults apply.
func (s *fixtureService) matchTeam(c model.Club, isHome bool) (model.MatchTeam, error) {
	t := model.Tactic{
		Formation:  s.settings.DefaultFormation,
		Aggression: s.settings.DefaultAggression,
		Pressure:   s.settings.DefaultPressure,
	}
	if c.Tactic != nil {
		t = *c.Tactic
		if t.Formation == "" {
			t.Formation = s.settings.DefaultFormation
		}
	}

	players, err := lineup.Resolve(c.Players, t.Formation)
	if err != nil {
		s.log.Warn().Err(err).Str("club", c.Name).Msg("no usable lineup")
		return model.MatchTeam{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	return model.MatchTeam{
		Name:       c.Name,
		Players:    players,
		Formation:  t.Formation,
		Aggression: t.Aggression,
		Pressure:   t.Pressure,
		IsHome:     isHome,
	}, nil
}
