// Package engine runs the minute-by-minute match simulation.
//
// An Engine owns one seeded RNG. Every draw (possession, shots, cards,
// injuries, commentary templates) comes from it in a fixed order, so the same
// seed and the same input always replay the same match. Build one Engine per
// fixture and never share it between goroutines.
package engine

import (
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-match-engine/internal/commentary"
	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/ratings"
	"github.com/maxviazov/football-match-engine/internal/rng"
)

// Minutes is the length of a simulated match.
const Minutes = 90

const halfTimeMinute = 45

// Engine simulates matches from a single seeded stream.
type Engine struct {
	rng        *rng.RNG
	commentary *commentary.Generator
	log        zerolog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	log     zerolog.Logger
	catalog commentary.Catalog
}

// WithLogger attaches a logger; the engine only logs at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *engineOptions) { o.log = l }
}

// WithCatalog replaces the built-in commentary templates.
func WithCatalog(c commentary.Catalog) Option {
	return func(o *engineOptions) { o.catalog = c }
}

// New builds an engine seeded with seed.
func New(seed string, opts ...Option) *Engine {
	o := engineOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	r := rng.New(seed)
	var genOpts []commentary.Option
	if o.catalog != nil {
		genOpts = append(genOpts, commentary.WithCatalog(o.catalog))
	}
	return &Engine{
		rng:        r,
		commentary: commentary.NewGenerator(r, genOpts...),
		log:        o.log.With().Str("module", "engine").Str("seed", seed).Logger(),
	}
}

// SimulateMatch is a convenience for New(seed, opts...).Simulate(home, away).
func SimulateMatch(seed string, home, away model.MatchTeam, opts ...Option) (model.MatchResult, error) {
	return New(seed, opts...).Simulate(home, away)
}

// squad is one side's in-match state. team.Players is a private copy.
type squad struct {
	side    model.Side
	team    model.MatchTeam
	ratings model.TeamRatings
	tally   tally
}

type tally struct {
	possession, shots, onTarget, fouls, corners, yellows, reds int
}

// Simulate plays a full match. The input teams are not modified; the mutated
// player snapshots are returned in the result. Calling Simulate again on the
// same Engine continues the RNG stream rather than restarting it.
func (e *Engine) Simulate(home, away model.MatchTeam) (model.MatchResult, error) {
	fe := validateTeam("home", home)
	fe = append(fe, validateTeam("away", away)...)
	if err := newInvalidInput(fe); err != nil {
		e.log.Debug().Interface("field_errors", fe).Msg("match input rejected")
		return model.MatchResult{}, err
	}

	start := time.Now()
	h := newSquad(model.Home, home)
	a := newSquad(model.Away, away)

	res := model.MatchResult{
		Seed:       e.rng.Seed(),
		Events:     []model.MatchEvent{},
		Commentary: commentary.PreMatch(home.Name, away.Name),
	}
	res.Commentary = append(res.Commentary, e.commentary.Generate(commentary.Event{
		Kind: commentary.Kickoff, Minute: 0, Team: home.Name,
	}))

	for minute := 1; minute <= Minutes; minute++ {
		events := e.playMinute(minute, h, a)

		for _, ev := range events {
			res.Events = append(res.Events, ev)
			teamName := home.Name
			if ev.Side == model.Away {
				teamName = away.Name
			}
			res.Commentary = append(res.Commentary, e.commentary.Generate(commentary.Event{
				Kind:   commentaryKind(ev.Type),
				Minute: ev.Minute,
				Player: ev.PlayerName,
				Team:   teamName,
			}))

			if ev.Type == model.EventGoal {
				if ev.Side == model.Home {
					res.HomeScore++
				} else {
					res.AwayScore++
				}
				res.Commentary = append(res.Commentary,
					commentary.ScoreUpdate(home.Name, away.Name, res.HomeScore, res.AwayScore))
			}
		}

		if minute == halfTimeMinute {
			res.Commentary = append(res.Commentary, e.commentary.Generate(commentary.Event{
				Kind: commentary.HalfTime, Minute: halfTimeMinute,
			}))
		}

		if minute%10 == 0 && len(events) == 0 && e.rng.Chance(fillerChance) {
			team := away.Name
			if e.rng.Chance(0.5) {
				team = home.Name
			}
			res.Commentary = append(res.Commentary, e.commentary.Generate(commentary.Event{
				Kind: commentary.General, Minute: minute, Team: team,
			}))
		}
	}

	res.Commentary = append(res.Commentary, e.commentary.Generate(commentary.Event{
		Kind: commentary.FullTime, Minute: Minutes,
	}))
	res.Commentary = append(res.Commentary,
		commentary.PostMatch(home.Name, away.Name, res.HomeScore, res.AwayScore)...)

	res.Statistics = finalStatistics(h.tally, a.tally)
	res.HomePlayers = h.team.Players
	res.AwayPlayers = a.team.Players

	e.log.Debug().
		Int("home_score", res.HomeScore).
		Int("away_score", res.AwayScore).
		Int("events", len(res.Events)).
		Dur("took", time.Since(start)).
		Msg("match simulated")
	return res, nil
}

// newSquad copies t into match state. Venue follows the argument slot, so a
// stale IsHome flag on the input cannot move the home advantage.
func newSquad(side model.Side, t model.MatchTeam) *squad {
	t.Players = slices.Clone(t.Players)
	t.IsHome = side == model.Home
	return &squad{side: side, team: t, ratings: ratings.ForTeam(t)}
}

func commentaryKind(t model.EventType) commentary.Kind {
	switch t {
	case model.EventGoal:
		return commentary.Goal
	case model.EventYellowCard:
		return commentary.YellowCard
	case model.EventRedCard:
		return commentary.RedCard
	case model.EventInjury:
		return commentary.Injury
	case model.EventSubstitution:
		return commentary.Substitution
	default:
		return commentary.General
	}
}

// finalStatistics converts raw possession minutes into percentages. Away is
// derived from home so the pair always sums to 100.
func finalStatistics(h, a tally) model.Statistics {
	homePct := 50
	if total := h.possession + a.possession; total > 0 {
		homePct = int(math.Round(float64(h.possession) / float64(total) * 100))
	}
	return model.Statistics{
		HomePossession:    homePct,
		AwayPossession:    100 - homePct,
		HomeShots:         h.shots,
		AwayShots:         a.shots,
		HomeShotsOnTarget: h.onTarget,
		AwayShotsOnTarget: a.onTarget,
		HomeFouls:         h.fouls,
		AwayFouls:         a.fouls,
		HomeCorners:       h.corners,
		AwayCorners:       a.corners,
		HomeYellowCards:   h.yellows,
		AwayYellowCards:   a.yellows,
		HomeRedCards:      h.reds,
		AwayRedCards:      a.reds,
	}
}
