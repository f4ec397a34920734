package engine

import (
	"math"

	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/rng"
)

// Game-balance constants. They were tuned by feel, not derived; changing any
// of them changes every seeded replay.
const (
	attackBoost       = 1.2
	attackFactorMin   = 0.9
	attackFactorMax   = 1.3
	attackSuccessMin  = 0.15
	attackSuccessMax  = 0.95
	shotThreshold     = 0.5
	cornerThreshold   = 0.4
	goalOffset        = 0.3
	savedOnTarget     = 0.3
	cornerChance      = 0.2
	forwardScorerBias = 0.8

	foulDivisor           = 2000
	cardChance            = 0.15
	secondYellowRedChance = 0.3

	injuryChance  = 0.001
	injuryMinDays = 3
	injuryMaxDays = 21

	fitnessLossPerMinute = 0.15
	fillerChance         = 0.3
)

// playMinute resolves possession, attack, fouls, injuries and fatigue for one
// minute. The order of RNG draws here is part of the replay contract.
func (e *Engine) playMinute(minute int, h, a *squad) []model.MatchEvent {
	var events []model.MatchEvent

	attacker, defender := a, h
	if e.rng.Chance(share(h.ratings.Midfield, a.ratings.Midfield)) {
		attacker, defender = h, a
	}
	if ev, ok := e.attack(minute, attacker, defender); ok {
		events = append(events, ev)
	}

	if ev, ok := e.foul(minute, h, a); ok {
		events = append(events, ev)
	}

	if ev, ok := e.injury(minute, h, a); ok {
		events = append(events, ev)
	}

	tire(h)
	tire(a)
	return events
}

func (e *Engine) attack(minute int, attacker, defender *squad) (model.MatchEvent, bool) {
	attacker.tally.possession++

	success := e.attackSuccess(attacker.ratings.Attack, defender.ratings.Defense)
	switch {
	case success > shotThreshold:
		attacker.tally.shots++
		if e.rng.Chance(success - goalOffset) {
			attacker.tally.onTarget++
			scorer := &attacker.team.Players[e.pickScorer(attacker.team.Players)]
			scorer.GoalsSeason++
			e.log.Debug().Int("minute", minute).Str("side", string(attacker.side)).Str("player", scorer.Name).Msg("goal")
			return newEvent(minute, model.EventGoal, scorer, attacker.side), true
		}
		if e.rng.Chance(savedOnTarget) {
			attacker.tally.onTarget++
		}
	case success > cornerThreshold && e.rng.Chance(cornerChance):
		attacker.tally.corners++
	}
	return model.MatchEvent{}, false
}

// attackSuccess is the attacker's share of attack+defense, boosted, jittered
// and clamped.
func (e *Engine) attackSuccess(attack, defense float64) float64 {
	factor := e.rng.RandomFloat(attackFactorMin, attackFactorMax)
	v := share(attack, defense) * attackBoost * factor
	return math.Min(attackSuccessMax, math.Max(attackSuccessMin, v))
}

// pickScorer prefers forwards, otherwise any outfield player. Validation
// guarantees at least one outfield player.
func (e *Engine) pickScorer(players []model.Player) int {
	var forwards, outfield []int
	for i, p := range players {
		pos := p.PlayingPosition()
		if pos == model.Forward {
			forwards = append(forwards, i)
		}
		if pos != model.Goalkeeper {
			outfield = append(outfield, i)
		}
	}
	if len(forwards) > 0 && e.rng.Chance(forwardScorerBias) {
		return rng.Pick(e.rng, forwards)
	}
	return rng.Pick(e.rng, outfield)
}

func (e *Engine) foul(minute int, h, a *squad) (model.MatchEvent, bool) {
	hAgg, aAgg := float64(h.team.Aggression), float64(a.team.Aggression)
	if !e.rng.Chance((hAgg + aAgg) / foulDivisor) {
		return model.MatchEvent{}, false
	}

	offender := a
	if e.rng.Chance(share(hAgg, aAgg)) {
		offender = h
	}
	offender.tally.fouls++

	if !e.rng.Chance(cardChance) {
		return model.MatchEvent{}, false
	}

	p := &offender.team.Players[rng.PickIndex(e.rng, offender.team.Players)]
	if p.YellowCards >= 1 && e.rng.Chance(secondYellowRedChance) {
		SendOff(p)
		offender.tally.reds++
		e.log.Debug().Int("minute", minute).Str("player", p.Name).Msg("red card")
		return newEvent(minute, model.EventRedCard, p, offender.side), true
	}

	banned := BookYellow(p)
	offender.tally.yellows++
	e.log.Debug().Int("minute", minute).Str("player", p.Name).Int("yellows", p.YellowCards).Bool("banned", banned).Msg("yellow card")
	return newEvent(minute, model.EventYellowCard, p, offender.side), true
}

func (e *Engine) injury(minute int, h, a *squad) (model.MatchEvent, bool) {
	if !e.rng.Chance(injuryChance) {
		return model.MatchEvent{}, false
	}
	victim := a
	if e.rng.Chance(0.5) {
		victim = h
	}
	p := &victim.team.Players[rng.PickIndex(e.rng, victim.team.Players)]
	days := e.rng.RandomInt(injuryMinDays, injuryMaxDays)
	p.IsInjured = true
	p.InjuryDays = days

	e.log.Debug().Int("minute", minute).Str("player", p.Name).Int("days", days).Msg("injury")
	ev := newEvent(minute, model.EventInjury, p, victim.side)
	ev.Detail = &model.EventDetail{InjuryDays: days}
	return ev, true
}

// tire drains fitness for every player on the side; higher pressure costs more.
func tire(s *squad) {
	loss := fitnessLossPerMinute * (1 + float64(s.team.Pressure)/200)
	for i := range s.team.Players {
		s.team.Players[i].Fitness = math.Max(0, s.team.Players[i].Fitness-loss)
	}
}

// share returns x/(x+y), or an even split when both are zero.
func share(x, y float64) float64 {
	if x+y == 0 {
		return 0.5
	}
	return x / (x + y)
}

func newEvent(minute int, t model.EventType, p *model.Player, side model.Side) model.MatchEvent {
	return model.MatchEvent{Minute: minute, Type: t, PlayerID: p.ID, PlayerName: p.Name, Side: side}
}
