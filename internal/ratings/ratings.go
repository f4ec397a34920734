// Package ratings turns a lineup into sector strengths and applies tactical and
// home-advantage transforms. Every function returns a fresh value; nothing is shared between calls.
package ratings

import (
	"math"

	"github.com/maxviazov/football-match-engine/internal/model"
)

// Sector is the unit of rating aggregation.
type Sector string

const (
	Defense  Sector = "defense"
	Midfield Sector = "midfield"
	Attack   Sector = "attack"
)

// Tunable weights.
const (
	defenseWeight  = 0.35
	midfieldWeight = 0.35
	attackWeight   = 0.30

	outOfPositionPenalty = 0.85
	homeBonus            = 1.05
	homeMoraleBonus      = 1.1
)

// SectorOf maps a playing position to the sector it rates in.
func SectorOf(pos model.Position) Sector {
	switch pos {
	case model.Goalkeeper, model.Defender:
		return Defense
	case model.Midfielder:
		return Midfield
	case model.Forward:
		return Attack
	default:
		return ""
	}
}

// Calculate derives base ratings from the lineup. Players are grouped by the
// position they play in this match; the mismatch penalty compares the sector
// against their natural position.
func Calculate(players []model.Player) model.TeamRatings {
	bySector := map[Sector][]model.Player{}
	for _, p := range players {
		s := SectorOf(p.PlayingPosition())
		bySector[s] = append(bySector[s], p)
	}

	r := model.TeamRatings{
		Defense:  sectorRating(bySector[Defense], Defense),
		Midfield: sectorRating(bySector[Midfield], Midfield),
		Attack:   sectorRating(bySector[Attack], Attack),
	}
	r.Overall = overall(r)

	if n := float64(len(players)); n > 0 {
		var fitness, morale float64
		for _, p := range players {
			fitness += p.Fitness
			morale += float64(p.Morale)
		}
		r.Fitness = fitness / n
		r.Morale = morale / n
	}
	return r
}

func sectorRating(players []model.Player, sector Sector) float64 {
	if len(players) == 0 {
		return 0
	}
	n := float64(len(players))

	var overallSum, fitness, form, morale float64
	for _, p := range players {
		overallSum += float64(p.Overall)
		fitness += p.Fitness
		form += float64(p.Form)
		morale += float64(p.Morale)
	}

	rating := overallSum / n
	rating *= 0.7 + 0.3*(fitness/n/100)
	rating *= 0.8 + 0.2*(form/n/100)
	rating *= 0.9 + 0.1*(morale/n/100)

	// applied once per mismatched player, so two mismatches cost 0.85^2
	for _, p := range players {
		if OutOfPosition(p.Position, sector) {
			rating *= outOfPositionPenalty
		}
	}
	return math.Round(rating)
}

// OutOfPosition reports whether a player whose natural position is natural is
// misplaced when rated in sector.
func OutOfPosition(natural model.Position, sector Sector) bool {
	if natural == model.Goalkeeper && sector != Defense {
		return true
	}
	switch sector {
	case Defense:
		return natural != model.Goalkeeper && natural != model.Defender
	case Midfield:
		return natural != model.Midfielder
	case Attack:
		return natural != model.Forward
	}
	return false
}

// ApplyTactics adjusts sectors for formation, aggression and pressure, then
// recomputes overall. Unknown formations get no formation modifier.
func ApplyTactics(r model.TeamRatings, formation string, aggression, pressure int) model.TeamRatings {
	switch formation {
	case "5-3-2":
		r.Defense *= 1.15
		r.Attack *= 0.9
	case "3-5-2":
		r.Midfield *= 1.1
		r.Defense *= 0.9
	case "4-3-3":
		r.Attack *= 1.1
		r.Midfield *= 0.95
	case "4-4-2":
		// balanced
	}

	agg := float64(aggression) / 100
	r.Attack *= 0.9 + 0.2*agg
	r.Defense *= 1.1 - 0.2*agg

	r.Midfield *= 0.95 + 0.1*(float64(pressure)/100)

	r.Overall = overall(r)
	return r
}

// ApplyHomeAdvantage boosts a home side; away sides are returned unchanged.
func ApplyHomeAdvantage(r model.TeamRatings, isHome bool) model.TeamRatings {
	if !isHome {
		return r
	}
	r.Defense *= homeBonus
	r.Midfield *= homeBonus
	r.Attack *= homeBonus
	r.Overall *= homeBonus
	r.Morale = math.Min(100, r.Morale*homeMoraleBonus)
	return r
}

// ForTeam runs the full pipeline for one side: base, tactics, venue.
func ForTeam(t model.MatchTeam) model.TeamRatings {
	r := Calculate(t.Players)
	r = ApplyTactics(r, t.Formation, t.Aggression, t.Pressure)
	return ApplyHomeAdvantage(r, t.IsHome)
}

func overall(r model.TeamRatings) float64 {
	return r.Defense*defenseWeight + r.Midfield*midfieldWeight + r.Attack*attackWeight
}
