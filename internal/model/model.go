// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; behavior lives in engine, ratings and lineup.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Position is a player's role on the pitch.
type Position string

const (
	Goalkeeper Position = "GK"
	Defender   Position = "DF"
	Midfielder Position = "MF"
	Forward    Position = "FW"
)

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	switch p {
	case Goalkeeper, Defender, Midfielder, Forward:
		return true
	default:
		return false
	}
}

// Player is a rostered footballer. Position is the natural position; LineupPosition,
// when set, overrides it for a single match.
type Player struct {
	ID             string   `json:"id" yaml:"id" validate:"required"`
	Name           string   `json:"name" yaml:"name"`
	Position       Position `json:"position" yaml:"position" validate:"oneof=GK DF MF FW"`
	LineupPosition Position `json:"lineup_position,omitempty" yaml:"lineup_position" validate:"omitempty,oneof=GK DF MF FW"`
	Overall        int      `json:"overall" yaml:"overall" validate:"gte=0"`
	Fitness        float64  `json:"fitness" yaml:"fitness" validate:"gte=0,lte=100"`
	Form           int      `json:"form" yaml:"form" validate:"gte=0,lte=100"`
	Morale         int      `json:"morale" yaml:"morale" validate:"gte=0,lte=100"`
	YellowCards    int      `json:"yellow_cards" yaml:"yellow_cards" validate:"gte=0"`
	RedCards       int      `json:"red_cards" yaml:"red_cards" validate:"gte=0"`
	BanMatches     int      `json:"ban_matches" yaml:"ban_matches" validate:"gte=0"`
	IsInjured      bool     `json:"is_injured" yaml:"is_injured"`
	InjuryDays     int      `json:"injury_days" yaml:"injury_days" validate:"gte=0"`
	GoalsSeason    int      `json:"goals_season" yaml:"goals_season"`
	AssistsSeason  int      `json:"assists_season" yaml:"assists_season"`
}

// PlayingPosition is the position the player occupies in the current match.
func (p Player) PlayingPosition() Position {
	if p.LineupPosition != "" {
		return p.LineupPosition
	}
	return p.Position
}

// Available reports whether the player can be picked: not injured and not suspended.
func (p Player) Available() bool {
	return !p.IsInjured && p.BanMatches == 0
}

// MatchTeam is one side of a match, built fresh by the caller for every simulation.
// The engine takes venue from argument order; IsHome is informational.
type MatchTeam struct {
	Name       string   `json:"name" validate:"required"`
	Players    []Player `json:"players" validate:"len=11,dive"`
	Formation  string   `json:"formation" validate:"required"`
	Aggression int      `json:"aggression" validate:"gte=0,lte=100"`
	Pressure   int      `json:"pressure" validate:"gte=0,lte=100"`
	IsHome     bool     `json:"is_home"`
}

// TeamRatings are per-match sector strengths. They are recomputed for each match and never persisted.
type TeamRatings struct {
	Defense  float64 `json:"defense"`
	Midfield float64 `json:"midfield"`
	Attack   float64 `json:"attack"`
	Overall  float64 `json:"overall"`
	Fitness  float64 `json:"fitness"`
	Morale   float64 `json:"morale"`
}

// Side identifies home or away.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// EventType enumerates what a MatchEvent records.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventInjury       EventType = "injury"
	EventSubstitution EventType = "substitution"
)

// EventDetail carries optional per-event payload.
type EventDetail struct {
	InjuryDays int `json:"injury_days,omitempty"`
}

// MatchEvent is one entry of the authoritative, append-only match record.
type MatchEvent struct {
	Minute     int          `json:"minute"`
	Type       EventType    `json:"type"`
	PlayerID   string       `json:"player_id"`
	PlayerName string       `json:"player_name"`
	Side       Side         `json:"side"`
	Detail     *EventDetail `json:"detail,omitempty"`
}

// Statistics is the per-side summary block of a finished match.
// Possession values are percentages that always sum to 100.
type Statistics struct {
	HomePossession    int `json:"home_possession"`
	AwayPossession    int `json:"away_possession"`
	HomeShots         int `json:"home_shots"`
	AwayShots         int `json:"away_shots"`
	HomeShotsOnTarget int `json:"home_shots_on_target"`
	AwayShotsOnTarget int `json:"away_shots_on_target"`
	HomeFouls         int `json:"home_fouls"`
	AwayFouls         int `json:"away_fouls"`
	HomeCorners       int `json:"home_corners"`
	AwayCorners       int `json:"away_corners"`
	HomeYellowCards   int `json:"home_yellow_cards"`
	AwayYellowCards   int `json:"away_yellow_cards"`
	HomeRedCards      int `json:"home_red_cards"`
	AwayRedCards      int `json:"away_red_cards"`
}

// MatchResult is everything one simulation produces. HomePlayers and AwayPlayers
// are the mutated snapshots (fitness, cards, injuries, goals) for the caller to persist.
type MatchResult struct {
	Seed        string       `json:"seed"`
	HomeScore   int          `json:"home_score"`
	AwayScore   int          `json:"away_score"`
	Events      []MatchEvent `json:"events"`
	Commentary  []string     `json:"commentary"`
	Statistics  Statistics   `json:"statistics"`
	HomePlayers []Player     `json:"home_players"`
	AwayPlayers []Player     `json:"away_players"`
}

// Tactic is a club's standing instructions for its next match.
type Tactic struct {
	Formation  string `json:"formation" yaml:"formation"`
	Aggression int    `json:"aggression" yaml:"aggression"`
	Pressure   int    `json:"pressure" yaml:"pressure"`
}

// Club is a squad as stored by the persistence layer.
type Club struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Players []Player  `json:"players" yaml:"players"`
	Tactic  *Tactic   `json:"tactic,omitempty" yaml:"tactic"`
}

// Fixture is one scheduled match between two clubs.
type Fixture struct {
	ID         uuid.UUID `json:"id"`
	HomeClubID uuid.UUID `json:"home_club_id"`
	AwayClubID uuid.UUID `json:"away_club_id"`
	IsPlayed   bool      `json:"is_played"`
}

// MatchRecord is a played fixture as handed back to persistence.
type MatchRecord struct {
	ID        uuid.UUID   `json:"id"`
	FixtureID uuid.UUID   `json:"fixture_id"`
	HomeClub  string      `json:"home_club"`
	AwayClub  string      `json:"away_club"`
	PlayedAt  time.Time   `json:"played_at"`
	Result    MatchResult `json:"result"`
}
