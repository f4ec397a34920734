package lineup_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/football-match-engine/internal/lineup"
	"github.com/maxviazov/football-match-engine/internal/model"
)

func player(id string, pos model.Position, overall int) model.Player {
	return model.Player{ID: id, Name: id, Position: pos, Overall: overall, Fitness: 100}
}

// squad returns gk/df/mf/fw counts with overall descending from 80 inside each line.
func squad(gk, df, mf, fw int) []model.Player {
	var out []model.Player
	for _, line := range []struct {
		pos model.Position
		n   int
	}{{model.Goalkeeper, gk}, {model.Defender, df}, {model.Midfielder, mf}, {model.Forward, fw}} {
		for i := 0; i < line.n; i++ {
			out = append(out, player(fmt.Sprintf("%s%d", line.pos, i), line.pos, 80-i))
		}
	}
	return out
}

func ids(ps []model.Player) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestParseFormation(t *testing.T) {
	tests := []struct {
		in      string
		want    lineup.Shape
		wantErr bool
	}{
		{in: "4-4-2", want: lineup.Shape{Defenders: 4, Midfielders: 4, Forwards: 2}},
		{in: "4-3-3", want: lineup.Shape{Defenders: 4, Midfielders: 3, Forwards: 3}},
		{in: "3-5-2", want: lineup.Shape{Defenders: 3, Midfielders: 5, Forwards: 2}},
		{in: "4-2-3-1", want: lineup.Shape{Defenders: 4, Midfielders: 5, Forwards: 1}},
		{in: " 5-4-1 ", want: lineup.Shape{Defenders: 5, Midfielders: 4, Forwards: 1}},
		{in: "4-4", wantErr: true},
		{in: "4-4-3", wantErr: true},
		{in: "4-x-2", wantErr: true},
		{in: "4--6", wantErr: true},
		{in: "12--2-0", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := lineup.ParseFormation(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, lineup.ErrInvalidFormation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelect_PicksBestPerLine(t *testing.T) {
	sel := lineup.Select(squad(2, 6, 6, 4), "4-3-3")

	require.True(t, sel.Valid, sel.Problems)
	assert.Empty(t, sel.Problems)
	assert.Equal(t, []string{
		"GK0",
		"DF0", "DF1", "DF2", "DF3",
		"MF0", "MF1", "MF2",
		"FW0", "FW1", "FW2",
	}, ids(sel.Players))
}

func TestSelect_SkipsUnavailable(t *testing.T) {
	s := squad(2, 5, 5, 3)
	s[0].IsInjured = true // GK0
	s[2].BanMatches = 2   // DF0

	sel := lineup.Select(s, "4-4-2")
	require.True(t, sel.Valid, sel.Problems)
	assert.NotContains(t, ids(sel.Players), "GK0")
	assert.NotContains(t, ids(sel.Players), "DF0")
	assert.Equal(t, "GK1", sel.Players[0].ID)
}

func TestSelect_FillsGapsWithBestRemaining(t *testing.T) {
	sel := lineup.Select(squad(1, 6, 5, 1), "4-4-2")
	assert.False(t, sel.Valid)
	assert.Contains(t, sel.Problems, "not enough forwards (have 1, need 2)")
	require.Len(t, sel.Players, lineup.Size)
	// DF4 and MF4 tie on 76; squad order breaks the tie
	assert.Equal(t, "DF4", sel.Players[10].ID)
}

func TestSelect_InvalidFormationFallsBackToDefault(t *testing.T) {
	sel := lineup.Select(squad(1, 4, 4, 2), "9-9-9")
	assert.False(t, sel.Valid)
	require.Len(t, sel.Problems, 1)
	assert.Contains(t, sel.Problems[0], "invalid formation")
	assert.Len(t, sel.Players, lineup.Size)
}

func TestSelect_TooFewPlayers(t *testing.T) {
	sel := lineup.Select(squad(1, 3, 3, 2), "4-4-2")
	assert.False(t, sel.Valid)
	assert.Contains(t, sel.Problems, "only 9 players available (minimum 11)")
	assert.Contains(t, sel.Problems, "could not build a complete lineup")
	assert.Len(t, sel.Players, 9)
}

func TestEmergency_Ordering(t *testing.T) {
	s := []model.Player{
		{ID: "injured-star", Overall: 99, Fitness: 100, IsInjured: true},
		{ID: "banned", Overall: 90, Fitness: 100, BanMatches: 1},
		{ID: "exhausted", Overall: 95, Fitness: 0},
		{ID: "fit-low", Overall: 50, Fitness: 40},
		{ID: "fit-high", Overall: 70, Fitness: 100},
	}
	got := lineup.Emergency(s)
	assert.Equal(t, []string{"fit-high", "fit-low", "banned", "injured-star"}, ids(got))
}

func TestEmergency_CapsAtEleven(t *testing.T) {
	assert.Len(t, lineup.Emergency(squad(3, 6, 6, 4)), lineup.Size)
}

func TestResolve(t *testing.T) {
	t.Run("valid selection", func(t *testing.T) {
		got, err := lineup.Resolve(squad(2, 5, 5, 3), "4-4-2")
		require.NoError(t, err)
		assert.Equal(t, lineup.Select(squad(2, 5, 5, 3), "4-4-2").Players, got)
	})

	t.Run("falls back to emergency", func(t *testing.T) {
		s := squad(1, 4, 4, 2)
		s[1].IsInjured = true // DF0
		got, err := lineup.Resolve(s, "4-4-2")
		require.NoError(t, err)
		require.Len(t, got, lineup.Size)
		assert.Equal(t, "DF0", got[len(got)-1].ID, "injured players come last")
	})

	t.Run("not enough bodies", func(t *testing.T) {
		_, err := lineup.Resolve(squad(1, 4, 4, 1), "4-4-2")
		assert.ErrorIs(t, err, lineup.ErrIncomplete)
	})
}
