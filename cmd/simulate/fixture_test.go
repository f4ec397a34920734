package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/football-match-engine/internal/lineup"
	"github.com/maxviazov/football-match-engine/internal/model"
)

func TestReadFixture_Bundled(t *testing.T) {
	f, id, err := readFixture("../../fixtures/classico.yaml")
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("7c1f4a52-3e7b-4d0a-9a5e-2b8f6c0d1e93"), id)
	assert.Equal(t, "Flamengo", f.Home.Name)
	require.NotNil(t, f.Home.Tactic)
	assert.Equal(t, model.Tactic{Formation: "4-3-3", Aggression: 60, Pressure: 65}, *f.Home.Tactic)
	assert.Nil(t, f.Away.Tactic)

	for _, c := range []model.Club{f.Home, f.Away} {
		_, err := lineup.Resolve(c.Players, "4-4-2")
		assert.NoError(t, err, c.Name)
		assert.Equal(t, model.Goalkeeper, c.Players[0].Position)
		assert.Equal(t, 100.0, c.Players[0].Fitness)
	}
}

func TestParseFixture(t *testing.T) {
	t.Run("derived id is stable", func(t *testing.T) {
		raw := []byte("home: {name: Bahia}\naway: {name: Vitoria}\n")
		_, a, err := parseFixture(raw)
		require.NoError(t, err)
		_, b, err := parseFixture(raw)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.NotEqual(t, uuid.Nil, a)

		_, swapped, err := parseFixture([]byte("home: {name: Vitoria}\naway: {name: Bahia}\n"))
		require.NoError(t, err)
		assert.NotEqual(t, a, swapped)
	})

	t.Run("errors", func(t *testing.T) {
		for name, raw := range map[string]string{
			"bad yaml":     "home: [",
			"missing club": "home: {name: Bahia}\n",
			"bad id":       "id: nope\nhome: {name: Bahia}\naway: {name: Vitoria}\n",
		} {
			_, _, err := parseFixture([]byte(raw))
			assert.Error(t, err, name)
		}
	})
}
