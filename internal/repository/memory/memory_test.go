package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository"
	"github.com/maxviazov/football-match-engine/internal/repository/memory"
)

func TestFixtures(t *testing.T) {
	ctx := context.Background()
	r := memory.NewFixtures()

	f := r.Add(model.Fixture{HomeClubID: uuid.New(), AwayClubID: uuid.New()})
	require.NotEqual(t, uuid.Nil, f.ID)

	got, err := r.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	require.NoError(t, r.MarkPlayed(ctx, f.ID))
	got, _ = r.GetByID(ctx, f.ID)
	assert.True(t, got.IsPlayed)

	assert.ErrorIs(t, r.MarkPlayed(ctx, f.ID), repository.ErrConflict)
	assert.ErrorIs(t, r.MarkPlayed(ctx, uuid.New()), repository.ErrNotFound)

	_, err = r.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClubs_CopiesPlayers(t *testing.T) {
	ctx := context.Background()
	r := memory.NewClubs()

	players := []model.Player{{ID: "a", Fitness: 100}, {ID: "b", Fitness: 100}}
	c := r.Add(model.Club{Name: "Santos", Players: players})
	players[0].Fitness = 1

	got, err := r.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Players[0].Fitness, "Add must not alias the caller's slice")

	got.Players[1].Fitness = 1
	again, _ := r.GetByID(ctx, c.ID)
	assert.Equal(t, 100.0, again.Players[1].Fitness, "GetByID must not alias stored state")
}

func TestClubs_SavePlayers(t *testing.T) {
	ctx := context.Background()
	r := memory.NewClubs()
	c := r.Add(model.Club{Name: "Santos", Players: []model.Player{
		{ID: "a", Fitness: 100},
		{ID: "b", Fitness: 100},
		{ID: "c", Fitness: 100},
	}})

	err := r.SavePlayers(ctx, c.ID, []model.Player{{ID: "c", Fitness: 70, GoalsSeason: 2}})
	require.NoError(t, err)

	got, _ := r.GetByID(ctx, c.ID)
	require.Len(t, got.Players, 3)
	assert.Equal(t, "c", got.Players[2].ID)
	assert.Equal(t, 70.0, got.Players[2].Fitness)
	assert.Equal(t, 2, got.Players[2].GoalsSeason)
	assert.Equal(t, 100.0, got.Players[0].Fitness)

	t.Run("unknown player leaves squad untouched", func(t *testing.T) {
		err := r.SavePlayers(ctx, c.ID, []model.Player{{ID: "a", Fitness: 0}, {ID: "zz"}})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		got, _ := r.GetByID(ctx, c.ID)
		assert.Equal(t, 100.0, got.Players[0].Fitness)
	})

	t.Run("unknown club", func(t *testing.T) {
		assert.ErrorIs(t, r.SavePlayers(ctx, uuid.New(), nil), repository.ErrNotFound)
	})
}

func TestMatches(t *testing.T) {
	ctx := context.Background()
	r := memory.NewMatches()

	var fixtures []uuid.UUID
	for i := 0; i < 5; i++ {
		fx := uuid.New()
		fixtures = append(fixtures, fx)
		m, err := r.Create(ctx, model.MatchRecord{FixtureID: fx})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
	}

	_, err := r.Create(ctx, model.MatchRecord{FixtureID: fixtures[0]})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	m, err := r.GetByFixture(ctx, fixtures[3])
	require.NoError(t, err)
	assert.Equal(t, fixtures[3], m.FixtureID)

	_, err = r.GetByFixture(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tests := []struct {
		name string
		page repository.Page
		want []uuid.UUID
	}{
		{"default window", repository.Page{}, fixtures},
		{"first two", repository.Page{Limit: 2}, fixtures[:2]},
		{"middle", repository.Page{Limit: 2, Offset: 2}, fixtures[2:4]},
		{"tail is short", repository.Page{Limit: 10, Offset: 3}, fixtures[3:]},
		{"past the end", repository.Page{Limit: 10, Offset: 9}, nil},
		{"negative offset", repository.Page{Limit: 1, Offset: -4}, fixtures[:1]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := r.List(ctx, tc.page)
			require.NoError(t, err)
			assert.Equal(t, 5, res.Total)
			var got []uuid.UUID
			for _, m := range res.Items {
				got = append(got, m.FixtureID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatches_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := memory.NewMatches()
	fx := uuid.New()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Create(ctx, model.MatchRecord{FixtureID: fx}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
}

func TestMatches_DoesNotAliasResults(t *testing.T) {
	ctx := context.Background()
	r := memory.NewMatches()
	fx := uuid.New()

	in := model.MatchRecord{FixtureID: fx, Result: model.MatchResult{
		Events:      []model.MatchEvent{{Minute: 12, Type: model.EventInjury, Detail: &model.EventDetail{InjuryDays: 7}}},
		Commentary:  []string{"[12'] lesão"},
		HomePlayers: []model.Player{{ID: "h1", Fitness: 80}},
		AwayPlayers: []model.Player{{ID: "a1", Fitness: 80}},
	}}
	_, err := r.Create(ctx, in)
	require.NoError(t, err)

	in.Result.Events[0].Detail.InjuryDays = 99
	in.Result.Commentary[0] = "changed"
	in.Result.HomePlayers[0].Fitness = 0

	got, err := r.GetByFixture(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Result.Events[0].Detail.InjuryDays)
	assert.Equal(t, "[12'] lesão", got.Result.Commentary[0])
	assert.Equal(t, 80.0, got.Result.HomePlayers[0].Fitness)

	got.Result.AwayPlayers[0].Fitness = 0
	listed, err := r.List(ctx, repository.Page{})
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, 80.0, listed.Items[0].Result.AwayPlayers[0].Fitness)
}

func TestTxManager(t *testing.T) {
	ctx := context.Background()
	fixtures, clubs, matches := memory.NewFixtures(), memory.NewClubs(), memory.NewMatches()
	tx := memory.NewTxManager(fixtures, clubs, matches)

	c := clubs.Add(model.Club{Name: "Sport", Players: []model.Player{{ID: "p1", Fitness: 100}}})
	f := fixtures.Add(model.Fixture{HomeClubID: c.ID, AwayClubID: uuid.New()})

	write := func(ctx context.Context) error {
		if _, err := matches.Create(ctx, model.MatchRecord{FixtureID: f.ID}); err != nil {
			return err
		}
		if err := clubs.SavePlayers(ctx, c.ID, []model.Player{{ID: "p1", Fitness: 60}}); err != nil {
			return err
		}
		return fixtures.MarkPlayed(ctx, f.ID)
	}

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := write(ctx); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = matches.GetByFixture(ctx, f.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		got, _ := clubs.GetByID(ctx, c.ID)
		assert.Equal(t, 100.0, got.Players[0].Fitness)
		fx, _ := fixtures.GetByID(ctx, f.ID)
		assert.False(t, fx.IsPlayed)
		res, _ := matches.List(ctx, repository.Page{})
		assert.Zero(t, res.Total)
	})

	t.Run("commit", func(t *testing.T) {
		require.NoError(t, tx.WithinTx(ctx, write))

		_, err := matches.GetByFixture(ctx, f.ID)
		assert.NoError(t, err)
		got, _ := clubs.GetByID(ctx, c.ID)
		assert.Equal(t, 60.0, got.Players[0].Fitness)
		fx, _ := fixtures.GetByID(ctx, f.ID)
		assert.True(t, fx.IsPlayed)
	})

	t.Run("nil stores are skipped", func(t *testing.T) {
		only := memory.NewTxManager(nil, nil, memory.NewMatches())
		assert.NoError(t, only.WithinTx(ctx, func(context.Context) error { return nil }))
	})
}
