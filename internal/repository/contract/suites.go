// Package contract holds behaviour suites every repository implementation must pass.
// An implementation's test file supplies a factory and calls the Run* function.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository"
)

// FixtureFactory returns a fresh repository plus a way to schedule fixtures in it,
// since scheduling is not part of the FixtureRepository contract.
type FixtureFactory func(t *testing.T) (repo repository.FixtureRepository, schedule func(ctx context.Context, f model.Fixture) (model.Fixture, error), cleanup func())

type ClubFactory func(t *testing.T) (repo repository.ClubRepository, register func(ctx context.Context, c model.Club) (model.Club, error), cleanup func())

type MatchFactory func(t *testing.T) (repository.MatchRepository, func())

func RunFixtureRepositoryContract(t *testing.T, makeRepo FixtureFactory) {
	t.Helper()

	t.Run("schedule_and_get", func(t *testing.T) {
		repo, schedule, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := schedule(ctx, model.Fixture{HomeClubID: uuid.New(), AwayClubID: uuid.New()})
		if err != nil {
			t.Fatalf("schedule failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got != created || got.IsPlayed {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), uuid.New())
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("mark_played_once", func(t *testing.T) {
		repo, schedule, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		f, err := schedule(ctx, model.Fixture{HomeClubID: uuid.New(), AwayClubID: uuid.New()})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.MarkPlayed(ctx, f.ID); err != nil {
			t.Fatalf("mark played: %v", err)
		}
		got, err := repo.GetByID(ctx, f.ID)
		if err != nil || !got.IsPlayed {
			t.Fatalf("expected played fixture, got %+v err=%v", got, err)
		}
		if err := repo.MarkPlayed(ctx, f.ID); !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict on replay, got %v", err)
		}
	})

	t.Run("mark_played_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if err := repo.MarkPlayed(context.Background(), uuid.New()); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunClubRepositoryContract(t *testing.T, makeRepo ClubFactory) {
	t.Helper()

	squad := func() []model.Player {
		return []model.Player{
			{ID: "gk", Name: "Keeper", Position: model.Goalkeeper, Overall: 70, Fitness: 100},
			{ID: "df", Name: "Back", Position: model.Defender, Overall: 68, Fitness: 100},
			{ID: "fw", Name: "Striker", Position: model.Forward, Overall: 75, Fitness: 100},
		}
	}

	t.Run("register_and_get", func(t *testing.T) {
		repo, register, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := register(ctx, model.Club{Name: "Gremio", Players: squad(), Tactic: &model.Tactic{Formation: "4-3-3", Aggression: 40, Pressure: 70}})
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Gremio" || len(got.Players) != 3 || got.Tactic == nil || got.Tactic.Formation != "4-3-3" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), uuid.New())
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save_players_updates_only_given", func(t *testing.T) {
		repo, register, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		c, err := register(ctx, model.Club{Name: "Inter", Players: squad()})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		striker := squad()[2]
		striker.Fitness = 71.5
		striker.GoalsSeason = 3
		striker.YellowCards = 5
		striker.BanMatches = 1
		if err := repo.SavePlayers(ctx, c.ID, []model.Player{striker}); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.GetByID(ctx, c.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		for _, p := range got.Players {
			switch p.ID {
			case "fw":
				if p != striker {
					t.Fatalf("striker not persisted: %+v", p)
				}
			default:
				if p.Fitness != 100 {
					t.Fatalf("untouched player changed: %+v", p)
				}
			}
		}
	})

	t.Run("save_players_unknown_club", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		err := repo.SavePlayers(context.Background(), uuid.New(), squad())
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	record := func(fixtureID uuid.UUID) model.MatchRecord {
		return model.MatchRecord{
			FixtureID: fixtureID,
			HomeClub:  "Bahia",
			AwayClub:  "Vitoria",
			PlayedAt:  time.Date(2026, 5, 2, 19, 0, 0, 0, time.UTC),
			Result:    model.MatchResult{Seed: "match-" + fixtureID.String(), HomeScore: 2, AwayScore: 1},
		}
	}

	t.Run("create_and_get_by_fixture", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		fx := uuid.New()
		created, err := repo.Create(ctx, record(fx))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == uuid.Nil {
			t.Fatalf("expected an id to be assigned")
		}
		got, err := repo.GetByFixture(ctx, fx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Result.HomeScore != 2 || !got.PlayedAt.Equal(created.PlayedAt) {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("one_record_per_fixture", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		fx := uuid.New()
		if _, err := repo.Create(ctx, record(fx)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Create(ctx, record(fx)); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByFixture(context.Background(), uuid.New())
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, record(uuid.New())); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})
}
