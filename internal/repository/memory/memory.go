// Package memory implements the repository contracts in process memory.
// It backs the CLI and the service tests; every read and write copies slices
// so callers never alias stored state. TxManager gives all-or-nothing writes
// across the three stores.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/maxviazov/football-match-engine/internal/model"
	"github.com/maxviazov/football-match-engine/internal/repository"
)

// Fixtures is an in-memory FixtureRepository.
type Fixtures struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Fixture
}

func NewFixtures() *Fixtures {
	return &Fixtures{items: map[uuid.UUID]model.Fixture{}}
}

// Add stores f, assigning an ID when it has none.
func (r *Fixtures) Add(f model.Fixture) model.Fixture {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[f.ID] = f
	return f
}

func (r *Fixtures) GetByID(_ context.Context, id uuid.UUID) (model.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.items[id]
	if !ok {
		return model.Fixture{}, repository.ErrNotFound
	}
	return f, nil
}

func (r *Fixtures) MarkPlayed(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if f.IsPlayed {
		return repository.ErrConflict
	}
	f.IsPlayed = true
	r.items[id] = f
	return nil
}

func (r *Fixtures) snapshot() func() {
	r.mu.RLock()
	saved := maps.Clone(r.items)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.items = saved
		r.mu.Unlock()
	}
}

// Clubs is an in-memory ClubRepository.
type Clubs struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Club
}

func NewClubs() *Clubs {
	return &Clubs{items: map[uuid.UUID]model.Club{}}
}

// Add stores a copy of c, assigning an ID when it has none.
func (r *Clubs) Add(c model.Club) model.Club {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Players = slices.Clone(c.Players)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c
	return c
}

func (r *Clubs) GetByID(_ context.Context, id uuid.UUID) (model.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return model.Club{}, repository.ErrNotFound
	}
	c.Players = slices.Clone(c.Players)
	return c, nil
}

func (r *Clubs) SavePlayers(_ context.Context, clubID uuid.UUID, players []model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[clubID]
	if !ok {
		return repository.ErrNotFound
	}
	index := make(map[string]int, len(c.Players))
	for i, p := range c.Players {
		index[p.ID] = i
	}
	updated := slices.Clone(c.Players)
	for _, p := range players {
		i, ok := index[p.ID]
		if !ok {
			return repository.ErrNotFound
		}
		updated[i] = p
	}
	c.Players = updated
	r.items[clubID] = c
	return nil
}

// snapshot copies the map only; stored player slices are replaced, never written in place.
func (r *Clubs) snapshot() func() {
	r.mu.RLock()
	saved := maps.Clone(r.items)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.items = saved
		r.mu.Unlock()
	}
}

// Matches is an in-memory MatchRepository keyed by fixture; one record per fixture.
type Matches struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]model.MatchRecord
}

func NewMatches() *Matches {
	return &Matches{items: map[uuid.UUID]model.MatchRecord{}}
}

func (r *Matches) Create(_ context.Context, m model.MatchRecord) (model.MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.FixtureID]; ok {
		return model.MatchRecord{}, repository.ErrAlreadyExists
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.FixtureID] = cloneRecord(m)
	r.order = append(r.order, m.FixtureID)
	return m, nil
}

func (r *Matches) GetByFixture(_ context.Context, fixtureID uuid.UUID) (model.MatchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[fixtureID]
	if !ok {
		return model.MatchRecord{}, repository.ErrNotFound
	}
	return cloneRecord(m), nil
}

// List returns records in insertion order.
func (r *Matches) List(_ context.Context, p repository.Page) (repository.PageResult[model.MatchRecord], error) {
	p = p.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := repository.PageResult[model.MatchRecord]{Total: len(r.order)}
	if p.Offset >= len(r.order) {
		return res, nil
	}
	end := min(p.Offset+p.Limit, len(r.order))
	for _, id := range r.order[p.Offset:end] {
		res.Items = append(res.Items, cloneRecord(r.items[id]))
	}
	return res, nil
}

type snapshotter interface {
	snapshot() (restore func())
}

// TxManager snapshots the stores it was built with before each unit of work and
// restores them if the work fails. Transactions are serialized with each other;
// writes made outside WithinTx during a failed transaction are rolled back too.
type TxManager struct {
	mu     sync.Mutex
	stores []snapshotter
}

// NewTxManager covers the given stores; nil stores are skipped.
func NewTxManager(fixtures *Fixtures, clubs *Clubs, matches *Matches) *TxManager {
	m := &TxManager{}
	if fixtures != nil {
		m.stores = append(m.stores, fixtures)
	}
	if clubs != nil {
		m.stores = append(m.stores, clubs)
	}
	if matches != nil {
		m.stores = append(m.stores, matches)
	}
	return m
}

func (m *TxManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	restores := make([]func(), 0, len(m.stores))
	for _, s := range m.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

var (
	_ repository.TxManager         = (*TxManager)(nil)
	_ repository.FixtureRepository = (*Fixtures)(nil)
	_ repository.ClubRepository    = (*Clubs)(nil)
	_ repository.MatchRepository   = (*Matches)(nil)
)

func (r *Matches) snapshot() func() {
	r.mu.RLock()
	items, order := maps.Clone(r.items), slices.Clone(r.order)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.items, r.order = items, order
		r.mu.Unlock()
	}
}

// cloneRecord copies every slice in the result so stored records never alias
// caller memory.
func cloneRecord(m model.MatchRecord) model.MatchRecord {
	res := m.Result
	res.Events = slices.Clone(res.Events)
	for i, ev := range res.Events {
		if ev.Detail != nil {
			d := *ev.Detail
			res.Events[i].Detail = &d
		}
	}
	res.Commentary = slices.Clone(res.Commentary)
	res.HomePlayers = slices.Clone(res.HomePlayers)
	res.AwayPlayers = slices.Clone(res.AwayPlayers)
	m.Result = res
	return m
}
