// Package rng provides the seeded random source every simulation draws from.
// Output is a pure function of the seed string and the order of calls, so one
// RNG must never be shared between concurrently running matches.
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// streamSalt separates the second PCG word from the first so short seeds
// still fill both halves of the state.
const streamSalt = "\x00football-match-engine"

// RNG is a deterministic generator built from a caller-supplied seed string.
type RNG struct {
	seed string
	src  *rand.Rand
}

// New hashes seed into a PCG state. Equal seeds always produce equal streams.
func New(seed string) *RNG {
	hi := xxhash.Sum64String(seed)
	lo := xxhash.Sum64String(seed + streamSalt)
	return &RNG{seed: seed, src: rand.New(rand.NewPCG(hi, lo))}
}

// Seed returns the seed the generator was built from.
func (r *RNG) Seed() string { return r.seed }

// Random returns a float in [0, 1).
func (r *RNG) Random() float64 {
	return r.src.Float64()
}

// RandomInt returns an integer in [min, max], both ends inclusive.
func (r *RNG) RandomInt(min, max int) int {
	if max < min {
		panic("rng: RandomInt called with max < min")
	}
	return int(math.Floor(r.Random()*float64(max-min+1))) + min
}

// RandomFloat returns a float in [min, max).
func (r *RNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Chance reports true with probability p. p <= 0 never fires, p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	return r.Random() < p
}

// Gaussian samples a normal distribution with the Box-Muller transform.
// It always consumes two uniform draws.
func (r *RNG) Gaussian(mean, stdDev float64) float64 {
	u1 := r.Random()
	u2 := r.Random()
	// 1-u1 lies in (0, 1], keeping the log finite.
	z0 := math.Sqrt(-2*math.Log(1-u1)) * math.Cos(2*math.Pi*u2)
	return z0*stdDev + mean
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](r *RNG, items []T) T {
	if len(items) == 0 {
		panic("rng: Pick called with empty slice")
	}
	return items[r.RandomInt(0, len(items)-1)]
}

// PickIndex is Pick for callers that need to mutate the chosen element in place.
func PickIndex[T any](r *RNG, items []T) int {
	if len(items) == 0 {
		panic("rng: PickIndex called with empty slice")
	}
	return r.RandomInt(0, len(items)-1)
}

// Choice is one weighted option for Weighted.
type Choice[T any] struct {
	Item   T
	Weight float64
}

// Weighted picks an item with probability proportional to its weight. When
// float rounding leaves residual weight the last item wins. It panics on an
// empty slice.
func Weighted[T any](r *RNG, choices []Choice[T]) T {
	if len(choices) == 0 {
		panic("rng: Weighted called with empty slice")
	}
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	remaining := r.Random() * total
	for _, c := range choices {
		remaining -= c.Weight
		if remaining <= 0 {
			return c.Item
		}
	}
	return choices[len(choices)-1].Item
}
