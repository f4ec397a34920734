// Package lineup picks the eleven players a club fields for a match.
// The engine trusts whatever it is given; this is where injured and suspended
// players are filtered out and formations are enforced.
package lineup

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maxviazov/football-match-engine/internal/model"
)

// Size is the number of players each side fields.
const Size = 11

var (
	ErrInvalidFormation = errors.New("invalid formation")
	ErrIncomplete       = errors.New("cannot field eleven players")
)

// Shape is a formation broken down into outfield line counts. Shapes with more
// than three lines (4-2-3-1) fold the middle lines into Midfielders.
type Shape struct {
	Defenders   int
	Midfielders int
	Forwards    int
}

// ParseFormation reads shapes like "4-4-2". The lines must add up to ten.
func ParseFormation(s string) (Shape, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 3 {
		return Shape{}, fmt.Errorf("%w: %q needs at least three lines", ErrInvalidFormation, s)
	}
	nums := make([]int, len(parts))
	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Shape{}, fmt.Errorf("%w: %q has a bad line %q", ErrInvalidFormation, s, p)
		}
		nums[i] = n
		total += n
	}
	if total != Size-1 {
		return Shape{}, fmt.Errorf("%w: %q has %d outfield players", ErrInvalidFormation, s, total)
	}
	sh := Shape{Defenders: nums[0], Forwards: nums[len(nums)-1]}
	for _, n := range nums[1 : len(nums)-1] {
		sh.Midfielders += n
	}
	return sh, nil
}

// Selection is the outcome of Select. Players is the best XI that could be
// built even when Valid is false.
type Selection struct {
	Valid    bool
	Problems []string
	Players  []model.Player
}

var defaultShape = Shape{Defenders: 4, Midfielders: 4, Forwards: 2}

// Select builds the strongest XI for the formation from available players:
// one keeper, then each line by overall, then any gaps filled by the best of the rest.
func Select(squad []model.Player, formation string) Selection {
	var problems []string

	shape, err := ParseFormation(formation)
	if err != nil {
		problems = append(problems, err.Error())
		shape = defaultShape
	}

	available := make([]model.Player, 0, len(squad))
	for _, p := range squad {
		if p.Available() {
			available = append(available, p)
		}
	}
	if len(available) < Size {
		problems = append(problems, fmt.Sprintf("only %d players available (minimum %d)", len(available), Size))
	}

	byPos := map[model.Position][]model.Player{}
	for _, p := range available {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	for _, ps := range byPos {
		sortByOverall(ps)
	}

	need := []struct {
		pos   model.Position
		count int
		label string
	}{
		{model.Goalkeeper, 1, "goalkeepers"},
		{model.Defender, shape.Defenders, "defenders"},
		{model.Midfielder, shape.Midfielders, "midfielders"},
		{model.Forward, shape.Forwards, "forwards"},
	}

	picked := make([]model.Player, 0, Size)
	used := map[string]bool{}
	for _, n := range need {
		have := byPos[n.pos]
		if len(have) < n.count {
			problems = append(problems, fmt.Sprintf("not enough %s (have %d, need %d)", n.label, len(have), n.count))
		}
		for _, p := range have[:min(n.count, len(have))] {
			picked = append(picked, p)
			used[p.ID] = true
		}
	}

	if len(picked) < Size {
		rest := make([]model.Player, 0, len(available))
		for _, p := range available {
			if !used[p.ID] {
				rest = append(rest, p)
			}
		}
		sortByOverall(rest)
		picked = append(picked, rest[:min(Size-len(picked), len(rest))]...)
		if len(picked) < Size {
			problems = append(problems, "could not build a complete lineup")
		}
	}

	return Selection{Valid: len(problems) == 0, Problems: problems, Players: picked}
}

// Emergency fields anyone with fitness left, preferring fit, unsuspended,
// stronger players. It may include injured or banned players.
func Emergency(squad []model.Player) []model.Player {
	out := make([]model.Player, 0, len(squad))
	for _, p := range squad {
		if p.Fitness > 0 {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Player) int {
		if a.IsInjured != b.IsInjured {
			if a.IsInjured {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(a.BanMatches, b.BanMatches); c != 0 {
			return c
		}
		return cmp.Compare(b.Overall, a.Overall)
	})
	return out[:min(Size, len(out))]
}

// Resolve returns a lineup for the formation, falling back to Emergency when
// Select cannot produce a valid one.
func Resolve(squad []model.Player, formation string) ([]model.Player, error) {
	sel := Select(squad, formation)
	players := sel.Players
	if !sel.Valid {
		players = Emergency(squad)
	}
	if len(players) < Size {
		return nil, fmt.Errorf("%w: %d players usable", ErrIncomplete, len(players))
	}
	return players, nil
}

func sortByOverall(ps []model.Player) {
	slices.SortStableFunc(ps, func(a, b model.Player) int {
		return cmp.Compare(b.Overall, a.Overall)
	})
}
