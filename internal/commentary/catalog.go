package commentary

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Kind names a family of commentary templates.
type Kind string

const (
	Kickoff      Kind = "kickoff"
	Goal         Kind = "goal"
	YellowCard   Kind = "yellow_card"
	RedCard      Kind = "red_card"
	Substitution Kind = "substitution"
	Injury       Kind = "injury"
	Chance       Kind = "chance"
	Save         Kind = "save"
	Offside      Kind = "offside"
	Foul         Kind = "foul"
	Corner       Kind = "corner"
	Penalty      Kind = "penalty"
	HalfTime     Kind = "half_time"
	FullTime     Kind = "full_time"
	General      Kind = "general"
)

var knownKinds = map[Kind]struct{}{
	Kickoff: {}, Goal: {}, YellowCard: {}, RedCard: {}, Substitution: {},
	Injury: {}, Chance: {}, Save: {}, Offside: {}, Foul: {}, Corner: {},
	Penalty: {}, HalfTime: {}, FullTime: {}, General: {},
}

// Catalog maps each kind to its templates. Template order is significant:
// the generator picks by index, so reordering changes seeded output.
type Catalog map[Kind][]string

//go:embed catalog_ptbr.yaml
var ptBRSource []byte

var defaultCatalog = sync.OnceValue(func() Catalog {
	c, err := ParseCatalog(ptBRSource)
	if err != nil {
		panic(fmt.Sprintf("commentary: embedded catalog is invalid: %v", err))
	}
	return c
})

// DefaultCatalog returns the built-in Brazilian Portuguese catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog()
}

// ParseCatalog decodes a YAML document of kind -> template list. Unknown kinds
// and empty lists are rejected.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	out := make(Catalog, len(raw))
	for k, templates := range raw {
		kind := Kind(k)
		if _, ok := knownKinds[kind]; !ok {
			return nil, fmt.Errorf("unknown commentary kind %q", k)
		}
		if len(templates) == 0 {
			return nil, fmt.Errorf("commentary kind %q has no templates", k)
		}
		out[kind] = templates
	}
	return out, nil
}
