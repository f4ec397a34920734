// Package commentary turns match events into narration lines.
// Template choice draws from the simulation's own RNG so the text is as
// reproducible as the events themselves.
package commentary

import (
	"fmt"
	"strings"

	"github.com/maxviazov/football-match-engine/internal/rng"
)

// Event is the presentation-side view of something that happened.
type Event struct {
	Kind    Kind
	Minute  int
	Player  string
	Player2 string
	Team    string
}

// Generator renders events using a template catalog.
type Generator struct {
	rng     *rng.RNG
	catalog Catalog
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog swaps the built-in catalog.
func WithCatalog(c Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// NewGenerator binds a generator to r. The RNG is shared with the engine, not copied.
func NewGenerator(r *rng.RNG, opts ...Option) *Generator {
	g := &Generator{rng: r, catalog: DefaultCatalog()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders one line prefixed with the minute. Kinds without templates
// produce a generic line and consume no randomness.
func (g *Generator) Generate(ev Event) string {
	templates := g.catalog[ev.Kind]
	if len(templates) == 0 {
		return fmt.Sprintf("[%d'] Acontecimento no jogo.", ev.Minute)
	}

	text := strings.NewReplacer(
		"{player2}", orDefault(ev.Player2, "Substituto"),
		"{player}", orDefault(ev.Player, "Jogador"),
		"{team}", orDefault(ev.Team, "Time"),
	).Replace(rng.Pick(g.rng, templates))

	return fmt.Sprintf("[%d'] %s", ev.Minute, text)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// PreMatch returns the fixed opening lines.
func PreMatch(home, away string) []string {
	return []string{
		fmt.Sprintf("Bem-vindos à partida entre %s e %s!", home, away),
		"Os times já estão em campo, prontos para o início do jogo.",
		"A torcida da casa faz festa nas arquibancadas!",
		"Tudo pronto para mais um grande espetáculo do futebol!",
	}
}

// PostMatch frames the final score as a home win, away win or draw.
func PostMatch(home, away string, homeScore, awayScore int) []string {
	var lines []string
	switch {
	case homeScore > awayScore:
		lines = []string{
			fmt.Sprintf("Vitória do %s por %d a %d!", home, homeScore, awayScore),
			"A torcida da casa comemora o resultado!",
			"Três pontos importantes para o time mandante.",
		}
	case awayScore > homeScore:
		lines = []string{
			fmt.Sprintf("Vitória do %s por %d a %d!", away, awayScore, homeScore),
			"Grande resultado fora de casa!",
			"O time visitante leva os três pontos.",
		}
	default:
		lines = []string{
			fmt.Sprintf("Empate em %d a %d!", homeScore, awayScore),
			"As equipes dividem os pontos.",
			"Resultado justo pelo que foi apresentado em campo.",
		}
	}
	return append(lines, "Foi um prazer acompanhar esta partida com vocês!")
}

// ScoreUpdate is the running scoreline printed after each goal.
func ScoreUpdate(home, away string, homeScore, awayScore int) string {
	return fmt.Sprintf("PLACAR: %s %d x %d %s", home, homeScore, awayScore, away)
}
