package commentary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/football-match-engine/internal/commentary"
	"github.com/maxviazov/football-match-engine/internal/rng"
)

func TestDefaultCatalog_CoversEveryKind(t *testing.T) {
	c := commentary.DefaultCatalog()
	kinds := []commentary.Kind{
		commentary.Kickoff, commentary.Goal, commentary.YellowCard, commentary.RedCard,
		commentary.Substitution, commentary.Injury, commentary.Chance, commentary.Save,
		commentary.Offside, commentary.Foul, commentary.Corner, commentary.Penalty,
		commentary.HalfTime, commentary.FullTime, commentary.General,
	}
	for _, k := range kinds {
		assert.NotEmpty(t, c[k], "kind %s", k)
	}
	assert.Len(t, c[commentary.General], 9)
}

func TestParseCatalog(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"valid", "goal:\n  - \"{player} scores\"\n", ""},
		{"unknown kind", "dance:\n  - \"x\"\n", "unknown commentary kind"},
		{"empty list", "goal: []\n", "no templates"},
		{"not yaml map", "- a\n- b\n", "decode catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := commentary.ParseCatalog([]byte(tc.doc))
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, []string{"{player} scores"}, c[commentary.Goal])
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestGenerate_SubstitutesPlaceholders(t *testing.T) {
	cat := commentary.Catalog{
		commentary.Substitution: {"{team}: {player} off, {player2} on"},
	}
	g := commentary.NewGenerator(rng.New("subs"), commentary.WithCatalog(cat))

	line := g.Generate(commentary.Event{Kind: commentary.Substitution, Minute: 63, Player: "Ana", Player2: "Bia", Team: "Casa"})
	assert.Equal(t, "[63'] Casa: Ana off, Bia on", line)

	line = g.Generate(commentary.Event{Kind: commentary.Substitution, Minute: 70})
	assert.Equal(t, "[70'] Time: Jogador off, Substituto on", line)
}

func TestGenerate_UnknownKindFallsBack(t *testing.T) {
	a := rng.New("fallback")
	b := rng.New("fallback")
	g := commentary.NewGenerator(a)

	line := g.Generate(commentary.Event{Kind: "moonwalk", Minute: 12})
	assert.Equal(t, "[12'] Acontecimento no jogo.", line)
	// the fallback does not advance the RNG
	assert.Equal(t, b.Random(), a.Random())
}

func TestGenerate_Deterministic(t *testing.T) {
	render := func(seed string) []string {
		g := commentary.NewGenerator(rng.New(seed))
		var out []string
		for m := 1; m <= 50; m++ {
			out = append(out, g.Generate(commentary.Event{Kind: commentary.Goal, Minute: m, Player: "Zico", Team: "Flamengo"}))
		}
		return out
	}
	assert.Equal(t, render("same"), render("same"))

	for _, line := range render("other") {
		assert.True(t, strings.HasPrefix(line, "["))
		assert.NotContains(t, line, "{player}")
		assert.NotContains(t, line, "{team}")
	}
}

func TestGenerate_UsesEveryTemplate(t *testing.T) {
	g := commentary.NewGenerator(rng.New("spread"))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[g.Generate(commentary.Event{Kind: commentary.HalfTime, Minute: 45})] = true
	}
	assert.Len(t, seen, len(commentary.DefaultCatalog()[commentary.HalfTime]))
}

func TestPreMatch(t *testing.T) {
	lines := commentary.PreMatch("Flamengo", "Vasco")
	require.Len(t, lines, 4)
	assert.Equal(t, "Bem-vindos à partida entre Flamengo e Vasco!", lines[0])
}

func TestPostMatch(t *testing.T) {
	cases := []struct {
		name       string
		home, away int
		first      string
	}{
		{"home win", 3, 1, "Vitória do Flamengo por 3 a 1!"},
		{"away win", 0, 2, "Vitória do Vasco por 2 a 0!"},
		{"draw", 1, 1, "Empate em 1 a 1!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := commentary.PostMatch("Flamengo", "Vasco", tc.home, tc.away)
			require.Len(t, lines, 4)
			assert.Equal(t, tc.first, lines[0])
			assert.Contains(t, lines[3], "prazer acompanhar")
		})
	}
}

func TestScoreUpdate(t *testing.T) {
	assert.Equal(t, "PLACAR: Flamengo 2 x 1 Vasco", commentary.ScoreUpdate("Flamengo", "Vasco", 2, 1))
}
