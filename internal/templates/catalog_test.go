package templates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardtext/internal/domain"
)

func TestBuiltin_Valid(t *testing.T) {
	c := Builtin()
	require.NoError(t, c.Validate())
	for _, cat := range domain.KnownCategories() {
		p, ok := c.Lookup(cat)
		require.True(t, ok, "category %q", cat)
		require.NotEmpty(t, p.Greetings)
		require.NotEmpty(t, p.MainContent())
		require.NotEmpty(t, p.Closer(cat))
		require.NotEmpty(t, p.Quotes)
		require.NotEmpty(t, p.Enhancements)
		require.Len(t, c.FallbackSet(cat), 3)
	}
}

func TestBuiltin_ReturnsFreshCopy(t *testing.T) {
	a := Builtin()
	a.Categories[domain.CategoryMorning].Greetings[0] = "mutated"
	b := Builtin()
	require.NotEqual(t, "mutated", b.Categories[domain.CategoryMorning].Greetings[0])
}

func TestMainContent_Priority(t *testing.T) {
	p := Pools{Reflections: []string{"r"}, Wisdom: []string{"w"}}
	require.Equal(t, []string{"r"}, p.MainContent())

	p = Pools{Affirmations: []string{"a"}, Reflections: []string{"r"}}
	require.Equal(t, []string{"a"}, p.MainContent())

	require.Nil(t, Pools{}.MainContent())
}

func TestCloser_Mapping(t *testing.T) {
	p := Pools{
		Blessings:   []string{"b"},
		Prayers:     []string{"p"},
		Promises:    []string{"pr"},
		Meditations: []string{"m"},
	}
	require.Equal(t, []string{"b"}, p.Closer(domain.CategoryMorning))
	require.Equal(t, []string{"p"}, p.Closer(domain.CategoryNight))
	require.Equal(t, []string{"pr"}, p.Closer(domain.CategoryLove))
	require.Equal(t, []string{"m"}, p.Closer(domain.CategorySpiritual))
	require.Nil(t, p.Closer("birthday"))
}

func TestFallbackSet_UnknownUsesDefault(t *testing.T) {
	c := Builtin()
	require.Equal(t, c.Fallbacks[domain.CategoryMorning], c.FallbackSet("unknown"))
	require.Equal(t, c.Fallbacks[domain.CategoryMorning], c.FallbackSet(""))
}

func TestValidate_MissingDefaultFallback(t *testing.T) {
	c := Builtin()
	delete(c.Fallbacks, domain.CategoryMorning)
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestValidate_EmptyFallbackMessage(t *testing.T) {
	c := Builtin()
	c.Fallbacks[domain.CategoryNight] = []string{"ok", "  "}
	require.ErrorContains(t, c.Validate(), "is empty")
}

func TestValidate_BlankPoolEntry(t *testing.T) {
	c := Builtin()
	p := c.Categories[domain.CategoryLove]
	p.Promises = []string{"I promise.", " "}
	c.Categories[domain.CategoryLove] = p
	require.ErrorContains(t, c.Validate(), `category "love" promises[1] is empty`)
}

func TestParse_RejectsBlankPhrases(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  birthday:
    greetings: [""]
    affirmations: [""]
`))
	require.ErrorContains(t, err, "is empty")
}

func TestValidate_NilCatalog(t *testing.T) {
	var c *Catalog
	require.Error(t, c.Validate())
}

func TestParse_InheritsBuiltinFallbacks(t *testing.T) {
	raw := []byte(`
categories:
  birthday:
    greetings: ["Happy birthday!"]
    affirmations: ["Another year of light."]
    quotes: ["Age is an issue of mind over matter. - Mark Twain"]
`)
	c, err := Parse(raw)
	require.NoError(t, err)

	p, ok := c.Lookup("birthday")
	require.True(t, ok)
	require.Equal(t, []string{"Happy birthday!"}, p.Greetings)
	require.Equal(t, []string{"Another year of light."}, p.MainContent())
	require.Equal(t, Builtin().Fallbacks[domain.CategoryMorning], c.FallbackSet("birthday"))
}

func TestParse_OverridesFallbacks(t *testing.T) {
	raw := []byte(`
categories:
  morning:
    greetings: ["Hi"]
fallbacks:
  morning: ["Plain morning."]
`)
	c, err := Parse(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Plain morning."}, c.FallbackSet("whatever"))
	require.Len(t, c.FallbackSet(domain.CategoryNight), 3)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "malformed", raw: "categories: [", want: "decode catalog"},
		{name: "no categories", raw: "fallbacks: {}", want: "no categories"},
		{name: "empty default fallback", raw: "categories:\n  morning:\n    greetings: [hi]\nfallbacks:\n  morning: []\n", want: "must not be empty"},
		{name: "empty category", raw: "categories:\n  night: {}\n", want: "neither greetings nor main content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}
