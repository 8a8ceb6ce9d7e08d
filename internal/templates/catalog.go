package templates

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"cardtext/internal/domain"
)

// Pools holds the phrase pools for one category. Empty pools are allowed;
// the composer skips their slot.
type Pools struct {
	Greetings    []string `yaml:"greetings"`
	Affirmations []string `yaml:"affirmations,omitempty"`
	Reflections  []string `yaml:"reflections,omitempty"`
	Expressions  []string `yaml:"expressions,omitempty"`
	Wisdom       []string `yaml:"wisdom,omitempty"`
	Blessings    []string `yaml:"blessings,omitempty"`
	Prayers      []string `yaml:"prayers,omitempty"`
	Promises     []string `yaml:"promises,omitempty"`
	Meditations  []string `yaml:"meditations,omitempty"`
	Quotes       []string `yaml:"quotes,omitempty"`
	Enhancements []string `yaml:"enhancements,omitempty"`
}

// MainContent returns the first non-empty main pool in priority order:
// affirmations, reflections, expressions, wisdom.
func (p Pools) MainContent() []string {
	for _, pool := range [][]string{p.Affirmations, p.Reflections, p.Expressions, p.Wisdom} {
		if len(pool) > 0 {
			return pool
		}
	}
	return nil
}

// Closer returns the category specific closing pool. Categories outside the
// builtin set have no closer.
func (p Pools) Closer(c domain.Category) []string {
	switch c {
	case domain.CategoryMorning:
		return p.Blessings
	case domain.CategoryNight:
		return p.Prayers
	case domain.CategoryLove:
		return p.Promises
	case domain.CategorySpiritual:
		return p.Meditations
	default:
		return nil
	}
}

// Catalog maps categories to their pools and fallback messages. It is not
// mutated after construction.
type Catalog struct {
	Categories map[domain.Category]Pools    `yaml:"categories"`
	Fallbacks  map[domain.Category][]string `yaml:"fallbacks"`
}

// Lookup returns the pools for c.
func (c *Catalog) Lookup(cat domain.Category) (Pools, bool) {
	if c == nil {
		return Pools{}, false
	}
	p, ok := c.Categories[cat]
	return p, ok
}

// FallbackSet returns the safe messages for cat, or the default category's
// set when cat has none.
func (c *Catalog) FallbackSet(cat domain.Category) []string {
	if c == nil {
		return nil
	}
	if set := c.Fallbacks[cat]; len(set) > 0 {
		return set
	}
	return c.Fallbacks[domain.DefaultCategory]
}

// Validate checks the invariants the composer depends on.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("templates: catalog must not be nil")
	}
	def := c.Fallbacks[domain.DefaultCategory]
	if len(def) == 0 {
		return fmt.Errorf("templates: fallback set for %q must not be empty", domain.DefaultCategory)
	}
	for cat, set := range c.Fallbacks {
		for i, msg := range set {
			if strings.TrimSpace(msg) == "" {
				return fmt.Errorf("templates: fallback %q[%d] is empty", cat, i)
			}
		}
	}
	for cat, p := range c.Categories {
		if strings.TrimSpace(string(cat)) == "" {
			return errors.New("templates: category name must not be empty")
		}
		if len(p.Greetings) == 0 && len(p.MainContent()) == 0 {
			return fmt.Errorf("templates: category %q has neither greetings nor main content", cat)
		}
		for name, pool := range p.named() {
			for i, phrase := range pool {
				if strings.TrimSpace(phrase) == "" {
					return fmt.Errorf("templates: category %q %s[%d] is empty", cat, name, i)
				}
			}
		}
	}
	return nil
}

func (p Pools) named() map[string][]string {
	return map[string][]string{
		"greetings":    p.Greetings,
		"affirmations": p.Affirmations,
		"reflections":  p.Reflections,
		"expressions":  p.Expressions,
		"wisdom":       p.Wisdom,
		"blessings":    p.Blessings,
		"prayers":      p.Prayers,
		"promises":     p.Promises,
		"meditations":  p.Meditations,
		"quotes":       p.Quotes,
		"enhancements": p.Enhancements,
	}
}

// Parse decodes a YAML catalog. Fallback sets absent from the document are
// taken from the builtin catalog.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("templates: decode catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, errors.New("templates: catalog defines no categories")
	}
	if c.Fallbacks == nil {
		c.Fallbacks = make(map[domain.Category][]string)
	}
	for cat, set := range Builtin().Fallbacks {
		if _, ok := c.Fallbacks[cat]; !ok {
			c.Fallbacks[cat] = set
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
