// Package compose assembles card messages from a template catalog.
package compose

import (
	"errors"
	"strings"

	"cardtext/internal/domain"
	"cardtext/internal/templates"
)

const (
	// DefaultEnhanceProbability is the chance an enhancement sentence is
	// appended when options allow it.
	DefaultEnhanceProbability = 0.5

	// quoteEvery makes quote inclusion periodic in Options.Count.
	quoteEvery = 3

	separator = "\n\n"
)

// Composer builds messages. It is safe for concurrent use when its Chooser is.
type Composer struct {
	catalog            *templates.Catalog
	chooser            Chooser
	enhanceProbability float64
}

type Option func(*Composer)

// WithEnhanceProbability overrides DefaultEnhanceProbability. Values are
// clamped to [0, 1].
func WithEnhanceProbability(p float64) Option {
	return func(c *Composer) {
		switch {
		case p < 0:
			p = 0
		case p > 1:
			p = 1
		}
		c.enhanceProbability = p
	}
}

// New validates the catalog and returns a Composer.
func New(catalog *templates.Catalog, chooser Chooser, opts ...Option) (*Composer, error) {
	if catalog == nil {
		return nil, errors.New("compose: catalog must not be nil")
	}
	if chooser == nil {
		return nil, errors.New("compose: chooser must not be nil")
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	c := &Composer{
		catalog:            catalog,
		chooser:            chooser,
		enhanceProbability: DefaultEnhanceProbability,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Compose returns a message for category. Categories without pools resolve
// to Fallback; there is no error path.
func (c *Composer) Compose(category domain.Category, opts domain.Options) string {
	pools, ok := c.catalog.Lookup(category)
	if !ok {
		return c.Fallback(category)
	}

	parts := []string{c.pick(pools.Greetings), c.pick(pools.MainContent()), c.pick(pools.Closer(category))}

	if opts.Count%quoteEvery == 0 && len(pools.Quotes) > 0 {
		parts = append(parts, `"`+c.pick(pools.Quotes)+`"`)
	}

	if opts.Enhanced && len(pools.Enhancements) > 0 && c.chooser.Float64() < c.enhanceProbability {
		parts = append(parts, c.pick(pools.Enhancements))
	}

	return join(parts)
}

// Fallback returns one of the safe messages for category, using the default
// category's set for unknown categories.
func (c *Composer) Fallback(category domain.Category) string {
	return c.pick(c.catalog.FallbackSet(category))
}

// Catalog exposes the catalog the composer was built with.
func (c *Composer) Catalog() *templates.Catalog {
	return c.catalog
}

// join drops slots whose pool was empty.
func join(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, separator)
}

func (c *Composer) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[c.chooser.Intn(len(pool))]
}
