package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cardtext/internal/domain"
)

type fakeGetter struct {
	val  string
	err  error
	name string
}

func (f *fakeGetter) GetParameter(_ context.Context, name string) (string, error) {
	f.name = name
	return f.val, f.err
}

const catalogYAML = `
categories:
  morning:
    greetings: ["Morning!"]
    affirmations: ["Shine."]
    blessings: ["Be well."]
`

func TestNewCatalogSource_Validation(t *testing.T) {
	_, err := NewCatalogSource(nil, "/cards/templates")
	require.ErrorContains(t, err, "getter must not be nil")

	_, err = NewCatalogSource(&fakeGetter{}, " ")
	require.ErrorContains(t, err, "must not be empty")
}

func TestCatalogSource_HappyPath(t *testing.T) {
	g := &fakeGetter{val: catalogYAML}
	src, err := NewCatalogSource(g, "/cards/templates")
	require.NoError(t, err)

	c, err := src.Catalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/cards/templates", g.name)

	p, ok := c.Lookup(domain.CategoryMorning)
	require.True(t, ok)
	require.Equal(t, []string{"Be well."}, p.Closer(domain.CategoryMorning))
	require.NotEmpty(t, c.FallbackSet(domain.CategoryMorning))
}

func TestCatalogSource_GetterError(t *testing.T) {
	src, err := NewCatalogSource(&fakeGetter{err: errors.New("ssm unavailable")}, "/cards/templates")
	require.NoError(t, err)
	_, err = src.Catalog(context.Background())
	require.ErrorContains(t, err, "ssm unavailable")
}

func TestCatalogSource_InvalidYAML(t *testing.T) {
	src, err := NewCatalogSource(&fakeGetter{val: "categories: ["}, "/cards/templates")
	require.NoError(t, err)
	_, err = src.Catalog(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "/cards/templates")
	require.Contains(t, err.Error(), "decode catalog")
}
