package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	require.Equal(t, CategoryMorning, ParseCategory(" Morning "))
	require.Equal(t, CategorySpiritual, ParseCategory("SPIRITUAL"))
	require.Equal(t, Category("birthday"), ParseCategory("birthday"))
	require.Equal(t, Category(""), ParseCategory("   "))
}

func TestKnown(t *testing.T) {
	for _, c := range KnownCategories() {
		require.True(t, c.Known())
	}
	require.False(t, Category("birthday").Known())
	require.Equal(t, CategoryMorning, DefaultCategory)
}

func TestDefaultOptions(t *testing.T) {
	require.Equal(t, Options{Enhanced: true, Count: 0}, DefaultOptions())
}
