package domain

import "strings"

// Category selects the phrase pools used to compose a message.
type Category string

const (
	CategoryMorning   Category = "morning"
	CategoryNight     Category = "night"
	CategoryLove      Category = "love"
	CategorySpiritual Category = "spiritual"

	// DefaultCategory backs every category that has no pools of its own.
	DefaultCategory = CategoryMorning
)

// KnownCategories returns the categories with builtin pools, in display order.
func KnownCategories() []Category {
	return []Category{CategoryMorning, CategoryNight, CategoryLove, CategorySpiritual}
}

// ParseCategory normalises user input. It never fails: unknown values are kept
// as-is and resolve through the fallback path.
func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether c is one of the builtin categories.
func (c Category) Known() bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}
