package testutil

import (
	"fmt"

	"codeberg.org/snonux/kidcards/internal/catalog"
)

// SmallCatalog returns a three-category catalog used across tests: category
// "a" has two cards, category "b" is empty and category "c" has one card.
func SmallCatalog() *catalog.Catalog {
	categories := []catalog.Category{
		{ID: "a", Label: "Apples", Icon: "🍎"},
		{ID: "b", Label: "Bees", Icon: "🐝"},
		{ID: "c", Label: "Cats", Icon: "🐱"},
	}
	cards := map[string][]catalog.Card{
		"a": {
			{ID: "a1", Value: "A1", Title: "First Apple"},
			{ID: "a2", Value: "A2", Title: "Second Apple"},
		},
		"b": {},
		"c": {
			{ID: "c1", Value: "C1", Title: "Only Cat"},
		},
	}
	return catalog.New(categories, cards)
}

// FlatCatalog returns a single-category catalog with the given number of
// cards, IDs "x0" through "x{n-1}".
func FlatCatalog(n int) *catalog.Catalog {
	cards := make([]catalog.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, catalog.Card{
			ID:    fmt.Sprintf("x%d", i),
			Value: fmt.Sprintf("X%d", i),
			Title: fmt.Sprintf("Card %d", i),
		})
	}
	return catalog.New(
		[]catalog.Category{{ID: "x", Label: "Letters", Icon: "🔤"}},
		map[string][]catalog.Card{"x": cards},
	)
}
