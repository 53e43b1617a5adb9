package catalog

import (
	"testing"
)

func TestNewDropsInvalidEntries(t *testing.T) {
	categories := []Category{
		{ID: "fruits", Label: "Fruits"},
		{ID: "", Label: "Nameless"},
		{ID: "fruits", Label: "Fruits Again"},
		{ID: "empty", Label: "Empty"},
	}
	cards := map[string][]Card{
		"fruits": {
			{ID: "apple", Value: "Apple", Title: "Apple"},
			{ID: "", Value: "Ghost", Title: "Ghost"},
			{ID: "apple", Value: "Apple", Title: "Duplicate"},
			{ID: "pear", Value: "Pear", Title: "Pear"},
		},
	}

	c := New(categories, cards)

	if got := len(c.Categories()); got != 2 {
		t.Fatalf("Expected 2 categories, got %d", got)
	}
	if c.Categories()[0].Label != "Fruits" {
		t.Errorf("Expected first category definition to win, got %q", c.Categories()[0].Label)
	}
	if got := c.CardCount("fruits"); got != 2 {
		t.Errorf("Expected 2 fruit cards, got %d", got)
	}
	if card, _ := c.Card("fruits", "apple"); card.Title != "Apple" {
		t.Errorf("Expected first apple definition to win, got %q", card.Title)
	}
}

func TestNewAppliesDefaultColors(t *testing.T) {
	c := New(
		[]Category{{ID: "x", Label: "X"}},
		map[string][]Card{"x": {
			{ID: "plain", Value: "P", Title: "Plain"},
			{ID: "styled", Value: "S", Title: "Styled", Colors: [2]string{"#111111", "#222222"}},
		}},
	)

	plain, _ := c.Card("x", "plain")
	if plain.Colors != defaultColors {
		t.Errorf("Expected default colors, got %v", plain.Colors)
	}

	styled, _ := c.Card("x", "styled")
	if styled.Colors != [2]string{"#111111", "#222222"} {
		t.Errorf("Expected explicit colors kept, got %v", styled.Colors)
	}
}

func TestSpokenText(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{
			name: "audio label wins",
			card: Card{Value: "A", Title: "Apple", Subtitle: "This is Apple", AudioLabel: "A for Apple"},
			want: "A for Apple",
		},
		{
			name: "subtitle when no audio label",
			card: Card{Value: "A", Title: "Apple", Subtitle: "This is Apple"},
			want: "This is Apple",
		},
		{
			name: "value and title as last resort",
			card: Card{Value: "A", Title: "Apple"},
			want: "A Apple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.SpokenText(); got != tt.want {
				t.Errorf("SpokenText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFavoriteKey(t *testing.T) {
	if got := FavoriteKey("fruits", "apple"); got != "fruits:apple" {
		t.Errorf("FavoriteKey() = %q, want fruits:apple", got)
	}

	tests := []struct {
		key          string
		wantCategory string
		wantCard     string
		wantOK       bool
	}{
		{"fruits:apple", "fruits", "apple", true},
		{"shapes:heart:shape", "shapes", "heart:shape", true},
		{"nocolon", "", "", false},
		{":apple", "", "", false},
		{"fruits:", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		categoryID, cardID, ok := SplitFavoriteKey(tt.key)
		if categoryID != tt.wantCategory || cardID != tt.wantCard || ok != tt.wantOK {
			t.Errorf("SplitFavoriteKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.key, categoryID, cardID, ok, tt.wantCategory, tt.wantCard, tt.wantOK)
		}
	}
}

func TestNonEmptyTraversalHelpers(t *testing.T) {
	c := New(
		[]Category{
			{ID: "empty1", Label: "Empty"},
			{ID: "full", Label: "Full"},
			{ID: "empty2", Label: "Empty Too"},
			{ID: "also", Label: "Also Full"},
		},
		map[string][]Card{
			"full": {{ID: "f1", Value: "F", Title: "F"}},
			"also": {{ID: "a1", Value: "A", Title: "A"}},
		},
	)

	ids := c.NonEmptyCategoryIDs()
	if len(ids) != 2 || ids[0] != "full" || ids[1] != "also" {
		t.Errorf("NonEmptyCategoryIDs() = %v, want [full also]", ids)
	}

	first, ok := c.FirstNonEmptyCategory()
	if !ok || first != "full" {
		t.Errorf("FirstNonEmptyCategory() = (%q, %v), want (full, true)", first, ok)
	}

	if got := c.TotalCardCount(); got != 2 {
		t.Errorf("TotalCardCount() = %d, want 2", got)
	}
}

func TestFirstNonEmptyCategoryWithNoCards(t *testing.T) {
	c := New([]Category{{ID: "only", Label: "Only"}}, nil)
	if first, ok := c.FirstNonEmptyCategory(); ok {
		t.Errorf("Expected no non-empty category, got %q", first)
	}
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	if got := len(c.Categories()); got != 11 {
		t.Fatalf("Expected 11 built-in categories, got %d", got)
	}
	if got := c.CardCount("alphabet"); got != 26 {
		t.Errorf("Expected 26 alphabet cards, got %d", got)
	}
	if got := c.TotalCardCount(); got != 126 {
		t.Errorf("Expected 126 built-in cards, got %d", got)
	}

	for _, category := range c.Categories() {
		if c.CardCount(category.ID) == 0 {
			t.Errorf("Built-in category %q has no cards", category.ID)
		}
		for _, card := range c.Cards(category.ID) {
			if card.Value == "" || card.Title == "" {
				t.Errorf("Built-in card %s:%s is missing value or title", category.ID, card.ID)
			}
			if card.SpokenText() == "" {
				t.Errorf("Built-in card %s:%s has no spoken text", category.ID, card.ID)
			}
		}
	}
}
