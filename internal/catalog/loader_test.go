package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `{
		"categories": [
			{"id": "animals", "label": "Animals", "icon": "🐾"},
			{"id": "unused", "label": "Unused"}
		],
		"cards": {
			"animals": [
				{"id": "cat", "value": "Cat", "title": "Cat", "subtitle": "This is Cat", "emoji": "🐱"},
				{"id": "dog", "value": "Dog", "title": "Dog", "colors": ["#111111", "#222222"]}
			]
		}
	}`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if got := c.CardCount("animals"); got != 2 {
		t.Errorf("Expected 2 animal cards, got %d", got)
	}

	cat, ok := c.Card("animals", "cat")
	if !ok {
		t.Fatal("Expected card animals:cat")
	}
	if cat.Colors != defaultColors {
		t.Errorf("Expected default colors for card without colors, got %v", cat.Colors)
	}

	dog, _ := c.Card("animals", "dog")
	if dog.Colors != [2]string{"#111111", "#222222"} {
		t.Errorf("Expected explicit colors kept, got %v", dog.Colors)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeCatalogFile(t, `{"categories": [`)
		if _, err := LoadFile(path); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("no cards", func(t *testing.T) {
		path := writeCatalogFile(t, `{"categories": [{"id": "hollow", "label": "Hollow"}], "cards": {}}`)
		if _, err := LoadFile(path); err == nil {
			t.Error("Expected error for catalog without cards")
		}
	})
}
