package engine

import (
	"errors"
	"testing"

	"codeberg.org/snonux/kidcards/internal/store"
	"codeberg.org/snonux/kidcards/internal/testutil"
)

func seededEngine(t *testing.T, values map[string]string) *Engine {
	t.Helper()
	st := testutil.NewMockStore()
	for key, value := range values {
		st.Values[key] = value
	}
	e := New(testutil.SmallCatalog(), st, &testutil.MockSpeaker{})
	t.Cleanup(e.Close)
	return e
}

func TestHydrateRestoresPosition(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory:      "a",
		store.KeyCategoryLastIndex: `{"a": 1}`,
	})
	assertPosition(t, e, "a", "a2")
}

func TestHydrateUnknownCategoryFallsBack(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory: "dinosaurs",
	})
	assertPosition(t, e, "a", "a1")
}

func TestHydrateEmptyCategoryFallsBack(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory: "b",
	})
	assertPosition(t, e, "a", "a1")
}

func TestHydrateClampsLastIndex(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCard string
	}{
		{"index past the end", `{"a": 99}`, "a2"},
		{"negative index", `{"a": -3}`, "a1"},
		{"fractional index truncates", `{"a": 1.9}`, "a2"},
		{"malformed json", `{"a": `, "a1"},
		{"wrong shape", `["a"]`, "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seededEngine(t, map[string]string{
				store.KeyLastCategory:      "a",
				store.KeyCategoryLastIndex: tt.raw,
			})
			assertPosition(t, e, "a", tt.wantCard)
		})
	}
}

func TestHydrateDropsStaleViewedIDs(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory:      "a",
		store.KeyCategoryViewedIDs: `{"a": ["a2", "a2", "ghost"], "dinosaurs": ["rex"], "b": ["x"]}`,
	})

	// a2 survives, duplicates and unknown ids are dropped, and a1 is added
	// as the restored current card.
	if got := e.ViewedCount("a"); got != 2 {
		t.Errorf("ViewedCount(a) = %d, want 2", got)
	}
	if got := e.TotalViewedCount(); got != 2 {
		t.Errorf("TotalViewedCount() = %d, want 2", got)
	}
}

func TestHydrateDropsStaleFavorites(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyFavorites: `["a:a1", "a:a1", "a:ghost", "dinosaurs:rex", "nocolon", "c:c1"]`,
	})

	if got := e.TotalFavoriteCount(); got != 2 {
		t.Errorf("TotalFavoriteCount() = %d, want 2", got)
	}
	if got := e.FavoriteCount("a"); got != 1 {
		t.Errorf("FavoriteCount(a) = %d, want 1", got)
	}
	if got := e.FavoriteCount("c"); got != 1 {
		t.Errorf("FavoriteCount(c) = %d, want 1", got)
	}
}

func TestHydrateRecentCategories(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory:     "a",
		store.KeyRecentCategories: `["c", "dinosaurs", "c", "b"]`,
	})

	// The hydrated current category moves to the front; c survives, the
	// unknown one is dropped.
	if got := e.Snapshot().RecentCategory; got != "c" {
		t.Errorf("RecentCategory = %q, want c", got)
	}
}

func TestHydrateKeysAreIndependent(t *testing.T) {
	e := seededEngine(t, map[string]string{
		store.KeyLastCategory:      "c",
		store.KeyCategoryLastIndex: `not json at all`,
		store.KeyCategoryViewedIDs: `42`,
		store.KeyFavorites:         `{"wrong": "shape"}`,
		store.KeyRecentCategories:  `null`,
	})

	// Every malformed key degrades alone; the valid category still loads.
	assertPosition(t, e, "c", "c1")
	if got := e.TotalFavoriteCount(); got != 0 {
		t.Errorf("TotalFavoriteCount() = %d, want 0", got)
	}
}

func TestHydrateReadErrorsCountAsAbsent(t *testing.T) {
	st := testutil.NewMockStore()
	st.Errors[store.KeyLastCategory] = errors.New("read failed")
	st.Errors[store.KeyFavorites] = errors.New("read failed")

	e := New(testutil.SmallCatalog(), st, &testutil.MockSpeaker{})
	defer e.Close()

	assertPosition(t, e, "a", "a1")
}
