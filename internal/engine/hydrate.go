package engine

import (
	"encoding/json"
	"math"

	"codeberg.org/snonux/kidcards/internal/catalog"
	"codeberg.org/snonux/kidcards/internal/store"
)

// hydrate restores persisted session state. Each stored value is sanitized
// independently; a malformed or stale value is treated as absent and never
// blocks hydration of the others.
func (e *Engine) hydrate() {
	e.lastIndex = sanitizeLastIndex(e.load(store.KeyCategoryLastIndex), e.catalog)
	e.viewedIDs = sanitizeViewedIDs(e.load(store.KeyCategoryViewedIDs), e.catalog)
	e.favorites = sanitizeFavorites(e.load(store.KeyFavorites), e.catalog)
	e.recent = sanitizeRecent(e.load(store.KeyRecentCategories), e.catalog)

	e.selectedCategory = sanitizeLastCategory(e.load(store.KeyLastCategory), e.catalog)
	if e.selectedCategory == "" {
		return // catalog has no cards at all
	}
	e.currentIndex = e.lastIndex[e.selectedCategory]
	e.markRecentLocked(e.selectedCategory)

	// The restored card counts as viewed, exactly like any other card
	// becoming current.
	if card, ok := e.currentCardLocked(); ok {
		e.markViewedLocked(card.ID)
	}
}

// load reads one stored value; read errors count as absent data.
func (e *Engine) load(key string) string {
	value, ok, err := e.store.Get(key)
	if err != nil || !ok {
		return ""
	}
	return value
}

// sanitizeLastCategory accepts the stored category only if it exists and
// has cards; otherwise the first non-empty category is used. Returns ""
// only for a catalog with no cards anywhere.
func sanitizeLastCategory(raw string, cat *catalog.Catalog) string {
	if raw != "" && cat.CardCount(raw) > 0 {
		return raw
	}
	first, _ := cat.FirstNonEmptyCategory()
	return first
}

// sanitizeLastIndex parses the per-category last-index map, dropping
// entries for unknown categories and non-finite values, and clamping
// indices into [0, cardCount-1].
func sanitizeLastIndex(raw string, cat *catalog.Catalog) map[string]int {
	out := make(map[string]int)
	if raw == "" {
		return out
	}

	var parsed map[string]float64
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return out
	}

	for categoryID, value := range parsed {
		count := cat.CardCount(categoryID)
		if count == 0 {
			continue
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		index := int(math.Trunc(value))
		if index < 0 {
			index = 0
		}
		if index > count-1 {
			index = count - 1
		}
		out[categoryID] = index
	}
	return out
}

// sanitizeViewedIDs parses the per-category viewed-id sets, dropping
// unknown categories, ids that do not belong to their category, and
// duplicates.
func sanitizeViewedIDs(raw string, cat *catalog.Catalog) map[string][]string {
	out := make(map[string][]string)
	if raw == "" {
		return out
	}

	var parsed map[string][]string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return out
	}

	for categoryID, ids := range parsed {
		if cat.CardCount(categoryID) == 0 {
			continue
		}
		seen := make(map[string]bool)
		var valid []string
		for _, id := range ids {
			if seen[id] {
				continue
			}
			if _, ok := cat.Card(categoryID, id); !ok {
				continue
			}
			seen[id] = true
			valid = append(valid, id)
		}
		if len(valid) > 0 {
			out[categoryID] = valid
		}
	}
	return out
}

// sanitizeFavorites parses the favorite key list, dropping keys that do not
// resolve to an existing category and card, and collapsing duplicates.
func sanitizeFavorites(raw string, cat *catalog.Catalog) []string {
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var valid []string
	for _, key := range parsed {
		if seen[key] {
			continue
		}
		categoryID, cardID, ok := catalog.SplitFavoriteKey(key)
		if !ok {
			continue
		}
		if _, ok := cat.Card(categoryID, cardID); !ok {
			continue
		}
		seen[key] = true
		valid = append(valid, key)
	}
	return valid
}

// sanitizeRecent parses the recent-category list, keeping only known
// categories, capped at the MRU limit.
func sanitizeRecent(raw string, cat *catalog.Catalog) []string {
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var valid []string
	for _, id := range parsed {
		if seen[id] {
			continue
		}
		if _, ok := cat.Category(id); !ok {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
		if len(valid) == maxRecentCategories {
			break
		}
	}
	return valid
}

// encodeJSON marshals state for storage. The engine only stores maps and
// slices of plain strings and ints, which cannot fail to marshal.
func encodeJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
