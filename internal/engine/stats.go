package engine

import "strings"

// ViewedCount returns how many cards of the category have been displayed at
// least once.
func (e *Engine) ViewedCount(categoryID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.viewedIDs[categoryID])
}

// TotalViewedCount returns the number of viewed cards across all categories.
func (e *Engine) TotalViewedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalViewedLocked()
}

// TotalCardCount returns the number of cards in the catalog.
func (e *Engine) TotalCardCount() int {
	return e.catalog.TotalCardCount()
}

// FavoriteCount returns how many cards of the category are starred.
func (e *Engine) FavoriteCount(categoryID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.favoriteCountLocked(categoryID)
}

// TotalFavoriteCount returns the number of starred cards overall.
func (e *Engine) TotalFavoriteCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.favorites)
}

func (e *Engine) totalViewedLocked() int {
	total := 0
	for _, ids := range e.viewedIDs {
		total += len(ids)
	}
	return total
}

func (e *Engine) favoriteCountLocked(categoryID string) int {
	prefix := categoryID + ":"
	count := 0
	for _, key := range e.favorites {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count
}
