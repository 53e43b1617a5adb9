package store

import "errors"

// Storage keys. The values kept under them match the web shell's local
// storage layout so exported state stays recognizable.
const (
	KeyLastCategory      = "kids_card_book_last_category_v1"
	KeyCategoryLastIndex = "kids_card_book_category_last_index_v1"
	KeyCategoryViewedIDs = "kids_card_book_category_viewed_ids_v1"
	KeyFavorites         = "kids_card_book_favorites_v1"
	KeyRecentCategories  = "kids_card_book_recent_categories_v1"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is a string key-value store for session state. Implementations must
// tolerate concurrent callers; the engine issues fire-and-forget writes from
// a background writer goroutine while readers hydrate.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)

	// Set stores a value, replacing any previous one (last write wins).
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}
