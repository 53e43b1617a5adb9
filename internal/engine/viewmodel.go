package engine

import "codeberg.org/snonux/kidcards/internal/catalog"

// ViewModel is the engine's presentation projection: everything a shell
// needs to render one frame, captured atomically.
type ViewModel struct {
	Category catalog.Category
	Card     catalog.Card
	HasCard  bool

	// Index is the normalized position of the card within its category.
	Index     int
	CardCount int

	ViewedInCategory    int
	TotalViewed         int
	TotalCards          int
	FavoritesInCategory int
	TotalFavorites      int
	IsFavorite          bool

	AutoplayOn bool
	DelayMs    int
	VoiceOn    bool
	PickerOpen bool

	// Direction is the last transition direction (+1 forward, -1 backward),
	// an animation hint for the shell.
	Direction int

	// RecentCategory is the most recently visited category other than the
	// current one, for the quick-switch shortcut. Empty when there is none.
	RecentCategory string
}

// Snapshot returns the current view model.
func (e *Engine) Snapshot() ViewModel {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() ViewModel {
	vm := ViewModel{
		AutoplayOn:     e.autoplayOn,
		DelayMs:        e.delayMs,
		VoiceOn:        e.voiceOn,
		PickerOpen:     e.pickerOpen,
		Direction:      e.direction,
		TotalViewed:    e.totalViewedLocked(),
		TotalCards:     e.catalog.TotalCardCount(),
		TotalFavorites: len(e.favorites),
	}

	category, ok := e.catalog.Category(e.selectedCategory)
	if !ok {
		return vm
	}
	vm.Category = category
	vm.CardCount = e.catalog.CardCount(e.selectedCategory)
	vm.ViewedInCategory = len(e.viewedIDs[e.selectedCategory])
	vm.FavoritesInCategory = e.favoriteCountLocked(e.selectedCategory)

	card, ok := e.currentCardLocked()
	if ok {
		vm.Card = card
		vm.HasCard = true
		vm.Index = WrapIndex(e.currentIndex, vm.CardCount)
		vm.IsFavorite = indexOf(e.favorites, catalog.FavoriteKey(e.selectedCategory, card.ID)) >= 0
	}

	for _, id := range e.recent {
		if id != e.selectedCategory {
			vm.RecentCategory = id
			break
		}
	}

	return vm
}
