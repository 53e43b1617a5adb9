package engine

import (
	"fmt"
	"os"
	"sync"
	"time"

	"codeberg.org/snonux/kidcards/internal/catalog"
	"codeberg.org/snonux/kidcards/internal/store"
)

// Speaker is the slice of the speech stack the engine drives.
type Speaker interface {
	// PlayCard speaks the card; a later call supersedes an earlier one.
	PlayCard(categoryID string, card catalog.Card)

	// StopAll cancels any in-flight speech or audio.
	StopAll()
}

// AllowedDelays are the autoplay intervals the engine accepts, in
// milliseconds.
var AllowedDelays = []int{2000, 3000, 5000, 8000}

// DefaultDelayMs is the autoplay interval used until the user picks another.
const DefaultDelayMs = 3000

const maxRecentCategories = 8

// Engine owns the navigation and progress state of a viewer session: the
// selected category, the current card, per-category viewed sets, favorites,
// and the autoplay/voice flags. All mutations go through its methods; state
// that survives the session is written through to the store asynchronously.
type Engine struct {
	catalog *catalog.Catalog
	store   store.Store
	speaker Speaker

	mu               sync.Mutex
	selectedCategory string
	currentIndex     int
	lastIndex        map[string]int
	viewedIDs        map[string][]string
	favorites        []string
	recent           []string
	autoplayOn       bool
	delayMs          int
	voiceOn          bool
	pickerOpen       bool
	direction        int

	autoplayStop chan struct{}

	onChange   func(ViewModel)
	writes     sync.WaitGroup
	writeQueue []stateWrite
	writing    bool
}

// stateWrite is one queued write-through of persisted state.
type stateWrite struct {
	key   string
	value string
}

// New creates an engine over the catalog, hydrating persisted state from
// the store. Malformed or stale persisted values are dropped key by key;
// hydration never fails.
func New(cat *catalog.Catalog, st store.Store, speaker Speaker) *Engine {
	e := &Engine{
		catalog:   cat,
		store:     st,
		speaker:   speaker,
		lastIndex: make(map[string]int),
		viewedIDs: make(map[string][]string),
		delayMs:   DefaultDelayMs,
		direction: 1,
	}
	// The first persist may already start the writer goroutine, which shares
	// the write queue with hydration.
	e.mu.Lock()
	e.hydrate()
	e.mu.Unlock()
	return e
}

// SetOnChange registers the state-change listener. The listener is invoked
// with a fresh view model after every visible mutation, outside the engine
// lock, so it may call back into the engine.
func (e *Engine) SetOnChange(fn func(ViewModel)) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Next advances one card forward in the global sequence.
func (e *Engine) Next() { e.MoveGlobal(1) }

// Prev moves one card backward in the global sequence.
func (e *Engine) Prev() { e.MoveGlobal(-1) }

// MoveGlobal moves by step cards through the global sequence: all non-empty
// categories in catalog order, treated as one circular list. Empty
// categories are skipped and never landed on. With no non-empty categories
// this is a no-op.
func (e *Engine) MoveGlobal(step int) {
	e.mu.Lock()

	order := e.catalog.NonEmptyCategoryIDs()
	if len(order) == 0 {
		e.mu.Unlock()
		return
	}

	categoryPos := indexOf(order, e.selectedCategory)
	if categoryPos < 0 {
		categoryPos = 0
	}

	// The global sequence is circular, so only the step modulo its length
	// matters; reducing first keeps huge steps cheap.
	total := 0
	for _, id := range order {
		total += e.catalog.CardCount(id)
	}
	step %= total

	index := e.currentIndex + step

	for {
		count := e.catalog.CardCount(order[categoryPos])
		if index >= count {
			index -= count
			categoryPos = (categoryPos + 1) % len(order)
			continue
		}
		if index < 0 {
			categoryPos = (categoryPos - 1 + len(order)) % len(order)
			index += e.catalog.CardCount(order[categoryPos])
			continue
		}
		break
	}

	if step < 0 {
		e.direction = -1
	} else {
		e.direction = 1
	}
	e.selectedCategory = order[categoryPos]
	e.currentIndex = index

	e.finishCardChange()
}

// SelectCategory jumps directly to a category, resetting to its first card.
// Unknown or empty categories are a no-op. Selecting closes the category
// picker.
func (e *Engine) SelectCategory(categoryID string) {
	e.mu.Lock()

	if e.catalog.CardCount(categoryID) == 0 {
		e.mu.Unlock()
		return
	}

	e.direction = 1
	e.selectedCategory = categoryID
	e.currentIndex = 0
	e.pickerOpen = false
	e.markRecentLocked(categoryID)

	e.finishCardChange()
}

// finishCardChange runs the common tail of every operation that may change
// the current card: record the view, persist, cancel stale speech, speak
// the new card, notify. Called with the lock held; releases it.
func (e *Engine) finishCardChange() {
	card, ok := e.currentCardLocked()
	if ok {
		e.markViewedLocked(card.ID)
		e.lastIndex[e.selectedCategory] = e.currentIndex
		e.persistLocked(store.KeyCategoryLastIndex, encodeJSON(e.lastIndex))
		e.persistLocked(store.KeyLastCategory, e.selectedCategory)
	}
	categoryID := e.selectedCategory
	speak := e.voiceOn && ok
	vm := e.snapshotLocked()
	e.mu.Unlock()

	e.speaker.StopAll()
	if speak {
		e.speaker.PlayCard(categoryID, card)
	}
	e.notify(vm)
}

// ToggleFavorite flips the favorite mark of the current card. With no
// current card (empty catalog) it is a no-op.
func (e *Engine) ToggleFavorite() {
	e.mu.Lock()

	card, ok := e.currentCardLocked()
	if !ok {
		e.mu.Unlock()
		return
	}

	key := catalog.FavoriteKey(e.selectedCategory, card.ID)
	if i := indexOf(e.favorites, key); i >= 0 {
		e.favorites = append(e.favorites[:i], e.favorites[i+1:]...)
	} else {
		e.favorites = append(e.favorites, key)
	}
	e.persistLocked(store.KeyFavorites, encodeJSON(e.favorites))

	vm := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(vm)
}

// SetVoice turns card narration on or off. Turning it off cancels any
// in-flight speech; turning it on speaks the current card.
func (e *Engine) SetVoice(on bool) {
	e.mu.Lock()
	e.voiceOn = on
	card, ok := e.currentCardLocked()
	categoryID := e.selectedCategory
	vm := e.snapshotLocked()
	e.mu.Unlock()

	if !on {
		e.speaker.StopAll()
	} else if ok {
		e.speaker.PlayCard(categoryID, card)
	}
	e.notify(vm)
}

// SetAutoplay starts or stops the autoplay timer. While on, the engine
// advances one card forward every delay interval. At most one timer is ever
// active.
func (e *Engine) SetAutoplay(on bool) {
	e.mu.Lock()
	e.autoplayOn = on
	e.stopAutoplayLocked()
	if on {
		e.startAutoplayLocked()
	}
	vm := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(vm)
}

// SetDelay changes the autoplay interval. Only the allowed intervals are
// accepted; anything else is a no-op. Changing the delay while autoplay is
// on restarts the timer with the new period.
func (e *Engine) SetDelay(ms int) {
	if indexOfInt(AllowedDelays, ms) < 0 {
		return
	}

	e.mu.Lock()
	e.delayMs = ms
	if e.autoplayOn {
		e.stopAutoplayLocked()
		e.startAutoplayLocked()
	}
	vm := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(vm)
}

// OpenCategoryPicker opens or closes the category picker flag the shell
// renders from.
func (e *Engine) OpenCategoryPicker(open bool) {
	e.mu.Lock()
	e.pickerOpen = open
	vm := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(vm)
}

// Close stops the autoplay timer, silences speech, and waits for pending
// state writes to land.
func (e *Engine) Close() {
	e.mu.Lock()
	e.autoplayOn = false
	e.stopAutoplayLocked()
	e.mu.Unlock()

	e.speaker.StopAll()
	e.Flush()
}

// Flush blocks until all scheduled state writes have completed. Mainly for
// tests and shutdown.
func (e *Engine) Flush() {
	e.writes.Wait()
}

func (e *Engine) startAutoplayLocked() {
	stop := make(chan struct{})
	e.autoplayStop = stop
	go e.runAutoplay(time.Duration(e.delayMs)*time.Millisecond, stop)
}

func (e *Engine) stopAutoplayLocked() {
	if e.autoplayStop != nil {
		close(e.autoplayStop)
		e.autoplayStop = nil
	}
}

func (e *Engine) runAutoplay(period time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.MoveGlobal(1)
		}
	}
}

// currentCardLocked resolves the current card, if any.
func (e *Engine) currentCardLocked() (catalog.Card, bool) {
	cards := e.catalog.Cards(e.selectedCategory)
	if len(cards) == 0 {
		return catalog.Card{}, false
	}
	return cards[WrapIndex(e.currentIndex, len(cards))], true
}

// markViewedLocked records the current card as viewed exactly once and
// persists the viewed sets when it was new.
func (e *Engine) markViewedLocked(cardID string) {
	existing := e.viewedIDs[e.selectedCategory]
	if indexOf(existing, cardID) >= 0 {
		return
	}
	e.viewedIDs[e.selectedCategory] = append(existing, cardID)
	e.persistLocked(store.KeyCategoryViewedIDs, encodeJSON(e.viewedIDs))
}

func (e *Engine) markRecentLocked(categoryID string) {
	next := []string{categoryID}
	for _, id := range e.recent {
		if id != categoryID {
			next = append(next, id)
		}
	}
	if len(next) > maxRecentCategories {
		next = next[:maxRecentCategories]
	}
	e.recent = next
	e.persistLocked(store.KeyRecentCategories, encodeJSON(e.recent))
}

// persistLocked schedules an asynchronous write-through of one piece of
// state. Writes land in the store in the order they were scheduled, through
// a single writer goroutine; last write wins per key. Failures are best
// effort: they are logged and never block or break navigation.
func (e *Engine) persistLocked(key, value string) {
	e.writes.Add(1)
	e.writeQueue = append(e.writeQueue, stateWrite{key: key, value: value})
	if e.writing {
		return
	}
	e.writing = true
	go e.drainWrites()
}

// drainWrites writes queued state until the queue is empty. At most one
// drainer runs at a time, which is what keeps the writes ordered.
func (e *Engine) drainWrites() {
	for {
		e.mu.Lock()
		if len(e.writeQueue) == 0 {
			e.writing = false
			e.mu.Unlock()
			return
		}
		w := e.writeQueue[0]
		e.writeQueue = e.writeQueue[1:]
		e.mu.Unlock()

		if err := e.store.Set(w.key, w.value); err != nil {
			fmt.Fprintf(os.Stderr, "kidcards: state write failed: %v\n", err)
		}
		e.writes.Done()
	}
}

func (e *Engine) notify(vm ViewModel) {
	e.mu.Lock()
	fn := e.onChange
	e.mu.Unlock()
	if fn != nil {
		fn(vm)
	}
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}

func indexOfInt(items []int, want int) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
