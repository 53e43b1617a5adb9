package gui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/kidcards/internal"
	"codeberg.org/snonux/kidcards/internal/catalog"
	"codeberg.org/snonux/kidcards/internal/engine"
)

// delayOptions are the autoplay intervals offered by the delay selector,
// keyed by their display label.
var delayOptions = []struct {
	label string
	ms    int
}{
	{"2s", 2000},
	{"3s", 3000},
	{"5s", 5000},
	{"8s", 8000},
}

// Application is the desktop shell around the navigation engine. It owns no
// card or progress state of its own; every interaction is forwarded to the
// engine and the UI is re-rendered from the view models the engine pushes
// back.
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	catalog *catalog.Catalog
	engine  *engine.Engine
	speaker engine.Speaker

	// UI elements
	cardView      *CardView
	categoryBtn   *ttwidget.Button
	prevBtn       *ttwidget.Button
	nextBtn       *ttwidget.Button
	playBtn       *ttwidget.Button
	favoriteBtn   *ttwidget.Button
	voiceBtn      *ttwidget.Button
	autoplayBtn   *ttwidget.Button
	recentBtn     *ttwidget.Button
	delaySelect   *widget.Select
	positionLabel *widget.Label
	statsLabel    *widget.Label

	mu           sync.Mutex
	pickerDialog dialog.Dialog
	current      engine.ViewModel
}

// New creates the shell over an already hydrated engine. The speaker is the
// same speech controller the engine drives; the shell uses it for the
// explicit replay button.
func New(cat *catalog.Catalog, eng *engine.Engine, speaker engine.Speaker) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.kidcards")

	a := &Application{
		app:     myApp,
		catalog: cat,
		engine:  eng,
		speaker: speaker,
	}

	a.setupUI()

	eng.SetOnChange(func(vm engine.ViewModel) {
		fyne.Do(func() {
			a.render(vm)
		})
	})

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("KidCards v%s - First Words Flashcards", internal.Version))
	a.window.Resize(fyne.NewSize(560, 640))

	a.cardView = NewCardView()
	a.cardView.OnTap = a.onPlay
	a.cardView.OnSwipe = func(dir engine.SwipeDirection) {
		// A left swipe pushes the card away, revealing the next one.
		switch dir {
		case engine.SwipeLeft:
			a.engine.Next()
		case engine.SwipeRight:
			a.engine.Prev()
		}
	}

	// Navigation buttons (tooltips are set after the tooltip layer exists)
	a.prevBtn = ttwidget.NewButton("", a.engine.Prev)
	a.prevBtn.Icon = theme.NavigateBackIcon()

	a.nextBtn = ttwidget.NewButton("", a.engine.Next)
	a.nextBtn.Icon = theme.NavigateNextIcon()

	a.playBtn = ttwidget.NewButton("", a.onPlay)
	a.playBtn.Icon = theme.MediaPlayIcon()

	a.favoriteBtn = ttwidget.NewButton("☆", a.engine.ToggleFavorite)

	a.voiceBtn = ttwidget.NewButton("", a.onToggleVoice)
	a.voiceBtn.Icon = theme.VolumeMuteIcon()

	a.autoplayBtn = ttwidget.NewButton("", a.onToggleAutoplay)
	a.autoplayBtn.Icon = theme.MediaSkipNextIcon()

	a.categoryBtn = ttwidget.NewButton("Categories", func() {
		a.engine.OpenCategoryPicker(true)
	})
	a.categoryBtn.Icon = theme.ListIcon()

	a.recentBtn = ttwidget.NewButton("", a.onRecentCategory)
	a.recentBtn.Icon = theme.HistoryIcon()

	labels := make([]string, 0, len(delayOptions))
	for _, opt := range delayOptions {
		labels = append(labels, opt.label)
	}
	a.delaySelect = widget.NewSelect(labels, func(label string) {
		for _, opt := range delayOptions {
			if opt.label == label {
				a.engine.SetDelay(opt.ms)
				return
			}
		}
	})

	a.positionLabel = widget.NewLabel("")
	a.positionLabel.Alignment = fyne.TextAlignCenter

	a.statsLabel = widget.NewLabel("")
	a.statsLabel.Alignment = fyne.TextAlignCenter
	a.statsLabel.TextStyle = fyne.TextStyle{Italic: true}

	toolbar := container.NewHBox(
		a.categoryBtn,
		a.recentBtn,
		widget.NewSeparator(),
		a.voiceBtn,
		a.autoplayBtn,
		a.delaySelect,
	)

	controls := container.NewHBox(
		a.prevBtn,
		a.playBtn,
		a.favoriteBtn,
		a.nextBtn,
	)

	bottom := container.NewVBox(
		container.NewCenter(controls),
		a.positionLabel,
		widget.NewSeparator(),
		a.statsLabel,
	)

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		bottom,
		nil, nil,
		container.NewPadded(a.cardView),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.engine.Close()
	})

	a.setupKeyboardShortcuts()
}

// setupTooltips sets all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.prevBtn.SetToolTip("Previous card (←)")
	a.nextBtn.SetToolTip("Next card (→)")
	a.playBtn.SetToolTip("Say it again (Space)")
	a.favoriteBtn.SetToolTip("Star this card (f)")
	a.voiceBtn.SetToolTip("Toggle voice (v)")
	a.autoplayBtn.SetToolTip("Toggle autoplay (p)")
	a.categoryBtn.SetToolTip("Pick a category (c)")
	a.recentBtn.SetToolTip("Back to previous category (r)")
}

// Run renders the initial state and starts the event loop.
func (a *Application) Run() {
	a.render(a.engine.Snapshot())
	a.window.ShowAndRun()
}

// render applies one view model to the UI. Must run on the fyne goroutine.
func (a *Application) render(vm engine.ViewModel) {
	a.mu.Lock()
	a.current = vm
	a.mu.Unlock()

	if vm.HasCard {
		a.cardView.ShowCard(vm.Category.ID, vm.Card)
		a.positionLabel.SetText(fmt.Sprintf("%s %s  ·  %d / %d",
			vm.Category.Icon, vm.Category.Label, vm.Index+1, vm.CardCount))
	} else {
		a.cardView.ShowEmpty()
		a.positionLabel.SetText("")
	}

	if vm.IsFavorite {
		a.favoriteBtn.SetText("★")
	} else {
		a.favoriteBtn.SetText("☆")
	}

	if vm.VoiceOn {
		a.voiceBtn.SetIcon(theme.VolumeUpIcon())
	} else {
		a.voiceBtn.SetIcon(theme.VolumeMuteIcon())
	}

	if vm.AutoplayOn {
		a.autoplayBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		a.autoplayBtn.SetIcon(theme.MediaSkipNextIcon())
	}

	for _, opt := range delayOptions {
		if opt.ms == vm.DelayMs {
			a.delaySelect.SetSelected(opt.label)
			break
		}
	}

	if vm.RecentCategory == "" {
		a.recentBtn.Disable()
	} else {
		a.recentBtn.Enable()
	}

	a.statsLabel.SetText(fmt.Sprintf("Seen %d of %d cards  ·  ★ %d",
		vm.TotalViewed, vm.TotalCards, vm.TotalFavorites))

	a.syncPicker(vm.PickerOpen)
}

// onPlay replays the current card out loud, voice toggle or not.
func (a *Application) onPlay() {
	a.mu.Lock()
	vm := a.current
	a.mu.Unlock()
	if vm.HasCard {
		a.speaker.PlayCard(vm.Category.ID, vm.Card)
	}
}

func (a *Application) onToggleVoice() {
	a.engine.SetVoice(!a.engine.Snapshot().VoiceOn)
}

func (a *Application) onToggleAutoplay() {
	a.engine.SetAutoplay(!a.engine.Snapshot().AutoplayOn)
}

// onRecentCategory jumps back to the previously visited category.
func (a *Application) onRecentCategory() {
	if recent := a.engine.Snapshot().RecentCategory; recent != "" {
		a.engine.SelectCategory(recent)
	}
}

// syncPicker keeps the picker dialog in step with the engine's picker flag.
func (a *Application) syncPicker(open bool) {
	a.mu.Lock()
	showing := a.pickerDialog != nil
	a.mu.Unlock()

	if open && !showing {
		a.showPicker()
	} else if !open && showing {
		a.hidePicker()
	}
}

// showPicker builds and shows the category picker: one button per non-empty
// category with its viewed/starred meta line.
func (a *Application) showPicker() {
	rows := make([]fyne.CanvasObject, 0, len(a.catalog.Categories()))

	for _, category := range a.catalog.Categories() {
		count := a.catalog.CardCount(category.ID)
		if count == 0 {
			continue
		}

		categoryID := category.ID
		button := widget.NewButton(
			fmt.Sprintf("%s  %s", category.Icon, category.Label),
			func() {
				a.engine.SelectCategory(categoryID)
			},
		)
		button.Alignment = widget.ButtonAlignLeading

		meta := widget.NewLabel(fmt.Sprintf("%d/%d viewed  ·  ★ %d",
			a.engine.ViewedCount(categoryID), count, a.engine.FavoriteCount(categoryID)))
		meta.TextStyle = fyne.TextStyle{Italic: true}

		rows = append(rows, container.NewBorder(nil, nil, nil, meta, button))
	}

	scroll := container.NewVScroll(container.NewVBox(rows...))
	scroll.SetMinSize(fyne.NewSize(420, 420))

	d := dialog.NewCustom("Pick a Category", "Close", scroll, a.window)
	d.SetOnClosed(func() {
		a.mu.Lock()
		a.pickerDialog = nil
		a.mu.Unlock()
		// Selecting a category closes the picker through the engine; this
		// covers the user dismissing the dialog directly.
		a.engine.OpenCategoryPicker(false)
	})

	a.mu.Lock()
	a.pickerDialog = d
	a.mu.Unlock()
	d.Show()
}

func (a *Application) hidePicker() {
	a.mu.Lock()
	d := a.pickerDialog
	a.pickerDialog = nil
	a.mu.Unlock()
	if d != nil {
		d.Hide()
	}
}

// setupKeyboardShortcuts sets up keyboard shortcuts for the application
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			a.engine.Prev()
		case fyne.KeyRight:
			a.engine.Next()
		case fyne.KeySpace:
			a.onPlay()
		case fyne.KeyEscape:
			a.engine.OpenCategoryPicker(false)
		}
	})

	a.window.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'f', 'F':
			a.engine.ToggleFavorite()
		case 'v', 'V':
			a.onToggleVoice()
		case 'p', 'P':
			a.onToggleAutoplay()
		case 'c', 'C':
			a.engine.OpenCategoryPicker(true)
		case 'r', 'R':
			a.onRecentCategory()
		case 'q', 'Q':
			a.window.Close()
		}
	})
}
