package gui

import (
	"image/color"
	"regexp"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/kidcards/internal/catalog"
	"codeberg.org/snonux/kidcards/internal/engine"
)

var sentenceSubtitle = regexp.MustCompile(`(?i)^(this is|these are)\b`)

// shouldHideSubtitle decides whether a card's subtitle is worth showing.
// Number cards never show one, size cards always do, and elsewhere the
// generic "This is X" / "These are X" fillers are dropped.
func shouldHideSubtitle(categoryID, subtitle string) bool {
	if subtitle == "" {
		return true
	}
	if categoryID == "numbers" {
		return true
	}
	if categoryID == "sizes" {
		return false
	}
	return sentenceSubtitle.MatchString(strings.TrimSpace(subtitle))
}

// CardView renders one card: a colored background, the big value, the emoji,
// the title and an optional subtitle. It is tappable (replay speech) and
// draggable (swipe navigation).
type CardView struct {
	widget.BaseWidget

	background *canvas.Rectangle
	value      *canvas.Text
	emoji      *canvas.Text
	title      *canvas.Text
	subtitle   *widget.Label

	dragX float32
	dragY float32

	// OnSwipe is called with the detected direction when a drag ends.
	OnSwipe func(engine.SwipeDirection)
	// OnTap is called when the card is tapped.
	OnTap func()
}

// NewCardView creates an empty card view.
func NewCardView() *CardView {
	v := &CardView{
		background: canvas.NewRectangle(color.NRGBA{R: 0xfd, G: 0xe7, B: 0xef, A: 0xff}),
		value:      canvas.NewText("", color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}),
		emoji:      canvas.NewText("", color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}),
		title:      canvas.NewText("", color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}),
		subtitle:   widget.NewLabel(""),
	}

	v.background.CornerRadius = 24

	v.value.TextSize = 96
	v.value.TextStyle = fyne.TextStyle{Bold: true}
	v.value.Alignment = fyne.TextAlignCenter

	v.emoji.TextSize = 72
	v.emoji.Alignment = fyne.TextAlignCenter

	v.title.TextSize = 32
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.Alignment = fyne.TextAlignCenter

	v.subtitle.Alignment = fyne.TextAlignCenter
	v.subtitle.Wrapping = fyne.TextWrapWord

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *CardView) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		v.background,
		container.NewCenter(container.NewVBox(
			v.value,
			v.emoji,
			v.title,
			v.subtitle,
		)),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (v *CardView) MinSize() fyne.Size {
	min := v.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, 420), fyne.Max(min.Height, 380))
}

// ShowCard updates the view for the given card.
func (v *CardView) ShowCard(categoryID string, card catalog.Card) {
	v.background.FillColor = parseHexColor(card.Colors[0])
	v.value.Text = card.Value
	v.emoji.Text = card.Emoji
	v.title.Text = card.Title

	if shouldHideSubtitle(categoryID, card.Subtitle) {
		v.subtitle.SetText("")
	} else {
		v.subtitle.SetText(card.Subtitle)
	}
	v.Refresh()
}

// ShowEmpty renders the empty-category placeholder.
func (v *CardView) ShowEmpty() {
	v.background.FillColor = color.NRGBA{R: 0xeb, G: 0xed, B: 0xee, A: 0xff}
	v.value.Text = ""
	v.emoji.Text = "🗂️"
	v.title.Text = ""
	v.subtitle.SetText("No cards in this category yet.")
	v.Refresh()
}

// Tapped implements fyne.Tappable.
func (v *CardView) Tapped(*fyne.PointEvent) {
	if v.OnTap != nil {
		v.OnTap()
	}
}

// Dragged implements fyne.Draggable by accumulating the drag distance.
func (v *CardView) Dragged(ev *fyne.DragEvent) {
	v.dragX += ev.Dragged.DX
	v.dragY += ev.Dragged.DY
}

// DragEnd implements fyne.Draggable. The accumulated drag is classified as
// a swipe, then reset.
func (v *CardView) DragEnd() {
	dir := engine.DetectSwipe(0, 0, v.dragX, v.dragY)
	v.dragX = 0
	v.dragY = 0
	if dir != engine.SwipeNone && v.OnSwipe != nil {
		v.OnSwipe(dir)
	}
}

// parseHexColor parses a #rrggbb string, falling back to a soft pink.
func parseHexColor(s string) color.Color {
	fallback := color.NRGBA{R: 0xfd, G: 0xe7, B: 0xef, A: 0xff}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi := hexNibble(s[i*2])
		lo := hexNibble(s[i*2+1])
		if hi < 0 || lo < 0 {
			return fallback
		}
		rgb[i] = uint8(hi<<4 | lo)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
