//go:build property

package engine

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"codeberg.org/snonux/kidcards/internal/testutil"
)

func TestWrapIndexProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("result is always within [0, total)", prop.ForAll(
		func(index, total int) bool {
			got := WrapIndex(index, total)
			if total <= 0 {
				return got == 0
			}
			return got >= 0 && got < total
		},
		gen.IntRange(-1_000_000, 1_000_000),
		gen.IntRange(-10, 1000),
	))

	properties.Property("wrapping is periodic in total", prop.ForAll(
		func(index, total int) bool {
			return WrapIndex(index+total, total) == WrapIndex(index, total)
		},
		gen.IntRange(-1_000_000, 1_000_000),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

func TestMoveGlobalProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("two moves equal their combined move", prop.ForAll(
		func(cards, step1, step2 int) bool {
			cat := testutil.FlatCatalog(cards)

			a := New(cat, testutil.NewMockStore(), &testutil.MockSpeaker{})
			defer a.Close()
			a.MoveGlobal(step1)
			a.MoveGlobal(step2)

			b := New(cat, testutil.NewMockStore(), &testutil.MockSpeaker{})
			defer b.Close()
			b.MoveGlobal(step1 + step2)

			return a.Snapshot().Card.ID == b.Snapshot().Card.ID
		},
		gen.IntRange(1, 20),
		gen.IntRange(-10_000, 10_000),
		gen.IntRange(-10_000, 10_000),
	))

	properties.Property("a full cycle lands on the starting card", prop.ForAll(
		func(cards, laps int) bool {
			cat := testutil.FlatCatalog(cards)
			e := New(cat, testutil.NewMockStore(), &testutil.MockSpeaker{})
			defer e.Close()

			start := e.Snapshot().Card.ID
			e.MoveGlobal(laps * cards)
			return e.Snapshot().Card.ID == start
		},
		gen.IntRange(1, 20),
		gen.IntRange(-50, 50),
	))

	properties.TestingRun(t)
}

func TestDetectSwipeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("direction always matches the horizontal sign", prop.ForAll(
		func(dx, dy float32) bool {
			switch DetectSwipe(0, 0, dx, dy) {
			case SwipeLeft:
				return dx < 0
			case SwipeRight:
				return dx > 0
			default:
				return true
			}
		},
		gen.Float32Range(-500, 500),
		gen.Float32Range(-500, 500),
	))

	properties.Property("mirroring a gesture mirrors its direction", prop.ForAll(
		func(dx, dy float32) bool {
			forward := DetectSwipe(0, 0, dx, dy)
			backward := DetectSwipe(0, 0, -dx, dy)
			switch forward {
			case SwipeLeft:
				return backward == SwipeRight
			case SwipeRight:
				return backward == SwipeLeft
			default:
				return backward == SwipeNone
			}
		},
		gen.Float32Range(-500, 500),
		gen.Float32Range(-500, 500),
	))

	properties.TestingRun(t)
}
