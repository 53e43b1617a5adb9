package engine

// WrapIndex normalizes an index into [0, total) by wraparound. A total of
// zero (or less) collapses to 0. Unlike a plain (i+total)%total this holds
// for steps of arbitrary magnitude in either direction.
func WrapIndex(index, total int) int {
	if total <= 0 {
		return 0
	}
	wrapped := index % total
	if wrapped < 0 {
		wrapped += total
	}
	return wrapped
}

// SwipeDirection is the horizontal direction of a committed swipe gesture.
type SwipeDirection string

const (
	SwipeNone  SwipeDirection = ""
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// Swipe gesture thresholds: the minimum horizontal travel for a swipe to
// count, and how dominant the horizontal axis must be over the vertical.
const (
	swipeMinDistance    = 45.0
	swipeHorizontalBias = 1.2
)

// DetectSwipe classifies a touch gesture from its start and end points.
// Short or mostly-vertical movements are not swipes.
func DetectSwipe(startX, startY, endX, endY float32) SwipeDirection {
	dx := float64(endX - startX)
	dy := float64(endY - startY)

	if abs(dx) <= swipeMinDistance {
		return SwipeNone
	}
	if abs(dx) <= abs(dy)*swipeHorizontalBias {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
