package engine

import "testing"

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		index int
		total int
		want  int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-7, 5, 3},
		{123, 5, 3},
		{-123, 5, 2},
		{3, 0, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		if got := WrapIndex(tt.index, tt.total); got != tt.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestDetectSwipe(t *testing.T) {
	tests := []struct {
		name                   string
		startX, startY         float32
		endX, endY             float32
		want                   SwipeDirection
	}{
		{"long left swipe", 200, 100, 100, 100, SwipeLeft},
		{"long right swipe", 100, 100, 200, 105, SwipeRight},
		{"too short", 100, 100, 140, 100, SwipeNone},
		{"exactly at threshold", 100, 100, 145, 100, SwipeNone},
		{"just past threshold", 100, 100, 146, 100, SwipeRight},
		{"mostly vertical", 100, 100, 160, 300, SwipeNone},
		{"diagonal but horizontal enough", 100, 100, 200, 140, SwipeRight},
		{"no movement", 100, 100, 100, 100, SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSwipe(tt.startX, tt.startY, tt.endX, tt.endY)
			if got != tt.want {
				t.Errorf("DetectSwipe(%v,%v -> %v,%v) = %q, want %q",
					tt.startX, tt.startY, tt.endX, tt.endY, got, tt.want)
			}
		})
	}
}
