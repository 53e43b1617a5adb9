package gui

import (
	"image/color"
	"testing"
)

func TestShouldHideSubtitle(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		subtitle   string
		want       bool
	}{
		{"empty subtitle", "fruits", "", true},
		{"numbers always hide", "numbers", "Count 1 Apple", true},
		{"sizes always show", "sizes", "This Road is Wide", false},
		{"this-is filler hidden", "fruits", "This is Apple", true},
		{"these-are filler hidden", "body", "These are Eyes", true},
		{"filler with leading space hidden", "fruits", "  This is Apple", true},
		{"case insensitive", "fruits", "THIS IS Apple", true},
		{"real sentence shown", "colors", "This color is Red", false},
		{"prefix must be a whole word", "alphabet", "Thistle grows here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldHideSubtitle(tt.categoryID, tt.subtitle); got != tt.want {
				t.Errorf("shouldHideSubtitle(%q, %q) = %v, want %v",
					tt.categoryID, tt.subtitle, got, tt.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff9a9e", color.NRGBA{R: 0xff, G: 0x9a, B: 0x9e, A: 0xff}},
		{"#FDE7EF", color.NRGBA{R: 0xfd, G: 0xe7, B: 0xef, A: 0xff}},
		{"112233", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}},
	}

	for _, tt := range tests {
		if got := parseHexColor(tt.in); got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	fallback := color.NRGBA{R: 0xfd, G: 0xe7, B: 0xef, A: 0xff}
	for _, bad := range []string{"", "#fff", "#gggggg", "#12345", "not a color"} {
		if got := parseHexColor(bad); got != fallback {
			t.Errorf("parseHexColor(%q) = %v, want fallback", bad, got)
		}
	}
}
