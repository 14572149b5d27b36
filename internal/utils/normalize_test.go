package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fusion Energy Breakthrough", "Fusion Energy Breakthrough"},
		{"  Fusion Energy Explained \n", "Fusion Energy Explained"},
		{"**Fusion Energy Explained**", "Fusion Energy Explained"},
		{"# Rust Gains Ground in the Kernel", "Rust Gains Ground in the Kernel"},
		{"**Bold** and **more bold**", "**Bold** and **more bold**"},
		{"**  **", ""},
		{"Café Culture", "Café Culture"},
		{"2024. A Year in Review", "2024. A Year in Review"},
		{"Why <div> Soup Hurts Accessibility", "Why <div> Soup Hurts Accessibility"},
		{"C++ *pointers* and __init__ explained", "C++ *pointers* and __init__ explained"},
		{"#hashtags are not headings", "#hashtags are not headings"},
		{"\"Quoted Title\"", "\"Quoted Title\""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeTitle(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("abc", 10); got != "abc" {
		t.Errorf("TruncateRunes curto = %q", got)
	}
	if got := TruncateRunes("abcdef", 3); got != "abc" {
		t.Errorf("TruncateRunes ASCII = %q", got)
	}
	if got := TruncateRunes("ãéíõú", 2); got != "ãé" {
		t.Errorf("TruncateRunes multibyte = %q", got)
	}

	long := strings.Repeat("ç", 2000)
	if got := utf8.RuneCountInString(TruncateRunes(long, 1500)); got != 1500 {
		t.Errorf("TruncateRunes 1500 = %d runas", got)
	}
}
