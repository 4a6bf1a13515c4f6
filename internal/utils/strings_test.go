package utils

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Golden Gate", expected: "golden-gate"},
		{name: "punctuation runs collapse", input: "Sunset -- at the Pier!!", expected: "sunset-at-the-pier"},
		{name: "leading and trailing separators", input: "  ...Fog... ", expected: "fog"},
		{name: "digits kept", input: "Roll 35 / Frame 12", expected: "roll-35-frame-12"},
		{name: "non ascii letters dropped", input: "Café Noir", expected: "caf-noir"},
		{name: "only separators", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "jpeg", input: "IMG_0001.JPG", expected: "jpg"},
		{name: "multiple dots", input: "scan.final.tiff", expected: "tiff"},
		{name: "no extension", input: "README", expected: "jpg"},
		{name: "trailing dot", input: "photo.", expected: "jpg"},
		{name: "empty", input: "", expected: "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExtension(tt.input, "jpg"); got != tt.expected {
				t.Errorf("FileExtension(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkSlugify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Slugify("A Long Title -- With Punctuation, Digits 2024 & More")
	}
}
