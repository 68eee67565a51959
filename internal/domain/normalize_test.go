package domain

import (
	"strings"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Serendipity", want: "serendipity"},
		{name: "hyphens preserved", input: "Well-Being", want: "well-being"},
		{name: "apostrophes preserved", input: "Don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and newlines", input: "\t hello \n", want: "hello"},
		{name: "already normalized", input: "abandon", want: "abandon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsWellFormedWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"Hello", true},
		{"well-being's", true},
		{"'", true},
		{"-", true},
		{strings.Repeat("a", MaxWordLength), true},
		{strings.Repeat("a", MaxWordLength+1), false},
		{"", false},
		{"hello123", false},
		{"two words", false},
		{"café", false},
		{"hello!", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsWellFormedWord(tt.input); got != tt.want {
				t.Errorf("IsWellFormedWord(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
