package slug

import (
	"strings"
	"testing"
)

// TestGenerate exercises the slug generator with the kinds of titles that
// end up in media object keys: preview names, gallery captions, and the
// occasional messy paste.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Beach Day",
			want:  "beach-day",
		},
		{
			name:  "title with year",
			input: "Summer Set 2026",
			want:  "summer-set-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "punctuation stripped",
			input: "Hey, you! Ready?",
			want:  "hey-you-ready",
		},
		{
			name:  "ampersand and at sign",
			input: "Behind & Beyond @ Night",
			want:  "behind-beyond-night",
		},
		{
			name:  "consecutive separators collapse",
			input: "one -- two  --  three",
			want:  "one-two-three",
		},
		{
			name:  "leading and trailing noise",
			input: "  --Trimmed--  ",
			want:  "trimmed",
		},
		{
			name:  "unicode letters act as separators",
			input: "Café Crème",
			want:  "caf-cr-me",
		},
		{
			name:  "long title is capped",
			input: strings.Repeat("golden hour ", 10),
			want:  strings.TrimSuffix(strings.Repeat("golden-hour-", 5), "-"),
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
