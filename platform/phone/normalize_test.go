package phone

import "testing"

func TestValidShape(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+1234567890", true},
		{"1234567", true},
		{"123456789012345", true},
		{"+31 6 1234-5678", true},
		{"  +5511888888888  ", true},
		{"123456", false},           // too short
		{"1234567890123456", false}, // too long
		{"", false},
		{"   ", false},
		{"phone", false},
		{"+12345abc90", false},
		{"(123) 4567890", false}, // parens are not accepted separators
	}

	for _, tc := range tests {
		if got := ValidShape(tc.input); got != tc.want {
			t.Errorf("ValidShape(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(202) 555-0143", "+12025550143"},
		{"+31612345678", "+31612345678"},
		{"  +31612345678  ", "+31612345678"},
		{"", ""},
		// Not a valid number anywhere; input passes through trimmed.
		{"+1234567890", "+1234567890"},
		{"not-a-number", "not-a-number"},
	}

	for _, tc := range tests {
		if got := NormalizeE164(tc.input); got != tc.want {
			t.Errorf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
