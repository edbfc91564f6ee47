package app

import "testing"

func TestIsDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"42", true},
		{"0", true},
		{"", false},
		{"5x", false},
		{"-5", false},
		{"5.0", false},
		{" 5", false},
	}
	for _, tt := range tests {
		if got := isDigits(tt.in); got != tt.want {
			t.Fatalf("isDigits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := displayTitle(""); got != "Unknown title" {
		t.Fatalf("empty title: got %q", got)
	}
	if got := displayTitle("Short"); got != "Short" {
		t.Fatalf("short title must pass through, got %q", got)
	}
	long := ""
	for i := 0; i < 80; i++ {
		long += "x"
	}
	got := displayTitle(long)
	if len([]rune(got)) > 60 {
		t.Fatalf("long title not truncated: %d runes", len([]rune(got)))
	}
}
