package helpers

import (
	"regexp"
	"testing"
)

func TestGenerateTicketCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateTicketCode()
		if !pattern.MatchString(code) {
			t.Fatalf("ticket code %q is not 8 uppercase alphanumeric characters", code)
		}
		seen[code] = true
	}

	// Collisions are astronomically unlikely across 100 draws.
	if len(seen) < 100 {
		t.Errorf("expected 100 distinct codes, got %d", len(seen))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 100, "short"},
		{"exactly", 7, "exactly"},
		{"truncated here", 9, "truncated"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
