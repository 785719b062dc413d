package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, want it to contain %q", s, Version)
	}
	if !strings.Contains(s, GitSHA) {
		t.Errorf("String() = %q, want it to contain %q", s, GitSHA)
	}
}
