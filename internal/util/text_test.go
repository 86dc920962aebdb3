package util

import "testing"

func TestSanitizeText(t *testing.T) {
	in := "Hello\x00 world\n\tkeep\x01me"
	out := SanitizeText(in)
	if out != "Hello world\n\tkeepme" {
		t.Fatalf("unexpected sanitize result: %q", out)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("héllo", 3); got != "hél" {
		t.Fatalf("expected rune-boundary cut, got %q", got)
	}
	if got := TruncateRunes("short", 100); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := TruncateRunes("x", 0); got != "" {
		t.Fatalf("expected empty for zero budget, got %q", got)
	}
}
