package providers

import (
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := map[string]ErrorType{
		"insufficient_quota": ErrorQuota,
		"429 rate":           ErrorRate,
		"context too long":   ErrorContext,
		"timeout":            ErrorTransient,
		"bad request":        ErrorPermanent,
	}
	for msg, want := range cases {
		if got := ClassifyError(errors.New(msg)); got != want {
			t.Fatalf("classify %q: got %s want %s", msg, got, want)
		}
	}
}

func TestLooksOverloaded(t *testing.T) {
	if !LooksOverloaded(errors.New("chat error 500: upstream")) {
		t.Fatal("expected 500 to look overloaded")
	}
	if !LooksOverloaded(errors.New("Rpc failed: xhr error")) {
		t.Fatal("expected rpc failure to look overloaded")
	}
	if LooksOverloaded(errors.New("invalid api key")) {
		t.Fatal("auth failure should not look overloaded")
	}
	if LooksOverloaded(nil) {
		t.Fatal("nil error should not look overloaded")
	}
}
