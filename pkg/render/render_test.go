package render

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := Errorf("FontNotFound", fmt.Errorf("unknown figlet font %q", "nope"))
	want := `FontNotFound: unknown figlet font "nope"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("saving: %w", Errorf("SaveFailed", cause))

	var rerr *Error
	if !errors.As(wrapped, &rerr) {
		t.Fatal("errors.As should find *render.Error through wrapping")
	}
	if rerr.Kind != "SaveFailed" {
		t.Errorf("Kind = %q, want SaveFailed", rerr.Kind)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the original cause")
	}
}
