package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("matrix.path", "file does not exist")

	if !strings.Contains(err.Error(), "matrix.path") {
		t.Errorf("Expected field in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Expected detail in message, got %q", err.Error())
	}
}

func TestCommandError(t *testing.T) {
	cause := errors.New("boom")
	err := NewCommandError("check", cause)

	if !strings.Contains(err.Error(), "check") {
		t.Errorf("Expected command name in message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected CommandError to unwrap to its cause")
	}
}
