package cli

import "testing"

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()

	if ctx == nil {
		t.Fatal("Expected non-nil context")
	}
	select {
	case <-ctx.Done():
		t.Error("Context should not be canceled before a signal arrives")
	default:
	}
}
