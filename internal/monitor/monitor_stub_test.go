//go:build !windows

package monitor

import (
	"errors"
	"testing"
)

// TestCursorEvent_Unsupported verifies the cursor cannot be read off Windows.
func TestCursorEvent_Unsupported(t *testing.T) {
	if _, err := CursorEvent(Monitor{Index: 1, W: 100, H: 100}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := ListMonitors(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
