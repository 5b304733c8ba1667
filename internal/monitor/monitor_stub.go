//go:build !windows

package monitor

import (
	"errors"

	"github.com/frudas24/boxgeom/internal/fixture"
)

// ErrUnsupported indicates display enumeration is not available on this platform.
var ErrUnsupported = errors.New("monitor access is only supported on Windows")

// ListMonitors returns ErrUnsupported on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}

// CursorEvent returns ErrUnsupported on non-Windows platforms.
func CursorEvent(_ Monitor) (fixture.Event, error) {
	return fixture.Event{}, ErrUnsupported
}
