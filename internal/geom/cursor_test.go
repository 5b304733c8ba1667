package geom_test

import (
	"errors"
	"testing"

	"github.com/frudas24/boxgeom/internal/geom"
	"github.com/frudas24/boxgeom/internal/testutil"
)

// TestCursorFromEvent_Mouse verifies mouse events report their own client coordinates.
func TestCursorFromEvent_Mouse(t *testing.T) {
	for _, c := range []geom.Point{{X: 0, Y: 0}, {X: 12.5, Y: 300}, {X: -4, Y: 1e6}} {
		p, err := geom.CursorFromEvent(testutil.MouseEvent(c.X, c.Y))
		if err != nil {
			t.Fatalf("CursorFromEvent failed: %v", err)
		}
		if p != c {
			t.Fatalf("expected %+v, got %+v", c, p)
		}
	}
}

// TestCursorFromEvent_TouchWinsOverMouse verifies the first touch is used even when mouse fields exist.
func TestCursorFromEvent_TouchWinsOverMouse(t *testing.T) {
	ev := testutil.TouchEvent(geom.Touch{ClientX: 30, ClientY: 40}, geom.Touch{ClientX: 50, ClientY: 60})
	ev.X, ev.Y, ev.HasXY = 1, 2, true

	p, err := geom.CursorFromEvent(ev)
	if err != nil {
		t.Fatalf("CursorFromEvent failed: %v", err)
	}
	if p != (geom.Point{X: 30, Y: 40}) {
		t.Fatalf("expected (30,40), got %+v", p)
	}
}

// TestCursorFromEvent_EmptyTouchList verifies a present but empty touch list is a fault.
func TestCursorFromEvent_EmptyTouchList(t *testing.T) {
	ev := testutil.TouchEvent()
	ev.X, ev.Y, ev.HasXY = 1, 2, true

	_, err := geom.CursorFromEvent(ev)
	if !errors.Is(err, geom.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates, got %v", err)
	}
}

// TestCursorFromEvent_Malformed verifies events without coordinates return an error.
func TestCursorFromEvent_Malformed(t *testing.T) {
	if _, err := geom.CursorFromEvent(testutil.FakeEvent{}); !errors.Is(err, geom.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates, got %v", err)
	}
	if _, err := geom.CursorFromEvent(nil); !errors.Is(err, geom.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates for nil event, got %v", err)
	}
}
