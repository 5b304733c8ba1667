package geom

import (
	"errors"
	"fmt"
)

// ErrNoCoordinates reports an event without readable client coordinates.
var ErrNoCoordinates = errors.New("event has no client coordinates")

// CursorFromEvent returns the pointer position of a mouse or touch event.
// Touch events always report their first touch, even when mouse fields are set.
func CursorFromEvent(ev InputEvent) (Point, error) {
	if ev == nil {
		return Point{}, fmt.Errorf("nil event: %w", ErrNoCoordinates)
	}
	if touches, ok := ev.TouchList(); ok {
		if len(touches) == 0 {
			return Point{}, fmt.Errorf("empty touch list: %w", ErrNoCoordinates)
		}
		return Point{X: touches[0].ClientX, Y: touches[0].ClientY}, nil
	}
	x, y, ok := ev.ClientXY()
	if !ok {
		return Point{}, fmt.Errorf("mouse event: %w", ErrNoCoordinates)
	}
	return Point{X: x, Y: y}, nil
}
