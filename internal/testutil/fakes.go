// Package testutil provides hand-written geometry fakes for tests.
package testutil

import "github.com/frudas24/boxgeom/internal/geom"

// FakeElement implements geom.Element with a fixed computed style.
type FakeElement struct {
	Style map[string]string
	Left  float64
	Top   float64
	// Reads records every style property requested, in order.
	Reads []string
}

// Ensure the fakes implement their interfaces.
var (
	_ geom.Element    = (*FakeElement)(nil)
	_ geom.Viewport   = FakeViewport{}
	_ geom.InputEvent = FakeEvent{}
)

// ComputedStyle returns the configured value, or "" when unset.
func (f *FakeElement) ComputedStyle(prop string) string {
	f.Reads = append(f.Reads, prop)
	return f.Style[prop]
}

// OffsetLeft returns the configured left offset.
func (f *FakeElement) OffsetLeft() float64 {
	return f.Left
}

// OffsetTop returns the configured top offset.
func (f *FakeElement) OffsetTop() float64 {
	return f.Top
}

// FakeViewport implements geom.Viewport with fixed dimensions.
type FakeViewport struct {
	W float64
	H float64
}

// ClientWidth returns W.
func (f FakeViewport) ClientWidth() float64 {
	return f.W
}

// ClientHeight returns H.
func (f FakeViewport) ClientHeight() float64 {
	return f.H
}

// FakeEvent implements geom.InputEvent.
type FakeEvent struct {
	Touches    []geom.Touch
	HasTouches bool
	X          float64
	Y          float64
	HasXY      bool
}

// MouseEvent returns a mouse-style event at (x, y).
func MouseEvent(x, y float64) FakeEvent {
	return FakeEvent{X: x, Y: y, HasXY: true}
}

// TouchEvent returns a touch-style event with the given touches.
func TouchEvent(touches ...geom.Touch) FakeEvent {
	return FakeEvent{Touches: touches, HasTouches: true}
}

// TouchList returns the configured touches.
func (f FakeEvent) TouchList() ([]geom.Touch, bool) {
	return f.Touches, f.HasTouches
}

// ClientXY returns the configured mouse coordinates.
func (f FakeEvent) ClientXY() (float64, float64, bool) {
	return f.X, f.Y, f.HasXY
}

// BoxStyle builds a computed style map from per-side pixel values.
// h is margin-left, padding-left, width, padding-right, margin-right;
// v is margin-top, padding-top, height, padding-bottom, margin-bottom.
func BoxStyle(h, v [5]string) map[string]string {
	hp := []string{"margin-left", "padding-left", "width", "padding-right", "margin-right"}
	vp := []string{"margin-top", "padding-top", "height", "padding-bottom", "margin-bottom"}
	style := make(map[string]string, 10)
	for i := range hp {
		style[hp[i]] = h[i]
		style[vp[i]] = v[i]
	}
	return style
}
