// Package monitor exposes display geometry as a viewport and the OS cursor as an input event.
package monitor

import "github.com/frudas24/boxgeom/internal/fixture"

// Monitor describes a display and its bounds in virtual-desktop coordinates.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// ClientWidth returns the monitor width in pixels.
func (m Monitor) ClientWidth() float64 {
	return float64(m.W)
}

// ClientHeight returns the monitor height in pixels.
func (m Monitor) ClientHeight() float64 {
	return float64(m.H)
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// RelativeEvent converts an absolute desktop position into a mouse event
// in the monitor's client coordinates.
func RelativeEvent(m Monitor, absX, absY int) fixture.Event {
	return fixture.MouseEvent("cursor", float64(absX-m.X), float64(absY-m.Y))
}

// Layout returns a layout snapshot for m holding only its viewport.
func Layout(m Monitor) fixture.Layout {
	return fixture.Layout{
		Viewport: fixture.Viewport{Width: m.ClientWidth(), Height: m.ClientHeight()},
	}
}
