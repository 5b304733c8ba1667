// Package fixture holds recorded page layouts that satisfy the geom capabilities.
package fixture

import (
	"errors"
	"fmt"

	"github.com/frudas24/boxgeom/internal/geom"
)

// ErrUnknownElement indicates a reference to an element missing from the layout.
var ErrUnknownElement = errors.New("unknown element")

// Viewport records the document client area.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Element records the layout state of one element.
type Element struct {
	Name      string            `yaml:"name"`
	OffsetX   float64           `yaml:"offsetLeft"`
	OffsetY   float64           `yaml:"offsetTop"`
	Container string            `yaml:"container,omitempty"`
	Style     map[string]string `yaml:"style,omitempty"`
}

// Event records a mouse or touch event. Touches is non-nil when the
// event carried a touch list, even an empty one.
type Event struct {
	Name    string        `yaml:"name"`
	ClientX *float64      `yaml:"clientX,omitempty"`
	ClientY *float64      `yaml:"clientY,omitempty"`
	Touches *[]geom.Touch `yaml:"touches,omitempty"`
}

// Layout is a snapshot of a page viewport with the elements and events recorded on it.
type Layout struct {
	Viewport Viewport  `yaml:"viewport"`
	Elements []Element `yaml:"elements,omitempty"`
	Events   []Event   `yaml:"events,omitempty"`
}

// ClientWidth returns the recorded viewport width.
func (v Viewport) ClientWidth() float64 {
	return v.Width
}

// ClientHeight returns the recorded viewport height.
func (v Viewport) ClientHeight() float64 {
	return v.Height
}

// ComputedStyle returns the recorded property value, or "" when absent.
func (e Element) ComputedStyle(prop string) string {
	return e.Style[prop]
}

// OffsetLeft returns the recorded offsetLeft.
func (e Element) OffsetLeft() float64 {
	return e.OffsetX
}

// OffsetTop returns the recorded offsetTop.
func (e Element) OffsetTop() float64 {
	return e.OffsetY
}

// TouchList returns the recorded touches and whether a touch list was present.
func (e Event) TouchList() ([]geom.Touch, bool) {
	if e.Touches == nil {
		return nil, false
	}
	return *e.Touches, true
}

// ClientXY returns the recorded mouse coordinates when both are present.
func (e Event) ClientXY() (float64, float64, bool) {
	if e.ClientX == nil || e.ClientY == nil {
		return 0, 0, false
	}
	return *e.ClientX, *e.ClientY, true
}

// MouseEvent returns a mouse-path event at (x, y).
func MouseEvent(name string, x, y float64) Event {
	return Event{Name: name, ClientX: &x, ClientY: &y}
}

// TouchEvent returns a touch-path event carrying touches.
func TouchEvent(name string, touches ...geom.Touch) Event {
	if touches == nil {
		touches = []geom.Touch{}
	}
	return Event{Name: name, Touches: &touches}
}

// Element returns the element with the given name.
func (l Layout) Element(name string) (Element, bool) {
	for _, e := range l.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}

// Container returns the container element of e. ok is false when e names none.
func (l Layout) Container(e Element) (Element, bool, error) {
	if e.Container == "" {
		return Element{}, false, nil
	}
	c, found := l.Element(e.Container)
	if !found {
		return Element{}, false, fmt.Errorf("container %q of %q: %w", e.Container, e.Name, ErrUnknownElement)
	}
	return c, true, nil
}
