// Package geom computes cursor, box and viewport geometry for page elements.
package geom

// Point is a position in client coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Offset is an element position relative to its positioned ancestor.
type Offset struct {
	Left float64 `json:"left" yaml:"left"`
	Top  float64 `json:"top" yaml:"top"`
}

// Size is the full extent of a box including margin and padding.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Percent holds per-axis percentages of the viewport.
type Percent struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Touch is a single contact point of a touch event.
type Touch struct {
	ClientX float64 `json:"clientX" yaml:"clientX"`
	ClientY float64 `json:"clientY" yaml:"clientY"`
}

// InputEvent exposes the pointer data carried by a mouse or touch event.
type InputEvent interface {
	// TouchList returns the active touches; present is false for mouse events.
	TouchList() (touches []Touch, present bool)
	// ClientXY returns the event's own client coordinates.
	ClientXY() (x, y float64, ok bool)
}

// Element exposes the layout state of a rendered element.
type Element interface {
	// ComputedStyle returns the resolved value of a CSS property, e.g. "10px".
	ComputedStyle(prop string) string
	OffsetLeft() float64
	OffsetTop() float64
}

// Viewport reports the current client area of the document.
type Viewport interface {
	ClientWidth() float64
	ClientHeight() float64
}
