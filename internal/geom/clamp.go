package geom

import "math"

// Clamp returns min(max(v, lo), hi). When hi < lo the result is hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampToContainer keeps an element of size elem at p inside a container.
// An element larger than its container ends up at a negative position.
func ClampToContainer(p Point, elem, container Size) Point {
	return Point{
		X: Clamp(p.X, 0, container.Width-elem.Width),
		Y: Clamp(p.Y, 0, container.Height-elem.Height),
	}
}

// ClampToViewport keeps an element of size elem at p inside the viewport.
// Pass a zero Size to clamp a bare point.
func ClampToViewport(vp Viewport, p Point, elem Size) Point {
	return ClampToContainer(p, elem, Size{Width: vp.ClientWidth(), Height: vp.ClientHeight()})
}

// PercentOfViewport expresses a size as percentages of the viewport.
// A zero viewport yields Inf or NaN.
func PercentOfViewport(vp Viewport, s Size) Percent {
	return Percent{
		X: s.Width / vp.ClientWidth() * 100,
		Y: s.Height / vp.ClientHeight() * 100,
	}
}
