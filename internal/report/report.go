package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/frudas24/boxgeom/internal/fixture"
	"github.com/frudas24/boxgeom/internal/geom"
	"github.com/kataras/golog"
)

// logger returns the package logger. It is resolved on use so that it
// inherits the level configured at startup.
func logger() *golog.Logger {
	return golog.Child("[report]")
}

// Report is the evaluated geometry of a layout.
type Report struct {
	Viewport Extent          `json:"viewport"`
	Elements []ElementReport `json:"elements"`
	Events   []EventReport   `json:"events"`
}

// ElementReport holds the geometry of one element.
type ElementReport struct {
	Name            string  `json:"name"`
	Position        LeftTop `json:"position"`
	Size            Extent  `json:"size"`
	ViewportClamp   XY      `json:"viewportClamp"`
	ContainerClamp  *XY     `json:"containerClamp,omitempty"`
	ViewportPercent XY      `json:"viewportPercent"`
}

// EventReport holds the cursor position of one event.
type EventReport struct {
	Name          string `json:"name"`
	Cursor        *XY    `json:"cursor,omitempty"`
	ViewportClamp *XY    `json:"viewportClamp,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Build evaluates every element and event of l. Malformed events are
// recorded in their EventReport; an unknown container fails the build.
func Build(l fixture.Layout) (Report, error) {
	vp := l.Viewport
	r := Report{
		Viewport: Extent{Width: Number(vp.ClientWidth()), Height: Number(vp.ClientHeight())},
		Elements: make([]ElementReport, 0, len(l.Elements)),
		Events:   make([]EventReport, 0, len(l.Events)),
	}

	for _, el := range l.Elements {
		er, err := buildElement(l, vp, el)
		if err != nil {
			return Report{}, err
		}
		r.Elements = append(r.Elements, er)
	}

	for _, ev := range l.Events {
		r.Events = append(r.Events, buildEvent(vp, ev))
	}
	return r, nil
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// buildElement evaluates position, size and clamps for el.
func buildElement(l fixture.Layout, vp geom.Viewport, el fixture.Element) (ElementReport, error) {
	pos := geom.ElementPosition(el)
	size := geom.ElementSize(el)
	at := geom.Point{X: pos.Left, Y: pos.Top}

	er := ElementReport{
		Name:            el.Name,
		Position:        LeftTop{Left: Number(pos.Left), Top: Number(pos.Top)},
		Size:            extent(size),
		ViewportClamp:   xy(geom.ClampToViewport(vp, at, size)),
		ViewportPercent: percent(geom.PercentOfViewport(vp, size)),
	}

	container, ok, err := l.Container(el)
	if err != nil {
		return ElementReport{}, err
	}
	if ok {
		clamped := xy(geom.ClampToContainer(at, size, geom.InnerSize(container)))
		er.ContainerClamp = &clamped
	}
	logger().Debugf("element %s position=%+v size=%+v", el.Name, pos, size)
	return er, nil
}

// buildEvent evaluates the cursor position of ev.
func buildEvent(vp geom.Viewport, ev fixture.Event) EventReport {
	p, err := geom.CursorFromEvent(ev)
	if err != nil {
		logger().Warnf("event %s: %v", ev.Name, err)
		return EventReport{Name: ev.Name, Error: fmt.Sprintf("event %s: %v", ev.Name, err)}
	}
	cursor := xy(p)
	clamped := xy(geom.ClampToViewport(vp, p, geom.Size{}))
	return EventReport{Name: ev.Name, Cursor: &cursor, ViewportClamp: &clamped}
}

func xy(p geom.Point) XY {
	return XY{X: Number(p.X), Y: Number(p.Y)}
}

func percent(p geom.Percent) XY {
	return XY{X: Number(p.X), Y: Number(p.Y)}
}

func extent(s geom.Size) Extent {
	return Extent{Width: Number(s.Width), Height: Number(s.Height)}
}
