// Package browser snapshots live page layout through a Chrome instance.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/frudas24/boxgeom/internal/fixture"
	"github.com/frudas24/boxgeom/internal/geom"
	"github.com/kataras/golog"
)

// logger returns the package logger. It is resolved on use so that it
// inherits the level configured at startup.
func logger() *golog.Logger {
	return golog.Child("[browser]")
}

// Options configures the Chrome instance used for snapshots.
type Options struct {
	Headless     bool
	WindowWidth  int
	WindowHeight int
	Timeout      time.Duration
}

// NewContext starts a Chrome allocator and returns a browser context.
// The returned cancel releases everything NewContext created.
func NewContext(parent context.Context, opts Options) (context.Context, context.CancelFunc) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithDebugf(logger().Debugf))

	var cancelTimeout context.CancelFunc
	if opts.Timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, opts.Timeout)
	}

	return ctx, func() {
		if cancelTimeout != nil {
			cancelTimeout()
		}
		cancelCtx()
		cancelAlloc()
	}
}

// Snapshot loads url and records the viewport plus the first element
// matching each selector. Elements are named by their selector.
func Snapshot(ctx context.Context, url string, selectors []string) (fixture.Layout, error) {
	script, err := snapshotScript(selectors, geom.StyleProps())
	if err != nil {
		return fixture.Layout{}, err
	}

	var res snapshotResult
	logger().Debugf("navigate %s selectors=%v", url, selectors)
	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(script, &res),
	); err != nil {
		return fixture.Layout{}, fmt.Errorf("snapshot %s: %w", url, err)
	}

	layout, err := decodeSnapshot(res)
	if err != nil {
		return fixture.Layout{}, err
	}
	logger().Infof("snapshot %s viewport=%vx%v elements=%d", url, layout.Viewport.Width, layout.Viewport.Height, len(layout.Elements))
	return layout, nil
}

type snapshotResult struct {
	Viewport snapshotViewport  `json:"viewport"`
	Missing  []string          `json:"missing"`
	Elements []snapshotElement `json:"elements"`
}

type snapshotViewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type snapshotElement struct {
	Selector   string            `json:"selector"`
	OffsetLeft float64           `json:"offsetLeft"`
	OffsetTop  float64           `json:"offsetTop"`
	First      int               `json:"first"`
	Parent     int               `json:"parent"`
	Style      map[string]string `json:"style"`
}

// snapshotScript builds the page-side expression collecting layout data.
func snapshotScript(selectors, props []string) (string, error) {
	sel, err := json.Marshal(selectors)
	if err != nil {
		return "", err
	}
	pr, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(() => {
  const sels = %s;
  const props = %s;
  const doc = document.documentElement;
  const nodes = sels.map((s) => document.querySelector(s));
  return {
    viewport: {width: doc.clientWidth, height: doc.clientHeight},
    missing: sels.filter((s, i) => !nodes[i]),
    elements: nodes.map((el, i) => ({el, i})).filter((x) => x.el).map(({el, i}) => {
      const cs = window.getComputedStyle(el);
      const style = {};
      for (const p of props) style[p] = cs.getPropertyValue(p);
      return {
        selector: sels[i],
        first: nodes.indexOf(el),
        offsetLeft: el.offsetLeft,
        offsetTop: el.offsetTop,
        parent: el.offsetParent ? nodes.indexOf(el.offsetParent) : -1,
        style,
      };
    }),
  };
})()`, sel, pr), nil
}

// decodeSnapshot converts an evaluated snapshot into a layout.
func decodeSnapshot(res snapshotResult) (fixture.Layout, error) {
	if len(res.Missing) > 0 {
		return fixture.Layout{}, fmt.Errorf("selector %q matched no element", res.Missing[0])
	}
	layout := fixture.Layout{
		Viewport: fixture.Viewport{Width: res.Viewport.Width, Height: res.Viewport.Height},
	}
	for i, el := range res.Elements {
		if el.First != i && el.First >= 0 && el.First < len(res.Elements) {
			return fixture.Layout{}, fmt.Errorf("selectors %q and %q match the same element", res.Elements[el.First].Selector, el.Selector)
		}
		container := ""
		if el.Parent >= 0 && el.Parent < len(res.Elements) {
			container = res.Elements[el.Parent].Selector
		}
		layout.Elements = append(layout.Elements, fixture.Element{
			Name:      el.Selector,
			OffsetX:   el.OffsetLeft,
			OffsetY:   el.OffsetTop,
			Container: container,
			Style:     el.Style,
		})
	}
	return layout, nil
}
