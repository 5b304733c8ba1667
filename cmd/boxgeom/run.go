// Package main runs the boxgeom CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/frudas24/boxgeom/internal/browser"
	"github.com/frudas24/boxgeom/internal/config"
	"github.com/frudas24/boxgeom/internal/fixture"
	"github.com/frudas24/boxgeom/internal/monitor"
	"github.com/frudas24/boxgeom/internal/report"
	"github.com/kataras/golog"
)

type options struct {
	layoutPath string
	url        string
	selectors  string
	savePath   string
	desktop    bool
	debug      bool
}

// run loads a layout from the selected source and prints its report.
func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	golog.SetOutput(os.Stderr)
	golog.SetLevel(cfg.LogLevel)
	if opts.debug {
		golog.SetLevel("debug")
		golog.Debugf("debug: enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	layout, err := loadLayout(ctx, cfg, opts)
	if err != nil {
		return err
	}
	if opts.savePath != "" {
		if err := fixture.Save(opts.savePath, layout); err != nil {
			return fmt.Errorf("save layout: %w", err)
		}
		golog.Infof("layout saved: %s", opts.savePath)
	}

	r, err := report.Build(layout)
	if err != nil {
		return err
	}
	return r.WriteJSON(os.Stdout)
}

// loadLayout picks the desktop, live page or file source, in that order.
func loadLayout(ctx context.Context, cfg config.Config, opts options) (fixture.Layout, error) {
	if opts.desktop {
		return desktopLayout(cfg.MonitorIndex)
	}

	url := opts.url
	if url == "" {
		url = cfg.PageURL
	}
	if url != "" {
		return pageLayout(ctx, cfg, url, splitSelectors(opts.selectors))
	}

	path := opts.layoutPath
	if path == "" {
		path = cfg.LayoutPath
	}
	golog.Infof("layout: %s", path)
	return fixture.Load(path)
}

// pageLayout snapshots selectors on a live page.
func pageLayout(ctx context.Context, cfg config.Config, url string, selectors []string) (fixture.Layout, error) {
	if len(selectors) == 0 {
		return fixture.Layout{}, errors.New("-select is required with -url")
	}
	bctx, cancel := browser.NewContext(ctx, browser.Options{
		Headless:     cfg.BrowserHeadless,
		WindowWidth:  cfg.WindowWidth,
		WindowHeight: cfg.WindowHeight,
		Timeout:      cfg.BrowserTimeout(),
	})
	defer cancel()
	return browser.Snapshot(bctx, url, selectors)
}

// desktopLayout reports the OS cursor on the configured monitor.
func desktopLayout(idx int) (fixture.Layout, error) {
	monitors, err := monitor.ListMonitors()
	if err != nil {
		return fixture.Layout{}, err
	}
	m, ok := monitor.GetMonitorByIndex(monitors, idx)
	if !ok {
		return fixture.Layout{}, fmt.Errorf("monitor %d not found", idx)
	}
	ev, err := monitor.CursorEvent(m)
	if err != nil {
		return fixture.Layout{}, err
	}
	golog.Infof("monitor %d: %dx%d at (%d,%d)", m.Index, m.W, m.H, m.X, m.Y)
	layout := monitor.Layout(m)
	layout.Events = append(layout.Events, ev)
	return layout, nil
}

// splitSelectors parses a comma-separated selector list.
func splitSelectors(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// logFatal prints and exits for failures.
func logFatal(err error) {
	golog.Errorf("fatal: %v", err)
	os.Exit(1)
}
