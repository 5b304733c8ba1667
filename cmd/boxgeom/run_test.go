package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/frudas24/boxgeom/internal/config"
	"github.com/frudas24/boxgeom/internal/fixture"
)

// TestSplitSelectors verifies blank entries are dropped and whitespace trimmed.
func TestSplitSelectors(t *testing.T) {
	got := splitSelectors(" #board , .card,,  ")
	if len(got) != 2 || got[0] != "#board" || got[1] != ".card" {
		t.Fatalf("unexpected selectors %q", got)
	}
	if got := splitSelectors(""); len(got) != 0 {
		t.Fatalf("expected no selectors, got %q", got)
	}
}

// TestLoadLayout_FlagOverridesConfig verifies -layout wins over LAYOUT_PATH.
func TestLoadLayout_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flag.yaml")
	want := fixture.Layout{Viewport: fixture.Viewport{Width: 320, Height: 240}}
	if err := fixture.Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg := config.Config{LayoutPath: filepath.Join(dir, "missing.yaml")}
	got, err := loadLayout(context.Background(), cfg, options{layoutPath: path})
	if err != nil {
		t.Fatalf("loadLayout failed: %v", err)
	}
	if got.Viewport != want.Viewport {
		t.Fatalf("expected %+v, got %+v", want.Viewport, got.Viewport)
	}
}

// TestPageLayout_RequiresSelectors verifies -url without selectors fails before starting Chrome.
func TestPageLayout_RequiresSelectors(t *testing.T) {
	cfg := config.Config{}
	if _, err := loadLayout(context.Background(), cfg, options{url: "http://localhost"}); err == nil {
		t.Fatalf("expected error")
	}
}
