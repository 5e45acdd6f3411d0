package inkwash

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatchRequiresDir verifies libraries without a backing directory
// cannot watch.
func TestWatchRequiresDir(t *testing.T) {
	l := NewShapeLibrary(nil)
	if err := l.Watch(context.Background()); err == nil {
		t.Error("Watch without a directory should fail")
	}
}

// TestWatchStopsOnCancel verifies Watch returns once its context is
// cancelled.
func TestWatchStopsOnCancel(t *testing.T) {
	l := NewShapeLibraryDir(t.TempDir())
	l.Load()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Watch(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Watch = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

// TestWatchReloadsOnAssetChange verifies writing a brush asset triggers a
// debounced reload.
func TestWatchReloadsOnAssetChange(t *testing.T) {
	dir := t.TempDir()
	l := NewShapeLibraryDir(dir)
	l.Load()

	// Synthesized round: bright in the middle.
	if v := l.ScaledRotated("round", 16, 0).At(8, 8); v < 0.5 {
		t.Fatalf("synthesized round center = %v", v)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- l.Watch(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	// A fully transparent asset replaces the synthesized disc.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	path := filepath.Join(dir, "brush_round.png")
	if err := os.WriteFile(path, encodePNG(t, img), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if l.ScaledRotated("round", 16, 0).At(8, 8) == 0 {
			return // reload observed
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("asset change did not trigger a reload")
}

// TestIsShapeAsset verifies only the named brush files trigger reloads.
func TestIsShapeAsset(t *testing.T) {
	if !isShapeAsset("/some/dir/brush_round.png") {
		t.Error("brush_round.png should be a shape asset")
	}
	if !isShapeAsset("brush_flat.png") {
		t.Error("brush_flat.png should be a shape asset")
	}
	if isShapeAsset("/some/dir/readme.txt") {
		t.Error("readme.txt should not be a shape asset")
	}
	if isShapeAsset("brush_round.png.swp") {
		t.Error("editor swap file should not be a shape asset")
	}
}
