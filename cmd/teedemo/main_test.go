package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodePNG(t *testing.T, name string) (w, h int) {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", name, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode(%s) error = %v", name, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 80, 60
	cfg.Output = filepath.Join(dir, "out.png")
	cfg.Replay = filepath.Join(dir, "replay.png")
	cfg.Fallback = true

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range []string{cfg.Output, cfg.Replay} {
		if w, h := decodePNG(t, name); w != 80 || h != 60 {
			t.Errorf("%s is %dx%d, want 80x60", filepath.Base(name), w, h)
		}
	}
}

func TestRunTargetsByName(t *testing.T) {
	tests := []struct {
		name   string
		master string
		slaves string
	}{
		{"recording master", "recording", "image"},
		{"image only", "image", ""},
		{"fallback master", "fallback", "recording"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = 40, 30
			cfg.Master, cfg.Slaves = tt.master, tt.slaves
			cfg.Output = filepath.Join(dir, "out.png")
			cfg.Replay = filepath.Join(dir, "replay.png")

			if err := run(cfg); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if w, h := decodePNG(t, cfg.Output); w != 40 || h != 30 {
				t.Errorf("output is %dx%d, want 40x30", w, h)
			}
		})
	}
}

func TestNewTeeUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slaves = "recording,nope"
	if _, err := newTee(cfg); err == nil {
		t.Error("newTee() with an unknown backend succeeded")
	}
}

func TestRunBadFont(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "out.png")
	cfg.Font = filepath.Join(t.TempDir(), "missing.ttf")
	if err := run(cfg); err == nil {
		t.Error("run() with a missing font succeeded")
	}
}
