package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBackground(t *testing.T) {
	c, err := parseBackground("#0a0b0c")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{R: 10, G: 11, B: 12, A: 255}) {
		t.Errorf("unexpected color %v", c)
	}

	if c, err := parseBackground(""); err != nil || c != nil {
		t.Errorf("expected nil background, got %v, %v", c, err)
	}
	if _, err := parseBackground("teal"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestRenderFrameWritesSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	configFile, width, height, seed, maxParticles = "", 400, 300, 9, 0
	frames, outFile, pointerX, pointerY = 50, out, 200, 150

	if err := renderFrame(nil, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if n := strings.Count(doc, "<circle"); n != 8 {
		t.Errorf("expected 8 particles in svg, got %d", n)
	}
	if !strings.Contains(doc, `width="400" height="300"`) {
		t.Error("expected 400x300 svg")
	}
}

func TestRunWindowRejectsZeroSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(path, []byte("width: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile, width, height, seed, maxParticles = path, 0, 0, 1, 0

	err := runWindow(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "window size") {
		t.Fatalf("expected window size error, got %v", err)
	}

	// the same config still renders headless
	frames, outFile, pointerX, pointerY = 1, filepath.Join(t.TempDir(), "zero.svg"), -1, -1
	if err := renderFrame(nil, nil); err != nil {
		t.Errorf("expected headless render of zero width to succeed: %v", err)
	}
}
