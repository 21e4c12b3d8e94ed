package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesPNGAndXFB(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "cube.png")
	xfbPath := filepath.Join(dir, "cube.yuyv")

	var out bytes.Buffer
	err := run([]string{"-mesh", "cube", "-t", "1.25", "-scale", "2", "-out", pngPath, "-xfb", xfbPath}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 1000 || cfg.Height != 1000 {
		t.Fatalf("png %dx%d, want 1000x1000", cfg.Width, cfg.Height)
	}

	raw, err := os.ReadFile(xfbPath)
	if err != nil {
		t.Fatalf("read xfb: %v", err)
	}
	if len(raw) != 640*480*2 {
		t.Fatalf("xfb size=%d", len(raw))
	}
	if !bytes.Equal(raw[:4], []byte{0x1F, 0x99, 0x1F, 0x7B}) {
		t.Fatalf("first cell=% x, want border", raw[:4])
	}
	if !strings.Contains(out.String(), "cube") {
		t.Fatalf("stdout=%q", out.String())
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"-mesh", "monkey"},
		{"-scale", "0"},
		{"-pairing", "diagonal"},
		{"-nope"},
	} {
		args = append(args, "-out", filepath.Join(dir, "x.png"))
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("run(%q) succeeded", args)
		}
	}
}
