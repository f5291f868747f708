package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/escape-time/pkg/bridge"
	"github.com/willbeason/escape-time/pkg/frame"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestEscape_Text(t *testing.T) {
	got, err := execute(t, "--width=4", "--height=3", "--scale=4", "--iters=20", "--format=text", "0", "0")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	for i, line := range lines {
		if n := len(strings.Fields(line)); n != 4 {
			t.Errorf("line %d: got %d fields, want 4", i, n)
		}
	}

	// Top-left pixel is sampled at (-2, -1.5), which escapes on the first iteration.
	if first := strings.Fields(lines[0])[0]; first != "1" {
		t.Errorf("got top-left count %s, want 1", first)
	}
}

func TestEscape_RawFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames", "0.bin")

	_, err := execute(t, "--width=5", "--height=2", "--iters=10", "--workers=2", "-o", path, "--", "-0.5", "0")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 5*2*4 {
		t.Errorf("got %d bytes, want %d", len(data), 5*2*4)
	}
}

func TestEscape_Errors(t *testing.T) {
	_, err := execute(t, "--scale=big", "0", "0")
	var parseErr *bridge.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("got %v, want *bridge.ParseError", err)
	}

	_, err = execute(t, "--width=0", "0", "0")
	if !errors.Is(err, frame.ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}

	_, err = execute(t, "--scale=0", "0", "0")
	if !errors.Is(err, frame.ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}

	_, err = execute(t, "--format=png", "0", "0")
	if err == nil {
		t.Error("expected error for unknown format")
	}

	_, err = execute(t, "0")
	if err == nil {
		t.Error("expected error for missing argument")
	}
}
