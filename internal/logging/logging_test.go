package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rpick.log")
	log, err := New(Options{File: path, Level: "warn", MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Infow("dropped below level")
	log.Warnw("skipping catalog entry", "entry", "items.txt:3")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped below level") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"entry":"items.txt:3"`) {
		t.Fatalf("expected structured warn line, got %s", out)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestDefaultFileHonoursXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	if got, want := DefaultFile(), filepath.Join(dir, "rpick", "rpick.log"); got != want {
		t.Fatalf("DefaultFile() = %q, want %q", got, want)
	}
}
