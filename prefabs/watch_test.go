package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ignored := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(ignored, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(target, []byte("rows: {count: 1}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "scene.yaml" {
			t.Fatalf("expected scene.yaml, got %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_ = w.Close()

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected closed events channel")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("events channel not closed")
	}
}

func TestFileFilters(t *testing.T) {
	tests := []struct {
		path   string
		spec   bool
		script bool
	}{
		{"a/scene.yaml", true, false},
		{"a/scene.YML", true, false},
		{"a/rect.tengo", false, true},
		{"a/rect.lua", false, false},
		{"a/readme.md", false, false},
	}
	for _, tc := range tests {
		if isSpecFile(tc.path) != tc.spec || isScriptFile(tc.path) != tc.script {
			t.Fatalf("%s: spec=%v script=%v", tc.path, isSpecFile(tc.path), isScriptFile(tc.path))
		}
	}
}
