package matrix

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	resetSingleton(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.yaml")
	if err := os.WriteFile(path, []byte("matrix:\n  MIT:\n    Apache-2.0: \"yes\"\n"), 0o644); err != nil {
		t.Fatalf("write matrix: %v", err)
	}

	SetSource(path)
	if Default().Lookup("MIT", "Apache-2.0") != Yes {
		t.Fatal("Expected initial matrix to load")
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	w.OnReload(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the watcher a moment to be ready before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("matrix:\n  MIT:\n    Apache-2.0: \"no\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite matrix: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected reload callback after matrix write")
	}

	if Default().Lookup("MIT", "Apache-2.0") != No {
		t.Error("Expected updated matrix after reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	resetSingleton(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.yaml")
	if err := os.WriteFile(path, []byte("matrix: {}\n"), 0o644); err != nil {
		t.Fatalf("write matrix: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	w.OnReload(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)

	other := filepath.Join(dir, "unrelated.txt")
	if err := os.WriteFile(other, []byte("noise"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	select {
	case <-reloaded:
		t.Error("Expected no reload for unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "no-such-dir", "matrix.yaml"), nil)
	if err == nil {
		t.Error("Expected error for unwatchable directory")
	}
}
