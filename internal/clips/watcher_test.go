package clips

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReportsNewImages(t *testing.T) {
	tmpDir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	found := make(chan ImageInfo)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, tmpDir, found)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)
	createSizedFile(t, tmpDir, ".hidden", 1, time.Now())
	createSizedFile(t, tmpDir, "notes.txt", 1, time.Now())
	path := createSizedFile(t, tmpDir, "clip", 64, time.Now())

	select {
	case info := <-found:
		if info.Path != path {
			t.Errorf("Expected %s, got %s", path, info.Path)
		}
	case <-ctx.Done():
		t.Fatal("Timed out waiting for watch event")
	}

	cancel()
	for range found {
	}
	if err := <-errCh; err != nil {
		t.Errorf("Expected nil error on cancel, got %v", err)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	found := make(chan ImageInfo)
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), found)
	if err == nil {
		t.Error("Expected error for missing directory")
	}
	if _, ok := <-found; ok {
		t.Error("Expected channel to be closed")
	}
}

func TestWatch_ReportsEachCaptureOnce(t *testing.T) {
	tmpDir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	found := make(chan ImageInfo)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, tmpDir, found)
	}()

	time.Sleep(200 * time.Millisecond)
	path := filepath.Join(tmpDir, "clip")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := file.Write(make([]byte, 256)); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}

	select {
	case info := <-found:
		if info.Path != path {
			t.Errorf("Expected %s, got %s", path, info.Path)
		}
		if info.Size != 1024 {
			t.Errorf("Expected settled size 1024, got %d", info.Size)
		}
	case <-ctx.Done():
		t.Fatal("Timed out waiting for watch event")
	}

	select {
	case info := <-found:
		t.Errorf("Expected a single report, got another for %s", info.Path)
	case <-time.After(3 * watchSettle):
	}

	cancel()
	for range found {
	}
	if err := <-errCh; err != nil {
		t.Errorf("Expected nil error on cancel, got %v", err)
	}
}
