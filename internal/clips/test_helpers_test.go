package clips

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// createTestPNG writes a small gradient PNG and returns its path.
func createTestPNG(t *testing.T, dir, filename string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return path
}

// createSizedFile writes size bytes to a file and sets its modification time.
func createSizedFile(t *testing.T, dir, filename string, size int, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("Failed to set time on %s: %v", path, err)
	}
	return path
}

// fakeCodec writes outputSize bytes to dst and counts calls.
type fakeCodec struct {
	mu         sync.Mutex
	calls      int
	outputSize int
	err        error
}

func (c *fakeCodec) Transcode(ctx context.Context, src, dst string, opts CompressOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(dst, make([]byte, c.outputSize), 0644)
}

func (c *fakeCodec) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fakeClipboard struct {
	pasted []string
	err    error
}

func (c *fakeClipboard) PasteFile(path string) error {
	if c.err != nil {
		return c.err
	}
	c.pasted = append(c.pasted, path)
	return nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) Notify(message string) error {
	n.messages = append(n.messages, message)
	return n.err
}

type fakeMetadataReader struct {
	metadata Metadata
}

func (r *fakeMetadataReader) ReadMetadata(path string) Metadata {
	return r.metadata
}
