package clips

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/acm19/clippics/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultListLimit is the number of most recent images listed.
	DefaultListLimit = 100
	// maxStatConcurrency bounds the number of concurrent stat calls.
	maxStatConcurrency = 16
)

// DefaultClipboardDir returns the directory where the launcher stores
// clipboard history images.
func DefaultClipboardDir(home string) string {
	return filepath.Join(home, "Library", "Caches", "com.raycast.macos", "Clipboard")
}

// ImageLister lists clipboard images.
type ImageLister interface {
	// ValidateDirectory checks that dir exists and is a directory.
	ValidateDirectory(dir string) error
	// ListImages returns up to limit images from dir, newest first.
	ListImages(ctx context.Context, dir string, limit int) ([]ImageInfo, error)
}

type imageLister struct {
	extensions Extensions
}

// NewImageLister creates a new ImageLister.
func NewImageLister() ImageLister {
	return &imageLister{extensions: NewExtensions()}
}

// ValidateDirectory checks that dir exists and is a directory.
func (l *imageLister) ValidateDirectory(dir string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("clipboard directory is not a valid directory: %s", dir)
	}
	return nil
}

// ListImages stats every candidate file in dir, sorts by modification time
// (newest first) and keeps at most limit entries. A limit <= 0 keeps all.
func (l *imageLister) ListImages(ctx context.Context, dir string, limit int) ([]ImageInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !l.isCandidate(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	logger.Debug("Found clipboard entries", "dir", dir, "count", len(paths))

	images := make([]ImageInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxStatConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			images[i] = GetImageInfo(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Time.After(images[j].Time)
	})
	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	return images, nil
}

// isCandidate skips dot files and files whose extension is not an image.
// Extension-less files are kept.
func (l *imageLister) isCandidate(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return !l.extensions.HasExtension(name) || l.extensions.IsImage(name)
}
