package clips

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acm19/clippics/internal/logger"
)

// CachePathResolver maps a source image and compression options to a file
// in the cache directory.
type CachePathResolver interface {
	// OutputPath returns {root}/{base(source)}-{quality}.{extension}.
	OutputPath(source string, opts CompressOptions) string
	// Root returns the cache directory.
	Root() string
}

type cachePathResolver struct {
	root string
}

// NewCachePathResolver creates a resolver writing below root.
// The directory is created lazily by OutputPath.
func NewCachePathResolver(root string) CachePathResolver {
	return &cachePathResolver{root: root}
}

// DefaultCacheRoot returns the cache directory used when none is configured.
func DefaultCacheRoot() string {
	return filepath.Join(os.TempDir(), "image-processor")
}

func (r *cachePathResolver) Root() string {
	return r.root
}

// OutputPath returns the cache path for source. Two sources sharing a base
// name map to the same path.
func (r *cachePathResolver) OutputPath(source string, opts CompressOptions) string {
	if err := os.MkdirAll(r.root, 0755); err != nil {
		logger.Debug("Failed to create cache directory", "path", r.root, "error", err)
	}
	name := fmt.Sprintf("%s-%d.%s", filepath.Base(source), opts.Quality, opts.Extension)
	return filepath.Join(r.root, name)
}
