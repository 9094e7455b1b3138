package clips

import (
	"errors"
	"os"

	"github.com/acm19/clippics/internal/logger"
)

// previewOptions is the variant looked up by the detail view.
var previewOptions = CompressOptions{Quality: 80, Extension: JPEG}

// Detail is everything shown for a single image.
type Detail struct {
	Image ImageInfo
	// Metadata is nil when it could not be read.
	Metadata Metadata
	// Compressed is the cached quality 80 jpeg variant, if one exists.
	Compressed *ImageInfo
}

// CompressedLabel renders the compressed size relative to the original,
// e.g. "120.00 KB (25.00%)". It returns "" when there is no variant.
func (d *Detail) CompressedLabel() string {
	if d.Compressed == nil {
		return ""
	}
	return FormatBytes(d.Compressed.Size) + " (" + FormatRatio(Ratio(d.Compressed.Size, d.Image.Size)) + ")"
}

// Describer builds Details.
type Describer struct {
	resolver CachePathResolver
	reader   MetadataReader
}

// NewDescriber creates a Describer.
func NewDescriber(resolver CachePathResolver, reader MetadataReader) *Describer {
	return &Describer{resolver: resolver, reader: reader}
}

// Describe collects info, metadata and the cached variant of path.
func (d *Describer) Describe(path string) *Detail {
	detail := &Detail{
		Image:    GetImageInfo(path),
		Metadata: d.reader.ReadMetadata(path),
	}

	compressedPath := d.resolver.OutputPath(path, previewOptions)
	if _, err := os.Stat(compressedPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Debug("Failed to stat compressed variant", "path", compressedPath, "error", err)
		}
		return detail
	}
	compressed := GetImageInfo(compressedPath)
	detail.Compressed = &compressed
	return detail
}
