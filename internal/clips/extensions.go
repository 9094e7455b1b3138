package clips

import (
	"path/filepath"
	"slices"
	"strings"
)

// Extension is an output raster format.
type Extension string

const (
	JPEG Extension = "jpeg"
	PNG  Extension = "png"
	BMP  Extension = "bmp"
	TIFF Extension = "tiff"
	GIF  Extension = "gif"
)

// SupportedExtensions lists every format the codec can write.
var SupportedExtensions = []Extension{JPEG, PNG, BMP, TIFF, GIF}

var extensionAliases = map[string]Extension{
	"jpg": JPEG,
	"tif": TIFF,
}

// ParseExtension converts a preference value into an Extension.
// Matching is case-insensitive and a leading dot is ignored.
func ParseExtension(s string) (Extension, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if alias, ok := extensionAliases[name]; ok {
		return alias, nil
	}
	ext := Extension(name)
	if !slices.Contains(SupportedExtensions, ext) {
		return "", &InvalidExtensionError{Value: s}
	}
	return ext, nil
}

// Extensions recognises image files by their extension.
type Extensions interface {
	// IsImage returns true if the file extension is a readable image format.
	IsImage(filePath string) bool
	// HasExtension returns true if the file has any extension at all.
	HasExtension(filePath string) bool
}

type extensions struct {
	imageExts []string
}

// NewExtensions creates a new Extensions instance.
func NewExtensions() Extensions {
	return &extensions{
		imageExts: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".heic"},
	}
}

// IsImage returns true if the file extension is a readable image format.
func (e *extensions) IsImage(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return slices.Contains(e.imageExts, ext)
}

// HasExtension returns true if the file has any extension at all.
// Clipboard cache entries are usually stored without one.
func (e *extensions) HasExtension(filePath string) bool {
	return filepath.Ext(filePath) != ""
}
