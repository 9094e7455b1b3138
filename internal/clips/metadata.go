package clips

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/acm19/clippics/internal/logger"
	"github.com/barasher/go-exiftool"
)

// Exiftool tag names used by the detail view.
const (
	TagImageWidth  = "ImageWidth"
	TagImageHeight = "ImageHeight"
	TagFileType    = "FileType"
	TagCompression = "Compression"

	tagError    = "Error"
	tagMIMEType = "MIMEType"
)

// Tag is a single metadata entry.
type Tag struct {
	// Value is the tag value as decoded from exiftool's JSON output.
	Value any
	// Description is the human readable rendering of Value.
	Description string
}

// Metadata maps tag names to tags. A nil Metadata means no metadata could be
// read and should be rendered as nothing rather than as an error.
type Metadata map[string]Tag

// Get returns the description of a tag, or "" if the tag is absent.
func (m Metadata) Get(name string) string {
	if tag, ok := m[name]; ok {
		return tag.Description
	}
	return ""
}

// Dimensions returns "{width}x{height}".
func (m Metadata) Dimensions() string {
	return m.Get(TagImageWidth) + "x" + m.Get(TagImageHeight)
}

// FileType returns the detected file type, e.g. "PNG".
func (m Metadata) FileType() string {
	return m.Get(TagFileType)
}

// Compression returns the compression codec description.
func (m Metadata) Compression() string {
	return m.Get(TagCompression)
}

// MetadataReader reads image metadata.
type MetadataReader interface {
	// ReadMetadata returns the metadata of path, or nil if none can be read.
	ReadMetadata(path string) Metadata
}

// exifMetadataReader implements MetadataReader on top of exiftool.
type exifMetadataReader struct {
	et *exiftool.Exiftool
}

// NewMetadataReader creates a MetadataReader sharing et. The caller owns et
// and must close it.
func NewMetadataReader(et *exiftool.Exiftool) MetadataReader {
	return &exifMetadataReader{et: et}
}

// ReadMetadata extracts every tag exiftool knows about. Failures are logged
// and reported as nil.
func (r *exifMetadataReader) ReadMetadata(path string) Metadata {
	if r.et == nil {
		logger.Debug("Exiftool not initialised, skipping metadata", "file", filepath.Base(path))
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		logger.Error("Failed to read image metadata", "path", path, "error", err)
		return nil
	}

	fileInfos := r.et.ExtractMetadata(path)
	if len(fileInfos) == 0 {
		logger.Error("Failed to read image metadata", "path", path, "error", "no metadata found")
		return nil
	}

	return metadataFromFileInfo(fileInfos[0])
}

// metadataFromFileInfo converts one exiftool result into Metadata. Results
// carrying an error, an exiftool Error tag or a non-image MIME type give nil.
// Null fields are treated as absent.
func metadataFromFileInfo(fileInfo exiftool.FileMetadata) Metadata {
	path := fileInfo.File
	if fileInfo.Err != nil {
		logger.Error("Failed to read image metadata", "path", path, "error", fileInfo.Err)
		return nil
	}

	if msg, err := fileInfo.GetString(tagError); err == nil {
		logger.Error("Failed to read image metadata", "path", path, "error", msg)
		return nil
	}
	if mimeType, _ := fileInfo.GetString(tagMIMEType); !strings.HasPrefix(mimeType, "image/") {
		logger.Error("Failed to read image metadata", "path", path, "error", "not an image", "mime_type", mimeType)
		return nil
	}

	metadata := make(Metadata, len(fileInfo.Fields))
	for name, value := range fileInfo.Fields {
		description, err := fileInfo.GetString(name)
		if err != nil {
			continue
		}
		metadata[name] = Tag{Value: value, Description: description}
	}
	logger.Debug("Read image metadata", "file", filepath.Base(path), "tags", len(metadata))
	return metadata
}
