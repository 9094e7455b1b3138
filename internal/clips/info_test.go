package clips

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/barasher/go-exiftool"
)

func TestGetImageInfo(t *testing.T) {
	tmpDir := t.TempDir()
	modTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	path := createSizedFile(t, tmpDir, "clip", 2048, modTime)

	info := GetImageInfo(path)

	if info.Name != "clip" {
		t.Errorf("Expected name clip, got %s", info.Name)
	}
	if info.Path != path {
		t.Errorf("Expected path %s, got %s", path, info.Path)
	}
	if info.Size != 2048 {
		t.Errorf("Expected size 2048, got %d", info.Size)
	}
	if !info.Time.Equal(modTime) {
		t.Errorf("Expected time %v, got %v", modTime, info.Time)
	}
}

func TestGetImageInfo_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	before := time.Now()
	info := GetImageInfo(path)
	after := time.Now()

	if info.Name != "missing.png" {
		t.Errorf("Expected name missing.png, got %s", info.Name)
	}
	if info.Path != path {
		t.Errorf("Expected path %s, got %s", path, info.Path)
	}
	if info.Size != 0 {
		t.Errorf("Expected size 0, got %d", info.Size)
	}
	if info.Time.Before(before) || info.Time.After(after) {
		t.Errorf("Expected time to be now, got %v", info.Time)
	}
}

func TestMetadata_Helpers(t *testing.T) {
	metadata := Metadata{
		TagImageWidth:  {Value: float64(1920), Description: "1920"},
		TagImageHeight: {Value: float64(1080), Description: "1080"},
		TagFileType:    {Value: "PNG", Description: "PNG"},
	}

	if got := metadata.Dimensions(); got != "1920x1080" {
		t.Errorf("Dimensions() = %s, expected 1920x1080", got)
	}
	if got := metadata.FileType(); got != "PNG" {
		t.Errorf("FileType() = %s, expected PNG", got)
	}
	if got := metadata.Compression(); got != "" {
		t.Errorf("Compression() = %q, expected empty for absent tag", got)
	}

	var none Metadata
	if got := none.Get(TagFileType); got != "" {
		t.Errorf("Get on nil metadata = %q, expected empty", got)
	}
}

func TestMetadataReader_NilExiftool(t *testing.T) {
	path := createTestPNG(t, t.TempDir(), "clip.png")
	reader := NewMetadataReader(nil)

	if metadata := reader.ReadMetadata(path); metadata != nil {
		t.Errorf("Expected nil metadata without exiftool, got %v", metadata)
	}
}

// createTestExiftool creates an exiftool instance for testing and ensures
// cleanup. Tests are skipped when the exiftool binary is not installed.
func createTestExiftool(t *testing.T) *exiftool.Exiftool {
	t.Helper()
	if _, err := exec.LookPath("exiftool"); err != nil {
		t.Skip("exiftool not installed")
	}
	et, err := exiftool.NewExiftool()
	if err != nil {
		t.Fatalf("Failed to create exiftool: %v", err)
	}
	t.Cleanup(func() { et.Close() })
	return et
}

func TestMetadataReader_ReadMetadata(t *testing.T) {
	path := createTestPNG(t, t.TempDir(), "clip.png")
	reader := NewMetadataReader(createTestExiftool(t))

	metadata := reader.ReadMetadata(path)
	if metadata == nil {
		t.Fatal("Expected metadata for a valid PNG")
	}
	if got := metadata.Dimensions(); got != "64x48" {
		t.Errorf("Dimensions() = %s, expected 64x48", got)
	}
	if got := metadata.FileType(); got != "PNG" {
		t.Errorf("FileType() = %s, expected PNG", got)
	}
}

func TestMetadataReader_UnparseableBytes(t *testing.T) {
	tmpDir := t.TempDir()
	path := createSizedFile(t, tmpDir, "garbage", 512, time.Now())
	reader := NewMetadataReader(createTestExiftool(t))

	if metadata := reader.ReadMetadata(path); metadata != nil {
		t.Errorf("Expected nil metadata for unparseable bytes, got %v", metadata)
	}
}

func TestMetadataReader_MissingFile(t *testing.T) {
	reader := NewMetadataReader(createTestExiftool(t))

	if metadata := reader.ReadMetadata(filepath.Join(t.TempDir(), "missing")); metadata != nil {
		t.Errorf("Expected nil metadata for missing file, got %v", metadata)
	}
}

func TestMetadataFromFileInfo(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		err    error
		isNil  bool
	}{
		{
			name:   "png",
			fields: map[string]interface{}{"MIMEType": "image/png", "FileType": "PNG", "ImageWidth": float64(640), "ImageHeight": float64(480)},
		},
		{
			name:   "exiftool error tag",
			fields: map[string]interface{}{"Error": "File format error", "FileType": "TXT"},
			isNil:  true,
		},
		{
			name:   "not an image",
			fields: map[string]interface{}{"MIMEType": "text/plain", "FileType": "TXT"},
			isNil:  true,
		},
		{
			name:   "no mime type",
			fields: map[string]interface{}{"FileSize": "512 bytes"},
			isNil:  true,
		},
		{
			name:  "extraction error",
			err:   errors.New("exiftool failed"),
			isNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := metadataFromFileInfo(exiftool.FileMetadata{File: "/clips/clip", Fields: tt.fields, Err: tt.err})
			if (metadata == nil) != tt.isNil {
				t.Fatalf("metadataFromFileInfo() = %v, expected nil %v", metadata, tt.isNil)
			}
		})
	}
}

func TestMetadataFromFileInfo_Tags(t *testing.T) {
	metadata := metadataFromFileInfo(exiftool.FileMetadata{
		File: "/clips/clip",
		Fields: map[string]interface{}{
			"MIMEType":    "image/jpeg",
			"FileType":    "JPEG",
			"ImageWidth":  float64(1920),
			"ImageHeight": float64(1080),
			"Comment":     nil,
		},
	})

	if got := metadata.Dimensions(); got != "1920x1080" {
		t.Errorf("Dimensions() = %s, expected 1920x1080", got)
	}
	if got := metadata.FileType(); got != "JPEG" {
		t.Errorf("FileType() = %s, expected JPEG", got)
	}
	if got := metadata.Compression(); got != "" {
		t.Errorf("Compression() = %q, expected empty for an absent tag", got)
	}
	if tag := metadata[TagImageWidth]; tag.Value != float64(1920) {
		t.Errorf("ImageWidth value = %v, expected raw float64 1920", tag.Value)
	}
	if _, ok := metadata["Comment"]; ok {
		t.Error("Expected null fields to be absent")
	}
}
