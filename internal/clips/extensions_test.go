package clips

import (
	"errors"
	"testing"
)

func TestParseExtension(t *testing.T) {
	tests := []struct {
		input     string
		expected  Extension
		expectErr bool
	}{
		{"jpeg", JPEG, false},
		{"JPEG", JPEG, false},
		{"jpg", JPEG, false},
		{".png", PNG, false},
		{"bmp", BMP, false},
		{"tiff", TIFF, false},
		{"tif", TIFF, false},
		{"gif", GIF, false},
		{" gif ", GIF, false},
		{"webp", "", true},
		{"heic", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParseExtension(tt.input)
		if tt.expectErr {
			var extErr *InvalidExtensionError
			if !errors.As(err, &extErr) {
				t.Errorf("ParseExtension(%q) error = %v, expected *InvalidExtensionError", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseExtension(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseExtension(%q) = %s, expected %s", tt.input, result, tt.expected)
		}
	}
}

func TestExtensions_IsImage(t *testing.T) {
	ext := NewExtensions()

	tests := []struct {
		filePath string
		expected bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.png", true},
		{"photo.gif", true},
		{"photo.bmp", true},
		{"photo.tiff", true},
		{"photo.webp", true},
		{"photo.HEIC", true},
		{"video.mov", false},
		{"document.txt", false},
		{"clipboard-entry", false},
		{"/path/to/image.png", true},
	}

	for _, tt := range tests {
		if result := ext.IsImage(tt.filePath); result != tt.expected {
			t.Errorf("IsImage(%s) = %v, expected %v", tt.filePath, result, tt.expected)
		}
	}
}

func TestExtensions_HasExtension(t *testing.T) {
	ext := NewExtensions()

	if ext.HasExtension("a1b2c3") {
		t.Error("Expected no extension for a1b2c3")
	}
	if !ext.HasExtension("a1b2c3.png") {
		t.Error("Expected extension for a1b2c3.png")
	}
}

func TestInvalidPreferenceErrors(t *testing.T) {
	if !errors.Is(&InvalidQualityError{Value: "x"}, ErrInvalidPreference) {
		t.Error("Expected InvalidQualityError to match ErrInvalidPreference")
	}
	if !errors.Is(&InvalidExtensionError{Value: "x"}, ErrInvalidPreference) {
		t.Error("Expected InvalidExtensionError to match ErrInvalidPreference")
	}
}
