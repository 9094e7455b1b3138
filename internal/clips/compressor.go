package clips

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/acm19/clippics/internal/logger"
)

var qualityPattern = regexp.MustCompile(`^(\d{1,2}|100)$`)

// ParseQuality validates a quality preference: one or two digits, or "100".
func ParseQuality(s string) (int, error) {
	if !qualityPattern.MatchString(s) {
		return 0, &InvalidQualityError{Value: s}
	}
	quality, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidQualityError{Value: s}
	}
	return quality, nil
}

// ParsePreferences validates raw preferences into CompressOptions.
func ParsePreferences(prefs Preferences) (CompressOptions, error) {
	quality, err := ParseQuality(prefs.Quality)
	if err != nil {
		return CompressOptions{}, err
	}
	ext, err := ParseExtension(prefs.Extension)
	if err != nil {
		return CompressOptions{}, err
	}
	return CompressOptions{Quality: quality, Extension: ext}, nil
}

// Compressor produces compressed variants of images in the cache directory.
type Compressor interface {
	// Compress returns the cached variant of source for prefs, encoding it
	// first if it is missing or force is set.
	Compress(ctx context.Context, source string, prefs Preferences, force bool) (*CompressResult, error)
}

// compressor implements the Compressor interface
type compressor struct {
	resolver CachePathResolver
	codec    Codec
}

// NewCompressor creates a Compressor writing through resolver with codec.
func NewCompressor(resolver CachePathResolver, codec Codec) Compressor {
	return &compressor{
		resolver: resolver,
		codec:    codec,
	}
}

// Compress reuses an existing cache file unless force is set. Cache validity
// is keyed on the output path only: a source changed in place keeps being
// served its old variant until a forced run.
func (c *compressor) Compress(ctx context.Context, source string, prefs Preferences, force bool) (*CompressResult, error) {
	opts, err := ParsePreferences(prefs)
	if err != nil {
		return nil, err
	}

	sourceInfo, err := validSource(source)
	if err != nil {
		return nil, err
	}

	outputPath := c.resolver.OutputPath(source, opts)
	logger.Debug("Resolved output path", "source", source, "output", outputPath)

	reused := false
	if _, err := os.Stat(outputPath); err == nil && !force {
		logger.Debug("Reusing cached image", "path", outputPath)
		reused = true
	} else {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot access cached file: %w", err)
		}
		logger.Debug("Encoding image", "source", source, "output", outputPath, "quality", opts.Quality, "extension", opts.Extension, "force", force)
		if err := c.codec.Transcode(ctx, source, outputPath, opts); err != nil {
			return nil, fmt.Errorf("failed to compress %s: %w", source, err)
		}
	}

	outputStat, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access compressed file: %w", err)
	}
	output := ImageInfo{
		Name: outputStat.Name(),
		Path: outputPath,
		Time: outputStat.ModTime(),
		Size: outputStat.Size(),
	}

	result := &CompressResult{
		Source: sourceInfo,
		Output: output,
		Reused: reused,
		Ratio:  Ratio(sourceInfo.Size, output.Size),
	}
	logger.Info("Compressed image", "source", source, "output", outputPath, "reused", reused, "ratio", FormatRatio(result.Ratio), "size", FormatBytes(output.Size))
	return result, nil
}

// validSource checks that the source exists and is not empty (0 bytes).
func validSource(path string) (ImageInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return ImageInfo{}, fmt.Errorf("source is a directory: %s", path)
	}
	if info.Size() == 0 {
		return ImageInfo{}, fmt.Errorf("file is 0 bytes (corrupted)")
	}
	return ImageInfo{
		Name: info.Name(),
		Path: path,
		Time: info.ModTime(),
		Size: info.Size(),
	}, nil
}
