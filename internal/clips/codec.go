package clips

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/acm19/clippics/internal/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec decodes a source image and writes it re-encoded to dst.
type Codec interface {
	// Transcode reads src, encodes it with opts and replaces dst with the result.
	Transcode(ctx context.Context, src, dst string, opts CompressOptions) error
}

// imageCodec implements Codec with the standard and x/image encoders.
type imageCodec struct{}

// NewCodec creates the default Codec.
func NewCodec() Codec {
	return &imageCodec{}
}

// Transcode decodes src and writes it to a temporary file next to dst, then
// renames it over dst so readers never see a partial file.
func (c *imageCodec) Transcode(ctx context.Context, src, dst string, opts CompressOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", src, err)
	}
	file.Close()
	logger.Debug("Decoded image", "path", src, "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := encode(tmp, img, opts); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", opts.Extension, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, dst)
}

func encode(w io.Writer, img image.Image, opts CompressOptions) error {
	switch opts.Extension {
	case JPEG:
		quality := opts.Quality
		if quality < 1 {
			quality = 1
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case PNG:
		level := png.BestCompression
		if opts.Quality >= 100 {
			level = png.DefaultCompression
		}
		enc := &png.Encoder{CompressionLevel: level}
		return enc.Encode(w, img)
	case GIF:
		return gif.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return &InvalidExtensionError{Value: string(opts.Extension)}
	}
}
