package clips

import "time"

// ImageInfo describes an image file on disk.
type ImageInfo struct {
	// Name is the base file name.
	Name string
	// Path is the full path to the file.
	Path string
	// Time is the last modification time, or the time of the lookup when the
	// file could not be stat'ed.
	Time time.Time
	// Size is the file size in bytes (0 when unknown).
	Size int64
}

// CompressOptions holds the validated settings for one compression.
type CompressOptions struct {
	// Quality is the encoding quality (0-100).
	Quality int
	// Extension is the output format.
	Extension Extension
}

// Preferences holds the raw user preferences as read from configuration.
// They are validated on every compression action.
type Preferences struct {
	// Quality is the quality value as typed by the user, e.g. "80".
	Quality string
	// Extension is the output format name, e.g. "jpeg".
	Extension string
}

// DefaultPreferences returns the preferences used when nothing is configured.
func DefaultPreferences() Preferences {
	return Preferences{
		Quality:   "80",
		Extension: string(JPEG),
	}
}

// CompressResult is the outcome of a compress-or-reuse run.
type CompressResult struct {
	// Source describes the input image.
	Source ImageInfo
	// Output describes the compressed image in the cache.
	Output ImageInfo
	// Reused is true when an existing cached file was served.
	Reused bool
	// Ratio is source size / output size * 100.
	Ratio float64
}

// Summary returns the short message shown to the user after a compression.
func (r *CompressResult) Summary() string {
	return "Compressed: " + FormatRatio(r.Ratio) + ", " + FormatBytes(r.Output.Size)
}
