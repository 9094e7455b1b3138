package clips

import (
	"os"
	"path/filepath"
	"time"

	"github.com/acm19/clippics/internal/logger"
)

// GetImageInfo stats path and describes it. It never fails: when the file
// cannot be stat'ed the size is 0 and the time is now.
func GetImageInfo(path string) ImageInfo {
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat image", "path", path, "error", err)
		return ImageInfo{
			Name: filepath.Base(path),
			Path: path,
			Time: time.Now(),
			Size: 0,
		}
	}
	return ImageInfo{
		Name: filepath.Base(path),
		Path: path,
		Time: info.ModTime(),
		Size: info.Size(),
	}
}
