// Package desktop connects the clips actions to the system clipboard and
// desktop notifications.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/acm19/clippics/internal/logger"
	"golang.design/x/clipboard"
)

// Clipboard writes compressed images to the system clipboard.
//
// The clipboard only carries PNG image data, so PNG files are pasted as
// images and every other format is pasted as its file path.
type Clipboard struct {
	once    sync.Once
	initErr error
}

// NewClipboard creates a Clipboard. Initialisation happens on first use.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) init() error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Error("Failed to initialise clipboard", "error", err)
			c.initErr = fmt.Errorf("failed to initialise clipboard: %w", err)
		}
	})
	return c.initErr
}

// PastesAsImage reports whether PasteFile puts path on the clipboard as image
// data rather than as its path text.
func PastesAsImage(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// PasteFile puts path on the clipboard.
func (c *Clipboard) PasteFile(path string) error {
	if err := c.init(); err != nil {
		return err
	}

	if PastesAsImage(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		clipboard.Write(clipboard.FmtImage, data)
		logger.Debug("Pasted image data", "path", path, "bytes", len(data))
		return nil
	}

	clipboard.Write(clipboard.FmtText, []byte(path))
	logger.Debug("Pasted file path", "path", path)
	return nil
}
