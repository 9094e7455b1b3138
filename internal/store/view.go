package store

import (
	"fmt"

	"github.com/acm19/clippics/internal/logger"
)

// ViewKey is the store key of the listing layout.
const ViewKey = "view"

// ViewMode is the listing layout.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode validates a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("invalid view %q: must be grid or list", s)
	}
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

// LoadView returns the stored view mode. The first read stores and returns
// the grid layout; an unreadable value falls back to the list layout.
func LoadView(s Store) ViewMode {
	value := s.Get(ViewKey)
	if value == "" {
		if err := s.Set(ViewKey, string(ViewGrid)); err != nil {
			logger.Warn("Failed to store default view", "error", err)
		}
		return ViewGrid
	}
	mode, err := ParseViewMode(value)
	if err != nil {
		logger.Warn("Ignoring stored view", "value", value, "error", err)
		return ViewList
	}
	return mode
}

// SaveView stores mode.
func SaveView(s Store, mode ViewMode) error {
	return s.Set(ViewKey, string(mode))
}
