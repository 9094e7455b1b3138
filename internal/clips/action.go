package clips

import (
	"context"
	"errors"

	"github.com/acm19/clippics/internal/logger"
)

// Clipboard places a file on the system clipboard.
type Clipboard interface {
	PasteFile(path string) error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string) error
}

// PasteAction compresses an image and pastes the result.
type PasteAction struct {
	compressor Compressor
	clipboard  Clipboard
	notifier   Notifier
}

// NewPasteAction creates a PasteAction.
func NewPasteAction(compressor Compressor, clipboard Clipboard, notifier Notifier) *PasteAction {
	return &PasteAction{
		compressor: compressor,
		clipboard:  clipboard,
		notifier:   notifier,
	}
}

// PasteCompressed runs compress-or-reuse on source and pastes the output.
//
// Invalid preferences are reported to the user before any file I/O. Every
// other failure is logged and the action ends with a nil result, which
// callers treat as a no-op.
func (a *PasteAction) PasteCompressed(ctx context.Context, source string, prefs Preferences, force bool) *CompressResult {
	result, err := a.compressor.Compress(ctx, source, prefs, force)
	if err != nil {
		if errors.Is(err, ErrInvalidPreference) {
			a.notify(err.Error())
			return nil
		}
		logger.Error("Failed to compress image", "source", source, "error", err)
		return nil
	}

	if err := a.clipboard.PasteFile(result.Output.Path); err != nil {
		logger.Error("Failed to paste compressed image", "path", result.Output.Path, "error", err)
		return nil
	}

	a.notify(result.Summary())
	return result
}

func (a *PasteAction) notify(message string) {
	if err := a.notifier.Notify(message); err != nil {
		logger.Warn("Failed to notify", "message", message, "error", err)
	}
}
