package desktop

import (
	"github.com/acm19/clippics/internal/logger"
	"github.com/gen2brain/beeep"
)

// AppName is the title of every notification.
const AppName = "Clippics"

// Notifier sends desktop notifications.
type Notifier struct {
	title string
}

// NewNotifier creates a Notifier titled with AppName.
func NewNotifier() *Notifier {
	return &Notifier{title: AppName}
}

// Notify sends message as a desktop notification.
func (n *Notifier) Notify(message string) error {
	logger.Debug("Sending notification", "title", n.title, "message", message)
	return beeep.Notify(n.title, message, "")
}
