package notifier

import "padel-games/internal/padel"

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendGameRecorded announces a newly recorded game and returns the
	// provider's message timestamp.
	SendGameRecorded(game *padel.GameDetail) (string, error)
}

// Noop is a Notifier that does nothing, used when no provider is configured.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) SendGameRecorded(*padel.GameDetail) (string, error) {
	return "", nil
}
