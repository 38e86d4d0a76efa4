// Package notification provides desktop notification delivery via beeep.
package notification

import "github.com/gen2brain/beeep"

// Notifier shows desktop notifications. Notifications are advisory; the
// store ignores any error this returns.
type Notifier struct {
	enabled bool
}

// New creates a notifier. A disabled notifier silently drops every call.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// RequestPermission is a no-op on desktop platforms; beeep needs none.
func (n *Notifier) RequestPermission() error {
	return nil
}

// IsGranted reports whether notifications can be shown.
func (n *Notifier) IsGranted() bool {
	return n.enabled
}

// Show displays a desktop notification if enabled.
func (n *Notifier) Show(title, body string) error {
	if !n.enabled {
		return nil
	}
	return beeep.Notify(title, body, "")
}
