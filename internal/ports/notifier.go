package ports

// Notifier is the desktop-notification side channel. Notifications are
// advisory: the core calls Show fire-and-forget and ignores failures, so an
// implementation may no-op entirely.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// RequestPermission asks the platform for notification permission.
	RequestPermission() error

	// IsGranted reports whether notifications can currently be shown.
	IsGranted() bool

	// Show displays a notification with the given title and body.
	Show(title, body string) error
}

// AudioPlayer is the sound side channel, equally advisory.
// This is a driven port (implemented by adapters).
type AudioPlayer interface {
	// Play plays the clip with the given catalog id.
	Play(clipID string) error
}

// NopNotifier is a Notifier that does nothing. Useful in tests and for
// headless command invocations.
type NopNotifier struct{}

func (NopNotifier) RequestPermission() error      { return nil }
func (NopNotifier) IsGranted() bool               { return false }
func (NopNotifier) Show(title, body string) error { return nil }

// NopAudioPlayer is an AudioPlayer that does nothing.
type NopAudioPlayer struct{}

func (NopAudioPlayer) Play(clipID string) error { return nil }
