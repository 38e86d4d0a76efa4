// Package audio provides the sound side channel over the system beeper.
package audio

import "github.com/gen2brain/beeep"

// clip describes the tone played for a catalog id.
type clip struct {
	freq     float64
	duration int // milliseconds
}

// clips maps catalog ids to tones. Ambient clips get a softer, lower tone
// than the completion chime.
var clips = map[string]clip{
	"notification": {freq: beeep.DefaultFreq, duration: beeep.DefaultDuration},
	"rain":         {freq: 220, duration: 400},
	"cafe":         {freq: 261, duration: 400},
	"forest":       {freq: 293, duration: 400},
	"ocean":        {freq: 329, duration: 400},
	"white-noise":  {freq: 349, duration: 400},
}

// Player plays short chimes through the system beeper. Playback is
// best-effort; the store ignores any error this returns.
type Player struct {
	enabled bool
}

// New creates a player. A disabled player silently drops every call.
func New(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// Play plays the clip with the given catalog id. Unknown ids fall back to
// the completion chime.
func (p *Player) Play(clipID string) error {
	if !p.enabled {
		return nil
	}
	c, ok := clips[clipID]
	if !ok {
		c = clips["notification"]
	}
	return beeep.Beep(c.freq, c.duration)
}
