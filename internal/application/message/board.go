// Package message holds the single transient status line shown over the game.
package message

import (
	"sync"
	"time"
)

// DefaultDuration is how long a message stays up
const DefaultDuration = 3 * time.Second

// Board shows at most one message at a time. A new message replaces the
// current one and restarts its lifetime; nothing is queued.
type Board struct {
	mu       sync.Mutex
	text     string
	shownAt  time.Time
	duration time.Duration
	now      func() time.Time
}

// NewBoard creates a board whose messages expire after duration.
// A non-positive duration uses DefaultDuration.
func NewBoard(duration time.Duration) *Board {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Board{duration: duration, now: time.Now}
}

// WithClock replaces the time source, for tests
func (b *Board) WithClock(now func() time.Time) *Board {
	b.now = now
	return b
}

// Show displays text, replacing any current message
func (b *Board) Show(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.shownAt = b.now()
}

// Current returns the live message and whether one is showing
func (b *Board) Current() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" || b.now().Sub(b.shownAt) >= b.duration {
		return "", false
	}
	return b.text, true
}

// Clear removes the current message
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = ""
}
