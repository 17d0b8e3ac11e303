package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func createTestBoard() (*Board, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewBoard(3 * time.Second).WithClock(clock.Now), clock
}

func TestBoard_ShowAndExpire(t *testing.T) {
	board, clock := createTestBoard()

	_, ok := board.Current()
	assert.False(t, ok, "empty board shows nothing")

	board.Show("Respawned!")
	text, ok := board.Current()
	assert.True(t, ok)
	assert.Equal(t, "Respawned!", text)

	clock.Advance(2999 * time.Millisecond)
	_, ok = board.Current()
	assert.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = board.Current()
	assert.False(t, ok, "expires after the duration")
}

func TestBoard_OverwriteRestartsLifetime(t *testing.T) {
	board, clock := createTestBoard()

	board.Show("Teleported!")
	clock.Advance(2 * time.Second)
	board.Show("Level 2 Starting!")
	clock.Advance(2 * time.Second)

	text, ok := board.Current()
	assert.True(t, ok)
	assert.Equal(t, "Level 2 Starting!", text)
}

func TestBoard_Clear(t *testing.T) {
	board, _ := createTestBoard()

	board.Show("Need 2 more items!")
	board.Clear()

	_, ok := board.Current()
	assert.False(t, ok)
}

func TestNewBoard_DefaultDuration(t *testing.T) {
	board := NewBoard(0)

	assert.Equal(t, DefaultDuration, board.duration)
}
