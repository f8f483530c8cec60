package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	var interval time.Duration
	if cfg.FramesPerSecond == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / (time.Duration)(cfg.FramesPerSecond)
	}

	now := time.Now()
	return &Time{
		fps:       cfg.FramesPerSecond,
		fpsTicker: time.NewTicker(interval),
		started:   now,
		lastFrame: now,
	}
}

// Time contains all the time services and tickers
type Time struct {
	fps       int
	fpsTicker *time.Ticker

	started   time.Time
	lastFrame time.Time
	frames    uint64
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// FpsTicker gets the initialized fps ticker
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// Tick marks the start of a new frame and returns the time
// elapsed since the previous one
func (t *Time) Tick() time.Duration {
	now := time.Now()
	delta := now.Sub(t.lastFrame)
	t.lastFrame = now
	t.frames++
	return delta
}

// Frames returns the number of frames ticked so far
func (t *Time) Frames() uint64 {
	return t.frames
}

// Uptime returns the time since the service was created
func (t *Time) Uptime() time.Duration {
	return time.Since(t.started)
}

// Stop stops the tickers
func (t *Time) Stop() {
	t.fpsTicker.Stop()
}
