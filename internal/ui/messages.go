// Package ui provides the Bubble Tea front end for Cyber News Network.
package ui

import (
	"time"

	"github.com/infblueocean/cybernews/internal/news"
)

// ItemsLoaded is sent when the simulated load finishes or is cancelled.
type ItemsLoaded struct {
	Items []news.Item
	Err   error
}

// ClockTick refreshes the header clock.
type ClockTick struct {
	Time time.Time
}

// GlitchTick advances the masthead animation.
type GlitchTick struct{}
