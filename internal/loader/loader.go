// Package loader simulates fetching the news feed: after a fixed delay it
// hands back the seed items exactly once.
//
// The pending load is cancellable. Cancel is part of teardown; once called,
// Await returns ErrCancelled and the batch is never delivered.
package loader

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/infblueocean/cybernews/internal/logging"
	"github.com/infblueocean/cybernews/internal/news"
)

// DefaultDelay is the simulated network latency.
const DefaultDelay = time.Second

var (
	// ErrCancelled is returned by Await when Cancel ran before the delay elapsed.
	ErrCancelled = errors.New("loader: cancelled before delivery")

	// ErrAlreadyStarted is returned by every Await after the first.
	ErrAlreadyStarted = errors.New("loader: already started")
)

// Source produces the items for a load.
type Source func(now time.Time) []news.Item

// Loader is a one-shot delayed load. Safe for concurrent use.
type Loader struct {
	delay  time.Duration
	source Source
	now    func() time.Time
	after  func(time.Duration) <-chan time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSource replaces the seed feed.
func WithSource(src Source) Option {
	return func(l *Loader) { l.source = src }
}

// WithClock sets the time source used to stamp items.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

// WithTimer replaces time.After. Tests pass a channel they control.
func WithTimer(after func(time.Duration) <-chan time.Time) Option {
	return func(l *Loader) { l.after = after }
}

// New creates a loader that fires once after delay.
func New(delay time.Duration, opts ...Option) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		delay:  delay,
		source: news.Seed,
		now:    time.Now,
		after:  time.After,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Delay returns the configured delay.
func (l *Loader) Delay() time.Duration { return l.delay }

// Await blocks until the delay elapses and returns the loaded items.
// It returns ErrCancelled if Cancel is called first, and ErrAlreadyStarted
// on any call after the first.
func (l *Loader) Await() ([]news.Item, error) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	l.started = true
	l.mu.Unlock()

	if l.ctx.Err() != nil {
		logging.Debug("load cancelled before scheduling")
		return nil, ErrCancelled
	}

	logging.Debug("load scheduled", "delay", l.delay)

	select {
	case <-l.ctx.Done():
		logging.Info("load cancelled")
		return nil, ErrCancelled
	case <-l.after(l.delay):
	}

	// Cancel may have raced with the timer.
	if l.ctx.Err() != nil {
		logging.Info("load cancelled")
		return nil, ErrCancelled
	}

	items := l.source(l.now())
	logging.Info("load completed", "items", len(items))
	return items, nil
}

// Cancel aborts a pending load. Idempotent.
func (l *Loader) Cancel() {
	l.cancel()
}

// Cancelled reports whether Cancel has been called.
func (l *Loader) Cancelled() bool {
	return l.ctx.Err() != nil
}
