package watch

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/shotshelf/internal/logging"
)

// Event is one change notification for the watched directory.
type Event struct {
	Name string
	Op   string
}

// Source delivers change notifications. Implementations must close Events
// when they stop.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// PassFunc runs one organizing pass.
type PassFunc func(ctx context.Context) error

// Loop runs a pass at start and again after every notification. Passes never
// overlap: the next event is not read until the current pass returns.
type Loop struct {
	Source Source
	Pass   PassFunc
	Log    *log.Logger
	// Debounce merges events that arrive within this window of the first
	// one into a single pass. Zero runs a pass per event.
	Debounce time.Duration
}

// Run blocks until ctx is cancelled or the source closes. A failing first
// pass is returned; later pass failures and stream errors are logged.
func (l *Loop) Run(ctx context.Context) error {
	logger := logging.OrDiscard(l.Log)

	if err := l.Pass(ctx); err != nil {
		return err
	}

	events := l.Source.Events()
	errs := l.Source.Errors()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("change", "name", ev.Name, "op", ev.Op)
			if !l.settle(ctx, events) {
				return nil
			}
			if err := l.Pass(ctx); err != nil && ctx.Err() == nil {
				logger.Error("organize pass failed", "err", err)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Error("watch error", "err", err)
		}
	}
}

// settle drains events until Debounce passes quietly. It returns false when
// the loop should stop.
func (l *Loop) settle(ctx context.Context, events <-chan Event) bool {
	if l.Debounce <= 0 {
		return true
	}
	timer := time.NewTimer(l.Debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-events:
			if !ok {
				return false
			}
			timer.Reset(l.Debounce)
		case <-timer.C:
			return true
		}
	}
}
