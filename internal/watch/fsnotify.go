package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// FSNotify watches one directory, non-recursively, through fsnotify.
type FSNotify struct {
	w      *fsnotify.Watcher
	events chan Event
	done   chan struct{}
}

// NewFSNotify starts watching dir.
func NewFSNotify(dir string) (*FSNotify, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	s := &FSNotify{
		w:      w,
		events: make(chan Event),
		done:   make(chan struct{}),
	}
	go s.forward()
	return s, nil
}

// forward relays fsnotify events, dropping attribute-only changes.
func (s *FSNotify) forward() {
	defer close(s.events)
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.w.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			select {
			case s.events <- Event{Name: ev.Name, Op: ev.Op.String()}:
			case <-s.done:
				return
			}
		}
	}
}

func (s *FSNotify) Events() <-chan Event { return s.events }

func (s *FSNotify) Errors() <-chan error { return s.w.Errors }

// Close stops the watcher. Events is closed once forwarding exits.
func (s *FSNotify) Close() error {
	select {
	case <-s.done:
		return nil
	default:
	}
	close(s.done)
	return s.w.Close()
}
