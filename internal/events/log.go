package events

import (
	"context"
	"fmt"
	"sync"
)

// Log is an in-memory Recorder. It keeps at most capacity events,
// discarding the oldest once full. A capacity of 0 means unlimited.
type Log struct {
	mu       sync.RWMutex
	events   []*Event
	capacity int
}

// NewLog creates an empty log.
func NewLog(capacity int) *Log {
	return &Log{capacity: capacity}
}

// Record appends event to the log.
func (l *Log) Record(ctx context.Context, event *Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	if event.ID == "" {
		return fmt.Errorf("event id is required")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	if l.capacity > 0 && len(l.events) > l.capacity {
		l.events = l.events[len(l.events)-l.capacity:]
	}
	return nil
}

// Events returns matching events oldest first. When filter.Limit is set,
// only the most recent Limit matches are returned.
func (l *Log) Events(filter EventFilter) []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*Event
	for _, e := range l.events {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[len(out)-filter.Limit:]
	}
	return out
}

// Len returns the number of stored events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Discard is a Recorder that drops every event.
type Discard struct{}

// Record implements Recorder.
func (Discard) Record(ctx context.Context, event *Event) error { return nil }
