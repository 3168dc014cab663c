package events

import (
	"time"

	"github.com/google/uuid"
)

// New creates an Event with a fresh ID and the current time.
func New(eventType EventType, planNo int, actor string, severity EventSeverity, message string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		PlanNo:    planNo,
		Actor:     actor,
		Severity:  severity,
		Message:   message,
	}
}

// NewStatusChangedEvent creates an event for a workflow status change.
func NewStatusChangedEvent(planNo int, actor, operation, from, to, message string) *Event {
	e := New(EventTypeStatusChanged, planNo, actor, SeverityInfo, message)
	e.Data = map[string]interface{}{
		"operation": operation,
		"from":      from,
		"to":        to,
	}
	return e
}

// NewRejectedEvent creates an event for a refused operation.
func NewRejectedEvent(planNo int, actor, operation, reason, message string) *Event {
	e := New(EventTypeTransitionRejected, planNo, actor, SeverityWarning, message)
	e.Data = map[string]interface{}{
		"operation": operation,
		"reason":    reason,
	}
	return e
}

// WithData sets a data field and returns the event for chaining.
func (e *Event) WithData(key string, value interface{}) *Event {
	if e.Data == nil {
		e.Data = make(map[string]interface{})
	}
	e.Data[key] = value
	return e
}
