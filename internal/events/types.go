package events

import (
	"context"
	"time"
)

// EventType represents the kind of lifecycle change that was recorded.
type EventType string

const (
	// EventTypePlanCreated indicates a plan passed every create check
	EventTypePlanCreated EventType = "plan_created"
	// EventTypePlanDrafted indicates a plan failed a create check and was saved as a draft
	EventTypePlanDrafted EventType = "plan_drafted"
	// EventTypePlanTested indicates a plan passed its test, with or without a status change
	EventTypePlanTested EventType = "plan_tested"
	// EventTypeStatusChanged indicates a plan moved between workflow statuses
	EventTypeStatusChanged EventType = "status_changed"
	// EventTypeTransitionRejected indicates an operation was refused and nothing changed
	EventTypeTransitionRejected EventType = "transition_rejected"
	// EventTypeProgramCreated indicates an observing program was registered
	EventTypeProgramCreated EventType = "program_created"
	// EventTypeProgramRejected indicates observing program parameters failed validation
	EventTypeProgramRejected EventType = "program_rejected"
	// EventTypePlanDeleted indicates a single plan was deleted
	EventTypePlanDeleted EventType = "plan_deleted"
	// EventTypePlansCleared indicates every plan was deleted and numbering reset
	EventTypePlansCleared EventType = "plans_cleared"
	// EventTypeScheduleChanged indicates an unavailable date was added or removed
	EventTypeScheduleChanged EventType = "schedule_changed"
	// EventTypeDataAttached indicates astronomical data was attached to a plan
	EventTypeDataAttached EventType = "data_attached"
)

// EventSeverity represents the severity level of an event.
type EventSeverity string

const (
	// SeverityInfo indicates informational events
	SeverityInfo EventSeverity = "info"
	// SeverityWarning indicates refused or degraded operations
	SeverityWarning EventSeverity = "warning"
	// SeverityError indicates error events
	SeverityError EventSeverity = "error"
)

// Event is one entry in the lifecycle audit trail.
type Event struct {
	// ID is the unique identifier for this event
	ID string `json:"id"`
	// Type is the type of event
	Type EventType `json:"type"`
	// Timestamp is when the event occurred
	Timestamp time.Time `json:"timestamp"`
	// PlanNo is the plan the event concerns, 0 for facility-wide events
	PlanNo int `json:"plan_no,omitempty"`
	// Actor is who triggered the change
	Actor string `json:"actor,omitempty"`
	// Severity is the severity level of this event
	Severity EventSeverity `json:"severity"`
	// Message is a human-readable description of the event
	Message string `json:"message"`
	// Data contains structured, type-specific data (must be JSON-serializable)
	Data map[string]interface{} `json:"data,omitempty"`
}

// Recorder stores lifecycle events.
type Recorder interface {
	Record(ctx context.Context, event *Event) error
}

// EventFilter is used to filter event queries
type EventFilter struct {
	// PlanNo filters events by plan number
	PlanNo int
	// Type filters events by event type
	Type EventType
	// Severity filters events by severity level
	Severity EventSeverity
	// AfterTime filters events that occurred after this time
	AfterTime time.Time
	// Limit limits the number of events returned (most recent kept)
	Limit int
}

// Matches reports whether e passes every set field of f.
func (f EventFilter) Matches(e *Event) bool {
	if f.PlanNo != 0 && e.PlanNo != f.PlanNo {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Severity != "" && e.Severity != f.Severity {
		return false
	}
	if !f.AfterTime.IsZero() && !e.Timestamp.After(f.AfterTime) {
		return false
	}
	return true
}
