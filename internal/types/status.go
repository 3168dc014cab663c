package types

// Status represents the workflow position of a science plan
type Status string

const (
	StatusCreated     Status = "CREATED"
	StatusTested      Status = "TESTED"
	StatusSubmitted   Status = "SUBMITTED"
	StatusValidated   Status = "VALIDATED"
	StatusInvalidated Status = "INVALIDATED" // Rejected by a science observer
	StatusRunning     Status = "RUNNING"
	StatusComplete    Status = "COMPLETE"
	StatusCancelled   Status = "CANCELLED"
)

// Statuses lists every status in workflow order.
func Statuses() []Status {
	return []Status{
		StatusCreated, StatusTested, StatusSubmitted, StatusValidated,
		StatusInvalidated, StatusRunning, StatusComplete, StatusCancelled,
	}
}

// IsValid checks if the status value is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusTested, StatusSubmitted, StatusValidated,
		StatusInvalidated, StatusRunning, StatusComplete, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no operation can move a plan out of this status.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusInvalidated || s == StatusCancelled
}

// Operation is a lifecycle operation that may move a plan between statuses
type Operation string

const (
	OpTest         Operation = "test"
	OpSubmit       Operation = "submit"
	OpValidate     Operation = "validate"
	OpInvalidate   Operation = "invalidate"
	OpStartProgram Operation = "start_program"
	OpComplete     Operation = "complete"
	OpCancel       Operation = "cancel"
)

// transitions is the complete set of allowed status changes. Any
// (status, operation) pair missing here is rejected by Transition.
//
//	CREATED --test--> TESTED --submit--> SUBMITTED --validate--> VALIDATED
//	                                         |                       |
//	                                     invalidate            start_program
//	                                         v                       v
//	                                    INVALIDATED               RUNNING --complete--> COMPLETE
//
//	CREATED, TESTED, SUBMITTED, VALIDATED --cancel--> CANCELLED
var transitions = map[Status]map[Operation]Status{
	StatusCreated: {
		OpTest:   StatusTested,
		OpCancel: StatusCancelled,
	},
	StatusTested: {
		OpSubmit: StatusSubmitted,
		OpCancel: StatusCancelled,
	},
	StatusSubmitted: {
		OpValidate:   StatusValidated,
		OpInvalidate: StatusInvalidated,
		OpCancel:     StatusCancelled,
	},
	StatusValidated: {
		OpStartProgram: StatusRunning,
		OpCancel:       StatusCancelled,
	},
	StatusRunning: {
		OpComplete: StatusComplete,
	},
}

// rejections refines the reason reported for specific disallowed pairs.
// Pairs not listed fall back to ReasonTerminalState for terminal statuses
// and ReasonWrongStatus otherwise.
var rejections = map[Status]map[Operation]ReasonCode{
	StatusCreated: {
		OpSubmit: ReasonNotTested,
	},
	StatusSubmitted: {
		OpSubmit: ReasonAlreadySubmitted,
	},
	StatusValidated: {
		OpSubmit: ReasonAlreadySubmitted,
	},
	StatusRunning: {
		OpSubmit: ReasonAlreadySubmitted,
	},
	StatusComplete: {
		OpSubmit: ReasonAlreadySubmitted,
	},
}

// Transition looks up the outcome of applying op to a plan in status from.
// On success it returns the next status and ReasonOK. On rejection it
// returns from unchanged, the rejection reason and false.
func Transition(from Status, op Operation) (Status, ReasonCode, bool) {
	if to, ok := transitions[from][op]; ok {
		return to, ReasonOK, true
	}
	if reason, ok := rejections[from][op]; ok {
		return from, reason, false
	}
	if from.IsTerminal() {
		return from, ReasonTerminalState, false
	}
	return from, ReasonWrongStatus, false
}

// CanTransition reports whether op is allowed from status s.
func (s Status) CanTransition(op Operation) bool {
	_, _, ok := Transition(s, op)
	return ok
}

// ValidTransitions returns the statuses reachable from s in one operation.
func (s Status) ValidTransitions() []Status {
	var out []Status
	for _, op := range []Operation{OpTest, OpSubmit, OpValidate, OpInvalidate, OpStartProgram, OpComplete, OpCancel} {
		if to, ok := transitions[s][op]; ok {
			out = append(out, to)
		}
	}
	return out
}
