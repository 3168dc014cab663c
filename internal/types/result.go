package types

// ReasonCode is the machine-readable outcome of a lifecycle operation
type ReasonCode string

const (
	ReasonOK ReasonCode = "ok"

	// Create pipeline; the plan is saved as a draft
	ReasonMissingFields      ReasonCode = "missing_fields"
	ReasonDateOrder          ReasonCode = "date_order"
	ReasonInvalidFunding     ReasonCode = "invalid_funding"
	ReasonDuplicateName      ReasonCode = "duplicate_name"
	ReasonUnknownTarget      ReasonCode = "unknown_target"
	ReasonScheduleConflict   ReasonCode = "schedule_conflict"
	ReasonOutOfRange         ReasonCode = "out_of_range"
	ReasonModeFieldsMissing  ReasonCode = "mode_fields_missing"
	ReasonContrastMissing    ReasonCode = "contrast_missing"
	ReasonLegacyIncompatible ReasonCode = "legacy_incompatible"
	ReasonUnavailable        ReasonCode = "unavailable"

	// Status preconditions; nothing is mutated
	ReasonNotFound         ReasonCode = "not_found"
	ReasonWrongStatus      ReasonCode = "wrong_status"
	ReasonNotTested        ReasonCode = "not_tested"
	ReasonAlreadySubmitted ReasonCode = "already_submitted"
	ReasonTerminalState    ReasonCode = "terminal_state"
	ReasonDraftFrozen      ReasonCode = "draft_frozen"
	ReasonTestFailed       ReasonCode = "test_failed"

	// Observing program parameters
	ReasonInvalidOptics        ReasonCode = "invalid_optics"
	ReasonInvalidFStop         ReasonCode = "invalid_fstop"
	ReasonInvalidRMS           ReasonCode = "invalid_rms"
	ReasonInvalidFoldMirror    ReasonCode = "invalid_fold_mirror"
	ReasonInvalidModuleContent ReasonCode = "invalid_module_content"

	ReasonDuplicate ReasonCode = "duplicate"
)

// IsDraft reports whether a create outcome with this reason leaves the
// plan in the draft collection.
func (r ReasonCode) IsDraft() bool {
	switch r {
	case ReasonMissingFields, ReasonDateOrder, ReasonInvalidFunding, ReasonDuplicateName,
		ReasonUnknownTarget, ReasonScheduleConflict, ReasonOutOfRange,
		ReasonModeFieldsMissing, ReasonContrastMissing, ReasonLegacyIncompatible:
		return true
	}
	return false
}

// Result is the outcome of a lifecycle operation. Callers branch on OK and
// Code; Message is the human-readable text shown to operators.
type Result struct {
	OK      bool       `json:"ok"`
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
	PlanNo  int        `json:"plan_no,omitempty"`
	Status  Status     `json:"status,omitempty"`
}

// Passed reports whether the operation succeeded.
func (r Result) Passed() bool {
	return r.OK
}

func (r Result) String() string {
	return r.Message
}

// Succeeded builds a successful result.
func Succeeded(planNo int, status Status, message string) Result {
	return Result{OK: true, Code: ReasonOK, Message: message, PlanNo: planNo, Status: status}
}

// Failed builds a rejected result.
func Failed(code ReasonCode, planNo int, status Status, message string) Result {
	return Result{OK: false, Code: code, Message: message, PlanNo: planNo, Status: status}
}
