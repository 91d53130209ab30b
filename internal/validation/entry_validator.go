package validation

import (
	"timekeep/internal/domain"
)

// EntryValidator provides validation for manual time entry input
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryInput validates the manual-entry form fields. Duration
// must be supplied either as a start/end clock pair or as a nonzero
// hours+minutes pair; the computed duration itself is checked by the
// entry store after resolution.
func (ev *EntryValidator) ValidateEntryInput(in domain.EntryInput) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidTaskID(in.TaskID) {
		validationError.AddInvalidValueError("task_id", in.TaskID, "must be a positive integer")
	}

	if in.Date == "" {
		validationError.AddRequiredError("date")
	} else if !ev.validator.IsValidDate(in.Date) {
		validationError.AddInvalidFormatError("date", in.Date, domain.DateLayout)
	}

	switch {
	case in.HasClockRange():
		if !ev.validator.IsValidClock(in.StartTime) {
			validationError.AddInvalidFormatError("start_time", in.StartTime, domain.ClockLayout)
		}
		if !ev.validator.IsValidClock(in.EndTime) {
			validationError.AddInvalidFormatError("end_time", in.EndTime, domain.ClockLayout)
		}
	case in.StartTime != "" || in.EndTime != "":
		validationError.AddInvalidValueError("time_range", in, "start and end time must be supplied together")
	case !in.HasExplicitDuration():
		validationError.AddInvalidValueError("duration", in, "supply either a start/end time pair or a nonzero hours+minutes duration")
	default:
		if in.Hours < 0 || in.Minutes < 0 {
			validationError.AddInvalidValueError("duration", in, "hours and minutes must be non-negative")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates a time entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
