package domain

// EntryInput carries the fields of the manual-entry form. Duration is
// supplied either as a start/end clock pair or as explicit hours+minutes;
// exactly one of the two forms must be present.
type EntryInput struct {
	TaskID    int64
	Date      string
	StartTime string
	EndTime   string
	Hours     int64
	Minutes   int64
	Notes     string
}

// HasClockRange reports whether both ends of the clock pair are supplied.
func (in EntryInput) HasClockRange() bool {
	return in.StartTime != "" && in.EndTime != ""
}

// HasExplicitDuration reports whether a nonzero hours+minutes duration is
// supplied.
func (in EntryInput) HasExplicitDuration() bool {
	return in.Hours > 0 || in.Minutes > 0
}
