package availability

// ReasonCode why a candidate interval cannot be booked
type ReasonCode string

const (
	ReasonClosedDay           ReasonCode = "closed_day"
	ReasonOutsideWorkingHours ReasonCode = "outside_working_hours"
	ReasonInsideBreak         ReasonCode = "inside_break"
	ReasonTimeOff             ReasonCode = "time_off"
	ReasonOverlap             ReasonCode = "overlap"
	ReasonSlotUnavailable     ReasonCode = "slot_unavailable"
)

// IsValid returns true for codes of the closed set
func (r ReasonCode) IsValid() bool {
	switch r {
	case ReasonClosedDay, ReasonOutsideWorkingHours, ReasonInsideBreak,
		ReasonTimeOff, ReasonOverlap, ReasonSlotUnavailable:
		return true
	}
	return false
}

// Decision result of a validation. Reason is empty when OK is true.
type Decision struct {
	OK     bool       `json:"ok"`
	Reason ReasonCode `json:"reason,omitempty"`
}

// Allow returns a positive decision
func Allow() Decision {
	return Decision{OK: true}
}

// Reject returns a negative decision with the reason
func Reject(reason ReasonCode) Decision {
	return Decision{OK: false, Reason: reason}
}
