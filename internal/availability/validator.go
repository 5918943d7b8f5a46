package availability

import "time"

// Proposal interval under validation.
// ServiceID пустой для блокировки времени администратором.
type Proposal struct {
	StaffID          string
	ServiceID        string
	Start            time.Time
	End              time.Time
	ExcludeBookingID string // бронирование, которое переносится, не конфликтует само с собой
}

// ValidateBooking is the write-path entry point shared by create,
// reschedule and block-time. It is pure: the same input yields the same decision.
func ValidateBooking(p Proposal, dc DayContext) Decision {
	return CheckConflict(dc, p.StaffID, p.Start, p.End, p.ExcludeBookingID)
}

// AssignFirstAvailable validates the proposal for each staff member in order
// and returns the first one that passes. When nobody passes, the decision of
// the first staff member is returned.
func AssignFirstAvailable(p Proposal, staffIDs []string, dc DayContext) (string, Decision) {
	staff := uniqueStaff(staffIDs)
	if len(staff) == 0 {
		return "", Reject(ReasonSlotUnavailable)
	}

	var first Decision
	for i, staffID := range staff {
		candidate := p
		candidate.StaffID = staffID

		decision := ValidateBooking(candidate, dc)
		if decision.OK {
			return staffID, decision
		}
		if i == 0 {
			first = decision
		}
	}
	return "", first
}
