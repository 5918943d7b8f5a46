package validate_booking

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		if req.ServiceID == "" {
			return fmt.Errorf("%w: serviceId or endTime is required", ErrInvalidInput)
		}
		return nil
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// candidateStaff мастера, среди которых проверяется интервал, в порядке списка салона
func candidateStaff(
	req *Request,
	mode domain.BookingMode,
	staff []domain.Staff,
	assignments []domain.StaffServiceAssignment,
) ([]string, error) {
	ids := make([]string, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.ID)
	}

	if req.StaffID != "" {
		if !slices.Contains(ids, req.StaffID) {
			return nil, ErrStaffNotFound
		}
		if req.ServiceID != "" && !availability.IsEligible(req.StaffID, req.ServiceID, assignments) {
			return nil, ErrStaffNotEligible
		}
		return []string{req.StaffID}, nil
	}

	if mode != domain.ModeAutoAssign {
		return nil, ErrStaffRequired
	}

	if req.ServiceID == "" {
		return ids, nil
	}
	return availability.EligibleStaff(ids, req.ServiceID, assignments), nil
}
