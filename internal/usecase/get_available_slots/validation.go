package get_available_slots

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

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// selectStaff определяет мастеров, для которых строятся слоты.
// Явно указанный мастер проверяется на допуск к услуге в любом режиме.
func selectStaff(
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
		if !availability.IsEligible(req.StaffID, req.ServiceID, assignments) {
			return nil, ErrStaffNotEligible
		}
		return []string{req.StaffID}, nil
	}

	if mode != domain.ModeAutoAssign {
		return nil, ErrStaffRequired
	}

	return availability.EligibleStaff(ids, req.ServiceID, assignments), nil
}
