package create_booking

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// candidateStaff мастера, к которым можно записать, в порядке списка салона.
// Для явно указанного мастера - ровно один элемент.
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
