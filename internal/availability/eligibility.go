package availability

import (
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// IsEligible reports whether the staff member may perform the service.
// Пустой набор назначений салона означает, что любой мастер выполняет любую услугу.
// Как только появилась хотя бы одна строка, допускаются только явные пары.
func IsEligible(staffID, serviceID string, assignments []domain.StaffServiceAssignment) bool {
	if len(assignments) == 0 {
		return true
	}
	for _, a := range assignments {
		if a.StaffID == staffID && a.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// EligibleStaff filters the ordered staff list by eligibility, keeping the order
func EligibleStaff(staffIDs []string, serviceID string, assignments []domain.StaffServiceAssignment) []string {
	result := make([]string, 0, len(staffIDs))
	for _, id := range uniqueStaff(staffIDs) {
		if IsEligible(id, serviceID, assignments) {
			result = append(result, id)
		}
	}
	return result
}
