package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

// Repository мастера, услуги и назначения услуг мастерам
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListStaff активные мастера салона в порядке автоназначения
func (r *Repository) ListStaff(ctx context.Context, salonID string) ([]domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "name", "position", "is_active").
		From("staff").
		Where(squirrel.Eq{"salon_id": salonID, "is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.Position, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan row: %w", ErrScanRow, err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %w", ErrScanRow, err)
	}

	return staff, nil
}

// GetStaff мастер по ID
func (r *Repository) GetStaff(ctx context.Context, staffID string) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "name", "position", "is_active").
		From("staff").
		Where(squirrel.Eq{"id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.SalonID, &s.Name, &s.Position, &s.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan row: %w", ErrScanRow, err)
	}

	return &s, nil
}

// GetService услуга по ID
func (r *Repository) GetService(ctx context.Context, serviceID string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "name", "duration_minutes").
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.SalonID, &s.Name, &s.DurationMinutes)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan row: %w", ErrScanRow, err)
	}

	return &s, nil
}

// ListAssignments все назначения услуг мастерам салона.
// Пустой результат означает, что любой мастер выполняет любую услугу.
func (r *Repository) ListAssignments(ctx context.Context, salonID string) ([]domain.StaffServiceAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("salon_id", "staff_id", "service_id").
		From("staff_services").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.StaffServiceAssignment, 0)
	for rows.Next() {
		var a domain.StaffServiceAssignment
		if err := rows.Scan(&a.SalonID, &a.StaffID, &a.ServiceID); err != nil {
			return nil, fmt.Errorf("%w: ListAssignments - scan row: %w", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - rows error: %w", ErrScanRow, err)
	}

	return assignments, nil
}
