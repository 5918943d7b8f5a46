package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

// Repository правила работы салона, графики мастеров и отпуска
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOperatingHours все правила работы салона по дням недели.
// Время читается как текст, чтобы "24:00" не терялось при разборе драйвером.
func (r *Repository) GetOperatingHours(ctx context.Context, salonID string) ([]domain.OperatingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"salon_id",
		"day_of_week",
		"open_time::text",
		"close_time::text",
		"is_closed",
	).
		From("operating_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.OperatingHoursRule, 0, 7)
	for rows.Next() {
		var rule domain.OperatingHoursRule
		if err := rows.Scan(&rule.SalonID, &rule.DayOfWeek, &rule.OpenTime, &rule.CloseTime, &rule.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: GetOperatingHours - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

// GetStaffHours недельные правила переданных мастеров
func (r *Repository) GetStaffHours(ctx context.Context, staffIDs []string) ([]domain.StaffHoursRule, error) {
	if len(staffIDs) == 0 {
		return []domain.StaffHoursRule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"staff_id",
		"day_of_week",
		"start_time::text",
		"end_time::text",
		"is_off",
		"break_start::text",
		"break_end::text",
	).
		From("staff_hours").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		OrderBy("staff_id ASC", "day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.StaffHoursRule, 0)
	for rows.Next() {
		var rule domain.StaffHoursRule
		err := rows.Scan(
			&rule.StaffID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsOff,
			&rule.BreakStart,
			&rule.BreakEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetStaffHours - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffHours - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

// GetTimeOff отпуска мастеров, пересекающие [from, to)
func (r *Repository) GetTimeOff(ctx context.Context, staffIDs []string, from, to time.Time) ([]domain.TimeOffRecord, error) {
	if len(staffIDs) == 0 {
		return []domain.TimeOffRecord{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"start_at",
		"end_at",
		"reason",
		"created_at",
	).
		From("staff_time_off").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeOff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.TimeOffRecord, 0)
	for rows.Next() {
		var rec domain.TimeOffRecord
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.StartAt, &rec.EndAt, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetTimeOff - scan row: %w", ErrScanRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTimeOff - rows error: %w", ErrScanRow, err)
	}

	return records, nil
}

// CreateTimeOff сохраняет блокировку времени мастера
func (r *Repository) CreateTimeOff(ctx context.Context, rec *domain.TimeOffRecord) (*domain.TimeOffRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("staff_time_off").
		Columns("id", "staff_id", "start_at", "end_at", "reason").
		Values(rec.ID, rec.StaffID, rec.StartAt, rec.EndAt, rec.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeOff - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.CreatedAt); err != nil {
		if pgerr.IsExclusionViolation(err) {
			return nil, ErrTimeOffConflict
		}
		return nil, fmt.Errorf("%w: CreateTimeOff - execute insert: %w", ErrExecQuery, err)
	}

	return rec, nil
}
