package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
)

func at(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bookings .* RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	repo := NewRepository(db)
	b, err := repo.Create(context.Background(), &domain.Booking{
		SalonID: "salon-1",
		StaffID: "anna",
		StartAt: at(10),
		EndAt:   at(11),
		Status:  domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, created, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), &domain.Booking{
		StaffID: "anna",
		StartAt: at(10),
		EndAt:   at(11),
		Status:  domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestRepository_GetOccupyingByStaff_InTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(bookingColumns).
		AddRow("b-1", "salon-1", "anna", nil, nil, at(10), at(11), "confirmed", nil, nil, nil, at(8), at(8)).
		AddRow("b-2", "salon-1", "anna", "svc", int64(42), at(12), at(13), "confirmed", "[status:completed]", nil, nil, at(8), at(8))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE .* FOR UPDATE`).WillReturnRows(rows)
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	repo := NewRepository(db)
	bookings, err := repo.GetOccupyingByStaff(ctx, []string{"anna"}, at(0), at(23))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, bookings, 2)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Nil(t, bookings[0].ServiceID)
	assert.Equal(t, domain.StatusCompleted, bookings[1].Status)
	require.NotNil(t, bookings[1].UserID)
	assert.Equal(t, int64(42), *bookings[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err = NewRepository(db).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET status = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).Cancel(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
