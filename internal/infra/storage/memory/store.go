// Package memory хранилище в памяти с тем же поведением, что и PostgreSQL-репозитории,
// включая отказ при пересечении занятых интервалов мастера.
// Создается явно тестами или при запуске; глобального состояния нет.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/settings"
)

type Store struct {
	mu sync.RWMutex

	settings       map[string]domain.SalonSettings
	operatingHours []domain.OperatingHoursRule
	staffHours     []domain.StaffHoursRule
	staff          []domain.Staff
	services       map[string]domain.Service
	assignments    []domain.StaffServiceAssignment
	timeOff        []domain.TimeOffRecord
	bookings       map[string]domain.Booking

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		settings: make(map[string]domain.SalonSettings),
		services: make(map[string]domain.Service),
		bookings: make(map[string]domain.Booking),
		now:      time.Now,
	}
}

// ---- наполнение ----

func (s *Store) AddOperatingHours(rules ...domain.OperatingHoursRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operatingHours = append(s.operatingHours, rules...)
}

func (s *Store) AddStaffHours(rules ...domain.StaffHoursRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staffHours = append(s.staffHours, rules...)
}

func (s *Store) AddStaff(staff ...domain.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = append(s.staff, staff...)
}

func (s *Store) AddService(services ...domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
}

func (s *Store) AddAssignment(assignments ...domain.StaffServiceAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, assignments...)
}

func (s *Store) AddTimeOff(records ...domain.TimeOffRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		s.timeOff = append(s.timeOff, rec)
	}
}

// AddBooking кладет бронирование без проверки пересечений (исторические данные)
func (s *Store) AddBooking(bookings ...domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range bookings {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		s.bookings[b.ID] = b
	}
}

// Bookings все бронирования, упорядоченные по началу
func (s *Store) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result
}

// TimeOff все записи отсутствия
func (s *Store) TimeOff() []domain.TimeOffRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.timeOff)
}

// ---- настройки ----

func (s *Store) Get(_ context.Context, salonID string) (*domain.SalonSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.settings[salonID]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return &settings, nil
}

func (s *Store) Upsert(_ context.Context, settings *domain.SalonSettings) (*domain.SalonSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.settings[settings.SalonID]; ok {
		settings.CreatedAt = existing.CreatedAt
	} else {
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now
	s.settings[settings.SalonID] = *settings
	return settings, nil
}

// ---- расписание ----

func (s *Store) GetOperatingHours(_ context.Context, salonID string) ([]domain.OperatingHoursRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.OperatingHoursRule, 0, 7)
	for _, r := range s.operatingHours {
		if r.SalonID == salonID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *Store) GetStaffHours(_ context.Context, staffIDs []string) ([]domain.StaffHoursRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.StaffHoursRule, 0)
	for _, r := range s.staffHours {
		if slices.Contains(staffIDs, r.StaffID) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *Store) GetTimeOff(_ context.Context, staffIDs []string, from, to time.Time) ([]domain.TimeOffRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.TimeOffRecord, 0)
	for _, r := range s.timeOff {
		if slices.Contains(staffIDs, r.StaffID) && overlaps(r.StartAt, r.EndAt, from, to) {
			result = append(result, r)
		}
	}
	return result, nil
}

// CreateTimeOff отклоняет пересечение с другим отсутствием мастера, как EXCLUDE-ограничение
func (s *Store) CreateTimeOff(_ context.Context, rec *domain.TimeOffRecord) (*domain.TimeOffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.timeOff {
		if r.StaffID == rec.StaffID && overlaps(r.StartAt, r.EndAt, rec.StartAt, rec.EndAt) {
			return nil, scheduleRepo.ErrTimeOffConflict
		}
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = s.now()
	s.timeOff = append(s.timeOff, *rec)
	return rec, nil
}

// ---- каталог ----

func (s *Store) ListStaff(_ context.Context, salonID string) ([]domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Staff, 0)
	for _, st := range s.staff {
		if st.SalonID == salonID && st.IsActive {
			result = append(result, st)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) GetStaff(_ context.Context, staffID string) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.staff {
		if st.ID == staffID {
			return &st, nil
		}
	}
	return nil, catalogRepo.ErrStaffNotFound
}

func (s *Store) GetService(_ context.Context, serviceID string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[serviceID]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &svc, nil
}

func (s *Store) ListAssignments(_ context.Context, salonID string) ([]domain.StaffServiceAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.StaffServiceAssignment, 0)
	for _, a := range s.assignments {
		if a.SalonID == salonID {
			result = append(result, a)
		}
	}
	return result, nil
}

// ---- бронирования ----

// Create отклоняет пересечение с занимающим бронированием мастера, как bookings_no_overlap
func (s *Store) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.Status.IsOccupying() && s.conflictsLocked(booking.StaffID, booking.StartAt, booking.EndAt, "") {
		return nil, bookingRepo.ErrSlotConflict
	}

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	now := s.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	s.bookings[booking.ID] = *booking
	return booking, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.ResolveLegacyStatus(b.Status, b.Notes)
	return &b, nil
}

func (s *Store) GetOccupyingByStaff(_ context.Context, staffIDs []string, from, to time.Time) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if !b.Status.IsOccupying() || !slices.Contains(staffIDs, b.StaffID) || !overlaps(b.StartAt, b.EndAt, from, to) {
			continue
		}
		b.Status = domain.ResolveLegacyStatus(b.Status, b.Notes)
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result, nil
}

func (s *Store) UpdateTime(_ context.Context, id, staffID string, startAt, endAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status.IsOccupying() && s.conflictsLocked(staffID, startAt, endAt, id) {
		return bookingRepo.ErrSlotConflict
	}

	b.StaffID = staffID
	b.StartAt = startAt
	b.EndAt = endAt
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return nil
}

func (s *Store) Cancel(_ context.Context, id string, reason *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	now := s.now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	s.bookings[id] = b
	return nil
}

func (s *Store) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return nil
}

func (s *Store) conflictsLocked(staffID string, start, end time.Time, excludeID string) bool {
	for id, b := range s.bookings {
		if id == excludeID || b.StaffID != staffID || !b.Status.IsOccupying() {
			continue
		}
		if overlaps(b.StartAt, b.EndAt, start, end) {
			return true
		}
	}
	return false
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// TxManager выполняет функцию без транзакции: каждая операция Store атомарна сама по себе
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
