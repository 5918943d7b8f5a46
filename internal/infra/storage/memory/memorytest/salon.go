// Package memorytest тестовый салон поверх хранилища в памяти для сценариев записи.
//
// Понедельник 2024-01-01, UTC. Салон работает 09:00-18:00, в воскресенье закрыт.
// Анна работает весь день с перерывом 13:00-14:00, Боб выходит в 12:00.
package memorytest

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/daycontext"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory"
	settingsSvc "github.com/m04kA/SMC-SalonAvailability/internal/service/settings"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

const (
	SalonID      = "salon-1"
	OtherSalonID = "salon-2"

	Anna = "anna"
	Bob  = "bob"
	Carl = "carl" // уволен, в списке мастеров не появляется

	Haircut  = "haircut"  // 60 минут
	Coloring = "coloring" // 120 минут
	Manicure = "manicure" // услуга другого салона
)

// Monday полночь тестового понедельника
var Monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DayBefore момент, при котором минимальный запас не влияет на понедельник
var DayBefore = Monday.Add(-12 * time.Hour)

// At время тестового понедельника
func At(hour, minute int) time.Time {
	return Monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Clock фиксированное текущее время
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time {
	return c.T
}

// Salon собранные зависимости сценариев записи
type Salon struct {
	Store    *memory.Store
	Settings *settingsSvc.Service
	Loader   *daycontext.Loader
}

// NewSalon наполняет хранилище расписанием тестового салона
func NewSalon() *Salon {
	store := memory.NewStore()

	store.AddOperatingHours(
		domain.OperatingHoursRule{SalonID: SalonID, DayOfWeek: 0, IsClosed: true},
		domain.OperatingHoursRule{SalonID: SalonID, DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
		domain.OperatingHoursRule{SalonID: SalonID, DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00"},
	)
	store.AddStaff(
		domain.Staff{ID: Anna, SalonID: SalonID, Name: "Анна", Position: 1, IsActive: true},
		domain.Staff{ID: Bob, SalonID: SalonID, Name: "Боб", Position: 2, IsActive: true},
		domain.Staff{ID: Carl, SalonID: SalonID, Name: "Карл", Position: 3, IsActive: false},
	)
	store.AddStaffHours(
		domain.StaffHoursRule{
			StaffID:    Anna,
			DayOfWeek:  1,
			StartTime:  "09:00",
			EndTime:    "18:00",
			BreakStart: ptr.Ptr(types.TimeString("13:00")),
			BreakEnd:   ptr.Ptr(types.TimeString("14:00")),
		},
		domain.StaffHoursRule{StaffID: Bob, DayOfWeek: 1, StartTime: "12:00", EndTime: "20:00"},
	)
	store.AddService(
		domain.Service{ID: Haircut, SalonID: SalonID, Name: "Стрижка", DurationMinutes: 60},
		domain.Service{ID: Coloring, SalonID: SalonID, Name: "Окрашивание", DurationMinutes: 120},
		domain.Service{ID: Manicure, SalonID: OtherSalonID, Name: "Маникюр", DurationMinutes: 45},
	)

	return &Salon{
		Store: store,
		Settings: settingsSvc.NewService(store, settingsSvc.Defaults{
			BookingMode:     domain.ModeChooseEmployee,
			Timezone:        "UTC",
			SlotStepMinutes: 30,
		}, logger.Nop()),
		Loader: daycontext.NewLoader(store, store),
	}
}

// SetMode сохраняет режим записи салона
func (s *Salon) SetMode(mode domain.BookingMode) {
	_, _ = s.Store.Upsert(context.Background(), &domain.SalonSettings{
		SalonID:         SalonID,
		BookingMode:     mode,
		Timezone:        "UTC",
		SlotStepMinutes: 30,
	})
}

// Book кладет подтвержденное бронирование мастера
func (s *Salon) Book(id, staffID string, start, end time.Time) {
	s.Store.AddBooking(domain.Booking{
		ID:        id,
		SalonID:   SalonID,
		StaffID:   staffID,
		ServiceID: ptr.Ptr(Haircut),
		UserID:    ptr.Ptr(int64(7)),
		StartAt:   start,
		EndAt:     end,
		Status:    domain.StatusConfirmed,
	})
}
