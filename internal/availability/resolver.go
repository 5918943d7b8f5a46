package availability

import (
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// DaySchedule effective schedule of one staff member for one local day
type DaySchedule struct {
	// Closed салон не работает (правила нет или день закрыт)
	Closed bool
	// Off у мастера нет рабочего окна: выходной или пустое пересечение с часами салона
	Off bool
	// Working окно мастера до вычитания перерыва
	Working Window
	// Break перерыв, если он задан корректно и пересекает рабочее окно
	Break *Window
	// Windows итоговые непересекающиеся окна, отсортированы по началу
	Windows []Window
}

// Bookable returns true if the day has at least one window
func (s DaySchedule) Bookable() bool {
	return len(s.Windows) > 0
}

// ResolveDay computes the effective windows of a staff member for one weekday.
//
// Порядок применения правил:
//  1. нет правила салона или день закрыт - окон нет, остальные правила не смотрим
//  2. нет правила мастера - окно салона; выходной - окон нет; иначе пересечение окон
//  3. перерыв внутри окна делит его на части, пустые части отбрасываются
//
// Правило с некорректным временем считается отсутствующим окном.
func ResolveDay(salon *domain.OperatingHoursRule, staff *domain.StaffHoursRule) DaySchedule {
	if salon == nil || salon.IsClosed {
		return DaySchedule{Closed: true}
	}

	open, errOpen := salon.OpenTime.Minutes()
	closeAt, errClose := salon.CloseTime.Minutes()
	if errOpen != nil || errClose != nil || closeAt <= open {
		return DaySchedule{Closed: true}
	}

	working := Window{Start: open, End: closeAt}

	if staff != nil {
		if staff.IsOff {
			return DaySchedule{Off: true}
		}

		staffStart, errStart := staff.StartTime.Minutes()
		staffEnd, errEnd := staff.EndTime.Minutes()
		if errStart != nil || errEnd != nil {
			return DaySchedule{Off: true}
		}

		working = Window{
			Start: max(working.Start, staffStart),
			End:   min(working.End, staffEnd),
		}
		if working.End <= working.Start {
			return DaySchedule{Off: true}
		}
	}

	schedule := DaySchedule{Working: working}

	brk, ok := breakWindow(staff)
	if !ok || !working.Overlaps(brk.Start, brk.End) {
		schedule.Windows = []Window{working}
		return schedule
	}

	schedule.Break = &brk
	for _, part := range []Window{
		{Start: working.Start, End: min(brk.Start, working.End)},
		{Start: max(brk.End, working.Start), End: working.End},
	} {
		if part.Len() > 0 {
			schedule.Windows = append(schedule.Windows, part)
		}
	}

	return schedule
}

// breakWindow перерыв мастера; BreakEnd <= BreakStart считается отсутствием перерыва
func breakWindow(staff *domain.StaffHoursRule) (Window, bool) {
	if staff == nil || !staff.HasBreak() {
		return Window{}, false
	}

	start, errStart := staff.BreakStart.Minutes()
	end, errEnd := staff.BreakEnd.Minutes()
	if errStart != nil || errEnd != nil || end <= start {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}
