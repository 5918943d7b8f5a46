package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// SlotParams input of slot generation
type SlotParams struct {
	// Date локальная дата салона, часовой пояс Date - часовой пояс салона
	Date time.Time
	// StaffIDs один мастер (choose_employee) или пул подходящих мастеров (auto_assign)
	StaffIDs        []string
	DurationMinutes int
	// StepMinutes шаг сетки, 0 - domain.DefaultSlotStepMinutes
	StepMinutes int
	// Now текущее время; нулевое значение отключает фильтр минимального запаса
	Now     time.Time
	Context DayContext
}

// SlotCandidate bookable start time and the staff member it is assigned to
type SlotCandidate struct {
	StaffID string
	Start   time.Time
	End     time.Time
}

// SlotStatus grid cell: every candidate with its decision
type SlotStatus struct {
	Start    time.Time
	End      time.Time
	Decision Decision
}

func (p SlotParams) step() int {
	if p.StepMinutes <= 0 {
		return domain.DefaultSlotStepMinutes
	}
	return p.StepMinutes
}

// cutoff earliest allowed start. ok is false when the date is already in the past.
func (p SlotParams) cutoff() (time.Time, bool) {
	if p.Now.IsZero() {
		return time.Time{}, true
	}

	now := p.Now.In(p.Date.Location())
	day := startOfDay(p.Date)
	if day.Before(startOfDay(now)) {
		return time.Time{}, false
	}
	if isSameDay(day, now) {
		return now.Add(domain.MinLeadTimeMinutes * time.Minute), true
	}
	return time.Time{}, true
}

// Slots returns a lazy sequence of bookable candidates ordered by start time.
// Последовательность можно обходить повторно: каждый обход считает заново.
// Для нескольких мастеров одинаковое время начала выдается один раз,
// за первым свободным мастером в порядке StaffIDs.
func Slots(p SlotParams) iter.Seq[SlotCandidate] {
	staff := uniqueStaff(p.StaffIDs)

	return func(yield func(SlotCandidate) bool) {
		if p.DurationMinutes <= 0 || len(staff) == 0 {
			return
		}
		cutoff, ok := p.cutoff()
		if !ok {
			return
		}

		if len(staff) == 1 {
			for c := range staffSlots(p, staff[0], cutoff) {
				if !yield(c) {
					return
				}
			}
			return
		}

		// слияние упорядоченных последовательностей мастеров без сбора в список
		next := make([]func() (SlotCandidate, bool), len(staff))
		heads := make([]*SlotCandidate, len(staff))
		for i, staffID := range staff {
			pull, stop := iter.Pull(staffSlots(p, staffID, cutoff))
			defer stop()
			next[i] = pull
			if c, ok := pull(); ok {
				heads[i] = &c
			}
		}

		for {
			first := -1
			for i, h := range heads {
				if h != nil && (first < 0 || h.Start.Before(heads[first].Start)) {
					first = i
				}
			}
			if first < 0 {
				return
			}

			c := *heads[first]
			for i, h := range heads {
				if h == nil || !h.Start.Equal(c.Start) {
					continue
				}
				heads[i] = nil
				if n, ok := next[i](); ok {
					heads[i] = &n
				}
			}

			if !yield(c) {
				return
			}
		}
	}
}

// GenerateSlots collects Slots into a slice
func GenerateSlots(p SlotParams) []SlotCandidate {
	return slices.Collect(Slots(p))
}

// staffSlots обходит окна мастера с шагом step, хвостовые неполные слоты не выдаются
func staffSlots(p SlotParams, staffID string, cutoff time.Time) iter.Seq[SlotCandidate] {
	return func(yield func(SlotCandidate) bool) {
		day := startOfDay(p.Date)
		schedule := p.Context.Schedule(staffID, int(day.Weekday()))
		step := p.step()

		for _, w := range schedule.Windows {
			for s := w.Start; s+p.DurationMinutes <= w.End; s += step {
				start := atMinutes(day, s)
				end := atMinutes(day, s+p.DurationMinutes)

				if !cutoff.IsZero() && start.Before(cutoff) {
					continue
				}
				if !evaluate(p.Context, schedule, staffID, start, end, "").OK {
					continue
				}
				if !yield(SlotCandidate{StaffID: staffID, Start: start, End: end}) {
					return
				}
			}
		}
	}
}

// Grid returns every step candidate inside the salon's opening hours for one
// staff member together with its decision, for calendar rendering.
// Слоты раньше минимального запаса помечаются как slot_unavailable.
func Grid(p SlotParams, staffID string) []SlotStatus {
	if p.DurationMinutes <= 0 || staffID == "" {
		return nil
	}

	day := startOfDay(p.Date)
	salon := ResolveDay(p.Context.SalonRule(int(day.Weekday())), nil)
	if salon.Closed {
		return nil
	}

	cutoff, notPast := p.cutoff()
	schedule := p.Context.Schedule(staffID, int(day.Weekday()))
	step := p.step()

	result := make([]SlotStatus, 0)
	for s := salon.Working.Start; s+p.DurationMinutes <= salon.Working.End; s += step {
		start := atMinutes(day, s)
		end := atMinutes(day, s+p.DurationMinutes)

		decision := evaluate(p.Context, schedule, staffID, start, end, "")
		if decision.OK && (!notPast || (!cutoff.IsZero() && start.Before(cutoff))) {
			decision = Reject(ReasonSlotUnavailable)
		}

		result = append(result, SlotStatus{Start: start, End: end, Decision: decision})
	}
	return result
}

func uniqueStaff(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
