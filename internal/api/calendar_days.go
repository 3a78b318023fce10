package api

import (
	"time"

	"github.com/selene-app/selene/internal/cycle"
	"github.com/selene-app/selene/internal/models"
)

type CalendarDayState struct {
	Date        string `json:"date"`
	Day         int    `json:"day"`
	InMonth     bool   `json:"in_month"`
	IsToday     bool   `json:"is_today"`
	IsPeriod    bool   `json:"is_period"`
	IsPredicted bool   `json:"is_predicted"`
	IsFertility bool   `json:"is_fertility"`
	IsOvulation bool   `json:"is_ovulation"`
	HasData     bool   `json:"has_data"`
	Phase       string `json:"phase,omitempty"`
	CycleDay    int    `json:"cycle_day,omitempty"`
}

// BuildCalendarDayStates renders one month as a weekday-aligned grid of day
// states for a calendar UI. Every marker comes from Resolve, so the grid and
// the day-detail panel can never disagree.
func BuildCalendarDayStates(engine *cycle.Engine, snapshot *cycle.Snapshot, monthStart time.Time, now time.Time) []CalendarDayState {
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))
	todayKey := now.Format(models.DateLayout)

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(models.DateLayout)
		state := CalendarDayState{
			Date:    key,
			Day:     day.Day(),
			InMonth: day.Month() == monthStart.Month(),
			IsToday: key == todayKey,
		}
		if record, ok := snapshot.Symptoms[key]; ok {
			state.HasData = record.HasData()
		}
		if info := engine.Resolve(snapshot.Cycles, snapshot.Symptoms, day); info != nil {
			state.IsPeriod = info.IsActualPeriodDay
			state.IsPredicted = info.IsPredictedPeriodDay
			state.IsOvulation = info.IsOvulationDay
			// Ovulation day renders as its own marker, not as generic
			// fertility.
			state.IsFertility = info.IsFertileWindow && !info.IsOvulationDay
			state.Phase = info.Phase
			state.CycleDay = info.CycleDay
		}
		days = append(days, state)
	}
	return days
}
