package cycle

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// DetectCycles groups the bleeding observations in records into discrete
// period episodes and returns them in chronological start order. An isolated
// single bleeding day is a valid one-day cycle. With no bleeding data at all
// the result is empty, which downstream code treats as a cold start rather
// than an error.
func (engine *Engine) DetectCycles(records map[string]models.SymptomRecord) []models.PeriodCycle {
	periodDates := make([]time.Time, 0, len(records))
	for _, record := range records {
		if record.IsPeriodDay() {
			periodDates = append(periodDates, dateOnly(record.Date))
		}
	}
	if len(periodDates) == 0 {
		return nil
	}
	sort.Slice(periodDates, func(i, j int) bool {
		return periodDates[i].Before(periodDates[j])
	})

	cycles := make([]models.PeriodCycle, 0)
	current := models.PeriodCycle{
		StartDate:  periodDates[0],
		EndDate:    periodDates[0],
		PeriodDays: 1,
	}
	for _, day := range periodDates[1:] {
		if daysBetween(current.EndDate, day) <= engine.policy.MergeGapDays {
			current.EndDate = day
			current.PeriodDays++
			continue
		}
		cycles = append(cycles, current)
		current = models.PeriodCycle{
			StartDate:  day,
			EndDate:    day,
			PeriodDays: 1,
		}
	}
	cycles = append(cycles, current)

	for index := range cycles {
		cycles[index].ID = fmt.Sprintf("cycle-%d", index+1)
		cycles[index].State = models.CycleHistorical
		if index+1 == len(cycles) {
			cycles[index].State = models.CycleCurrent
			continue
		}
		length := daysBetween(cycles[index].StartDate, cycles[index+1].StartDate)
		if length >= engine.policy.MinCycleLength && length <= engine.policy.MaxCycleLength {
			cycles[index].CycleLength = length
		} else {
			log.Printf("discarding implausible cycle length %d for %s", length, cycles[index].ID)
		}
	}

	return cycles
}
