package cycle

import (
	"math"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// Resolve answers "what does date mean" against the detected cycles and the
// raw records. It returns nil only when cycles is empty; once at least one
// cycle exists every date resolves, arbitrarily far into the past or future,
// by projecting from the nearest detected cycle.
func (engine *Engine) Resolve(cycles []models.PeriodCycle, records map[string]models.SymptomRecord, date time.Time) *models.CycleInfo {
	if len(cycles) == 0 {
		return nil
	}
	day := dateOnly(date)

	owner, found := engine.locateOwner(cycles, day)
	if !found {
		owner = engine.projectCycle(cycles, day)
	}

	length := engine.PredictLength(cycles, owner)
	cycleDay := daysBetween(owner.StartDate, day) + 1

	record, hasRecord := records[day.Format(models.DateLayout)]
	today := dateOnly(engine.clock())

	info := models.CycleInfo{
		CycleDay:          cycleDay,
		Cycle:             owner,
		Phase:             classifyPhase(cycleDay, owner.PeriodDays, length),
		IsActualPeriodDay: hasRecord && record.IsPeriodDay(),
	}

	// A prediction is a forward-looking affordance: never shown over a real
	// observation and never painted onto past gaps.
	if !hasRecord && day.After(today) && cycleDay <= owner.PeriodDays {
		info.IsPredictedPeriodDay = true
	}

	firstStart := FirstRecordedPeriodStart(cycles)
	if firstStart.IsZero() || day.Before(firstStart) {
		return &info
	}
	ovulationDay := length - engine.policy.LutealPhaseDays
	if ovulationDay >= 1 {
		info.IsOvulationDay = cycleDay == ovulationDay
		info.IsFertileWindow = cycleDay >= ovulationDay-engine.policy.FertileWindowLead &&
			cycleDay <= ovulationDay+engine.policy.FertileWindowTrail
	}

	return &info
}

// locateOwner finds the detected cycle whose predicted span covers day.
func (engine *Engine) locateOwner(cycles []models.PeriodCycle, day time.Time) (models.PeriodCycle, bool) {
	for _, candidate := range cycles {
		length := engine.PredictLength(cycles, candidate)
		cycleEnd := candidate.StartDate.AddDate(0, 0, length-1)
		if !day.Before(candidate.StartDate) && !day.After(cycleEnd) {
			return candidate, true
		}
	}
	return models.PeriodCycle{}, false
}

// projectCycle synthesizes a cycle for a day no detected cycle covers: before
// the first cycle, inside a gap, or beyond the last projected end. The anchor
// is the chronologically closest cycle by start-date distance, shifted by
// whole average-length cycles so the projected span covers the day.
func (engine *Engine) projectCycle(cycles []models.PeriodCycle, day time.Time) models.PeriodCycle {
	closest := cycles[0]
	closestDistance := absInt(daysBetween(closest.StartDate, day))
	for _, candidate := range cycles[1:] {
		distance := absInt(daysBetween(candidate.StartDate, day))
		if distance < closestDistance {
			closest = candidate
			closestDistance = distance
		}
	}

	averageLength := engine.AverageCycleLength(cycles)
	elapsed := daysBetween(closest.StartDate, day)
	shift := floorDiv(elapsed, averageLength)
	start := closest.StartDate.AddDate(0, 0, shift*averageLength)

	return models.PeriodCycle{
		ID:          "projected-" + start.Format(models.DateLayout),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, closest.PeriodDays-1),
		PeriodDays:  closest.PeriodDays,
		CycleLength: averageLength,
		State:       models.CycleProjected,
	}
}

// classifyPhase buckets a cycle day into the four phases. The follicular and
// ovulation boundaries are proportional to the predicted length rather than
// fixed days, so the model scales with the individual's cycle.
func classifyPhase(cycleDay int, periodDays int, predictedLength int) string {
	switch {
	case cycleDay <= periodDays:
		return models.PhaseMenstrual
	case cycleDay <= int(math.Floor(0.5*float64(predictedLength))):
		return models.PhaseFollicular
	case cycleDay <= int(math.Floor(0.6*float64(predictedLength))):
		return models.PhaseOvulation
	default:
		return models.PhaseLuteal
	}
}

// FirstRecordedPeriodStart is the start of the earliest detected cycle, or
// the zero time when no projection anchor exists. Fertility markers are
// suppressed before this date: there is no backward extrapolation before real
// history begins.
func FirstRecordedPeriodStart(cycles []models.PeriodCycle) time.Time {
	for _, candidate := range cycles {
		if candidate.State != models.CycleProjected {
			return candidate.StartDate
		}
	}
	return time.Time{}
}

// NextPredictedPeriodStart projects the start of the period after the last
// detected cycle, or the zero time when there are no cycles.
func (engine *Engine) NextPredictedPeriodStart(cycles []models.PeriodCycle) time.Time {
	if len(cycles) == 0 {
		return time.Time{}
	}
	last := cycles[len(cycles)-1]
	return last.StartDate.AddDate(0, 0, engine.PredictLength(cycles, last))
}
