package cycle

import (
	"testing"
	"time"

	"github.com/selene-app/selene/internal/models"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		t.Fatalf("parse day %s: %v", value, err)
	}
	return day
}

func makeRecord(t *testing.T, day string, flow string) models.SymptomRecord {
	t.Helper()
	record := models.SymptomRecord{Date: mustParseDay(t, day)}
	if flow != "" {
		record.Flow = &flow
	}
	return record
}

func recordsFor(t *testing.T, periodDays ...string) map[string]models.SymptomRecord {
	t.Helper()
	records := make(map[string]models.SymptomRecord, len(periodDays))
	for _, day := range periodDays {
		records[day] = makeRecord(t, day, models.FlowMedium)
	}
	return records
}

func fixedClock(t *testing.T, day string) func() time.Time {
	t.Helper()
	now := mustParseDay(t, day)
	return func() time.Time { return now }
}

func newTestEngine(t *testing.T, today string) *Engine {
	t.Helper()
	return NewEngine(DefaultPolicy(), fixedClock(t, today))
}

func TestDetectCyclesMergeTolerance(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2024-02-01")
	records := recordsFor(t, "2024-01-01", "2024-01-02", "2024-01-04", "2024-01-10")

	cycles := engine.DetectCycles(records)
	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(cycles))
	}

	first := cycles[0]
	if first.StartDate.Format(models.DateLayout) != "2024-01-01" {
		t.Fatalf("unexpected first cycle start: %s", first.StartDate.Format(models.DateLayout))
	}
	if first.EndDate.Format(models.DateLayout) != "2024-01-04" {
		t.Fatalf("unexpected first cycle end: %s", first.EndDate.Format(models.DateLayout))
	}
	if first.PeriodDays != 3 {
		t.Fatalf("expected 3 period days in first cycle, got %d", first.PeriodDays)
	}
	if first.ID != "cycle-1" {
		t.Fatalf("unexpected first cycle id: %s", first.ID)
	}
	if first.State != models.CycleHistorical {
		t.Fatalf("expected first cycle historical, got %s", first.State)
	}

	second := cycles[1]
	if second.StartDate.Format(models.DateLayout) != "2024-01-10" {
		t.Fatalf("unexpected second cycle start: %s", second.StartDate.Format(models.DateLayout))
	}
	if second.PeriodDays != 1 {
		t.Fatalf("expected single-day second cycle, got %d period days", second.PeriodDays)
	}
	if second.State != models.CycleCurrent {
		t.Fatalf("expected last cycle current, got %s", second.State)
	}
}

func TestDetectCyclesPlausibilityBand(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2024-03-01")

	tooClose := engine.DetectCycles(recordsFor(t, "2024-01-01", "2024-01-11"))
	if len(tooClose) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(tooClose))
	}
	if tooClose[0].HasKnownLength() {
		t.Fatalf("expected 10-day gap to be discarded, got length %d", tooClose[0].CycleLength)
	}

	plausible := engine.DetectCycles(recordsFor(t, "2024-01-01", "2024-01-28"))
	if plausible[0].CycleLength != 27 {
		t.Fatalf("expected 27-day cycle length, got %d", plausible[0].CycleLength)
	}
}

func TestDetectCyclesEmptyAndColdStart(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2024-03-01")

	if cycles := engine.DetectCycles(nil); len(cycles) != 0 {
		t.Fatalf("expected no cycles from no records, got %d", len(cycles))
	}

	// A record without bleeding is not a cycle.
	noFlow := map[string]models.SymptomRecord{
		"2024-01-01": makeRecord(t, "2024-01-01", ""),
		"2024-01-02": makeRecord(t, "2024-01-02", models.FlowNone),
	}
	if cycles := engine.DetectCycles(noFlow); len(cycles) != 0 {
		t.Fatalf("expected no cycles from non-bleeding records, got %d", len(cycles))
	}
}

func TestDetectCyclesSingleIsolatedDay(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2024-03-01")
	cycles := engine.DetectCycles(recordsFor(t, "2024-01-15"))
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	if cycles[0].PeriodDays != 1 {
		t.Fatalf("expected one-day cycle, got %d period days", cycles[0].PeriodDays)
	}
	if cycles[0].State != models.CycleCurrent {
		t.Fatalf("expected the only cycle to be current, got %s", cycles[0].State)
	}
}

func TestDetectCyclesNonOverlap(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2024-06-01")
	records := recordsFor(t,
		"2024-01-01", "2024-01-02", "2024-01-03",
		"2024-01-29", "2024-01-30",
		"2024-02-26", "2024-02-27", "2024-02-29",
		"2024-03-27",
	)

	cycles := engine.DetectCycles(records)
	if len(cycles) != 4 {
		t.Fatalf("expected 4 cycles, got %d", len(cycles))
	}
	for index := 0; index+1 < len(cycles); index++ {
		if !cycles[index].EndDate.Before(cycles[index+1].StartDate) {
			t.Fatalf("cycle %s overlaps cycle %s", cycles[index].ID, cycles[index+1].ID)
		}
	}
}
