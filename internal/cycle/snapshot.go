package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// ObservationSource supplies the per-day symptom records for a date range.
// The engine does not care whether the data came from a database query or
// from pattern extraction over raw notes; it only relies on the record field
// semantics.
type ObservationSource interface {
	Load(ctx context.Context, from time.Time, to time.Time) (map[string]models.SymptomRecord, error)
}

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Snapshot is one fully loaded inference input: the records, the cycles
// detected from them, and the range they were loaded for. A reload builds a
// fresh snapshot and replaces the old one wholesale; snapshots themselves are
// never mutated.
type Snapshot struct {
	Symptoms map[string]models.SymptomRecord
	Cycles   []models.PeriodCycle
	Range    DateRange
}

// LoadCycleData fetches records from source and runs detection over them. A
// source failure propagates to the caller; it is never papered over with
// synthetic data. An empty result is a legitimate cold-start snapshot.
func (engine *Engine) LoadCycleData(ctx context.Context, source ObservationSource, from time.Time, to time.Time) (*Snapshot, error) {
	records, err := source.Load(ctx, dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("load observations: %w", err)
	}
	if records == nil {
		records = make(map[string]models.SymptomRecord)
	}
	return &Snapshot{
		Symptoms: records,
		Cycles:   engine.DetectCycles(records),
		Range:    DateRange{From: dateOnly(from), To: dateOnly(to)},
	}, nil
}
