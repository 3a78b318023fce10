package cycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/selene-app/selene/internal/models"
)

type stubSource struct {
	records map[string]models.SymptomRecord
	err     error
}

func (source stubSource) Load(_ context.Context, _ time.Time, _ time.Time) (map[string]models.SymptomRecord, error) {
	return source.records, source.err
}

func TestLoadCycleData(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2025-03-05")
	records := threeCycleRecords(t)

	snapshot, err := engine.LoadCycleData(context.Background(), stubSource{records: records},
		mustParseDay(t, "2024-03-05"), mustParseDay(t, "2025-06-05"))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(snapshot.Cycles) != 3 {
		t.Fatalf("expected 3 detected cycles, got %d", len(snapshot.Cycles))
	}
	if len(snapshot.Symptoms) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(snapshot.Symptoms))
	}
	if snapshot.Range.From.Format(models.DateLayout) != "2024-03-05" {
		t.Fatalf("unexpected range start: %s", snapshot.Range.From)
	}
}

func TestLoadCycleDataColdStart(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2025-03-05")
	snapshot, err := engine.LoadCycleData(context.Background(), stubSource{},
		mustParseDay(t, "2024-03-05"), mustParseDay(t, "2025-06-05"))
	if err != nil {
		t.Fatalf("cold start must not be an error, got %v", err)
	}
	if len(snapshot.Cycles) != 0 {
		t.Fatalf("expected no cycles on cold start, got %d", len(snapshot.Cycles))
	}
	if snapshot.Symptoms == nil {
		t.Fatalf("expected an empty symptom map, got nil")
	}
}

func TestLoadCycleDataPropagatesSourceFailure(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, "2025-03-05")
	sourceErr := errors.New("vault offline")

	_, err := engine.LoadCycleData(context.Background(), stubSource{err: sourceErr},
		mustParseDay(t, "2024-03-05"), mustParseDay(t, "2025-06-05"))
	if err == nil {
		t.Fatalf("expected load failure to propagate")
	}
	if !errors.Is(err, sourceErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
