package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/selene-app/selene/internal/cycle"
	"github.com/selene-app/selene/internal/models"
)

type switchableSource struct {
	mu      sync.Mutex
	records map[string]models.SymptomRecord
	err     error
}

func (source *switchableSource) Load(_ context.Context, _ time.Time, _ time.Time) (map[string]models.SymptomRecord, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.records, source.err
}

func (source *switchableSource) set(records map[string]models.SymptomRecord, err error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.records = records
	source.err = err
}

func periodRecord(t *testing.T, day string) models.SymptomRecord {
	t.Helper()
	flow := models.FlowMedium
	return models.SymptomRecord{Date: mustDay(t, day), Flow: &flow}
}

func TestLoaderReloadReplacesSnapshot(t *testing.T) {
	t.Parallel()

	engine := cycle.NewEngine(cycle.DefaultPolicy(), func() time.Time {
		return mustDay(t, "2025-03-05")
	})
	source := &switchableSource{records: map[string]models.SymptomRecord{
		"2025-02-01": periodRecord(t, "2025-02-01"),
	}}
	loader := NewLoader(engine, source, 12, 3, func() time.Time {
		return mustDay(t, "2025-03-05")
	})

	if loader.Snapshot() != nil {
		t.Fatalf("expected nil snapshot before first reload")
	}
	if err := loader.Reload(context.Background()); err != nil {
		t.Fatalf("first reload failed: %v", err)
	}
	first := loader.Snapshot()
	if len(first.Cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(first.Cycles))
	}

	source.set(map[string]models.SymptomRecord{
		"2025-02-01": periodRecord(t, "2025-02-01"),
		"2025-03-01": periodRecord(t, "2025-03-01"),
	}, nil)
	if err := loader.Reload(context.Background()); err != nil {
		t.Fatalf("second reload failed: %v", err)
	}
	second := loader.Snapshot()
	if second == first {
		t.Fatalf("reload must replace the snapshot, not mutate it")
	}
	if len(second.Cycles) != 2 {
		t.Fatalf("expected 2 cycles after reload, got %d", len(second.Cycles))
	}

	// A failed reload keeps the last good snapshot in place.
	source.set(nil, errors.New("vault offline"))
	if err := loader.Reload(context.Background()); err == nil {
		t.Fatalf("expected reload failure to propagate")
	}
	if loader.Snapshot() != second {
		t.Fatalf("failed reload must not replace the snapshot")
	}
}
