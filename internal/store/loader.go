package store

import (
	"context"
	"sync"
	"time"

	"github.com/selene-app/selene/internal/cycle"
)

// Loader owns the current inference snapshot. Reload builds a fresh snapshot
// for a window around "now" and swaps it in wholesale; there is no
// incremental merge, so readers always see either the old snapshot or the new
// one, never a mix.
type Loader struct {
	engine        *cycle.Engine
	source        cycle.ObservationSource
	monthsBack    int
	monthsForward int
	clock         func() time.Time

	mu       sync.RWMutex
	snapshot *cycle.Snapshot
}

func NewLoader(engine *cycle.Engine, source cycle.ObservationSource, monthsBack int, monthsForward int, clock func() time.Time) *Loader {
	if monthsBack <= 0 {
		monthsBack = 12
	}
	if monthsForward <= 0 {
		monthsForward = 3
	}
	if clock == nil {
		clock = time.Now
	}
	return &Loader{
		engine:        engine,
		source:        source,
		monthsBack:    monthsBack,
		monthsForward: monthsForward,
		clock:         clock,
	}
}

func (loader *Loader) Reload(ctx context.Context) error {
	now := loader.clock()
	from := now.AddDate(0, -loader.monthsBack, 0)
	to := now.AddDate(0, loader.monthsForward, 0)

	snapshot, err := loader.engine.LoadCycleData(ctx, loader.source, from, to)
	if err != nil {
		return err
	}

	loader.mu.Lock()
	loader.snapshot = snapshot
	loader.mu.Unlock()
	return nil
}

// Snapshot returns the current snapshot, or nil before the first successful
// Reload.
func (loader *Loader) Snapshot() *cycle.Snapshot {
	loader.mu.RLock()
	defer loader.mu.RUnlock()
	return loader.snapshot
}
