package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

type CycleState string

const (
	// CycleHistorical is a fully observed past cycle.
	CycleHistorical CycleState = "historical"
	// CycleCurrent is the most recent detected cycle, whose true length is
	// not knowable until the next period starts.
	CycleCurrent CycleState = "current"
	// CycleProjected is a synthetic cycle extrapolated for a query date that
	// no detected cycle covers.
	CycleProjected CycleState = "projected"
)

// PeriodCycle is one detected bleeding episode and the cycle it anchors.
// Detection produces cycles in chronological start order; consecutive cycles
// never overlap.
type PeriodCycle struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
	// EndDate is the last bleeding observation of the episode, inclusive.
	EndDate time.Time `json:"end_date"`
	// PeriodDays counts bleeding observations in the episode, not calendar
	// span: short gaps inside one episode are tolerated.
	PeriodDays int `json:"period_days"`
	// CycleLength is the day span to the next detected cycle's start, or 0
	// when unknown (last cycle, or the raw gap fell outside the plausibility
	// band and was discarded as noise).
	CycleLength int        `json:"cycle_length,omitempty"`
	State       CycleState `json:"state"`
}

// HasKnownLength reports whether the cycle's true length was observed.
func (cycle PeriodCycle) HasKnownLength() bool {
	return cycle.CycleLength > 0
}

// CycleInfo is the resolved answer for one query date. It is derived on
// demand and never cached; the four flags are independent of each other.
type CycleInfo struct {
	CycleDay             int         `json:"cycle_day"`
	Cycle                PeriodCycle `json:"cycle"`
	Phase                string      `json:"phase"`
	IsActualPeriodDay    bool        `json:"is_actual_period_day"`
	IsPredictedPeriodDay bool        `json:"is_predicted_period_day"`
	IsFertileWindow      bool        `json:"is_fertile_window"`
	IsOvulationDay       bool        `json:"is_ovulation_day"`
}
