package cycle

import "github.com/selene-app/selene/internal/models"

// Policy collects the tunable constants of cycle inference. The defaults are
// the reference behavior; callers may override individual values through
// configuration. None of these are medical facts, they are heuristics.
type Policy struct {
	// MergeGapDays is the largest day gap between two bleeding observations
	// that still counts as the same episode.
	MergeGapDays int
	// MinCycleLength and MaxCycleLength bound the plausibility band for a
	// computed cycle length; gaps outside the band are discarded as noise.
	MinCycleLength int
	MaxCycleLength int
	// DefaultCycleLength is used when no cycle length was ever observed.
	DefaultCycleLength int
	// LutealPhaseDays models the luteal phase as a fixed span counted back
	// from the predicted cycle end to place ovulation.
	LutealPhaseDays int
	// RecentCycleWindow is how many recent cycles feed the forward-looking
	// length prediction for the current cycle.
	RecentCycleWindow int
	// FertileWindowLead and FertileWindowTrail extend the fertile window
	// around the predicted ovulation day.
	FertileWindowLead  int
	FertileWindowTrail int
}

func DefaultPolicy() Policy {
	return Policy{
		MergeGapDays:       2,
		MinCycleLength:     20,
		MaxCycleLength:     45,
		DefaultCycleLength: models.DefaultCycleLength,
		LutealPhaseDays:    14,
		RecentCycleWindow:  3,
		FertileWindowLead:  5,
		FertileWindowTrail: 1,
	}
}

func (policy Policy) normalized() Policy {
	defaults := DefaultPolicy()
	if policy.MergeGapDays <= 0 {
		policy.MergeGapDays = defaults.MergeGapDays
	}
	if policy.MinCycleLength <= 0 {
		policy.MinCycleLength = defaults.MinCycleLength
	}
	if policy.MaxCycleLength <= policy.MinCycleLength {
		policy.MaxCycleLength = defaults.MaxCycleLength
	}
	if policy.DefaultCycleLength <= 0 {
		policy.DefaultCycleLength = defaults.DefaultCycleLength
	}
	if policy.LutealPhaseDays <= 0 {
		policy.LutealPhaseDays = defaults.LutealPhaseDays
	}
	if policy.RecentCycleWindow <= 0 {
		policy.RecentCycleWindow = defaults.RecentCycleWindow
	}
	if policy.FertileWindowLead <= 0 {
		policy.FertileWindowLead = defaults.FertileWindowLead
	}
	if policy.FertileWindowTrail < 0 {
		policy.FertileWindowTrail = defaults.FertileWindowTrail
	}
	return policy
}
