package cycle

import "github.com/selene-app/selene/internal/models"

// PredictLength estimates the length of target in days. A known observed
// length always wins. For the current cycle the estimate is the mean of the
// most recent other cycles with known lengths, because recent behavior is the
// better predictor of what comes next; for historical reconstructions and
// projections it is the mean over all known lengths. With no known lengths at
// all the policy default applies.
func (engine *Engine) PredictLength(cycles []models.PeriodCycle, target models.PeriodCycle) int {
	if target.HasKnownLength() {
		return target.CycleLength
	}
	if target.State == models.CycleCurrent {
		if length := engine.recentMeanLength(cycles, target.ID); length > 0 {
			return length
		}
		return engine.policy.DefaultCycleLength
	}
	if length := engine.meanKnownLength(cycles); length > 0 {
		return length
	}
	return engine.policy.DefaultCycleLength
}

func (engine *Engine) recentMeanLength(cycles []models.PeriodCycle, excludeID string) int {
	total := 0
	count := 0
	for index := len(cycles) - 1; index >= 0 && count < engine.policy.RecentCycleWindow; index-- {
		candidate := cycles[index]
		if candidate.ID == excludeID || !candidate.HasKnownLength() {
			continue
		}
		total += candidate.CycleLength
		count++
	}
	return roundMean(total, count)
}

func (engine *Engine) meanKnownLength(cycles []models.PeriodCycle) int {
	total := 0
	count := 0
	for _, candidate := range cycles {
		if candidate.HasKnownLength() {
			total += candidate.CycleLength
			count++
		}
	}
	return roundMean(total, count)
}

// AverageCycleLength is the mean of all observed cycle lengths, or the policy
// default when none were observed.
func (engine *Engine) AverageCycleLength(cycles []models.PeriodCycle) int {
	if length := engine.meanKnownLength(cycles); length > 0 {
		return length
	}
	return engine.policy.DefaultCycleLength
}
