package cycle

import "time"

// Engine runs cycle inference under one Policy. It holds no data: every
// operation is a pure function of its arguments, so the same inputs always
// produce the same answer. The clock is injected because the predicted-period
// rule distinguishes past from future dates; tests pin it to a fixed day.
type Engine struct {
	policy Policy
	clock  func() time.Time
}

func NewEngine(policy Policy, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{policy: policy.normalized(), clock: clock}
}

func (engine *Engine) Policy() Policy {
	return engine.policy
}

// Now reads the engine's clock. Callers that need "today" should use this
// rather than time.Now so their view of the dateline matches the resolver's.
func (engine *Engine) Now() time.Time {
	return engine.clock()
}
