package solve

import (
	"fmt"
	"time"

	"github.com/oreworks/orecalc/internal/model"
)

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal: solved to optimality within the relative gap tolerance.
	StatusOptimal Status = iota
	// StatusSubOptimal: the solver stopped early but holds a feasible incumbent.
	StatusSubOptimal
	// StatusInfeasible: no purchase combination satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded: the objective can decrease without limit.
	StatusUnbounded
	// StatusTimedOut: the time budget ran out; any values are the best
	// incumbent found and may be far from optimal or not feasible at all.
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusSubOptimal:
		return "suboptimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Options carries the per-solve tuning knobs passed through to the engine.
type Options struct {
	// RelativeGap is the acceptable fractional distance from the true
	// optimum before the solver may report success.
	RelativeGap float64
	// Threads is a parallelism hint for the engine's internal search.
	Threads int
	// TimeLimit is the wall-clock budget for one solve.
	TimeLimit time.Duration
}

// DefaultOptions mirrors the engine defaults used throughout: 1% gap, single
// threaded, two minute budget.
func DefaultOptions() Options {
	return Options{
		RelativeGap: 0.01,
		Threads:     1,
		TimeLimit:   2 * time.Minute,
	}
}

// Validate checks option ranges. Zero values are allowed and replaced by
// defaults via withDefaults, negative ones are not.
func (o Options) Validate() error {
	if o.RelativeGap < 0 {
		return fmt.Errorf("relative gap must be >= 0, got %v", o.RelativeGap)
	}
	if o.Threads < 0 {
		return fmt.Errorf("thread count must be >= 1, got %d", o.Threads)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("time limit must be positive, got %v", o.TimeLimit)
	}
	return nil
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Threads == 0 {
		o.Threads = def.Threads
	}
	if o.TimeLimit == 0 {
		o.TimeLimit = def.TimeLimit
	}
	return o
}

// Result is the raw outcome of a solve: a status, the objective value, and
// one value per variable keyed by variable name.
type Result struct {
	Status    Status
	Objective float64
	Values    map[string]float64
}

// Solver runs an abstract mixed-integer linear program. Implementations must
// not retain the problem: every call works on an independent instance so
// concurrent solves do not interfere.
type Solver interface {
	Solve(p *model.Problem, opts Options) (*Result, error)
}
