package solve

import (
	"math"

	"github.com/oreworks/orecalc/internal/catalog"
)

// Plan is a purchase plan in catalog terms: how many units of each resource
// to buy, and the aggregate price and volume of the whole purchase.
type Plan struct {
	// Quantities maps resource name to purchased units. Every registered
	// resource appears, including those bought at zero.
	Quantities map[string]int64
	// TotalPrice and TotalVolume are the aggregate variables as reported by
	// the solver.
	TotalPrice  float64
	TotalVolume float64
	// Status is the solver status the plan was extracted under, either
	// StatusOptimal or StatusSubOptimal.
	Status Status
	// Objective is the weighted objective value.
	Objective float64
}

// Integer variables may come back a hair off an integer; values further from
// integral than this relative tolerance are treated as solver failures rather
// than rounded.
const integralityTol = 1e-5

// ExtractPlan maps a raw solver result back to catalog terms. Results with a
// status other than optimal or suboptimal produce the matching typed error
// instead of a plan: a timed-out or infeasible assignment is not a usable
// answer and must not be silently coerced into one.
func ExtractPlan(snap *catalog.Snapshot, res *Result) (*Plan, error) {
	switch res.Status {
	case StatusOptimal, StatusSubOptimal:
	case StatusInfeasible:
		return nil, &SolverInfeasibleError{Result: res}
	case StatusUnbounded:
		return nil, &SolverUnboundedError{Result: res}
	case StatusTimedOut:
		return nil, &SolverTimedOutError{Result: res}
	}

	resources := snap.Resources()
	quantities := make(map[string]int64, len(resources))
	for _, r := range resources {
		v := res.Values[r.Name]
		q := math.Round(v)
		if math.Abs(v-q) > integralityTol*math.Max(1, math.Abs(v)) {
			return nil, &FractionalValueError{Var: r.Name, Value: v}
		}
		quantities[r.Name] = int64(q)
	}

	return &Plan{
		Quantities:  quantities,
		TotalPrice:  res.Values[catalog.AggregatePriceName],
		TotalVolume: res.Values[catalog.AggregateVolumeName],
		Status:      res.Status,
		Objective:   res.Objective,
	}, nil
}
