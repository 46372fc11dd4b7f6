package solve

import (
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/oreworks/orecalc/internal/model"
)

// HighsSolver wraps the external HiGHS library to conform to the Solver
// interface. The engine is a black box: the adapter only translates the
// abstract problem into the HiGHS column/row form, forwards the tuning
// options, and maps the model status back onto the Status taxonomy.
type HighsSolver struct{}

// NewHighs creates a HiGHS-backed solver.
func NewHighs() Solver {
	return &HighsSolver{}
}

// Solve translates and runs the problem on HiGHS.
func (h *HighsSolver) Solve(p *model.Problem, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	m, names, err := buildHighsModel(p)
	if err != nil {
		return nil, err
	}

	sol, err := m.Solve(
		highs.WithOutput(false),
		highs.WithTimeLimit(opts.TimeLimit.Seconds()),
		highs.WithMIPRelGap(opts.RelativeGap),
		highs.WithThreads(opts.Threads),
	)
	if err != nil {
		return nil, fmt.Errorf("highs solve: %w", err)
	}

	status, err := mapStatus(sol)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(names))
	for i, name := range names {
		values[name] = sol.Value(i)
	}
	return &Result{
		Status:    status,
		Objective: sol.Objective,
		Values:    values,
	}, nil
}

// buildHighsModel lowers the abstract problem into the HiGHS column/row
// representation. The returned name slice maps column index back to variable
// name in the original declaration order.
func buildHighsModel(p *model.Problem) (*highs.Model, []string, error) {
	index := make(map[string]int, len(p.Variables))
	names := make([]string, len(p.Variables))
	m := &highs.Model{
		ColCosts: make([]float64, len(p.Variables)),
		ColLower: make([]float64, len(p.Variables)),
		ColUpper: make([]float64, len(p.Variables)),
		VarTypes: make([]highs.VariableType, len(p.Variables)),
	}

	for i, v := range p.Variables {
		if _, dup := index[v.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate variable %q", v.Name)
		}
		index[v.Name] = i
		names[i] = v.Name
		m.ColLower[i] = v.Lower
		m.ColUpper[i] = v.Upper
		if v.Integer {
			m.VarTypes[i] = highs.Integer
		} else {
			m.VarTypes[i] = highs.Continuous
		}
	}

	for _, t := range p.Objective {
		i, ok := index[t.Var]
		if !ok {
			return nil, nil, fmt.Errorf("objective references unknown variable %q", t.Var)
		}
		m.ColCosts[i] += t.Coeff
	}

	for _, c := range p.Constraints {
		cols := make([]int, 0, len(c.Terms))
		vals := make([]float64, 0, len(c.Terms))
		for _, t := range c.Terms {
			i, ok := index[t.Var]
			if !ok {
				return nil, nil, fmt.Errorf("constraint %q references unknown variable %q", c.Name, t.Var)
			}
			cols = append(cols, i)
			vals = append(vals, t.Coeff)
		}
		m.AddSparseRow(c.Lower, cols, vals, c.Upper)
	}

	return m, names, nil
}

// mapStatus folds the HiGHS model status onto the adapter taxonomy. The
// combined unbounded-or-infeasible status is reported as infeasible, which is
// the terminal outcome a caller can act on either way.
func mapStatus(sol *highs.Solution) (Status, error) {
	switch {
	case sol.IsOptimal():
		return StatusOptimal, nil
	case sol.IsTimeLimit():
		return StatusTimedOut, nil
	case sol.IsInfeasible():
		return StatusInfeasible, nil
	case sol.IsUnbounded():
		return StatusUnbounded, nil
	case sol.HasSolution():
		return StatusSubOptimal, nil
	default:
		return 0, fmt.Errorf("unexpected solver status %v", sol.Status)
	}
}
