package solve

import "fmt"

// ErrInfeasible is returned when the solver proves no feasible plan exists.
var ErrInfeasible = &SolverInfeasibleError{}

// SolverInfeasibleError carries the raw result of an infeasible solve.
type SolverInfeasibleError struct {
	Result *Result
}

func (e *SolverInfeasibleError) Error() string {
	return "solver reported the model infeasible"
}

func (e *SolverInfeasibleError) Is(target error) bool {
	_, ok := target.(*SolverInfeasibleError)
	return ok
}

// ErrUnbounded is returned when the objective can decrease without limit.
var ErrUnbounded = &SolverUnboundedError{}

// SolverUnboundedError carries the raw result of an unbounded solve.
type SolverUnboundedError struct {
	Result *Result
}

func (e *SolverUnboundedError) Error() string {
	return "solver reported the model unbounded"
}

func (e *SolverUnboundedError) Is(target error) bool {
	_, ok := target.(*SolverUnboundedError)
	return ok
}

// ErrTimedOut is returned when the time budget ran out before the solver
// reached the gap tolerance. The attached result holds the best incumbent,
// which may be suboptimal or not feasible; it is deliberately not converted
// into a plan.
var ErrTimedOut = &SolverTimedOutError{}

// SolverTimedOutError carries the raw result of a timed-out solve.
type SolverTimedOutError struct {
	Result *Result
}

func (e *SolverTimedOutError) Error() string {
	return "solver hit the time limit before reaching the gap tolerance"
}

func (e *SolverTimedOutError) Is(target error) bool {
	_, ok := target.(*SolverTimedOutError)
	return ok
}

// FractionalValueError reports a variable that was declared integer but came
// back from the solver too far from an integral value to round safely.
type FractionalValueError struct {
	Var   string
	Value float64
}

func (e *FractionalValueError) Error() string {
	return fmt.Sprintf("solver returned non-integral value %v for integer variable %q", e.Value, e.Var)
}

func (e *FractionalValueError) Is(target error) bool {
	_, ok := target.(*FractionalValueError)
	return ok
}
