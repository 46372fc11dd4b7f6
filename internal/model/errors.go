package model

import "fmt"

// ErrInfeasibleByConstruction is returned when a required output has no yield
// edge at all, so no purchase combination could ever satisfy its quota. This
// is detected at build time, before a solver is invoked.
var ErrInfeasibleByConstruction = &InfeasibleByConstructionError{}

// InfeasibleByConstructionError names the output that cannot be produced.
type InfeasibleByConstructionError struct {
	Output string
}

func (e *InfeasibleByConstructionError) Error() string {
	if e.Output == "" {
		return "requirement has no yield edges"
	}
	return fmt.Sprintf("requirement for %q has no yield edges: no resource produces it", e.Output)
}

func (e *InfeasibleByConstructionError) Is(target error) bool {
	_, ok := target.(*InfeasibleByConstructionError)
	return ok
}

// ErrInvalidWeight is returned when an objective weight is negative.
var ErrInvalidWeight = &InvalidWeightError{}

// InvalidWeightError reports a rejected objective weight.
type InvalidWeightError struct {
	Name  string
	Value float64
}

func (e *InvalidWeightError) Error() string {
	if e.Name == "" {
		return "invalid objective weight"
	}
	return fmt.Sprintf("invalid objective weight %s=%v: must be >= 0", e.Name, e.Value)
}

func (e *InvalidWeightError) Is(target error) bool {
	_, ok := target.(*InvalidWeightError)
	return ok
}
