// Package model builds a solver-neutral mixed-integer linear program out of a
// catalog snapshot. Keeping the artifact free of any solver library's types
// lets the formulation be tested with a fake solver and translated behind the
// adapter in internal/solve.
package model

// Term is one coefficient of a linear expression, keyed by variable name.
type Term struct {
	Var   string
	Coeff float64
}

// Variable declares one decision variable with bounds and integrality.
// Use math.Inf for unbounded sides.
type Variable struct {
	Name    string
	Lower   float64
	Upper   float64
	Integer bool
}

// Constraint is a linear row bounded on both sides:
//
//	Lower <= sum(Terms) <= Upper
//
// An equality row sets Lower == Upper; a >= row sets Upper to +inf.
type Constraint struct {
	Name  string
	Terms []Term
	Lower float64
	Upper float64
}

// Problem is an abstract mixed-integer linear program, always a minimization.
type Problem struct {
	Variables   []Variable
	Constraints []Constraint
	Objective   []Term
}
