package model

import (
	"math"

	"github.com/oreworks/orecalc/internal/catalog"
)

// Default objective weights: minimize acquisition cost, ignore volume.
const (
	DefaultWeightPrice  = 1.0
	DefaultWeightVolume = 0.0
)

// Build constructs the procurement program for a catalog snapshot.
//
// One non-negative integer variable is allocated per resource, in catalog
// insertion order, representing the purchased quantity. Two free continuous
// variables, aggregate_price and aggregate_volume, are tied to the purchase
// variables by equality rows so the objective can reference them directly:
//
//	sum(unit_price[r] * qty[r]) - aggregate_price  = 0
//	sum(unit_volume[r] * qty[r]) - aggregate_volume = 0
//
// Each requirement adds a row sum(yield[r->output] * qty[r]) >= quota. A
// requirement whose output has no yield edge fails immediately with
// InfeasibleByConstructionError; the solver could only rediscover that later.
//
// The objective is weightPrice*aggregate_price + weightVolume*aggregate_volume,
// minimized. Weights must be non-negative; scaling them to comparable
// magnitudes is the caller's job.
func Build(snap *catalog.Snapshot, weightPrice, weightVolume float64) (*Problem, error) {
	if weightPrice < 0 {
		return nil, &InvalidWeightError{Name: "weight_price", Value: weightPrice}
	}
	if weightVolume < 0 {
		return nil, &InvalidWeightError{Name: "weight_volume", Value: weightVolume}
	}

	resources := snap.Resources()
	p := &Problem{
		Variables: make([]Variable, 0, len(resources)+2),
	}

	priceTerms := make([]Term, 0, len(resources)+1)
	volumeTerms := make([]Term, 0, len(resources)+1)
	for _, r := range resources {
		p.Variables = append(p.Variables, Variable{
			Name:    r.Name,
			Lower:   0,
			Upper:   math.Inf(1),
			Integer: true,
		})
		priceTerms = append(priceTerms, Term{Var: r.Name, Coeff: r.UnitPrice})
		volumeTerms = append(volumeTerms, Term{Var: r.Name, Coeff: r.UnitVolume})
	}

	p.Variables = append(p.Variables,
		Variable{Name: catalog.AggregatePriceName, Lower: math.Inf(-1), Upper: math.Inf(1)},
		Variable{Name: catalog.AggregateVolumeName, Lower: math.Inf(-1), Upper: math.Inf(1)},
	)

	priceTerms = append(priceTerms, Term{Var: catalog.AggregatePriceName, Coeff: -1})
	volumeTerms = append(volumeTerms, Term{Var: catalog.AggregateVolumeName, Coeff: -1})
	p.Constraints = append(p.Constraints,
		Constraint{Name: "price", Terms: priceTerms, Lower: 0, Upper: 0},
		Constraint{Name: "volume", Terms: volumeTerms, Lower: 0, Upper: 0},
	)

	for _, req := range snap.Requirements() {
		yields := snap.Yields(req.Output)
		if len(yields) == 0 {
			return nil, &InfeasibleByConstructionError{Output: req.Output}
		}
		terms := make([]Term, 0, len(yields))
		for _, y := range yields {
			terms = append(terms, Term{Var: y.Resource, Coeff: y.PerUnit})
		}
		p.Constraints = append(p.Constraints, Constraint{
			Name:  "produce_" + req.Output,
			Terms: terms,
			Lower: req.MinQuantity,
			Upper: math.Inf(1),
		})
	}

	p.Objective = []Term{
		{Var: catalog.AggregatePriceName, Coeff: weightPrice},
		{Var: catalog.AggregateVolumeName, Coeff: weightVolume},
	}
	return p, nil
}
