// Package planner is the caller-facing surface of the procurement optimizer:
// register resources and yields, set quotas, pick objective weights, solve.
package planner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oreworks/orecalc/internal/catalog"
	"github.com/oreworks/orecalc/internal/model"
	"github.com/oreworks/orecalc/internal/solve"
)

// Planner accumulates a catalog and objective weights, and runs solves
// against an injected solver. Every Solve call freezes the catalog into a
// snapshot and builds a fresh model from it, so concurrent solves (for
// example with different weights) never share mutable state.
type Planner struct {
	catalog      *catalog.Catalog
	weightPrice  float64
	weightVolume float64
	solver       solve.Solver
}

// New creates a planner around the given solver. The default objective is
// pure price minimization.
func New(solver solve.Solver) *Planner {
	return &Planner{
		catalog:      catalog.New(),
		weightPrice:  model.DefaultWeightPrice,
		weightVolume: model.DefaultWeightVolume,
		solver:       solver,
	}
}

// RegisterResource adds a purchasable resource to the catalog.
func (p *Planner) RegisterResource(name string, unitPrice, unitVolume float64) error {
	return p.catalog.RegisterResource(name, unitPrice, unitVolume)
}

// RegisterYield records the per-unit yield of an output from a resource.
func (p *Planner) RegisterYield(resource, output string, perUnit float64) error {
	return p.catalog.RegisterYield(resource, output, perUnit)
}

// SetRequirement records the minimum quantity of an output the plan must
// produce.
func (p *Planner) SetRequirement(output string, minQuantity float64) error {
	return p.catalog.SetRequirement(output, minQuantity)
}

// ConfigureWeights sets the objective weights. Both must be non-negative.
// Price magnitudes are often around 1e6 while volumes are around 1e0; when
// blending the two the caller scales the weights, the planner does not
// normalize.
func (p *Planner) ConfigureWeights(weightPrice, weightVolume float64) error {
	if weightPrice < 0 {
		return &model.InvalidWeightError{Name: "weight_price", Value: weightPrice}
	}
	if weightVolume < 0 {
		return &model.InvalidWeightError{Name: "weight_volume", Value: weightVolume}
	}
	p.weightPrice = weightPrice
	p.weightVolume = weightVolume
	return nil
}

// Solve freezes the catalog, builds the procurement model, runs the solver
// and extracts the purchase plan. Errors are terminal for this invocation;
// there are no automatic retries.
func (p *Planner) Solve(opts solve.Options) (*solve.Plan, error) {
	snap := p.catalog.Snapshot()

	prob, err := model.Build(snap, p.weightPrice, p.weightVolume)
	if err != nil {
		return nil, err
	}

	slog.Info("Solving procurement model",
		"resources", len(snap.Resources()),
		"requirements", len(snap.Requirements()),
		"weight_price", p.weightPrice,
		"weight_volume", p.weightVolume,
	)

	start := time.Now()
	res, err := p.solver.Solve(prob, opts)
	if err != nil {
		return nil, fmt.Errorf("solver failed: %w", err)
	}

	plan, err := solve.ExtractPlan(snap, res)
	if err != nil {
		slog.Warn("Solve finished without a usable plan", "status", res.Status, "elapsed", time.Since(start))
		return nil, err
	}

	slog.Info("Solve complete",
		"status", plan.Status,
		"elapsed", time.Since(start),
		"total_price", plan.TotalPrice,
		"total_volume", plan.TotalVolume,
	)
	return plan, nil
}
