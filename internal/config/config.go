// Package config loads procurement plan files: a catalog of resources with
// their yields, the output quotas, objective weights and solver settings, all
// in one YAML document.
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oreworks/orecalc/internal/planner"
	"github.com/oreworks/orecalc/internal/solve"
)

// PlanFile is the top-level schema of a plan document.
type PlanFile struct {
	Weights      WeightsConfig      `yaml:"weights"`
	Resources    []ResourceConfig   `yaml:"resources"`
	Requirements map[string]float64 `yaml:"requirements"`
	Solver       SolverConfig       `yaml:"solver"`
}

// WeightsConfig holds the objective weights.
type WeightsConfig struct {
	Price  float64 `yaml:"price"`
	Volume float64 `yaml:"volume"`
}

// ResourceConfig describes one purchasable resource and its per-unit yields.
type ResourceConfig struct {
	Name   string             `yaml:"name"`
	Price  float64            `yaml:"price"`
	Volume float64            `yaml:"volume"`
	Yields map[string]float64 `yaml:"yields"`
}

// SolverConfig holds per-solve tuning settings.
type SolverConfig struct {
	RelativeGap      float64 `yaml:"relative_gap"`
	Threads          int     `yaml:"threads"`
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
}

// Load reads a plan file from a YAML document.
func Load(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var f PlanFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	// Set defaults if not provided
	if f.Weights.Price == 0 && f.Weights.Volume == 0 {
		f.Weights.Price = 1
	}

	return &f, nil
}

// Apply registers the plan file's resources, yields, requirements and weights
// on a planner. Yields and requirements are applied in sorted key order so
// the resulting model is the same on every load.
func (f *PlanFile) Apply(p *planner.Planner) error {
	for _, r := range f.Resources {
		if err := p.RegisterResource(r.Name, r.Price, r.Volume); err != nil {
			return err
		}
	}
	for _, r := range f.Resources {
		for _, output := range sortedKeys(r.Yields) {
			if err := p.RegisterYield(r.Name, output, r.Yields[output]); err != nil {
				return err
			}
		}
	}
	for _, output := range sortedKeys(f.Requirements) {
		if err := p.SetRequirement(output, f.Requirements[output]); err != nil {
			return err
		}
	}
	return p.ConfigureWeights(f.Weights.Price, f.Weights.Volume)
}

// Options converts the solver section to solve options, falling back to the
// defaults for unset fields.
func (f *PlanFile) Options() solve.Options {
	opts := solve.DefaultOptions()
	if f.Solver.RelativeGap != 0 {
		opts.RelativeGap = f.Solver.RelativeGap
	}
	if f.Solver.Threads != 0 {
		opts.Threads = f.Solver.Threads
	}
	if f.Solver.TimeLimitSeconds != 0 {
		opts.TimeLimit = time.Duration(f.Solver.TimeLimitSeconds * float64(time.Second))
	}
	return opts
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
