package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oreworks/orecalc/internal/config"
	"github.com/oreworks/orecalc/internal/oredata"
	"github.com/oreworks/orecalc/internal/planner"
	"github.com/oreworks/orecalc/internal/solve"
)

var (
	planPath     string
	requireFlags []string
	sample       bool
	weightPrice  float64
	weightVolume float64
	gap          float64
	threads      int
	timeLimit    time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a procurement plan",
	Long: `Solves for the ore quantities to buy. Either point --plan at a YAML plan
file, or use the built-in compressed ore catalog with --require flags
(e.g. --require Tritanium=11716296) or --sample for a demo quota set.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&planPath, "plan", "", "Plan file (YAML); omit to use the built-in ore catalog")
	solveCmd.Flags().StringArrayVar(&requireFlags, "require", nil, "Mineral quota as Name=Quantity (repeatable)")
	solveCmd.Flags().BoolVar(&sample, "sample", false, "Use the built-in sample quota set")
	solveCmd.Flags().Float64Var(&weightPrice, "weight-price", 1, "Objective weight on total price")
	solveCmd.Flags().Float64Var(&weightVolume, "weight-volume", 0, "Objective weight on total volume")
	solveCmd.Flags().Float64Var(&gap, "gap", 0.01, "Relative gap tolerance")
	solveCmd.Flags().IntVar(&threads, "threads", 1, "Solver threads")
	solveCmd.Flags().DurationVar(&timeLimit, "time-limit", 2*time.Minute, "Solver time budget")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	pl := planner.New(solve.NewHighs())
	opts := solve.Options{RelativeGap: gap, Threads: threads, TimeLimit: timeLimit}

	if planPath != "" {
		pf, err := config.Load(planPath)
		if err != nil {
			return err
		}
		if err := pf.Apply(pl); err != nil {
			return fmt.Errorf("failed to apply plan file: %w", err)
		}
		// CLI flags win over the plan file's solver section only when set.
		fileOpts := pf.Options()
		if !cmd.Flags().Changed("gap") {
			opts.RelativeGap = fileOpts.RelativeGap
		}
		if !cmd.Flags().Changed("threads") {
			opts.Threads = fileOpts.Threads
		}
		if !cmd.Flags().Changed("time-limit") {
			opts.TimeLimit = fileOpts.TimeLimit
		}
		if cmd.Flags().Changed("weight-price") || cmd.Flags().Changed("weight-volume") {
			if err := pl.ConfigureWeights(weightPrice, weightVolume); err != nil {
				return err
			}
		}
		slog.Info("Loaded plan file", "path", planPath, "resources", len(pf.Resources), "requirements", len(pf.Requirements))
	} else {
		if err := oredata.Register(pl); err != nil {
			return fmt.Errorf("failed to register ore catalog: %w", err)
		}
		quotas, err := parseRequirements(requireFlags)
		if err != nil {
			return err
		}
		if sample {
			for _, req := range oredata.SampleRequirements() {
				if err := pl.SetRequirement(req.Mineral, req.Quantity); err != nil {
					return err
				}
			}
		} else if len(quotas) == 0 {
			return fmt.Errorf("nothing to solve: pass --plan, --require or --sample")
		}
		for _, q := range quotas {
			if err := pl.SetRequirement(q.mineral, q.quantity); err != nil {
				return err
			}
		}
		if err := pl.ConfigureWeights(weightPrice, weightVolume); err != nil {
			return err
		}
	}

	plan, err := pl.Solve(opts)
	if err != nil {
		return err
	}

	printPlan(plan)
	return nil
}

type quota struct {
	mineral  string
	quantity float64
}

// parseRequirements parses repeated Name=Quantity flags.
func parseRequirements(flags []string) ([]quota, error) {
	quotas := make([]quota, 0, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --require %q: expected Name=Quantity", f)
		}
		qty, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --require %q: %w", f, err)
		}
		quotas = append(quotas, quota{mineral: name, quantity: qty})
	}
	return quotas, nil
}

func printPlan(plan *solve.Plan) {
	names := make([]string, 0, len(plan.Quantities))
	for name := range plan.Quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if qty := plan.Quantities[name]; qty > 0 {
			fmt.Printf("%-14s %12d\n", name, qty)
		}
	}
	fmt.Printf("Status: %s, total price %.2f ISK, total volume %.2f m3\n",
		plan.Status, plan.TotalPrice, plan.TotalVolume)
}
