package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pipegrid/steiner"
)

// sweepResult pairs a seed with the solution it produced.
type sweepResult struct {
	seed int64
	sol  steiner.Solution
}

// newSweepCmd builds the sweep command: solve one scenario under a range of
// seeds concurrently and report the best result. Different seeds resolve
// tied routing choices differently, so a sweep often finds a solution with
// fewer junctions than any single seed.
func newSweepCmd() *cobra.Command {
	var (
		cfgPath   string
		penalty   float64
		seeds     int
		startSeed int64
	)

	cmd := &cobra.Command{
		Use:   "sweep <scenario.yaml>",
		Short: "Solve a scenario across many seeds and report the best",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if seeds <= 0 {
				return fmt.Errorf("cli: --seeds must be positive, got %d", seeds)
			}

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			g, source, consumers, err := sc.inputs()
			if err != nil {
				return err
			}

			p, _ := resolveParams(cmd, sc, cfg, penalty, 0)
			logger.Debug("sweeping", "seeds", seeds, "from", startSeed, "penalty", p)

			// One independent Solve per seed; Solve is pure, so the goroutines
			// share nothing but their inputs.
			start := time.Now()
			results := make([]sweepResult, seeds)
			var eg errgroup.Group
			for i := 0; i < seeds; i++ {
				eg.Go(func() error {
					seed := startSeed + int64(i)
					sol, solveErr := steiner.Solve(g, source, consumers,
						steiner.WithJunctionPenalty(p), steiner.WithSeed(uint64(seed)))
					if solveErr != nil {
						return solveErr
					}
					results[i] = sweepResult{seed: seed, sol: sol}

					return nil
				})
			}
			if err = eg.Wait(); err != nil {
				return err
			}

			best := results[0]
			for _, r := range results[1:] {
				if betterResult(r, best) {
					best = r
				}
			}
			logger.Info("sweep finished",
				"seeds", seeds,
				"best_seed", best.seed,
				"length", best.sol.TotalLength,
				"junctions", best.sol.JunctionCount,
				"elapsed", time.Since(start).Round(time.Millisecond))
			fmt.Fprintf(cmd.OutOrStdout(), "best seed %d: length=%d junctions=%d\n",
				best.seed, best.sol.TotalLength, best.sol.JunctionCount)

			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file with defaults")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "junction penalty weight (overrides scenario and config)")
	cmd.Flags().IntVar(&seeds, "seeds", 16, "number of seeds to try")
	cmd.Flags().Int64Var(&startSeed, "start-seed", 0, "first seed of the sweep range")

	return cmd
}

// betterResult orders sweep results: fewer junctions first, then shorter
// networks, then the lower seed so the report is deterministic.
func betterResult(a, b sweepResult) bool {
	if a.sol.JunctionCount != b.sol.JunctionCount {
		return a.sol.JunctionCount < b.sol.JunctionCount
	}
	if a.sol.TotalLength != b.sol.TotalLength {
		return a.sol.TotalLength < b.sol.TotalLength
	}

	return a.seed < b.seed
}
