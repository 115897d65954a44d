package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pipegrid/steiner"
)

// newSolveCmd builds the solve command: load a scenario, run the optimizer
// once, verify connectivity, report metrics, and optionally render the grid.
func newSolveCmd() *cobra.Command {
	var (
		cfgPath string
		penalty float64
		seed    int64
		render  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: "Solve one pipe-network scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

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

			p, s := resolveParams(cmd, sc, cfg, penalty, seed)
			logger.Debug("solving", "rows", g.Rows, "cols", g.Cols,
				"consumers", len(consumers), "penalty", p, "seed", s)

			start := time.Now()
			sol, err := steiner.Solve(g, source, consumers,
				steiner.WithJunctionPenalty(p), steiner.WithSeed(uint64(s)))
			if err != nil {
				return err
			}
			logger.Info("solved",
				"length", sol.TotalLength,
				"junctions", sol.JunctionCount,
				"elapsed", time.Since(start).Round(time.Millisecond))

			if !steiner.Verify(sol, source, consumers) {
				// Construction guarantees connectivity; this is a tripwire.
				return fmt.Errorf("cli: solution failed connectivity verification")
			}

			if render {
				color := cfg.Render.Color && !noColor
				fmt.Fprint(cmd.OutOrStdout(), renderSolution(g, sol, source, consumers, color))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file with defaults")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "junction penalty weight (overrides scenario and config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "tie-breaking seed (overrides scenario and config)")
	cmd.Flags().BoolVar(&render, "render", false, "draw the solved network")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled rendering")

	return cmd
}

// resolveParams applies the precedence flag > scenario file > config file to
// the penalty and seed parameters.
func resolveParams(cmd *cobra.Command, sc Scenario, cfg Config, flagPenalty float64, flagSeed int64) (float64, int64) {
	penalty, seed := cfg.Penalty, cfg.Seed
	if sc.Penalty != nil {
		penalty = *sc.Penalty
	}
	if sc.Seed != nil {
		seed = *sc.Seed
	}
	if cmd.Flags().Changed("penalty") {
		penalty = flagPenalty
	}
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}

	return penalty, seed
}
