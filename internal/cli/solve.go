package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vogel/problem"
	"github.com/katalvlaran/vogel/report"
	"github.com/katalvlaran/vogel/vam"
)

// solveFlags holds the flag values for the solve command.
type solveFlags struct {
	// balancedOnly rejects unequal totals instead of adding a dummy line.
	balancedOnly bool

	// hideDummy strips the dummy row or column from the output tables.
	hideDummy bool

	// steps prints the iteration trace.
	steps bool

	// epsilon is the largest total difference --balanced-only accepts.
	epsilon float64

	// precision is the number of decimals in text output.
	precision int
}

// NewSolveCommand creates the "solve" command.
func NewSolveCommand(g *globalFlags) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute the VAM allocation for a problem document",
		Long: `Read a problem document (.yaml, .yml, .json or .jsonc) and print the
allocation table and total cost found by Vogel's Approximation Method.

Examples:
  vogel solve plants.yaml
  vogel solve plants.jsonc --steps
  vogel solve plants.yaml --balanced-only --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), g.verbose)

			return runSolve(cmd, log, g, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.balancedOnly, "balanced-only", false,
		"Fail when total supply and total demand differ")
	cmd.Flags().BoolVar(&flags.hideDummy, "hide-dummy", false,
		"Omit the dummy origin or destination from the tables")
	cmd.Flags().BoolVar(&flags.steps, "steps", false, "Print the iteration trace")
	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", 0,
		"Largest supply/demand difference --balanced-only accepts (a dummy line still absorbs it)")
	cmd.Flags().IntVar(&flags.precision, "precision", 0,
		"Decimals in text output (0 prints exact values)")

	return cmd
}

// runSolve loads the document, solves it and renders the result.
func runSolve(cmd *cobra.Command, log zerolog.Logger, g *globalFlags, flags *solveFlags, path string) error {
	p, err := problem.Load(path)
	if err != nil {
		return WrapCLIError(classify(err), fmt.Sprintf("cannot load %s", path), err)
	}
	log.Debug().
		Str("file", path).
		Int("origins", len(p.Supply)).
		Int("destinations", len(p.Demand)).
		Msg("problem loaded")

	policy := vam.AutoBalance
	if flags.balancedOnly {
		policy = vam.RequireBalanced
	}
	origins, destinations := p.Labels()
	res, err := p.Solve(
		vam.WithBalancePolicy(policy),
		vam.WithEpsilon(flags.epsilon),
		vam.WithRecordSteps(flags.steps),
		vam.WithOnStep(func(st vam.Step) {
			log.Debug().
				Int("iteration", st.Iteration).
				Str("line", st.Line.Kind.String()).
				Int("index", st.Line.Index).
				Float64("penalty", st.Penalty).
				Str("from", label(origins, st.Row)).
				Str("to", label(destinations, st.Col)).
				Float64("quantity", st.Quantity).
				Msg("allocated")
		}),
	)
	if err != nil {
		return WrapCLIError(classify(err), fmt.Sprintf("cannot solve %s", path), err)
	}
	if res.AddedDummyRow || res.AddedDummyColumn {
		log.Info().
			Bool("dummyRow", res.AddedDummyRow).
			Bool("dummyColumn", res.AddedDummyColumn).
			Msg("totals differ, problem balanced")
	}
	if res.Degenerate() {
		log.Warn().Int("occupied", res.BasicCells()).Msg("degenerate solution")
	}

	opts := report.Options{
		HideDummy: flags.hideDummy,
		ShowSteps: flags.steps,
		Precision: flags.precision,
	}
	if g.json {
		err = report.JSON(cmd.OutOrStdout(), p, res, opts)
	} else {
		err = report.Text(cmd.OutOrStdout(), p, res, opts)
	}
	if err != nil {
		return WrapCLIError(ExitGeneralError, "cannot write result", err)
	}

	return nil
}

// label names line i, falling back to the dummy label past the document's lines.
func label(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}

	return report.DummyLabel
}
