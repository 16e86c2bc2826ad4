// Package cli implements the cobra commands of the vogel binary.
//
// The root command carries the global --json and --verbose flags; solve and
// template live in their own files. Command output goes to the command's
// stdout, errors and logs to its stderr, so tests can capture both.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Build information, injected from main.
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	// json switches command output and errors to JSON.
	json bool

	// verbose enables debug logging on stderr.
	verbose bool
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vogel",
		Short: "Initial transportation plans with Vogel's Approximation Method",
		Long: `vogel reads a transportation problem (supply, demand and unit costs)
and prints the initial basic feasible shipping plan found by Vogel's
Approximation Method, together with its total cost.

Unequal totals are balanced with a zero-cost dummy origin or destination
unless --balanced-only is given.`,

		// Errors are printed by Execute in text or JSON form.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&g.json, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log every iteration to stderr")

	rootCmd.AddCommand(NewSolveCommand(g))
	rootCmd.AddCommand(NewTemplateCommand())

	return rootCmd
}

// Execute runs rootCmd and exits with the code of its error, if any.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(run(rootCmd)))
}

// run executes rootCmd, prints a failure to its stderr and returns the exit code.
func run(rootCmd *cobra.Command) ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	asJSON, _ := rootCmd.PersistentFlags().GetBool("json")
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), asJSON, cliErr.Message, cliErr.Err)

		return cliErr.Code
	}
	printError(rootCmd.ErrOrStderr(), asJSON, err.Error(), nil)

	return ExitGeneralError
}

// printError writes an error as "Error: ..." text or as a JSON object.
func printError(w io.Writer, asJSON bool, message string, underlying error) {
	if asJSON {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))

		return
	}
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// newLogger returns a console logger on w; debug level when verbose,
// warnings only otherwise.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().
		Logger()
}
