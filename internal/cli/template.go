package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vogel/problem"
)

// NewTemplateCommand creates the "template" command, which prints an
// editable sample problem document.
func NewTemplateCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a sample problem document",
		Long: `Print a balanced three-origin, four-destination problem to use as a
starting point.

Examples:
  vogel template > plants.yaml
  vogel template --format json > plants.json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := problem.ParseFormat(format)
			if err != nil {
				return WrapCLIError(ExitGeneralError, "invalid --format", err)
			}
			data, err := problem.Template(f)
			if err != nil {
				return WrapCLIError(ExitGeneralError, "cannot render template", err)
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Document format: yaml or json")

	return cmd
}
