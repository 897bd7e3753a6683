package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/io"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/migrate"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// validateCommand creates the validate command. It runs the same pipeline
// as calc but reports only findings, for quick feedback while editing an
// input document.
func (c *CLI) validateCommand() *cobra.Command {
	var params string

	cmd := &cobra.Command{
		Use:   "validate <input.json>",
		Short: "Check an input document and report validation findings",
		Long: `Check a raw input document against the validation rule engine.

The document is migrated, resolved, and calculated exactly as with calc,
but only the findings are reported. The exit code is non-zero when any
error-severity finding is present.

Examples:
  conveyor validate inputs/line4.json
  conveyor validate inputs/line4.json --params overrides.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := pkgio.ImportInput(args[0])
			if err != nil {
				return err
			}

			var overrides *schema.Overrides
			if params != "" {
				overrides, err = pkgio.ImportOverrides(params)
				if err != nil {
					return err
				}
			}

			canonical := migrate.Normalize(raw)
			result := pipeline.Evaluate(cmd.Context(), canonical, overrides.Apply(schema.DefaultParameters()))

			printFindings(result.Errors)
			printFindings(result.Warnings)

			if !result.Success {
				printNewline()
				return fmt.Errorf("%d validation errors", len(result.Errors))
			}
			if len(result.Warnings) > 0 {
				printNewline()
			}
			printSuccess("Input is valid (%d warnings)", len(result.Warnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&params, "params", "", "TOML file overriding engineering parameters")

	return cmd
}
