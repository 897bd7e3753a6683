package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgio "github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/io"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// calcOpts holds the command-line flags for the calc command.
type calcOpts struct {
	params       string // TOML parameter override file
	output       string // result file path (stdout display if empty)
	modelVersion string // model version tag for the result metadata
	noCache      bool   // disable the result cache entirely
	refresh      bool   // bypass the cache read, recompute and store
	interactive  bool   // browse the result in a TUI
}

// calcCommand creates the calc command.
func (c *CLI) calcCommand() *cobra.Command {
	var opts calcOpts

	cmd := &cobra.Command{
		Use:   "calc <input.json>",
		Short: "Run the full calculation pipeline on an input document",
		Long: `Run the full calculation pipeline on a raw input document.

The input is a JSON object of engineering fields; legacy field names are
migrated automatically. Outputs and validation findings are printed to the
terminal, or written as JSON with --output.

Examples:
  conveyor calc inputs/line4.json
  conveyor calc inputs/line4.json --params overrides.toml
  conveyor calc inputs/line4.json -o result.json
  conveyor calc inputs/line4.json --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalc(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.params, "params", "", "TOML file overriding engineering parameters")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result as JSON to this file")
	cmd.Flags().StringVar(&opts.modelVersion, "model-version", "", "model version tag recorded in result metadata")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the result interactively")

	return cmd
}

func (c *CLI) runCalc(cmd *cobra.Command, inputPath string, opts calcOpts) error {
	ctx := cmd.Context()

	req, err := c.buildRequest(inputPath, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := runner.Run(ctx, req)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Calculated %d outputs", len(result.Outputs.Fields())))

	if opts.output != "" {
		if err := pkgio.ExportResult(opts.output, result); err != nil {
			return err
		}
		printFile(opts.output)
	}

	if opts.interactive {
		model := NewResultModel(result)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return err
		}
	} else {
		printResult(result)
	}

	if !result.Success {
		return fmt.Errorf("calculation has %d validation errors", len(result.Errors))
	}
	return nil
}

// buildRequest assembles a pipeline request from the input path and flags.
func (c *CLI) buildRequest(inputPath string, opts calcOpts) (pipeline.Request, error) {
	raw, err := pkgio.ImportInput(inputPath)
	if err != nil {
		return pipeline.Request{}, err
	}

	var overrides *schema.Overrides
	if opts.params != "" {
		overrides, err = pkgio.ImportOverrides(opts.params)
		if err != nil {
			return pipeline.Request{}, err
		}
	}

	return pipeline.Request{
		Inputs:         raw,
		Parameters:     overrides,
		ModelVersionID: opts.modelVersion,
		Refresh:        opts.refresh,
	}, nil
}

// printResult prints findings, outputs, and the run status line.
func printResult(result pipeline.Result) {
	printFindings(result.Errors)
	printFindings(result.Warnings)
	if len(result.Errors)+len(result.Warnings) > 0 {
		printNewline()
	}

	printOutputs(result.Outputs)
	printNewline()
	printRunStatus(len(result.Errors), len(result.Warnings), result.Cached)
}
