package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/fixture"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/migrate"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// fixturesCommand creates the fixtures command for replaying recorded
// parity cases against the current formula pipeline.
func (c *CLI) fixturesCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fixtures <file-or-dir>",
		Short: "Replay recorded parity cases and compare outputs",
		Long: `Replay recorded parity fixtures against the current pipeline.

Fixtures are YAML files holding raw inputs and expected outputs. Each case
is migrated, calculated, and compared field by field within its tolerance.
The exit code is non-zero when any case fails.

Examples:
  conveyor fixtures examples/fixtures/
  conveyor fixtures examples/fixtures/baseline.yaml --show-fields`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFixtures(cmd, args[0], verbose)
		},
	}

	cmd.Flags().BoolVar(&verbose, "show-fields", false, "print every failing field comparison")

	return cmd
}

func (c *CLI) runFixtures(cmd *cobra.Command, path string, showFields bool) error {
	ctx := cmd.Context()

	fixtures, err := loadFixtures(path)
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		printInfo("No fixtures found in %s", path)
		return nil
	}
	loggerFromContext(ctx).Debugf("Loaded %d fixtures from %s", len(fixtures), path)

	spinner := newSpinner(ctx, fmt.Sprintf("Replaying %d fixtures", len(fixtures)))
	spinner.Start()

	params := schema.DefaultParameters()
	failed := 0
	type report struct {
		fx   fixture.Fixture
		cmp  fixture.Comparison
		errs int
	}
	reports := make([]report, 0, len(fixtures))

	for _, fx := range fixtures {
		canonical := migrate.Normalize(fx.RawInput())
		result := pipeline.Evaluate(ctx, canonical, params)
		cmp := fixture.Compare(result.Outputs, &fx)
		if !cmp.Passed {
			failed++
		}
		reports = append(reports, report{fx: fx, cmp: cmp, errs: len(result.Errors)})
	}

	if failed == 0 {
		spinner.StopWithSuccess(fmt.Sprintf("All %d fixtures passed", len(fixtures)))
	} else {
		spinner.StopWithError(fmt.Sprintf("%d of %d fixtures failed", failed, len(fixtures)))
	}

	for _, r := range reports {
		if r.cmp.Passed {
			printDetail("%s %s", iconSuccess, r.fx.Name)
			continue
		}
		printError("%s (%d field mismatches)", r.fx.Name, len(r.cmp.Failures))
		if showFields {
			for _, f := range r.cmp.Failures {
				printDetail("%s", f.String())
			}
		}
	}

	if failed > 0 {
		if !showFields {
			printNewline()
			printNextStep("Inspect failures", fmt.Sprintf("conveyor fixtures %s --show-fields", path))
		}
		return fmt.Errorf("%d fixtures failed", failed)
	}
	return nil
}

// loadFixtures loads one YAML file or every fixture file under a directory.
func loadFixtures(path string) ([]fixture.Fixture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return fixture.LoadDir(path)
	}
	return fixture.Load(path)
}
