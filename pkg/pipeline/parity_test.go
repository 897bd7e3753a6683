package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/fixture"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/migrate"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// TestBaselineFixtureParity replays the recorded fixture suite, the same
// path the fixtures command takes. A failure here means the formulas have
// drifted from the recorded reference values.
func TestBaselineFixtureParity(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "fixtures")
	fixtures, err := fixture.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures found in %s", dir)
	}

	ctx := context.Background()
	params := schema.DefaultParameters()

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			canonical := migrate.Normalize(fx.RawInput())
			result := Evaluate(ctx, canonical, params)

			cmp := fixture.Compare(result.Outputs, &fx)
			if !cmp.Passed {
				for _, f := range cmp.Failures {
					t.Error(f.String())
				}
			}
		})
	}
}
