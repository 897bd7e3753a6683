package formula

import (
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// shaftBand is one row of the width-banded shaft sizing lookup.
type shaftBand struct {
	maxWidth float64
	dia      float64
}

// shaftBands is the width-banded sizing heuristic carried over from the
// reference spreadsheet. It is a placeholder for a torque-based sizing
// table; the thresholds are preserved exactly for parity and intentionally
// not "corrected" here.
var shaftBands = []shaftBand{
	{maxWidth: 18, dia: 1.1875},
	{maxWidth: 30, dia: 1.4375},
	{maxWidth: 42, dia: 1.6875},
}

// shaftBandOverflow is used beyond the last band.
const shaftBandOverflow = 1.9375

// CalculatedShaftDia looks up the shaft diameter for a belt width.
func CalculatedShaftDia(beltWidth float64) float64 {
	for _, b := range shaftBands {
		if beltWidth <= b.maxWidth {
			return b.dia
		}
	}
	return shaftBandOverflow
}

// ShaftDiameters resolves both shaft diameters: manual mode echoes the
// user-supplied values, calculated mode applies the width-banded lookup to
// both ends.
func ShaftDiameters(in schema.CanonicalInput) (drive, tail float64) {
	switch in.ShaftMode {
	case schema.ShaftManual:
		if in.DriveShaftDia != nil {
			drive = *in.DriveShaftDia
		}
		if in.TailShaftDia != nil {
			tail = *in.TailShaftDia
		}
		return drive, tail
	case schema.ShaftCalculated:
		dia := CalculatedShaftDia(in.BeltWidth)
		return dia, dia
	default:
		panic("formula: unknown shaft mode: " + string(in.ShaftMode))
	}
}
