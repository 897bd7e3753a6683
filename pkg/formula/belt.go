package formula

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// BeltCoefficients resolves the effective PIW/PIL belt weight coefficients
// through the override chain: explicit input override, then catalog value,
// then the pulley-diameter-conditioned parameter default. Small pulleys
// imply a thin belt and take the light-belt pair.
func BeltCoefficients(in schema.CanonicalInput, p schema.Parameters) (piw, pil float64) {
	piw, pil = p.DefaultPIW, p.DefaultPIL
	if in.MaxPulleyDia() < p.LightBeltPulleyMax {
		piw, pil = p.LightBeltPIW, p.LightBeltPIL
	}
	if in.BeltPIW != nil {
		piw = *in.BeltPIW
	}
	if in.BeltPIL != nil {
		pil = *in.BeltPIL
	}
	if in.PIWOverride != nil {
		piw = *in.PIWOverride
	}
	if in.PILOverride != nil {
		pil = *in.PILOverride
	}
	return piw, pil
}

// BeltLength is the total belt length for a single-wrap belt path:
// up and back along the axis plus one drive pulley circumference.
func BeltLength(conveyorLength, drivePulleyDia float64) float64 {
	return 2*conveyorLength + math.Pi*drivePulleyDia
}

// BeltWeight is the belt's own weight from its length, width, and the
// resolved weight coefficients.
func BeltWeight(beltLength, beltWidth, piw, pil float64) float64 {
	return beltLength * (beltWidth*piw + pil)
}

// PartsOnBelt is the number of parts resident on the carrying run: the
// travel dimension plus spacing defines one part pitch.
func PartsOnBelt(conveyorLength, travelDim, spacing float64) int {
	pitch := travelDim + spacing
	if pitch <= 0 {
		return 0
	}
	return int(math.Floor(conveyorLength / pitch))
}

// LoadOnBelt is the product load carried by the belt.
func LoadOnBelt(partsOnBelt int, partWeight float64) float64 {
	return float64(partsOnBelt) * partWeight
}

// TotalLoad is product load plus the belt's own weight.
func TotalLoad(loadOnBelt, beltWeight float64) float64 {
	return loadOnBelt + beltWeight
}

// AvgLoadPerFt is the total load averaged over the conveyor length in feet.
func AvgLoadPerFt(totalLoad, conveyorLength float64) float64 {
	if conveyorLength <= 0 {
		return 0
	}
	return totalLoad / (conveyorLength / 12)
}
