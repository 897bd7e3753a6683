package formula

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// TubeStressResult is the outcome of the optional PCI tube-stress block.
type TubeStressResult struct {
	Status  schema.TubeStressStatus
	Stress  float64 // psi, meaningful only when Status is ok
	Message string  // populated for the error status
}

// TubeStress computes the bending stress in a PCI pulley tube treated as a
// simply supported beam across the hub spacing with the total belt pull
// applied at mid-span: stress = M*c/I with M = P*S/4.
//
// Missing tube geometry yields the incomplete status rather than a number.
// A wall thickness at or beyond the outer radius is geometrically
// impossible and yields the error status with a message; nothing here ever
// panics or returns a Go error for tube data.
func TubeStress(in schema.CanonicalInput, totalBeltPull float64) TubeStressResult {
	if in.TubeOD == nil || in.TubeWall == nil || in.HubSpacing == nil {
		return TubeStressResult{Status: schema.TubeStressIncomplete}
	}

	od, wall, span := *in.TubeOD, *in.TubeWall, *in.HubSpacing
	if od <= 0 || wall <= 0 || span <= 0 {
		return TubeStressResult{
			Status:  schema.TubeStressError,
			Message: "tube OD, wall thickness, and hub spacing must all be positive",
		}
	}
	if wall >= od/2 {
		return TubeStressResult{
			Status:  schema.TubeStressError,
			Message: "wall thickness must be less than the tube outer radius",
		}
	}

	id := od - 2*wall
	moment := totalBeltPull * span / 4
	inertia := math.Pi / 64 * (math.Pow(od, 4) - math.Pow(id, 4))
	if inertia <= 0 {
		return TubeStressResult{
			Status:  schema.TubeStressError,
			Message: "tube section has no bending stiffness",
		}
	}
	stress := moment * (od / 2) / inertia
	return TubeStressResult{Status: schema.TubeStressOK, Stress: stress}
}
