package formula

import (
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// PulleyFace sizes the pulley face from the belt width and the tracking
// method. V-guiding needs only a small allowance and no crown; crowned
// tracking needs the wider allowance and a crowned face.
func PulleyFace(in schema.CanonicalInput, p schema.Parameters) (faceLength float64, crownRequired bool) {
	switch in.TrackingMethod {
	case schema.TrackingVGuided:
		return in.BeltWidth + p.VGuidedFaceAllowance, false
	case schema.TrackingCrowned:
		return in.BeltWidth + p.CrownedFaceAllowance, true
	default:
		panic("formula: unknown tracking method: " + string(in.TrackingMethod))
	}
}

// FrameHeights computes the frame height breakdown.
//
// Required height stacks the largest pulley, twice the cleat height, and
// the return-support allowance: a full return-roller allowance in standard
// mode, zero in low-profile mode (which implies snub rollers). Reference
// height adds the clearance constant, except in custom mode where the
// caller-supplied height is the reference.
func FrameHeights(in schema.CanonicalInput, p schema.Parameters) (required, reference float64) {
	cleat := 0.0
	if in.CleatsEnabled && in.CleatHeight != nil {
		cleat = *in.CleatHeight
	}

	allowance := 0.0
	switch in.FrameHeightMode {
	case schema.FrameStandard, schema.FrameCustom:
		allowance = p.ReturnRollerAllowance
	case schema.FrameLowProfile:
		allowance = 0
	default:
		panic("formula: unknown frame height mode: " + string(in.FrameHeightMode))
	}

	required = in.MaxPulleyDia() + 2*cleat + allowance
	reference = required + p.FrameClearance
	if in.FrameHeightMode == schema.FrameCustom && in.CustomFrameHeight != nil {
		reference = *in.CustomFrameHeight
	}
	return required, reference
}

// SnubRequired reports whether the belt return must run over snub rollers:
// the reference height is strictly below the largest pulley plus the snub
// margin. At exactly the threshold snubs are not required.
func SnubRequired(referenceHeight, maxPulleyDia, snubMargin float64) bool {
	return referenceHeight < maxPulleyDia+snubMargin
}
