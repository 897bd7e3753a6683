// Package geometry reconciles the three conveyor incline descriptions into
// one derived form.
//
// A conveyor's incline can be described three mutually-derivable ways:
// axis length + angle, horizontal run + angle, or horizontal run + both
// ends' top-of-belt heights. Exactly one is active per input; [Resolve]
// converts the active description into a [Derived] carrying every geometry
// quantity downstream formulas need. Converting the same physical conveyor
// through any two modes agrees to 1e-5 relative tolerance.
//
// Domain-invalid states (non-positive lengths, missing TOB heights) never
// panic: they produce a Derived with Valid=false, an error string, and safe
// zero numerics so the formula pipeline can keep producing diagnostics.
// Passing a geometry mode this package does not recognize is a programmer
// error and panics.
package geometry

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

const (
	// zeroSnapDeg treats near-zero angles as exactly horizontal so rise
	// values come out as exact zeros rather than float noise.
	zeroSnapDeg = 0.01

	// tobClampDeg bounds the angle implied by TOB heights. Anything
	// steeper indicates inconsistent height data, not a real conveyor.
	tobClampDeg = 45.0

	// nearVerticalDeg caps the angle used for run/cos projections so axis
	// length stays large but finite as the angle approaches 90 degrees.
	nearVerticalDeg = 89.9
)

// Derived is the canonical geometry produced by Resolve, tagged with the
// mode that produced it. All lengths are inches, angles degrees.
type Derived struct {
	Mode schema.GeometryMode `json:"mode"`

	ConveyorLength float64 `json:"conveyor_length_in"`
	HorizontalRun  float64 `json:"horizontal_run_in"`
	Rise           float64 `json:"rise_in"`
	InclineAngle   float64 `json:"incline_angle_deg"`

	// End heights. When no TOB data exists these are relative, with the
	// tail centerline pinned at zero.
	DriveCenterline float64 `json:"drive_centerline_in"`
	TailCenterline  float64 `json:"tail_centerline_in"`
	DriveTOB        float64 `json:"drive_tob_in"`
	TailTOB         float64 `json:"tail_tob_in"`

	Valid bool   `json:"valid"`
	Err   string `json:"error,omitempty"`
}

// TOBToCenterline converts a top-of-belt height to the pulley shaft
// centerline height at that end.
func TOBToCenterline(tob, pulleyDia float64) float64 {
	return tob - pulleyDia/2
}

// CenterlineToTOB is the inverse of TOBToCenterline.
func CenterlineToTOB(cl, pulleyDia float64) float64 {
	return cl + pulleyDia/2
}

// Resolve derives the full geometry from the active mode's inputs.
func Resolve(in schema.CanonicalInput) Derived {
	switch in.GeometryMode {
	case schema.GeometryLengthAngle:
		return resolveLengthAngle(in)
	case schema.GeometryHorizontalAngle:
		return resolveHorizontalAngle(in)
	case schema.GeometryHorizontalTOB:
		return resolveHorizontalTOB(in)
	default:
		panic("geometry: unknown geometry mode: " + string(in.GeometryMode))
	}
}

func resolveLengthAngle(in schema.CanonicalInput) Derived {
	d := Derived{Mode: schema.GeometryLengthAngle}
	if in.ConveyorLength <= 0 {
		d.Err = "conveyor length must be positive in length+angle mode"
		return d
	}
	angle := snapZero(in.InclineAngle)
	d.ConveyorLength = in.ConveyorLength
	d.InclineAngle = angle
	d.HorizontalRun = in.ConveyorLength * cosDeg(angle)
	d.Rise = in.ConveyorLength * sinDeg(angle)
	fillHeights(&d, in)
	d.Valid = true
	return d
}

func resolveHorizontalAngle(in schema.CanonicalInput) Derived {
	d := Derived{Mode: schema.GeometryHorizontalAngle}
	if in.HorizontalRun <= 0 {
		d.Err = "horizontal run must be positive in horizontal+angle mode"
		return d
	}
	angle := snapZero(in.InclineAngle)

	// Near 90 degrees the projection blows up; cap the effective angle so
	// the axis length stays large but finite.
	eff := angle
	if eff > nearVerticalDeg {
		eff = nearVerticalDeg
	} else if eff < -nearVerticalDeg {
		eff = -nearVerticalDeg
	}

	d.InclineAngle = angle
	d.HorizontalRun = in.HorizontalRun
	d.ConveyorLength = in.HorizontalRun / cosDeg(eff)
	d.Rise = in.HorizontalRun * tanDeg(eff)
	fillHeights(&d, in)
	d.Valid = true
	return d
}

func resolveHorizontalTOB(in schema.CanonicalInput) Derived {
	d := Derived{Mode: schema.GeometryHorizontalTOB}
	if in.HorizontalRun <= 0 {
		d.Err = "horizontal run must be positive in horizontal+TOB mode"
		return d
	}
	if in.TOBDrive == nil || in.TOBTail == nil {
		d.Err = "both top-of-belt heights are required in horizontal+TOB mode"
		return d
	}

	driveCL := TOBToCenterline(*in.TOBDrive, in.DrivePulleyDia)
	tailCL := TOBToCenterline(*in.TOBTail, in.TailPulleyDia)
	rise := driveCL - tailCL

	angle := math.Atan2(rise, in.HorizontalRun) * 180 / math.Pi
	if angle > tobClampDeg {
		angle = tobClampDeg
	} else if angle < -tobClampDeg {
		angle = -tobClampDeg
	}
	angle = snapZero(angle)
	if angle == 0 {
		rise = 0
	}

	d.HorizontalRun = in.HorizontalRun
	d.InclineAngle = angle
	d.Rise = rise
	d.ConveyorLength = math.Hypot(in.HorizontalRun, rise)
	d.DriveCenterline = driveCL
	d.TailCenterline = tailCL
	d.DriveTOB = *in.TOBDrive
	d.TailTOB = *in.TOBTail
	d.Valid = true
	return d
}

// fillHeights populates end heights for the angle-based modes. With TOB
// data present the absolute heights are used; otherwise heights are
// relative to a tail centerline of zero.
func fillHeights(d *Derived, in schema.CanonicalInput) {
	if in.TOBTail != nil {
		d.TailTOB = *in.TOBTail
		d.TailCenterline = TOBToCenterline(*in.TOBTail, in.TailPulleyDia)
	} else {
		d.TailCenterline = 0
		d.TailTOB = CenterlineToTOB(0, in.TailPulleyDia)
	}
	d.DriveCenterline = d.TailCenterline + d.Rise
	d.DriveTOB = CenterlineToTOB(d.DriveCenterline, in.DrivePulleyDia)
}

// snapZero returns 0 for angles within zeroSnapDeg of horizontal so rise
// computations produce exact zeros. The threshold is inclusive: exactly
// zeroSnapDeg still snaps.
func snapZero(angleDeg float64) float64 {
	if math.Abs(angleDeg) <= zeroSnapDeg {
		return 0
	}
	return angleDeg
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func tanDeg(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }
