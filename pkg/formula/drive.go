package formula

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// BeltSpeedFromRPM converts drive shaft RPM to belt speed (FPM) through the
// drive pulley circumference.
func BeltSpeedFromRPM(rpm, drivePulleyDia float64) float64 {
	return rpm * math.Pi * drivePulleyDia / 12
}

// RPMFromBeltSpeed is the algebraic inverse of BeltSpeedFromRPM.
func RPMFromBeltSpeed(beltSpeedFPM, drivePulleyDia float64) float64 {
	circ := math.Pi * drivePulleyDia
	if circ <= 0 {
		return 0
	}
	return beltSpeedFPM * 12 / circ
}

// DriveSpeeds resolves belt speed and drive shaft RPM from whichever speed
// mode is active. Feeding equivalent inputs through either mode produces
// numerically consistent results.
func DriveSpeeds(in schema.CanonicalInput) (beltSpeed, driveRPM float64) {
	switch in.SpeedMode {
	case schema.SpeedBelt:
		if in.BeltSpeed != nil {
			beltSpeed = *in.BeltSpeed
		}
		driveRPM = RPMFromBeltSpeed(beltSpeed, in.DrivePulleyDia)
	case schema.SpeedDriveRPM:
		if in.DriveRPM != nil {
			driveRPM = *in.DriveRPM
		}
		beltSpeed = BeltSpeedFromRPM(driveRPM, in.DrivePulleyDia)
	default:
		panic("formula: unknown speed mode: " + string(in.SpeedMode))
	}
	return beltSpeed, driveRPM
}

// GearRatio is the reduction between the motor base speed and the drive
// shaft.
func GearRatio(motorRPM, driveRPM float64) float64 {
	if driveRPM <= 0 {
		return 0
	}
	return motorRPM / driveRPM
}

// Capacity is the throughput at the resolved belt speed: one part passes
// per pitch of belt travel.
func Capacity(beltSpeedFPM, travelDim, spacing float64) float64 {
	pitch := travelDim + spacing
	if pitch <= 0 {
		return 0
	}
	return beltSpeedFPM * 12 / pitch * 60
}

// Throughput holds the optional target-throughput block, computed only when
// a required throughput was supplied.
type Throughput struct {
	Target      float64
	Meets       bool
	RequiredRPM float64
}

// TargetThroughput applies the safety factor to the required throughput and
// determines whether capacity meets it, plus the drive RPM needed to hit
// the target exactly.
func TargetThroughput(required, safetyFactor, capacity, driveRPM float64) Throughput {
	target := required * safetyFactor
	t := Throughput{Target: target, Meets: capacity >= target}
	if capacity > 0 {
		t.RequiredRPM = driveRPM * target / capacity
	}
	return t
}
