package formula

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/geometry"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Calculate runs the full formula pipeline in its fixed dependency order
// and returns every engineering output. The geometry must already be
// resolved; an invalid geometry still calculates (with its safe zero
// numerics) so failed configurations keep their diagnostics.
func Calculate(in schema.CanonicalInput, p schema.Parameters, geo geometry.Derived) schema.Output {
	var out schema.Output

	// Geometry echo
	out.ConveyorLength = geo.ConveyorLength
	out.HorizontalRun = geo.HorizontalRun
	out.Rise = geo.Rise
	out.InclineAngle = geo.InclineAngle

	// Belt
	out.PIW, out.PIL = BeltCoefficients(in, p)
	out.BeltLength = BeltLength(geo.ConveyorLength, in.DrivePulleyDia)
	out.BeltWeight = BeltWeight(out.BeltLength, in.BeltWidth, out.PIW, out.PIL)

	// Load
	out.PartsOnBelt = PartsOnBelt(geo.ConveyorLength, in.TravelDim(), in.PartSpacing)
	out.LoadOnBelt = LoadOnBelt(out.PartsOnBelt, in.PartWeight)
	out.TotalLoad = TotalLoad(out.LoadOnBelt, out.BeltWeight)
	out.AvgLoadPerFt = AvgLoadPerFt(out.TotalLoad, geo.ConveyorLength)

	// Pulls
	out.FrictionPull = FrictionPull(out.TotalLoad, p.Friction)
	out.InclinePull = InclinePull(out.TotalLoad, geo.InclineAngle)
	out.TotalBeltPull = TotalBeltPull(out.FrictionPull, out.InclinePull, p.StartingPull)

	// Drive
	out.BeltSpeed, out.DriveShaftRPM = DriveSpeeds(in)
	motorRPM := p.MotorRPM
	if in.MotorRPM != nil {
		motorRPM = *in.MotorRPM
	}
	out.GearRatio = GearRatio(motorRPM, out.DriveShaftRPM)

	// Throughput
	out.Capacity = Capacity(out.BeltSpeed, in.TravelDim(), in.PartSpacing)
	if in.RequiredThroughput != nil {
		t := TargetThroughput(*in.RequiredThroughput, p.SafetyFactor, out.Capacity, out.DriveShaftRPM)
		out.TargetPPH = &t.Target
		out.MeetsTarget = &t.Meets
		out.RequiredRPM = &t.RequiredRPM
	}

	// Pulley face
	out.PulleyFaceLength, out.CrownRequired = PulleyFace(in, p)

	// Shafts
	out.DriveShaftDia, out.TailShaftDia = ShaftDiameters(in)

	// Frame and rollers
	out.FrameHeightRequired, out.FrameHeightReference = FrameHeights(in, p)
	out.SnubRollersRequired = SnubRequired(out.FrameHeightReference, in.MaxPulleyDia(), p.SnubMargin)
	snubsPresent := out.SnubRollersRequired || in.FrameHeightMode == schema.FrameLowProfile
	out.GravityRollerCount, out.SnubRollerCount = RollerCounts(geo.ConveyorLength, p.RollerSpacing, snubsPresent)

	// PCI tube stress
	tube := TubeStress(in, out.TotalBeltPull)
	out.TubeStressStatus = tube.Status
	out.TubeStressMessage = tube.Message
	if tube.Status == schema.TubeStressOK {
		stress := tube.Stress
		out.TubeStress = &stress
	}

	return out
}

// Stage describes one pipeline stage and its upstream dependencies. The
// graph command renders this as a DOT diagram; tests pin the order.
type Stage struct {
	Name      string
	DependsOn []string
}

// Stages returns the fixed dependency order of the pipeline.
func Stages() []Stage {
	return []Stage{
		{Name: "geometry"},
		{Name: "belt_coefficients"},
		{Name: "belt_length", DependsOn: []string{"geometry"}},
		{Name: "belt_weight", DependsOn: []string{"belt_length", "belt_coefficients"}},
		{Name: "load", DependsOn: []string{"geometry", "belt_weight"}},
		{Name: "pulls", DependsOn: []string{"load", "geometry"}},
		{Name: "drive_speeds"},
		{Name: "throughput", DependsOn: []string{"drive_speeds"}},
		{Name: "pulley_face"},
		{Name: "shafts"},
		{Name: "frame_height"},
		{Name: "rollers", DependsOn: []string{"geometry", "frame_height"}},
		{Name: "tube_stress", DependsOn: []string{"pulls"}},
	}
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
