package migrate

import (
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Canonicalize decodes a migrated raw input into the typed canonical form.
// It is a straight decode with no defaulting of its own: Migrate has
// already filled every mode selector, so a missing numeric here simply
// decodes to zero and is caught by validation.
//
// Mode strings that do not name a known variant decode to the default
// variant for that mode, mirroring how unrecognized legacy support values
// migrate. Exhaustive switches downstream therefore only ever panic for
// programmatically-constructed inputs, which is a programmer error.
func Canonicalize(raw schema.RawInput) schema.CanonicalInput {
	var c schema.CanonicalInput

	c.GeometryMode = geometryMode(raw)
	c.ConveyorLength, _ = raw.Float(schema.KeyConveyorLength)
	c.HorizontalRun, _ = raw.Float(schema.KeyHorizontalRun)
	c.InclineAngle, _ = raw.Float(schema.KeyInclineAngle)
	c.TOBDrive = optFloat(raw, schema.KeyTOBDrive)
	c.TOBTail = optFloat(raw, schema.KeyTOBTail)

	c.DrivePulleyDia, _ = raw.Float(schema.KeyDrivePulleyDia)
	c.TailPulleyDia, _ = raw.Float(schema.KeyTailPulleyDia)
	c.PulleysLinked, _ = raw.Bool(schema.KeyPulleysLinked)

	c.BeltWidth, _ = raw.Float(schema.KeyBeltWidth)
	c.PIWOverride = optFloat(raw, schema.KeyPIWOverride)
	c.PILOverride = optFloat(raw, schema.KeyPILOverride)
	c.BeltPIW = optFloat(raw, schema.KeyBeltPIW)
	c.BeltPIL = optFloat(raw, schema.KeyBeltPIL)

	c.SpeedMode = speedMode(raw)
	c.BeltSpeed = optFloat(raw, schema.KeyBeltSpeed)
	c.DriveRPM = optFloat(raw, schema.KeyDriveRPM)
	c.MotorRPM = optFloat(raw, schema.KeyMotorRPM)

	c.CleatsEnabled, _ = raw.Bool(schema.KeyCleatsEnabled)
	c.CleatHeight = optFloat(raw, schema.KeyCleatHeight)
	c.CleatSpacing = optFloat(raw, schema.KeyCleatSpacing)

	c.SupportDrive = supportType(raw, schema.KeySupportDrive)
	c.SupportTail = supportType(raw, schema.KeySupportTail)

	c.FrameHeightMode = frameHeightMode(raw)
	c.CustomFrameHeight = optFloat(raw, schema.KeyCustomFrameHeight)
	c.FrameConstruction = frameConstruction(raw)
	c.FrameGauge = optString(raw, schema.KeyFrameGauge)
	c.FrameMemberSize = optString(raw, schema.KeyFrameMemberSize)

	c.TrackingMethod = trackingMethod(raw)
	c.VGuideProfile = optString(raw, schema.KeyVGuideProfile)

	c.ShaftMode = shaftMode(raw)
	c.DriveShaftDia = optFloat(raw, schema.KeyDriveShaftDia)
	c.TailShaftDia = optFloat(raw, schema.KeyTailShaftDia)

	c.Orientation = orientation(raw)
	c.PartLength, _ = raw.Float(schema.KeyPartLength)
	c.PartWidth, _ = raw.Float(schema.KeyPartWidth)
	c.PartWeight, _ = raw.Float(schema.KeyPartWeight)
	c.PartSpacing, _ = raw.Float(schema.KeyPartSpacing)

	c.RequiredThroughput = optFloat(raw, schema.KeyRequiredThroughput)
	c.ChainRatio = optFloat(raw, schema.KeyChainRatio)
	c.LumpSmallest = optFloat(raw, schema.KeyLumpSmallest)
	c.LumpLargest = optFloat(raw, schema.KeyLumpLargest)

	c.TubeOD = optFloat(raw, schema.KeyTubeOD)
	c.TubeWall = optFloat(raw, schema.KeyTubeWall)
	c.HubSpacing = optFloat(raw, schema.KeyHubSpacing)

	c.ResidualOil, _ = raw.Bool(schema.KeyResidualOil)

	return c
}

func optFloat(raw schema.RawInput, key string) *float64 {
	if v, ok := raw.Float(key); ok {
		return &v
	}
	return nil
}

func optString(raw schema.RawInput, key string) *string {
	if v, ok := raw.String(key); ok {
		return &v
	}
	return nil
}

func geometryMode(raw schema.RawInput) schema.GeometryMode {
	switch s, _ := raw.String(schema.KeyGeometryMode); schema.GeometryMode(s) {
	case schema.GeometryHorizontalAngle:
		return schema.GeometryHorizontalAngle
	case schema.GeometryHorizontalTOB:
		return schema.GeometryHorizontalTOB
	default:
		return schema.GeometryLengthAngle
	}
}

func speedMode(raw schema.RawInput) schema.SpeedMode {
	if s, _ := raw.String(schema.KeySpeedMode); schema.SpeedMode(s) == schema.SpeedDriveRPM {
		return schema.SpeedDriveRPM
	}
	return schema.SpeedBelt
}

func frameHeightMode(raw schema.RawInput) schema.FrameHeightMode {
	switch s, _ := raw.String(schema.KeyFrameHeightMode); schema.FrameHeightMode(s) {
	case schema.FrameLowProfile:
		return schema.FrameLowProfile
	case schema.FrameCustom:
		return schema.FrameCustom
	default:
		return schema.FrameStandard
	}
}

func frameConstruction(raw schema.RawInput) schema.FrameConstruction {
	if s, _ := raw.String(schema.KeyFrameConstruction); schema.FrameConstruction(s) == schema.ConstructionStructural {
		return schema.ConstructionStructural
	}
	return schema.ConstructionFormedChannel
}

func trackingMethod(raw schema.RawInput) schema.TrackingMethod {
	if s, _ := raw.String(schema.KeyTrackingMethod); schema.TrackingMethod(s) == schema.TrackingVGuided {
		return schema.TrackingVGuided
	}
	return schema.TrackingCrowned
}

func shaftMode(raw schema.RawInput) schema.ShaftMode {
	if s, _ := raw.String(schema.KeyShaftMode); schema.ShaftMode(s) == schema.ShaftManual {
		return schema.ShaftManual
	}
	return schema.ShaftCalculated
}

func supportType(raw schema.RawInput, key string) schema.SupportType {
	switch s, _ := raw.String(key); schema.SupportType(s) {
	case schema.SupportCasters:
		return schema.SupportCasters
	case schema.SupportNone:
		return schema.SupportNone
	default:
		return schema.SupportLegs
	}
}

func orientation(raw schema.RawInput) schema.Orientation {
	if s, _ := raw.String(schema.KeyOrientation); schema.Orientation(s) == schema.OrientationCrosswise {
		return schema.OrientationCrosswise
	}
	return schema.OrientationLengthwise
}
