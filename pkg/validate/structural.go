package validate

import (
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Structural rules: field presence and range checks whose applicability
// depends on the active modes.

func ruleRequiredDimensions(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	var fs []schema.Finding
	if in.BeltWidth <= 0 {
		fs = append(fs, errorf(schema.KeyBeltWidth, "belt width must be positive"))
	}
	switch in.GeometryMode {
	case schema.GeometryLengthAngle:
		if in.ConveyorLength <= 0 {
			fs = append(fs, errorf(schema.KeyConveyorLength, "conveyor length must be positive"))
		}
	case schema.GeometryHorizontalAngle, schema.GeometryHorizontalTOB:
		if in.HorizontalRun <= 0 {
			fs = append(fs, errorf(schema.KeyHorizontalRun, "horizontal run must be positive"))
		}
	}
	return fs
}

func ruleSpeedModeValue(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	switch in.SpeedMode {
	case schema.SpeedBelt:
		if in.BeltSpeed == nil || *in.BeltSpeed <= 0 {
			return []schema.Finding{errorf(schema.KeyBeltSpeed, "belt speed is required in belt-speed mode")}
		}
	case schema.SpeedDriveRPM:
		if in.DriveRPM == nil || *in.DriveRPM <= 0 {
			return []schema.Finding{errorf(schema.KeyDriveRPM, "drive RPM is required in drive-RPM mode")}
		}
	}
	return nil
}

func ruleCustomFrameHeight(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.FrameHeightMode == schema.FrameCustom && (in.CustomFrameHeight == nil || *in.CustomFrameHeight <= 0) {
		return []schema.Finding{errorf(schema.KeyCustomFrameHeight, "a custom frame height is required in custom frame mode")}
	}
	return nil
}

func ruleVGuideProfile(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.TrackingMethod == schema.TrackingVGuided && (in.VGuideProfile == nil || *in.VGuideProfile == "") {
		return []schema.Finding{errorf(schema.KeyVGuideProfile, "a V-guide profile is required with V-guided tracking")}
	}
	return nil
}

func ruleManualShafts(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.ShaftMode != schema.ShaftManual {
		return nil
	}
	var fs []schema.Finding
	if in.DriveShaftDia == nil || *in.DriveShaftDia <= 0 {
		fs = append(fs, errorf(schema.KeyDriveShaftDia, "a drive shaft diameter is required in manual shaft mode"))
	}
	if in.TailShaftDia == nil || *in.TailShaftDia <= 0 {
		fs = append(fs, errorf(schema.KeyTailShaftDia, "a tail shaft diameter is required in manual shaft mode"))
	}
	return fs
}

// ruleFloorSupportHeights requires top-of-belt heights only in the TOB
// geometry mode. Floor support makes the heights meaningful; without it the
// migration layer has already stripped them and the geometry resolver
// reports the missing data.
func ruleFloorSupportHeights(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.GeometryMode != schema.GeometryHorizontalTOB {
		return nil
	}
	if !in.FloorSupported() {
		return []schema.Finding{errorf(schema.KeySupportDrive, "top-of-belt geometry requires leg or caster support")}
	}
	var fs []schema.Finding
	if in.TOBDrive == nil {
		fs = append(fs, errorf(schema.KeyTOBDrive, "drive-end top-of-belt height is required"))
	}
	if in.TOBTail == nil {
		fs = append(fs, errorf(schema.KeyTOBTail, "tail-end top-of-belt height is required"))
	}
	return fs
}

func ruleCleatFields(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if !in.CleatsEnabled {
		return nil
	}
	var fs []schema.Finding
	if in.CleatHeight == nil || *in.CleatHeight <= 0 {
		fs = append(fs, errorf(schema.KeyCleatHeight, "cleat height must be positive when cleats are enabled"))
	}
	if in.CleatSpacing == nil || *in.CleatSpacing <= 0 {
		fs = append(fs, errorf(schema.KeyCleatSpacing, "cleat spacing must be positive when cleats are enabled"))
	}
	return fs
}
