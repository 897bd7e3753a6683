package migrate

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// step is one idempotent migration transform. Steps receive a private copy
// of the input and may mutate it freely.
type step func(schema.RawInput) schema.RawInput

// steps is the fixed migration order. Reordering changes semantics: support
// migration must precede conditional stripping, and speed/geometry
// defaulting rely on legacy keys still being present.
var steps = []step{
	unifyPulleyDiameters,
	defaultOptionalFeatures,
	migrateSupportMethod,
	stripConditionalFields,
	migrateSpeedMode,
	defaultGeometryMode,
	defaultFrameConstruction,
}

// Migrate upgrades raw into canonical shape. The input map is never
// mutated; the result is a fresh map. Running Migrate on its own output is
// a no-op.
func Migrate(raw schema.RawInput) schema.RawInput {
	out := raw.Clone()
	for _, s := range steps {
		out = s(out)
	}
	return out
}

// Normalize is the full normalization contract: migrate then decode into a
// typed canonical input. It never fails; missing or malformed fields
// surface later as validation findings.
func Normalize(raw schema.RawInput) schema.CanonicalInput {
	return Canonicalize(Migrate(raw))
}

// =============================================================================
// Step 1 - Pulley Diameter Unification
// =============================================================================

// unifyPulleyDiameters derives per-pulley diameters from whatever was
// supplied. When only one source value ever existed (legacy single field, a
// lone per-end value, or the process default) the pair is marked linked so
// the UI keeps them in lockstep.
func unifyPulleyDiameters(in schema.RawInput) schema.RawInput {
	drive, hasDrive := in.Float(schema.KeyDrivePulleyDia)
	tail, hasTail := in.Float(schema.KeyTailPulleyDia)

	switch {
	case hasDrive && hasTail:
		// Fully specified; nothing to derive.
	case hasDrive:
		in[schema.KeyTailPulleyDia] = drive
		in[schema.KeyPulleysLinked] = true
	case hasTail:
		in[schema.KeyDrivePulleyDia] = tail
		in[schema.KeyPulleysLinked] = true
	default:
		dia := schema.DefaultPulleyDiameter
		if legacy, ok := in.Float(schema.KeyLegacyPulleyDia); ok {
			dia = legacy
		}
		in[schema.KeyDrivePulleyDia] = dia
		in[schema.KeyTailPulleyDia] = dia
		in[schema.KeyPulleysLinked] = true
	}

	if !in.Has(schema.KeyPulleysLinked) {
		in[schema.KeyPulleysLinked] = false
	}
	delete(in, schema.KeyLegacyPulleyDia)
	return in
}

// =============================================================================
// Step 2 - Optional Feature Defaulting
// =============================================================================

// defaultOptionalFeatures fills in the mode selectors that gate optional
// field groups. Cleats default to disabled; when disabled, the sub-fields
// are removed (not merely left unset) so CanonicalInput stays minimal.
func defaultOptionalFeatures(in schema.RawInput) schema.RawInput {
	if !in.Has(schema.KeyCleatsEnabled) {
		in[schema.KeyCleatsEnabled] = false
	}
	if enabled, _ := in.Bool(schema.KeyCleatsEnabled); !enabled {
		delete(in, schema.KeyCleatHeight)
		delete(in, schema.KeyCleatSpacing)
	}

	if !in.Has(schema.KeyTrackingMethod) {
		in[schema.KeyTrackingMethod] = string(schema.TrackingCrowned)
	}
	if !in.Has(schema.KeyShaftMode) {
		in[schema.KeyShaftMode] = string(schema.ShaftCalculated)
	}
	if !in.Has(schema.KeyFrameHeightMode) {
		in[schema.KeyFrameHeightMode] = string(schema.FrameStandard)
	}
	if !in.Has(schema.KeyOrientation) {
		in[schema.KeyOrientation] = string(schema.OrientationLengthwise)
	}
	return in
}

// =============================================================================
// Step 3 - Support Method Migration
// =============================================================================

// legacySupportTable maps legacy categorical support values to per-end
// support variants. Unrecognized legacy values map to fixed floor legs, the
// safest variant.
var legacySupportTable = map[string][2]schema.SupportType{
	"legs":        {schema.SupportLegs, schema.SupportLegs},
	"casters":     {schema.SupportCasters, schema.SupportCasters},
	"leg_caster":  {schema.SupportLegs, schema.SupportCasters},
	"ceiling":     {schema.SupportNone, schema.SupportNone},
	"unsupported": {schema.SupportNone, schema.SupportNone},
}

// migrateSupportMethod translates the legacy single support value into the
// per-end fields, defaulting absent ends to floor legs.
func migrateSupportMethod(in schema.RawInput) schema.RawInput {
	if legacy, ok := in.String(schema.KeyLegacySupportMethod); ok {
		pair, known := legacySupportTable[legacy]
		if !known {
			pair = [2]schema.SupportType{schema.SupportLegs, schema.SupportLegs}
		}
		if !in.Has(schema.KeySupportDrive) {
			in[schema.KeySupportDrive] = string(pair[0])
		}
		if !in.Has(schema.KeySupportTail) {
			in[schema.KeySupportTail] = string(pair[1])
		}
	}
	if !in.Has(schema.KeySupportDrive) {
		in[schema.KeySupportDrive] = string(schema.SupportLegs)
	}
	if !in.Has(schema.KeySupportTail) {
		in[schema.KeySupportTail] = string(schema.SupportLegs)
	}
	delete(in, schema.KeyLegacySupportMethod)
	return in
}

// =============================================================================
// Step 4 - Conditional Field Stripping
// =============================================================================

// stripConditionalFields deletes fields whose governing mode does not
// require them. Deleting (rather than ignoring) prevents stale values from
// leaking into validation as if the user had supplied them.
func stripConditionalFields(in schema.RawInput) schema.RawInput {
	driveSupport, _ := in.String(schema.KeySupportDrive)
	tailSupport, _ := in.String(schema.KeySupportTail)
	floor := schema.SupportType(driveSupport).Floor() || schema.SupportType(tailSupport).Floor()
	if !floor {
		delete(in, schema.KeyTOBDrive)
		delete(in, schema.KeyTOBTail)
	}

	if mode, _ := in.String(schema.KeyFrameHeightMode); mode != string(schema.FrameCustom) {
		delete(in, schema.KeyCustomFrameHeight)
	}
	if method, _ := in.String(schema.KeyTrackingMethod); method != string(schema.TrackingVGuided) {
		delete(in, schema.KeyVGuideProfile)
	}
	if mode, _ := in.String(schema.KeyShaftMode); mode != string(schema.ShaftManual) {
		delete(in, schema.KeyDriveShaftDia)
		delete(in, schema.KeyTailShaftDia)
	}
	return in
}

// =============================================================================
// Step 5 - Speed Mode Migration
// =============================================================================

// migrateSpeedMode infers the speed mode from whichever legacy speed field
// is populated and copies the legacy value into the canonical field.
// When no legacy data exists the newer belt-speed mode is the default.
func migrateSpeedMode(in schema.RawInput) schema.RawInput {
	if !in.Has(schema.KeySpeedMode) {
		switch {
		case in.Has(schema.KeyLegacySpeed):
			in[schema.KeySpeedMode] = string(schema.SpeedBelt)
		case in.Has(schema.KeyDriveRPM):
			in[schema.KeySpeedMode] = string(schema.SpeedDriveRPM)
		default:
			in[schema.KeySpeedMode] = string(schema.SpeedBelt)
		}
	}
	if legacy, ok := in.Float(schema.KeyLegacySpeed); ok && !in.Has(schema.KeyBeltSpeed) {
		in[schema.KeyBeltSpeed] = legacy
	}
	delete(in, schema.KeyLegacySpeed)
	return in
}

// =============================================================================
// Step 6 - Geometry Mode Defaulting
// =============================================================================

// defaultGeometryMode defaults to length+angle and derives the horizontal
// run from axis length and angle when it is missing. The derivation here is
// the correct projection; the full reconciliation (including the TOB mode)
// happens in the geometry package.
func defaultGeometryMode(in schema.RawInput) schema.RawInput {
	if !in.Has(schema.KeyGeometryMode) {
		in[schema.KeyGeometryMode] = string(schema.GeometryLengthAngle)
	}
	if !in.Has(schema.KeyInclineAngle) {
		in[schema.KeyInclineAngle] = 0.0
	}
	mode, _ := in.String(schema.KeyGeometryMode)
	if mode == string(schema.GeometryLengthAngle) && !in.Has(schema.KeyHorizontalRun) {
		if length, ok := in.Float(schema.KeyConveyorLength); ok {
			angle, _ := in.Float(schema.KeyInclineAngle)
			in[schema.KeyHorizontalRun] = length * math.Cos(angle*math.Pi/180)
		}
	}
	return in
}

// =============================================================================
// Step 7 - Frame Construction Defaulting
// =============================================================================

// defaultFrameGauge is the standard formed channel gauge.
const defaultFrameGauge = "12"

// defaultFrameConstruction fills in the standard construction pair and
// clears sub-fields that do not apply to the chosen construction type.
func defaultFrameConstruction(in schema.RawInput) schema.RawInput {
	if !in.Has(schema.KeyFrameConstruction) {
		in[schema.KeyFrameConstruction] = string(schema.ConstructionFormedChannel)
	}
	switch ctor, _ := in.String(schema.KeyFrameConstruction); ctor {
	case string(schema.ConstructionFormedChannel):
		if !in.Has(schema.KeyFrameGauge) {
			in[schema.KeyFrameGauge] = defaultFrameGauge
		}
		delete(in, schema.KeyFrameMemberSize)
	case string(schema.ConstructionStructural):
		delete(in, schema.KeyFrameGauge)
	}
	return in
}
