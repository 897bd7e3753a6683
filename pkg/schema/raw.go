package schema

// =============================================================================
// Field Keys - Single Source of Truth
// =============================================================================

// Current field keys. Lengths and diameters are inches, weights are pounds,
// speeds are feet per minute, throughput is parts per hour.
const (
	KeyGeometryMode   = "geometry_mode"
	KeyConveyorLength = "conveyor_length_in"
	KeyHorizontalRun  = "horizontal_run_in"
	KeyInclineAngle   = "incline_angle_deg"
	KeyTOBDrive       = "tob_drive_in"
	KeyTOBTail        = "tob_tail_in"

	KeyDrivePulleyDia = "drive_pulley_diameter_in"
	KeyTailPulleyDia  = "tail_pulley_diameter_in"
	KeyPulleysLinked  = "pulley_diameters_linked"

	KeyBeltWidth = "belt_width_in"

	KeySpeedMode = "speed_mode"
	KeyBeltSpeed = "belt_speed_fpm"
	KeyDriveRPM  = "drive_rpm"

	KeyCleatsEnabled = "cleats_enabled"
	KeyCleatHeight   = "cleat_height_in"
	KeyCleatSpacing  = "cleat_spacing_in"

	KeySupportDrive = "support_drive"
	KeySupportTail  = "support_tail"

	KeyFrameHeightMode   = "frame_height_mode"
	KeyCustomFrameHeight = "custom_frame_height_in"

	KeyFrameConstruction = "frame_construction"
	KeyFrameGauge        = "frame_gauge"
	KeyFrameMemberSize   = "frame_member_size"

	KeyTrackingMethod = "tracking_method"
	KeyVGuideProfile  = "vguide_profile"

	KeyShaftMode     = "shaft_mode"
	KeyDriveShaftDia = "drive_shaft_diameter_in"
	KeyTailShaftDia  = "tail_shaft_diameter_in"

	KeyOrientation = "orientation"
	KeyPartLength  = "part_length_in"
	KeyPartWidth   = "part_width_in"
	KeyPartWeight  = "part_weight_lb"
	KeyPartSpacing = "part_spacing_in"

	KeyRequiredThroughput = "required_throughput_pph"
	KeyChainRatio         = "chain_ratio"
	KeyLumpSmallest       = "lump_smallest_in"
	KeyLumpLargest        = "lump_largest_in"

	KeyPIWOverride = "piw_override"
	KeyPILOverride = "pil_override"
	KeyBeltPIW     = "belt_piw"
	KeyBeltPIL     = "belt_pil"

	KeyMotorRPM = "motor_rpm"

	KeyTubeOD     = "tube_od_in"
	KeyTubeWall   = "tube_wall_in"
	KeyHubSpacing = "hub_spacing_in"

	KeyResidualOil = "residual_oil"
)

// Legacy field keys from earlier schema revisions. The migrate package
// reconciles these into the current keys; they never survive migration.
const (
	// KeyLegacyPulleyDia carried a single shared diameter before drive and
	// tail pulleys became independently sized.
	KeyLegacyPulleyDia = "pulley_diameter_in"

	// KeyLegacySupportMethod carried a single categorical support value
	// before per-end support fields existed.
	KeyLegacySupportMethod = "support_method"

	// KeyLegacySpeed carried belt speed before speed modes existed.
	KeyLegacySpeed = "speed_fpm"
)

// =============================================================================
// RawInput
// =============================================================================

// RawInput is an open, partially-populated mapping of named engineering
// fields as supplied by external callers. Values follow JSON decoding
// conventions: numbers are float64, booleans are bool, option choices are
// strings. RawInput is ephemeral - it exists only for the duration of one
// calculation call and is never mutated in place.
type RawInput map[string]any

// Clone returns a shallow copy of the input. Migration steps copy before
// writing so the caller's map is never mutated.
func (r RawInput) Clone() RawInput {
	out := make(RawInput, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether key is present, regardless of its value.
func (r RawInput) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Float returns the numeric value for key. Integer values are widened;
// anything else reports absence.
func (r RawInput) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// String returns the string value for key.
func (r RawInput) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Bool returns the boolean value for key.
func (r RawInput) Bool(key string) (bool, bool) {
	b, ok := r[key].(bool)
	return b, ok
}
