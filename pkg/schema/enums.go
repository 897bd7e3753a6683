package schema

// GeometryMode selects which pair of geometry inputs describes the conveyor
// incline. The three modes are mutually exclusive and mutually derivable;
// the geometry package reconciles whichever is active into one derived form.
type GeometryMode string

const (
	// GeometryLengthAngle supplies axis length and incline angle.
	GeometryLengthAngle GeometryMode = "length_angle"

	// GeometryHorizontalAngle supplies horizontal run and incline angle.
	GeometryHorizontalAngle GeometryMode = "horizontal_angle"

	// GeometryHorizontalTOB supplies horizontal run and both ends'
	// top-of-belt heights.
	GeometryHorizontalTOB GeometryMode = "horizontal_tob"
)

// SpeedMode selects which of the two speed inputs is primary. The other is
// derived through the pulley circumference.
type SpeedMode string

const (
	// SpeedBelt means belt speed (FPM) is supplied and drive RPM is derived.
	SpeedBelt SpeedMode = "belt_speed"

	// SpeedDriveRPM means drive shaft RPM is supplied and belt speed is derived.
	SpeedDriveRPM SpeedMode = "drive_rpm"
)

// FrameHeightMode selects how frame height is determined.
type FrameHeightMode string

const (
	// FrameStandard uses the computed height with a full return-roller allowance.
	FrameStandard FrameHeightMode = "standard"

	// FrameLowProfile drops the return-roller allowance, which forces the
	// belt return over snub rollers.
	FrameLowProfile FrameHeightMode = "low_profile"

	// FrameCustom uses a caller-supplied frame height.
	FrameCustom FrameHeightMode = "custom"
)

// SupportType is the support variant at one conveyor end.
type SupportType string

const (
	SupportLegs    SupportType = "legs"
	SupportCasters SupportType = "casters"
	SupportNone    SupportType = "none"
)

// Floor reports whether this support variant stands on the floor, which is
// what makes top-of-belt heights meaningful.
func (s SupportType) Floor() bool {
	return s == SupportLegs || s == SupportCasters
}

// TrackingMethod is how the belt is kept centered on the pulleys.
type TrackingMethod string

const (
	TrackingCrowned TrackingMethod = "crowned"
	TrackingVGuided TrackingMethod = "v_guided"
)

// FrameConstruction is the frame build style.
type FrameConstruction string

const (
	// ConstructionFormedChannel is sheet steel formed into a channel,
	// parameterized by gauge.
	ConstructionFormedChannel FrameConstruction = "formed_channel"

	// ConstructionStructural is welded structural members, parameterized by
	// member size.
	ConstructionStructural FrameConstruction = "structural"
)

// ShaftMode selects how shaft diameters are determined.
type ShaftMode string

const (
	// ShaftCalculated sizes shafts from the belt width lookup.
	ShaftCalculated ShaftMode = "calculated"

	// ShaftManual echoes caller-supplied diameters.
	ShaftManual ShaftMode = "manual"
)

// Orientation is how parts travel on the belt; it selects which part
// dimension occupies belt travel.
type Orientation string

const (
	OrientationLengthwise Orientation = "lengthwise"
	OrientationCrosswise  Orientation = "crosswise"
)

// Severity classifies a validation finding.
type Severity string

const (
	// SeverityError blocks calculation success.
	SeverityError Severity = "error"

	// SeverityWarning flags a concern without blocking success.
	SeverityWarning Severity = "warning"

	// SeverityInfo is non-blocking advisory guidance.
	SeverityInfo Severity = "info"
)

// Finding is one validation result tied to an input or output field.
type Finding struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
