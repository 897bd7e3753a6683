package schema

// CanonicalInput is the fully-normalized, internally-consistent form of a
// RawInput. Every field required by the active modes is present, legacy
// fields have been reconciled, and fields that are meaningless for the
// active modes are absent (nil), not merely ignored. It is produced once
// per call by migrate.Normalize and never mutated afterwards.
//
// Optional fields use pointers so that "absent" and "zero" stay
// distinguishable for the validation engine.
type CanonicalInput struct {
	// Geometry
	GeometryMode   GeometryMode `json:"geometry_mode"`
	ConveyorLength float64      `json:"conveyor_length_in"`
	HorizontalRun  float64      `json:"horizontal_run_in"`
	InclineAngle   float64      `json:"incline_angle_deg"`
	TOBDrive       *float64     `json:"tob_drive_in,omitempty"`
	TOBTail        *float64     `json:"tob_tail_in,omitempty"`

	// Pulleys
	DrivePulleyDia float64 `json:"drive_pulley_diameter_in"`
	TailPulleyDia  float64 `json:"tail_pulley_diameter_in"`
	PulleysLinked  bool    `json:"pulley_diameters_linked"`

	// Belt
	BeltWidth   float64  `json:"belt_width_in"`
	PIWOverride *float64 `json:"piw_override,omitempty"`
	PILOverride *float64 `json:"pil_override,omitempty"`
	BeltPIW     *float64 `json:"belt_piw,omitempty"`
	BeltPIL     *float64 `json:"belt_pil,omitempty"`

	// Speed
	SpeedMode SpeedMode `json:"speed_mode"`
	BeltSpeed *float64  `json:"belt_speed_fpm,omitempty"`
	DriveRPM  *float64  `json:"drive_rpm,omitempty"`
	MotorRPM  *float64  `json:"motor_rpm,omitempty"`

	// Cleats
	CleatsEnabled bool     `json:"cleats_enabled"`
	CleatHeight   *float64 `json:"cleat_height_in,omitempty"`
	CleatSpacing  *float64 `json:"cleat_spacing_in,omitempty"`

	// Support
	SupportDrive SupportType `json:"support_drive"`
	SupportTail  SupportType `json:"support_tail"`

	// Frame
	FrameHeightMode   FrameHeightMode   `json:"frame_height_mode"`
	CustomFrameHeight *float64          `json:"custom_frame_height_in,omitempty"`
	FrameConstruction FrameConstruction `json:"frame_construction"`
	FrameGauge        *string           `json:"frame_gauge,omitempty"`
	FrameMemberSize   *string           `json:"frame_member_size,omitempty"`

	// Tracking
	TrackingMethod TrackingMethod `json:"tracking_method"`
	VGuideProfile  *string        `json:"vguide_profile,omitempty"`

	// Shafts
	ShaftMode     ShaftMode `json:"shaft_mode"`
	DriveShaftDia *float64  `json:"drive_shaft_diameter_in,omitempty"`
	TailShaftDia  *float64  `json:"tail_shaft_diameter_in,omitempty"`

	// Load
	Orientation Orientation `json:"orientation"`
	PartLength  float64     `json:"part_length_in"`
	PartWidth   float64     `json:"part_width_in"`
	PartWeight  float64     `json:"part_weight_lb"`
	PartSpacing float64     `json:"part_spacing_in"`

	// Optional engineering inputs
	RequiredThroughput *float64 `json:"required_throughput_pph,omitempty"`
	ChainRatio         *float64 `json:"chain_ratio,omitempty"`
	LumpSmallest       *float64 `json:"lump_smallest_in,omitempty"`
	LumpLargest        *float64 `json:"lump_largest_in,omitempty"`

	// PCI tube geometry (optional)
	TubeOD     *float64 `json:"tube_od_in,omitempty"`
	TubeWall   *float64 `json:"tube_wall_in,omitempty"`
	HubSpacing *float64 `json:"hub_spacing_in,omitempty"`

	// Advisory flags
	ResidualOil bool `json:"residual_oil,omitempty"`
}

// MaxPulleyDia returns the larger of the two pulley diameters.
func (c *CanonicalInput) MaxPulleyDia() float64 {
	if c.TailPulleyDia > c.DrivePulleyDia {
		return c.TailPulleyDia
	}
	return c.DrivePulleyDia
}

// TravelDim returns the part dimension that occupies belt travel for the
// active orientation.
func (c *CanonicalInput) TravelDim() float64 {
	switch c.Orientation {
	case OrientationLengthwise:
		return c.PartLength
	case OrientationCrosswise:
		return c.PartWidth
	default:
		panic("schema: unknown orientation: " + string(c.Orientation))
	}
}

// FloorSupported reports whether either end stands on the floor.
func (c *CanonicalInput) FloorSupported() bool {
	return c.SupportDrive.Floor() || c.SupportTail.Floor()
}
