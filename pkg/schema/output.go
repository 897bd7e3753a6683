package schema

import "encoding/json"

// TubeStressStatus is the tri-state result of the optional PCI tube-stress
// block.
type TubeStressStatus string

const (
	// TubeStressOK means tube geometry was supplied and stress was computed.
	TubeStressOK TubeStressStatus = "ok"

	// TubeStressIncomplete means tube geometry was not (fully) supplied.
	TubeStressIncomplete TubeStressStatus = "incomplete"

	// TubeStressError means tube geometry was supplied but is physically
	// impossible (wall thickness at or beyond the outer radius).
	TubeStressError TubeStressStatus = "error"
)

// Output is the full set of computed engineering quantities. Every field is
// a plain value; no two fields alias mutable state, so an Output can be
// copied and serialized freely. Optional blocks (throughput target, tube
// stress) use pointers so absent results do not masquerade as zeros.
type Output struct {
	// Geometry echo
	ConveyorLength float64 `json:"conveyor_length_in"`
	HorizontalRun  float64 `json:"horizontal_run_in"`
	Rise           float64 `json:"rise_in"`
	InclineAngle   float64 `json:"incline_angle_deg"`

	// Belt
	PIW        float64 `json:"piw"`
	PIL        float64 `json:"pil"`
	BeltLength float64 `json:"belt_length_in"`
	BeltWeight float64 `json:"belt_weight_lb"`

	// Load
	PartsOnBelt  int     `json:"parts_on_belt"`
	LoadOnBelt   float64 `json:"load_on_belt_lb"`
	TotalLoad    float64 `json:"total_load_lb"`
	AvgLoadPerFt float64 `json:"avg_load_per_ft_lb"`

	// Pulls
	FrictionPull  float64 `json:"friction_pull_lb"`
	InclinePull   float64 `json:"incline_pull_lb"`
	TotalBeltPull float64 `json:"total_belt_pull_lb"`

	// Drive
	BeltSpeed     float64 `json:"belt_speed_fpm"`
	DriveShaftRPM float64 `json:"drive_shaft_rpm"`
	GearRatio     float64 `json:"gear_ratio"`

	// Throughput
	Capacity    float64  `json:"capacity_pph"`
	TargetPPH   *float64 `json:"target_pph,omitempty"`
	MeetsTarget *bool    `json:"meets_target,omitempty"`
	RequiredRPM *float64 `json:"required_rpm,omitempty"`

	// Pulley face
	PulleyFaceLength float64 `json:"pulley_face_length_in"`
	CrownRequired    bool    `json:"crown_required"`

	// Shafts
	DriveShaftDia float64 `json:"drive_shaft_diameter_in"`
	TailShaftDia  float64 `json:"tail_shaft_diameter_in"`

	// Frame
	FrameHeightRequired  float64 `json:"frame_height_required_in"`
	FrameHeightReference float64 `json:"frame_height_reference_in"`
	SnubRollersRequired  bool    `json:"snub_rollers_required"`

	// Rollers
	GravityRollerCount int `json:"gravity_roller_count"`
	SnubRollerCount    int `json:"snub_roller_count"`

	// PCI tube stress
	TubeStressStatus  TubeStressStatus `json:"tube_stress_status"`
	TubeStress        *float64         `json:"tube_stress_psi,omitempty"`
	TubeStressMessage string           `json:"tube_stress_message,omitempty"`
}

// Fields flattens the output into a field-name map keyed by json tag.
// The fixture comparator addresses expected values by these names.
func (o *Output) Fields() map[string]any {
	data, err := json.Marshal(o)
	if err != nil {
		panic("schema: marshal output: " + err.Error())
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		panic("schema: unmarshal output: " + err.Error())
	}
	return m
}
