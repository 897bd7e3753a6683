package schema

// =============================================================================
// Default Constants - Single Source of Truth
// =============================================================================

const (
	// DefaultPulleyDiameter is assumed when no pulley diameter is supplied.
	DefaultPulleyDiameter = 4.0

	// DefaultFriction is the sliderbed friction coefficient. It is applied
	// to the full load regardless of incline, a deliberately conservative
	// choice inherited from the reference spreadsheet.
	DefaultFriction = 0.30

	// DefaultStartingPull is the fixed starting pull added to total belt
	// pull (lb).
	DefaultStartingPull = 25.0

	// DefaultSafetyFactor is the margin applied to required throughput.
	DefaultSafetyFactor = 1.25

	// DefaultMotorRPM is the motor base speed used for gear ratio.
	DefaultMotorRPM = 1750.0
)

// Parameters is the bundle of engineering constants consumed by the formula
// pipeline and the validation engine. Defaults are process-wide constants
// from DefaultParameters; overrides are call-scoped via Overrides. Nothing
// here is ever mutated after construction.
type Parameters struct {
	// Formula constants
	Friction           float64 `json:"friction" toml:"friction"`
	StartingPull       float64 `json:"starting_pull_lb" toml:"starting_pull_lb"`
	SafetyFactor       float64 `json:"safety_factor" toml:"safety_factor"`
	MotorRPM           float64 `json:"motor_rpm" toml:"motor_rpm"`
	DefaultPIW         float64 `json:"default_piw" toml:"default_piw"`
	DefaultPIL         float64 `json:"default_pil" toml:"default_pil"`
	LightBeltPIW       float64 `json:"light_belt_piw" toml:"light_belt_piw"`
	LightBeltPIL       float64 `json:"light_belt_pil" toml:"light_belt_pil"`
	LightBeltPulleyMax float64 `json:"light_belt_pulley_max_in" toml:"light_belt_pulley_max_in"`

	// Frame and roller constants
	ReturnRollerAllowance float64 `json:"return_roller_allowance_in" toml:"return_roller_allowance_in"`
	FrameClearance        float64 `json:"frame_clearance_in" toml:"frame_clearance_in"`
	SnubMargin            float64 `json:"snub_margin_in" toml:"snub_margin_in"`
	RollerSpacing         float64 `json:"roller_spacing_in" toml:"roller_spacing_in"`
	CrownedFaceAllowance  float64 `json:"crowned_face_allowance_in" toml:"crowned_face_allowance_in"`
	VGuidedFaceAllowance  float64 `json:"vguided_face_allowance_in" toml:"vguided_face_allowance_in"`

	// Validation thresholds
	MaxIncline       float64 `json:"max_incline_deg" toml:"max_incline_deg"`
	InclineWarnHigh  float64 `json:"incline_warn_high_deg" toml:"incline_warn_high_deg"`
	InclineWarnLow   float64 `json:"incline_warn_low_deg" toml:"incline_warn_low_deg"`
	AngleMismatchTol float64 `json:"angle_mismatch_tol_deg" toml:"angle_mismatch_tol_deg"`
	ChainRatioMin    float64 `json:"chain_ratio_min" toml:"chain_ratio_min"`
	ChainRatioMax    float64 `json:"chain_ratio_max" toml:"chain_ratio_max"`
	PulleyDiaMin     float64 `json:"pulley_dia_min_in" toml:"pulley_dia_min_in"`
	PulleyDiaMax     float64 `json:"pulley_dia_max_in" toml:"pulley_dia_max_in"`
	ShaftDiaMin      float64 `json:"shaft_dia_min_in" toml:"shaft_dia_min_in"`
	ShaftDiaMax      float64 `json:"shaft_dia_max_in" toml:"shaft_dia_max_in"`
}

// DefaultParameters returns the process-wide default constants. The values
// reproduce the legacy spreadsheet and must not drift without a fixture
// update.
func DefaultParameters() Parameters {
	return Parameters{
		Friction:           DefaultFriction,
		StartingPull:       DefaultStartingPull,
		SafetyFactor:       DefaultSafetyFactor,
		MotorRPM:           DefaultMotorRPM,
		DefaultPIW:         0.022,
		DefaultPIL:         0.10,
		LightBeltPIW:       0.012,
		LightBeltPIL:       0.05,
		LightBeltPulleyMax: 2.5,

		ReturnRollerAllowance: 1.9,
		FrameClearance:        1.0,
		SnubMargin:            2.5,
		RollerSpacing:         24.0,
		CrownedFaceAllowance:  2.0,
		VGuidedFaceAllowance:  1.0,

		MaxIncline:       30.0,
		InclineWarnHigh:  25.0,
		InclineWarnLow:   20.0,
		AngleMismatchTol: 0.5,
		ChainRatioMin:    0.5,
		ChainRatioMax:    4.0,
		PulleyDiaMin:     1.5,
		PulleyDiaMax:     12.0,
		ShaftDiaMin:      0.5,
		ShaftDiaMax:      3.9375,
	}
}

// Overrides is a partial Parameters. Nil fields keep the default; non-nil
// fields replace it for the scope of one call.
type Overrides struct {
	Friction           *float64 `json:"friction,omitempty" toml:"friction"`
	StartingPull       *float64 `json:"starting_pull_lb,omitempty" toml:"starting_pull_lb"`
	SafetyFactor       *float64 `json:"safety_factor,omitempty" toml:"safety_factor"`
	MotorRPM           *float64 `json:"motor_rpm,omitempty" toml:"motor_rpm"`
	DefaultPIW         *float64 `json:"default_piw,omitempty" toml:"default_piw"`
	DefaultPIL         *float64 `json:"default_pil,omitempty" toml:"default_pil"`
	LightBeltPIW       *float64 `json:"light_belt_piw,omitempty" toml:"light_belt_piw"`
	LightBeltPIL       *float64 `json:"light_belt_pil,omitempty" toml:"light_belt_pil"`
	LightBeltPulleyMax *float64 `json:"light_belt_pulley_max_in,omitempty" toml:"light_belt_pulley_max_in"`

	ReturnRollerAllowance *float64 `json:"return_roller_allowance_in,omitempty" toml:"return_roller_allowance_in"`
	FrameClearance        *float64 `json:"frame_clearance_in,omitempty" toml:"frame_clearance_in"`
	SnubMargin            *float64 `json:"snub_margin_in,omitempty" toml:"snub_margin_in"`
	RollerSpacing         *float64 `json:"roller_spacing_in,omitempty" toml:"roller_spacing_in"`
	CrownedFaceAllowance  *float64 `json:"crowned_face_allowance_in,omitempty" toml:"crowned_face_allowance_in"`
	VGuidedFaceAllowance  *float64 `json:"vguided_face_allowance_in,omitempty" toml:"vguided_face_allowance_in"`

	MaxIncline       *float64 `json:"max_incline_deg,omitempty" toml:"max_incline_deg"`
	InclineWarnHigh  *float64 `json:"incline_warn_high_deg,omitempty" toml:"incline_warn_high_deg"`
	InclineWarnLow   *float64 `json:"incline_warn_low_deg,omitempty" toml:"incline_warn_low_deg"`
	AngleMismatchTol *float64 `json:"angle_mismatch_tol_deg,omitempty" toml:"angle_mismatch_tol_deg"`
	ChainRatioMin    *float64 `json:"chain_ratio_min,omitempty" toml:"chain_ratio_min"`
	ChainRatioMax    *float64 `json:"chain_ratio_max,omitempty" toml:"chain_ratio_max"`
	PulleyDiaMin     *float64 `json:"pulley_dia_min_in,omitempty" toml:"pulley_dia_min_in"`
	PulleyDiaMax     *float64 `json:"pulley_dia_max_in,omitempty" toml:"pulley_dia_max_in"`
	ShaftDiaMin      *float64 `json:"shaft_dia_min_in,omitempty" toml:"shaft_dia_min_in"`
	ShaftDiaMax      *float64 `json:"shaft_dia_max_in,omitempty" toml:"shaft_dia_max_in"`
}

// Apply returns a copy of p with every non-nil override substituted.
func (o *Overrides) Apply(p Parameters) Parameters {
	if o == nil {
		return p
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Friction, o.Friction)
	set(&p.StartingPull, o.StartingPull)
	set(&p.SafetyFactor, o.SafetyFactor)
	set(&p.MotorRPM, o.MotorRPM)
	set(&p.DefaultPIW, o.DefaultPIW)
	set(&p.DefaultPIL, o.DefaultPIL)
	set(&p.LightBeltPIW, o.LightBeltPIW)
	set(&p.LightBeltPIL, o.LightBeltPIL)
	set(&p.LightBeltPulleyMax, o.LightBeltPulleyMax)
	set(&p.ReturnRollerAllowance, o.ReturnRollerAllowance)
	set(&p.FrameClearance, o.FrameClearance)
	set(&p.SnubMargin, o.SnubMargin)
	set(&p.RollerSpacing, o.RollerSpacing)
	set(&p.CrownedFaceAllowance, o.CrownedFaceAllowance)
	set(&p.VGuidedFaceAllowance, o.VGuidedFaceAllowance)
	set(&p.MaxIncline, o.MaxIncline)
	set(&p.InclineWarnHigh, o.InclineWarnHigh)
	set(&p.InclineWarnLow, o.InclineWarnLow)
	set(&p.AngleMismatchTol, o.AngleMismatchTol)
	set(&p.ChainRatioMin, o.ChainRatioMin)
	set(&p.ChainRatioMax, o.ChainRatioMax)
	set(&p.PulleyDiaMin, o.PulleyDiaMin)
	set(&p.PulleyDiaMax, o.PulleyDiaMax)
	set(&p.ShaftDiaMin, o.ShaftDiaMin)
	set(&p.ShaftDiaMax, o.ShaftDiaMax)
	return p
}
