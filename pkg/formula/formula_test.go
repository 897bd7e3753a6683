package formula

import (
	"math"
	"testing"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/geometry"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// straightRun is the 120-inch horizontal baseline used across tests.
func straightRun() schema.CanonicalInput {
	speed := 60.0
	return schema.CanonicalInput{
		GeometryMode:      schema.GeometryLengthAngle,
		ConveyorLength:    120,
		InclineAngle:      0,
		DrivePulleyDia:    4,
		TailPulleyDia:     4,
		BeltWidth:         18,
		SpeedMode:         schema.SpeedBelt,
		BeltSpeed:         &speed,
		Orientation:       schema.OrientationLengthwise,
		PartLength:        12,
		PartWidth:         6,
		PartWeight:        5,
		PartSpacing:       12,
		SupportDrive:      schema.SupportLegs,
		SupportTail:       schema.SupportLegs,
		FrameHeightMode:   schema.FrameStandard,
		FrameConstruction: schema.ConstructionFormedChannel,
		TrackingMethod:    schema.TrackingCrowned,
		ShaftMode:         schema.ShaftCalculated,
	}
}

func TestBeltLength(t *testing.T) {
	got := BeltLength(100, 2.5)
	want := 200 + math.Pi*2.5
	if !approx(got, want, 1e-9) {
		t.Errorf("BeltLength(100, 2.5) = %v, want %v", got, want)
	}
}

func TestBeltCoefficients(t *testing.T) {
	p := schema.DefaultParameters()
	piwOverride := 0.03
	catalogPIW := 0.025

	tests := []struct {
		name    string
		in      schema.CanonicalInput
		wantPIW float64
		wantPIL float64
	}{
		{
			name:    "standard pulley uses defaults",
			in:      schema.CanonicalInput{DrivePulleyDia: 4, TailPulleyDia: 4},
			wantPIW: p.DefaultPIW, wantPIL: p.DefaultPIL,
		},
		{
			name:    "small pulley uses light belt pair",
			in:      schema.CanonicalInput{DrivePulleyDia: 2, TailPulleyDia: 2},
			wantPIW: p.LightBeltPIW, wantPIL: p.LightBeltPIL,
		},
		{
			name:    "catalog value beats conditioned default",
			in:      schema.CanonicalInput{DrivePulleyDia: 4, TailPulleyDia: 4, BeltPIW: &catalogPIW},
			wantPIW: catalogPIW, wantPIL: p.DefaultPIL,
		},
		{
			name: "explicit override beats catalog",
			in: schema.CanonicalInput{
				DrivePulleyDia: 4, TailPulleyDia: 4,
				BeltPIW: &catalogPIW, PIWOverride: &piwOverride,
			},
			wantPIW: piwOverride, wantPIL: p.DefaultPIL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piw, pil := BeltCoefficients(tt.in, p)
			if piw != tt.wantPIW || pil != tt.wantPIL {
				t.Errorf("BeltCoefficients = %v/%v, want %v/%v", piw, pil, tt.wantPIW, tt.wantPIL)
			}
		})
	}
}

// Small pulleys select the light-belt parameter pair even when the
// standard pair has been overridden; thin-belt configurations are tuned
// through the light-belt parameters themselves.
func TestBeltCoefficientsSmallPulleyWithOverriddenDefaults(t *testing.T) {
	p := schema.DefaultParameters()
	p.DefaultPIW, p.DefaultPIL = 0.040, 0.20

	in := schema.CanonicalInput{DrivePulleyDia: 2, TailPulleyDia: 2}
	piw, pil := BeltCoefficients(in, p)
	if piw != p.LightBeltPIW || pil != p.LightBeltPIL {
		t.Errorf("BeltCoefficients = %v/%v, want light pair %v/%v", piw, pil, p.LightBeltPIW, p.LightBeltPIL)
	}

	p.LightBeltPIW, p.LightBeltPIL = 0.015, 0.06
	piw, pil = BeltCoefficients(in, p)
	if piw != 0.015 || pil != 0.06 {
		t.Errorf("BeltCoefficients = %v/%v, want overridden light pair 0.015/0.06", piw, pil)
	}
}

func TestPartsOnBelt(t *testing.T) {
	tests := []struct {
		name    string
		length  float64
		travel  float64
		spacing float64
		want    int
	}{
		{"exact pitch multiple", 120, 12, 12, 5},
		{"rounds down", 119, 12, 12, 4},
		{"zero pitch", 120, 0, 0, 0},
		{"part longer than belt", 10, 12, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartsOnBelt(tt.length, tt.travel, tt.spacing); got != tt.want {
				t.Errorf("PartsOnBelt(%v, %v, %v) = %d, want %d", tt.length, tt.travel, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestDriveSpeedsModesAgree(t *testing.T) {
	rpm := 100.0
	speed := BeltSpeedFromRPM(rpm, 4) // 100*pi*4/12

	bySpeed := straightRun()
	bySpeed.SpeedMode = schema.SpeedBelt
	bySpeed.BeltSpeed = &speed

	byRPM := straightRun()
	byRPM.SpeedMode = schema.SpeedDriveRPM
	byRPM.BeltSpeed = nil
	byRPM.DriveRPM = &rpm

	s1, r1 := DriveSpeeds(bySpeed)
	s2, r2 := DriveSpeeds(byRPM)

	if !approx(s1, s2, 1e-9) {
		t.Errorf("belt speeds differ: %v vs %v", s1, s2)
	}
	if !approx(r1, r2, 1e-9) {
		t.Errorf("drive RPMs differ: %v vs %v", r1, r2)
	}
	if !approx(r1, rpm, 1e-9) {
		t.Errorf("round-tripped RPM = %v, want %v", r1, rpm)
	}
}

func TestDriveSpeedsUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DriveSpeeds with unknown mode did not panic")
		}
	}()
	in := straightRun()
	in.SpeedMode = "warp"
	DriveSpeeds(in)
}

func TestTargetThroughput(t *testing.T) {
	// capacity 1800 pph at 57.3 rpm; need 1000 pph with 1.25 safety
	got := TargetThroughput(1000, 1.25, 1800, 57.3)
	if got.Target != 1250 {
		t.Errorf("Target = %v, want 1250", got.Target)
	}
	if !got.Meets {
		t.Error("Meets = false, want true")
	}
	if want := 57.3 * 1250 / 1800; !approx(got.RequiredRPM, want, 1e-9) {
		t.Errorf("RequiredRPM = %v, want %v", got.RequiredRPM, want)
	}

	// Demand beyond capacity
	short := TargetThroughput(2000, 1.25, 1800, 57.3)
	if short.Meets {
		t.Error("Meets = true for demand beyond capacity")
	}
}

func TestPulleyFace(t *testing.T) {
	p := schema.DefaultParameters()

	crowned := straightRun()
	face, crown := PulleyFace(crowned, p)
	if face != 20 || !crown {
		t.Errorf("crowned face = %v/%v, want 20/true", face, crown)
	}

	vguided := straightRun()
	vguided.TrackingMethod = schema.TrackingVGuided
	face, crown = PulleyFace(vguided, p)
	if face != 19 || crown {
		t.Errorf("v-guided face = %v/%v, want 19/false", face, crown)
	}
}

func TestFrameHeights(t *testing.T) {
	p := schema.DefaultParameters()
	cleat := 1.5
	custom := 8.0

	tests := []struct {
		name          string
		mutate        func(*schema.CanonicalInput)
		wantRequired  float64
		wantReference float64
	}{
		{
			name:          "standard",
			mutate:        func(in *schema.CanonicalInput) {},
			wantRequired:  4 + 1.9,
			wantReference: 4 + 1.9 + 1.0,
		},
		{
			name: "cleats add twice their height",
			mutate: func(in *schema.CanonicalInput) {
				in.CleatsEnabled = true
				in.CleatHeight = &cleat
			},
			wantRequired:  4 + 3 + 1.9,
			wantReference: 4 + 3 + 1.9 + 1.0,
		},
		{
			name: "low profile drops the allowance",
			mutate: func(in *schema.CanonicalInput) {
				in.FrameHeightMode = schema.FrameLowProfile
			},
			wantRequired:  4,
			wantReference: 5,
		},
		{
			name: "custom reference is caller supplied",
			mutate: func(in *schema.CanonicalInput) {
				in.FrameHeightMode = schema.FrameCustom
				in.CustomFrameHeight = &custom
			},
			wantRequired:  4 + 1.9,
			wantReference: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := straightRun()
			tt.mutate(&in)
			required, reference := FrameHeights(in, p)
			if !approx(required, tt.wantRequired, 1e-9) {
				t.Errorf("required = %v, want %v", required, tt.wantRequired)
			}
			if !approx(reference, tt.wantReference, 1e-9) {
				t.Errorf("reference = %v, want %v", reference, tt.wantReference)
			}
		})
	}
}

func TestSnubRequiredBoundary(t *testing.T) {
	tests := []struct {
		name      string
		reference float64
		want      bool
	}{
		{"well above threshold", 10, false},
		{"exactly at threshold", 6.5, false},
		{"just below threshold", 6.499, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnubRequired(tt.reference, 4, 2.5); got != tt.want {
				t.Errorf("SnubRequired(%v, 4, 2.5) = %v, want %v", tt.reference, got, tt.want)
			}
		})
	}
}

func TestRollerCounts(t *testing.T) {
	tests := []struct {
		name        string
		length      float64
		spacing     float64
		snubs       bool
		wantGravity int
		wantSnub    int
	}{
		{"no snubs full positions", 120, 24, false, 6, 0},
		{"snubs take the ends", 120, 24, true, 4, 2},
		{"short conveyor floor of two", 10, 24, false, 2, 0},
		{"short conveyor with snubs", 10, 24, true, 0, 2},
		{"zero length", 0, 24, false, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gravity, snub := RollerCounts(tt.length, tt.spacing, tt.snubs)
			if gravity != tt.wantGravity || snub != tt.wantSnub {
				t.Errorf("RollerCounts(%v, %v, %v) = %d/%d, want %d/%d",
					tt.length, tt.spacing, tt.snubs, gravity, snub, tt.wantGravity, tt.wantSnub)
			}
		})
	}
}

func TestShaftDiameters(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{12, 1.1875},
		{18, 1.1875},
		{24, 1.4375},
		{30, 1.4375},
		{42, 1.6875},
		{48, 1.9375},
	}

	for _, tt := range tests {
		if got := CalculatedShaftDia(tt.width); got != tt.want {
			t.Errorf("CalculatedShaftDia(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}

	manual := straightRun()
	manual.ShaftMode = schema.ShaftManual
	d, tl := 2.0, 1.5
	manual.DriveShaftDia = &d
	manual.TailShaftDia = &tl
	drive, tail := ShaftDiameters(manual)
	if drive != 2.0 || tail != 1.5 {
		t.Errorf("manual shafts = %v/%v, want 2/1.5", drive, tail)
	}
}

func TestTubeStress(t *testing.T) {
	od, wall, span := 4.0, 0.25, 40.0
	thick := 2.0

	tests := []struct {
		name       string
		mutate     func(*schema.CanonicalInput)
		wantStatus schema.TubeStressStatus
	}{
		{
			name:       "missing geometry is incomplete",
			mutate:     func(in *schema.CanonicalInput) {},
			wantStatus: schema.TubeStressIncomplete,
		},
		{
			name: "partial geometry is incomplete",
			mutate: func(in *schema.CanonicalInput) {
				in.TubeOD = &od
			},
			wantStatus: schema.TubeStressIncomplete,
		},
		{
			name: "full geometry computes",
			mutate: func(in *schema.CanonicalInput) {
				in.TubeOD, in.TubeWall, in.HubSpacing = &od, &wall, &span
			},
			wantStatus: schema.TubeStressOK,
		},
		{
			name: "wall at outer radius is an error",
			mutate: func(in *schema.CanonicalInput) {
				in.TubeOD, in.TubeWall, in.HubSpacing = &od, &thick, &span
			},
			wantStatus: schema.TubeStressError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := straightRun()
			tt.mutate(&in)
			got := TubeStress(in, 70.0)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if tt.wantStatus == schema.TubeStressError && got.Message == "" {
				t.Error("error status carries no message")
			}
		})
	}
}

func TestTubeStressValue(t *testing.T) {
	od, wall, span := 4.0, 0.25, 40.0
	in := straightRun()
	in.TubeOD, in.TubeWall, in.HubSpacing = &od, &wall, &span

	got := TubeStress(in, 70.0)
	if got.Status != schema.TubeStressOK {
		t.Fatalf("Status = %v", got.Status)
	}

	id := od - 2*wall
	inertia := math.Pi / 64 * (math.Pow(od, 4) - math.Pow(id, 4))
	want := (70.0 * span / 4) * (od / 2) / inertia
	if !approx(got.Stress, want, 1e-9) {
		t.Errorf("Stress = %v, want %v", got.Stress, want)
	}
}

func TestCalculateStraightRun(t *testing.T) {
	in := straightRun()
	p := schema.DefaultParameters()
	geo := geometry.Resolve(in)
	out := Calculate(in, p, geo)

	if !approx(out.BeltLength, 240+math.Pi*4, 1e-9) {
		t.Errorf("BeltLength = %v", out.BeltLength)
	}
	if out.PartsOnBelt != 5 {
		t.Errorf("PartsOnBelt = %d, want 5", out.PartsOnBelt)
	}
	if !approx(out.BeltWeight, out.BeltLength*(18*0.022+0.10), 1e-9) {
		t.Errorf("BeltWeight = %v", out.BeltWeight)
	}
	if !approx(out.TotalBeltPull, out.TotalLoad*0.30+25, 1e-9) {
		t.Errorf("TotalBeltPull = %v", out.TotalBeltPull)
	}
	if out.InclinePull != 0 {
		t.Errorf("InclinePull = %v, want exact 0", out.InclinePull)
	}
	if !approx(out.DriveShaftRPM, 60*12/(math.Pi*4), 1e-9) {
		t.Errorf("DriveShaftRPM = %v", out.DriveShaftRPM)
	}
	if !approx(out.GearRatio, 1750/out.DriveShaftRPM, 1e-9) {
		t.Errorf("GearRatio = %v", out.GearRatio)
	}
	if !approx(out.Capacity, 1800, 1e-9) {
		t.Errorf("Capacity = %v, want 1800", out.Capacity)
	}
	if out.SnubRollersRequired {
		t.Error("SnubRollersRequired = true, want false")
	}
	if out.GravityRollerCount != 6 || out.SnubRollerCount != 0 {
		t.Errorf("rollers = %d/%d, want 6/0", out.GravityRollerCount, out.SnubRollerCount)
	}
	if out.TubeStressStatus != schema.TubeStressIncomplete {
		t.Errorf("TubeStressStatus = %v", out.TubeStressStatus)
	}
	if out.TargetPPH != nil {
		t.Error("TargetPPH set without required throughput")
	}
}

func TestCalculateMotorRPMOverride(t *testing.T) {
	in := straightRun()
	p := schema.DefaultParameters()
	geo := geometry.Resolve(in)

	motor := 1200.0
	in.MotorRPM = &motor
	out := Calculate(in, p, geo)
	if !approx(out.GearRatio, 1200/out.DriveShaftRPM, 1e-9) {
		t.Errorf("GearRatio = %v, want motor override applied", out.GearRatio)
	}
}

func TestCalculateInvalidGeometryStillRuns(t *testing.T) {
	in := straightRun()
	in.ConveyorLength = 0
	geo := geometry.Resolve(in)
	if geo.Valid {
		t.Fatal("geometry unexpectedly valid")
	}

	out := Calculate(in, schema.DefaultParameters(), geo)
	// Zero-length geometry zeroes the length-derived outputs but the
	// independent blocks still compute.
	if out.PartsOnBelt != 0 {
		t.Errorf("PartsOnBelt = %d, want 0", out.PartsOnBelt)
	}
	if out.DriveShaftDia != 1.1875 {
		t.Errorf("DriveShaftDia = %v, want 1.1875", out.DriveShaftDia)
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	index := make(map[string]int, len(stages))
	for i, s := range stages {
		index[s.Name] = i
	}

	for _, s := range stages {
		for _, dep := range s.DependsOn {
			di, ok := index[dep]
			if !ok {
				t.Errorf("stage %s depends on unknown stage %s", s.Name, dep)
				continue
			}
			if di >= index[s.Name] {
				t.Errorf("stage %s listed before its dependency %s", s.Name, dep)
			}
		}
	}
}
