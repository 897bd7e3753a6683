package geometry

import (
	"math"
	"testing"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

const relTol = 1e-5

func relClose(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*relTol
}

func TestResolveLengthAngle(t *testing.T) {
	in := schema.CanonicalInput{
		GeometryMode:   schema.GeometryLengthAngle,
		ConveyorLength: 120,
		InclineAngle:   15,
		DrivePulleyDia: 4,
		TailPulleyDia:  4,
	}

	d := Resolve(in)
	if !d.Valid {
		t.Fatalf("Valid = false, err = %q", d.Err)
	}
	if d.ConveyorLength != 120 {
		t.Errorf("ConveyorLength = %v, want 120", d.ConveyorLength)
	}
	if want := 120 * math.Cos(15*math.Pi/180); !relClose(d.HorizontalRun, want) {
		t.Errorf("HorizontalRun = %v, want %v", d.HorizontalRun, want)
	}
	if want := 120 * math.Sin(15*math.Pi/180); !relClose(d.Rise, want) {
		t.Errorf("Rise = %v, want %v", d.Rise, want)
	}

	// Relative heights: tail centerline pinned at zero
	if d.TailCenterline != 0 {
		t.Errorf("TailCenterline = %v, want 0", d.TailCenterline)
	}
	if d.TailTOB != 2 {
		t.Errorf("TailTOB = %v, want 2", d.TailTOB)
	}
	if !relClose(d.DriveCenterline, d.Rise) {
		t.Errorf("DriveCenterline = %v, want %v", d.DriveCenterline, d.Rise)
	}
}

func TestResolveModesAgree(t *testing.T) {
	// The same physical conveyor described three ways.
	length := 100.0
	angle := 20.0
	run := length * math.Cos(angle*math.Pi/180)
	rise := length * math.Sin(angle*math.Pi/180)

	tobTail := 6.0
	tobDrive := tobTail + rise // equal pulley diameters keep TOB delta = CL delta
	pulley := 4.0

	byLength := Resolve(schema.CanonicalInput{
		GeometryMode:   schema.GeometryLengthAngle,
		ConveyorLength: length,
		InclineAngle:   angle,
		DrivePulleyDia: pulley,
		TailPulleyDia:  pulley,
	})
	byRun := Resolve(schema.CanonicalInput{
		GeometryMode:   schema.GeometryHorizontalAngle,
		HorizontalRun:  run,
		InclineAngle:   angle,
		DrivePulleyDia: pulley,
		TailPulleyDia:  pulley,
	})
	byTOB := Resolve(schema.CanonicalInput{
		GeometryMode:   schema.GeometryHorizontalTOB,
		HorizontalRun:  run,
		TOBDrive:       &tobDrive,
		TOBTail:        &tobTail,
		DrivePulleyDia: pulley,
		TailPulleyDia:  pulley,
	})

	for _, d := range []Derived{byLength, byRun, byTOB} {
		if !d.Valid {
			t.Fatalf("mode %s invalid: %s", d.Mode, d.Err)
		}
		if !relClose(d.ConveyorLength, length) {
			t.Errorf("mode %s: ConveyorLength = %v, want %v", d.Mode, d.ConveyorLength, length)
		}
		if !relClose(d.HorizontalRun, run) {
			t.Errorf("mode %s: HorizontalRun = %v, want %v", d.Mode, d.HorizontalRun, run)
		}
		if !relClose(d.Rise, rise) {
			t.Errorf("mode %s: Rise = %v, want %v", d.Mode, d.Rise, rise)
		}
		if !relClose(d.InclineAngle, angle) {
			t.Errorf("mode %s: InclineAngle = %v, want %v", d.Mode, d.InclineAngle, angle)
		}
	}
}

func TestZeroSnap(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"tiny positive snaps", 0.005, 0},
		{"tiny negative snaps", -0.009, 0},
		{"at threshold snaps", 0.01, 0},
		{"just above threshold keeps", 0.011, 0.011},
		{"normal angle keeps", 15, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(schema.CanonicalInput{
				GeometryMode:   schema.GeometryLengthAngle,
				ConveyorLength: 100,
				InclineAngle:   tt.angle,
			})
			if d.InclineAngle != tt.want {
				t.Errorf("InclineAngle = %v, want %v", d.InclineAngle, tt.want)
			}
			if tt.want == 0 && d.Rise != 0 {
				t.Errorf("Rise = %v, want exact 0", d.Rise)
			}
		})
	}
}

func TestTOBAngleClamp(t *testing.T) {
	// Heights implying a 60-degree incline clamp to 45.
	run := 10.0
	tobTail := 0.0
	tobDrive := run * math.Tan(60*math.Pi/180)

	d := Resolve(schema.CanonicalInput{
		GeometryMode:  schema.GeometryHorizontalTOB,
		HorizontalRun: run,
		TOBDrive:      &tobDrive,
		TOBTail:       &tobTail,
	})
	if !d.Valid {
		t.Fatalf("Valid = false, err = %q", d.Err)
	}
	if d.InclineAngle != 45 {
		t.Errorf("InclineAngle = %v, want clamped 45", d.InclineAngle)
	}
}

func TestNearVerticalCap(t *testing.T) {
	d := Resolve(schema.CanonicalInput{
		GeometryMode:  schema.GeometryHorizontalAngle,
		HorizontalRun: 10,
		InclineAngle:  89.99,
	})
	if !d.Valid {
		t.Fatalf("Valid = false, err = %q", d.Err)
	}
	if math.IsInf(d.ConveyorLength, 0) || math.IsNaN(d.ConveyorLength) {
		t.Fatalf("ConveyorLength = %v, want finite", d.ConveyorLength)
	}
	// Capped at the 89.9-degree projection
	want := 10 / math.Cos(89.9*math.Pi/180)
	if !relClose(d.ConveyorLength, want) {
		t.Errorf("ConveyorLength = %v, want %v", d.ConveyorLength, want)
	}
}

func TestResolveInvalidInputs(t *testing.T) {
	tob := 10.0
	tests := []struct {
		name string
		in   schema.CanonicalInput
	}{
		{
			"zero length",
			schema.CanonicalInput{GeometryMode: schema.GeometryLengthAngle, ConveyorLength: 0},
		},
		{
			"negative run",
			schema.CanonicalInput{GeometryMode: schema.GeometryHorizontalAngle, HorizontalRun: -5},
		},
		{
			"TOB mode missing heights",
			schema.CanonicalInput{GeometryMode: schema.GeometryHorizontalTOB, HorizontalRun: 100},
		},
		{
			"TOB mode missing one height",
			schema.CanonicalInput{GeometryMode: schema.GeometryHorizontalTOB, HorizontalRun: 100, TOBDrive: &tob},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.in)
			if d.Valid {
				t.Fatal("Valid = true, want false")
			}
			if d.Err == "" {
				t.Error("Err is empty for invalid geometry")
			}
			if d.ConveyorLength != 0 || d.Rise != 0 {
				t.Errorf("invalid geometry carries numerics: length=%v rise=%v", d.ConveyorLength, d.Rise)
			}
		})
	}
}

func TestResolveUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve with unknown mode did not panic")
		}
	}()
	Resolve(schema.CanonicalInput{GeometryMode: "spiral"})
}

func TestTOBCenterlineRoundTrip(t *testing.T) {
	for _, tob := range []float64{0, 4, 36.5} {
		cl := TOBToCenterline(tob, 4)
		if got := CenterlineToTOB(cl, 4); got != tob {
			t.Errorf("round trip of %v = %v", tob, got)
		}
	}
}
