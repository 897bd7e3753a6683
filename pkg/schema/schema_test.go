package schema

import "testing"

func TestMaxPulleyDia(t *testing.T) {
	c := CanonicalInput{DrivePulleyDia: 4, TailPulleyDia: 6}
	if got := c.MaxPulleyDia(); got != 6 {
		t.Errorf("MaxPulleyDia = %v, want 6", got)
	}
	c.TailPulleyDia = 2
	if got := c.MaxPulleyDia(); got != 4 {
		t.Errorf("MaxPulleyDia = %v, want 4", got)
	}
}

func TestTravelDim(t *testing.T) {
	c := CanonicalInput{PartLength: 12, PartWidth: 6}

	c.Orientation = OrientationLengthwise
	if got := c.TravelDim(); got != 12 {
		t.Errorf("lengthwise TravelDim = %v, want 12", got)
	}
	c.Orientation = OrientationCrosswise
	if got := c.TravelDim(); got != 6 {
		t.Errorf("crosswise TravelDim = %v, want 6", got)
	}
}

func TestTravelDimUnknownOrientationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TravelDim with unknown orientation did not panic")
		}
	}()
	c := CanonicalInput{Orientation: "diagonal"}
	c.TravelDim()
}

func TestFloorSupported(t *testing.T) {
	tests := []struct {
		name  string
		drive SupportType
		tail  SupportType
		want  bool
	}{
		{"both legs", SupportLegs, SupportLegs, true},
		{"one end casters", SupportNone, SupportCasters, true},
		{"suspended", SupportNone, SupportNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CanonicalInput{SupportDrive: tt.drive, SupportTail: tt.tail}
			if got := c.FloorSupported(); got != tt.want {
				t.Errorf("FloorSupported = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverridesApply(t *testing.T) {
	friction := 0.45
	maxIncline := 28.0
	o := &Overrides{Friction: &friction, MaxIncline: &maxIncline}

	p := o.Apply(DefaultParameters())
	if p.Friction != 0.45 {
		t.Errorf("Friction = %v, want 0.45", p.Friction)
	}
	if p.MaxIncline != 28 {
		t.Errorf("MaxIncline = %v, want 28", p.MaxIncline)
	}
	if p.StartingPull != DefaultStartingPull {
		t.Errorf("StartingPull = %v, want untouched default", p.StartingPull)
	}
}

func TestOverridesApplyNil(t *testing.T) {
	var o *Overrides
	p := o.Apply(DefaultParameters())
	if p != DefaultParameters() {
		t.Error("nil overrides changed the defaults")
	}
}

func TestRawInputClone(t *testing.T) {
	orig := RawInput{"belt_width_in": 18.0}
	clone := orig.Clone()
	clone["belt_width_in"] = 24.0

	if orig["belt_width_in"] != 18.0 {
		t.Error("Clone shares storage with the original")
	}
}

func TestRawInputFloatWidening(t *testing.T) {
	r := RawInput{
		"a": 1.5,
		"b": 3,
		"c": int64(7),
		"d": "not a number",
	}

	if v, ok := r.Float("a"); !ok || v != 1.5 {
		t.Errorf("Float(a) = %v, %v", v, ok)
	}
	if v, ok := r.Float("b"); !ok || v != 3 {
		t.Errorf("Float(b) = %v, %v", v, ok)
	}
	if v, ok := r.Float("c"); !ok || v != 7 {
		t.Errorf("Float(c) = %v, %v", v, ok)
	}
	if _, ok := r.Float("d"); ok {
		t.Error("Float(d) accepted a string")
	}
	if _, ok := r.Float("absent"); ok {
		t.Error("Float(absent) reported presence")
	}
}

func TestOutputFields(t *testing.T) {
	out := Output{BeltLength: 200, PartsOnBelt: 5, TubeStressStatus: TubeStressIncomplete}
	fields := out.Fields()

	if got := fields["belt_length_in"]; got != 200.0 {
		t.Errorf("belt_length_in = %v", got)
	}
	if got := fields["parts_on_belt"]; got != 5.0 { // json numbers decode as float64
		t.Errorf("parts_on_belt = %v", got)
	}
	if got := fields["tube_stress_status"]; got != "incomplete" {
		t.Errorf("tube_stress_status = %v", got)
	}
	if _, ok := fields["tube_stress_psi"]; ok {
		t.Error("absent optional field serialized")
	}
}
