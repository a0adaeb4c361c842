package flight

import (
	"math"
	"testing"
)

func TestFieldRoundTrip(t *testing.T) {
	var p ParameterVector
	for i, name := range FieldNames {
		want := float64(i + 1)
		if err := p.SetField(name, want); err != nil {
			t.Fatalf("SetField(%s): %v", name, err)
		}
		got, err := p.Field(name)
		if err != nil {
			t.Fatalf("Field(%s): %v", name, err)
		}
		if got != want {
			t.Errorf("field %s: got %v, want %v", name, got, want)
		}
	}
}

func TestFieldUnknown(t *testing.T) {
	var p ParameterVector
	if _, err := p.Field("wingspan"); err == nil {
		t.Error("expected error for unknown field")
	}
	if err := p.SetField("wingspan", 1.0); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestIsValid(t *testing.T) {
	p := DefaultNominal()
	if !p.IsValid() {
		t.Error("nominal vector should be valid")
	}

	p.LiftToDrag = math.NaN()
	if p.IsValid() {
		t.Error("NaN field should invalidate vector")
	}

	p = DefaultNominal()
	p.HarvestKW = math.Inf(1)
	if p.IsValid() {
		t.Error("Inf field should invalidate vector")
	}
}

func TestDefaultNominal(t *testing.T) {
	p := DefaultNominal()
	if p.Gravity != 9.80665 {
		t.Errorf("gravity = %v, want standard 9.80665", p.Gravity)
	}
	if p.EtaSystem <= 0 || p.EtaSystem > 1 {
		t.Errorf("eta_system = %v, want (0, 1]", p.EtaSystem)
	}
	if p.SicGain < 1 {
		t.Errorf("sic_gain = %v, want >= 1", p.SicGain)
	}
}
