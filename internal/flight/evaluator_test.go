package flight

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantName string
		wantErr  bool
	}{
		{"", "", "breguet", false},
		{"breguet", "", "breguet", false},
		{"closed_form", "", "breguet", false},
		{"external", "simulate", "external", false},
		{"external", "", "", true},
		{"quantum", "", "", true},
	}

	for _, tt := range tests {
		ev, err := Select(tt.name, tt.command)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Select(%q, %q): expected error", tt.name, tt.command)
			}
			continue
		}
		if err != nil {
			t.Errorf("Select(%q, %q): %v", tt.name, tt.command, err)
			continue
		}
		if ev.Name() != tt.wantName {
			t.Errorf("Select(%q): got evaluator %q, want %q", tt.name, ev.Name(), tt.wantName)
		}
	}
}

func TestExternalEvaluate(t *testing.T) {
	// The backend contract: nine floats in, one float out. An echoing
	// shell stand-in replies with a fixed range.
	ev := NewExternal("sh", "-c", "cat >/dev/null; echo 1234.5")
	if got := ev.Evaluate(DefaultNominal()); got != 1234.5 {
		t.Errorf("got %v, want 1234.5", got)
	}
}

func TestExternalEvaluateClamped(t *testing.T) {
	ev := NewExternal("sh", "-c", "cat >/dev/null; echo 99999999")
	if got := ev.Evaluate(DefaultNominal()); got != MaxRangeKm {
		t.Errorf("got %v, want clamp to %v", got, MaxRangeKm)
	}
}

func TestExternalEvaluateFailure(t *testing.T) {
	tests := []struct {
		name string
		ev   *External
	}{
		{"missing binary", NewExternal("/nonexistent/backend")},
		{"garbage output", NewExternal("sh", "-c", "cat >/dev/null; echo not-a-number")},
		{"nonzero exit", NewExternal("sh", "-c", "exit 3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Evaluate(DefaultNominal()); got != 0 {
				t.Errorf("got %v, want degraded 0", got)
			}
		})
	}
}
