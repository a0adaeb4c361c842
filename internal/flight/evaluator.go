package flight

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Evaluator maps a parameter vector to a range in kilometers. The
// closed-form model and any external simulation backend are
// interchangeable implementations of this interface.
type Evaluator interface {
	Name() string
	Evaluate(p ParameterVector) float64
}

// External invokes an external simulation backend once per sample. The
// nine parameters are written space-separated on a single stdin line and
// the backend replies with one range value (km) on stdout.
type External struct {
	Command string
	Args    []string
}

func NewExternal(command string, args ...string) *External {
	return &External{Command: command, Args: args}
}

func (e *External) Name() string { return "external" }

// Evaluate runs the backend for one sample. Backend failures and
// unparseable replies degrade to 0 through the shared clamp, matching the
// no-error-state contract of the closed-form model.
func (e *External) Evaluate(p ParameterVector) float64 {
	fields := make([]string, 0, len(FieldNames))
	for _, name := range FieldNames {
		v, _ := p.Field(name)
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}

	cmd := exec.Command(e.Command, e.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(fields, " ") + "\n")

	out, err := cmd.Output()
	if err != nil {
		return 0
	}

	km, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0
	}
	return ClampRange(km)
}

// Select returns the named evaluator. The external backend requires a
// non-empty command.
func Select(name, command string) (Evaluator, error) {
	switch name {
	case "", "breguet", "closed_form":
		return NewBreguet(), nil
	case "external":
		if command == "" {
			return nil, fmt.Errorf("flight: external evaluator requires a command")
		}
		return NewExternal(command), nil
	}
	return nil, fmt.Errorf("flight: unknown evaluator %q", name)
}
