package workflow

import (
	"fmt"
	"slices"
)

// Definition describes one workflow type: how many steps it has, which
// fields belong to which step, how steps are gated, how prices are
// estimated and where the finished form is sent.
type Definition struct {
	ID WorkflowID

	// Steps is N: the data-entry steps plus the terminal confirmation step.
	Steps int

	// StepFields partitions form fields by the step that collects them.
	// When empty, any key may be set.
	StepFields map[int][]string

	Gate      Gate
	Estimator Estimator
	Creator   Creator

	// EchoFields are copied into the submission result when the
	// service does not echo anything back.
	EchoFields []string
}

// LastEntryStep is the step whose gate guards submission.
func (d *Definition) LastEntryStep() int {
	return d.Steps - 1
}

// TerminalStep is the confirmation step.
func (d *Definition) TerminalStep() int {
	return d.Steps
}

// FieldsOf returns the keys collected on step, or nil for an unknown or terminal step.
func (d *Definition) FieldsOf(step int) []string {
	return slices.Clone(d.StepFields[step])
}

// HasField reports whether some step collects key.
func (d *Definition) HasField(key string) bool {
	if len(d.StepFields) == 0 {
		return true
	}
	for _, keys := range d.StepFields {
		if slices.Contains(keys, key) {
			return true
		}
	}
	return false
}

func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("workflow id is empty")
	}
	if d.Steps < 2 {
		return fmt.Errorf("workflow %s: needs at least one data-entry step and a terminal step, got %d steps", d.ID, d.Steps)
	}
	if d.Creator == nil {
		return fmt.Errorf("workflow %s: creator is not set", d.ID)
	}
	if d.Estimator == nil {
		return fmt.Errorf("workflow %s: estimator is not set", d.ID)
	}
	for step := range d.StepFields {
		if step < 1 || step > d.LastEntryStep() {
			return fmt.Errorf("workflow %s: fields assigned to step %d outside 1..%d", d.ID, step, d.LastEntryStep())
		}
	}
	return nil
}
