package workflow

// StepState is the position of a workflow: Index in [1, N], Terminal only on N.
type StepState struct {
	Index    int  `json:"index"`
	Terminal bool `json:"terminal"`
}

// Start is the initial position of every workflow.
func Start() StepState {
	return StepState{Index: 1}
}

// Advance moves one step forward when the current step passes its gate.
// Ordinary navigation stops at total-1; the terminal step is reached only
// through JumpToTerminal. The bool reports whether the gate passed.
func Advance(s StepState, total int, gate Gate, form *FormState) (StepState, bool) {
	if s.Terminal {
		return s, false
	}
	if !gate.Passes(s.Index, form) {
		return s, false
	}
	return StepState{Index: min(s.Index+1, total-1)}, true
}

// Retreat moves one step back, floored at 1. Field data is left alone.
// The terminal step is left by discarding the workflow, not by retreating.
func Retreat(s StepState) StepState {
	if s.Terminal {
		return s
	}
	return StepState{Index: max(s.Index-1, 1)}
}

// JumpToTerminal is the transition taken after a confirmed submission.
func JumpToTerminal(total int) StepState {
	return StepState{Index: total, Terminal: true}
}
