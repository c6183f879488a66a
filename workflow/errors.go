package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned by Submit when the session is not on the
	// last data-entry step or a step up to it does not pass its gate.
	ErrValidation = errors.New("step data is incomplete")

	// ErrSubmissionFailed matches every *SubmissionError.
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrUnknownField is returned by SetFields for a key no step collects.
	ErrUnknownField = errors.New("unknown field")

	ErrUnknownWorkflow = errors.New("workflow not registered")
	ErrSessionNotFound = errors.New("session not found")
)

// SubmissionError is a recoverable failure of the external create call.
// The session keeps its step and fields; a new Submit may be issued.
type SubmissionError struct {
	Workflow WorkflowID
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s submission failed: %v", e.Workflow, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}
