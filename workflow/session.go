package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"RepairDesk/entity"
	"RepairDesk/internal/lib/metrics"
	"RepairDesk/internal/lib/sl"
)

// Session is one running instance of a workflow for one user.
type Session struct {
	ID        string
	CreatedAt time.Time

	def         *Definition
	form        *FormState
	coordinator *Coordinator

	mu     sync.RWMutex
	step   StepState
	result *SubmissionResult

	log *slog.Logger
}

// View is a read-only copy of a session for the rendering layer.
type View struct {
	ID         string               `json:"id"`
	Workflow   WorkflowID           `json:"workflow"`
	Step       StepState            `json:"step"`
	Steps      int                  `json:"steps"`
	StepFields []string             `json:"step_fields"`
	Fields     map[string]any       `json:"fields"`
	Estimate   entity.PriceEstimate `json:"estimate"`
	CanAdvance bool                 `json:"can_advance"`
	Submission string               `json:"submission"`
	Result     *SubmissionResult    `json:"result,omitempty"`
}

// NewSession creates a session on step 1 with an empty form, optionally
// seeded from the user's profile.
func NewSession(id string, def *Definition, profile *entity.Profile, log *slog.Logger) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		def:       def,
		form:      NewFormState(),
		step:      Start(),
		log: log.With(
			sl.Module("workflow.session"),
			slog.String("workflow_id", string(def.ID)),
			slog.String("session_id", id),
		),
	}
	s.form.Seed(profile)
	s.coordinator = NewCoordinator(def, s.jumpToTerminal, log)
	return s
}

func (s *Session) Workflow() WorkflowID {
	return s.def.ID
}

func (s *Session) Form() *FormState {
	return s.form
}

// Set stores one field. Passed steps are re-validated on the next Advance.
func (s *Session) Set(key string, value any) {
	s.form.Set(key, value)
}

// SetFields stores several fields at once. Keys that no step collects are
// refused with ErrUnknownField and nothing is stored.
func (s *Session) SetFields(fields map[string]any) error {
	for key := range fields {
		if !s.def.HasField(key) {
			return fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
	}
	s.form.MergeData(fields)
	return nil
}

func (s *Session) Step() StepState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// CanAdvance reports whether the current step passes its gate.
func (s *Session) CanAdvance() bool {
	step := s.Step()
	return !step.Terminal && s.def.Gate.Passes(step.Index, s.form)
}

// Advance moves forward one step if the current step passes its gate.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Advance(s.step, s.def.Steps, s.def.Gate, s.form)
	if !ok {
		metrics.StepTransitions.WithLabelValues(string(s.def.ID), metrics.ResultRefused).Inc()
		s.log.Debug("advance refused", slog.Int("step", s.step.Index))
		return false
	}
	s.step = next
	metrics.StepTransitions.WithLabelValues(string(s.def.ID), metrics.ResultAdvanced).Inc()
	return true
}

// Retreat moves back one step; it never fails and never clears fields.
func (s *Session) Retreat() StepState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = Retreat(s.step)
	metrics.StepTransitions.WithLabelValues(string(s.def.ID), metrics.ResultRetreated).Inc()
	return s.step
}

// Estimate recomputes the price range from the current selection.
func (s *Session) Estimate() entity.PriceEstimate {
	return s.def.Estimator.Estimate(s.form)
}

// Submit sends the form to the external service. See Coordinator.Submit.
func (s *Session) Submit(ctx context.Context) (*SubmissionResult, error) {
	return s.coordinator.Submit(ctx, s.Step(), s.form)
}

// SubmissionState returns idle, in_flight or settled.
func (s *Session) SubmissionState() string {
	return s.coordinator.State()
}

// Result returns the confirmation, or nil before a successful submission.
func (s *Session) Result() *SubmissionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result.clone()
}

func (s *Session) View() View {
	step := s.Step()
	return View{
		ID:         s.ID,
		Workflow:   s.def.ID,
		Step:       step,
		Steps:      s.def.Steps,
		StepFields: s.def.FieldsOf(step.Index),
		Fields:     s.form.Fields(),
		Estimate:   s.Estimate(),
		CanAdvance: s.CanAdvance(),
		Submission: s.SubmissionState(),
		Result:     s.Result(),
	}
}

func (s *Session) jumpToTerminal(result *SubmissionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = JumpToTerminal(s.def.Steps)
	s.result = result
}
