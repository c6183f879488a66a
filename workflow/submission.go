package workflow

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"github.com/looplab/fsm"

	"RepairDesk/entity"
	"RepairDesk/internal/lib/metrics"
	"RepairDesk/internal/lib/sl"
)

// Submission states.
const (
	SubmissionIdle     = "idle"
	SubmissionInFlight = "in_flight"
	SubmissionSettled  = "settled"
)

const (
	eventSubmit  = "submit"
	eventConfirm = "confirm"
	eventFail    = "fail"
)

// SubmissionResult is the confirmation of a created booking or sale quote.
// It is created once per workflow and never modified.
type SubmissionResult struct {
	TrackingID  string         `json:"tracking_id"`
	ConfirmedAt time.Time      `json:"confirmed_at"`
	Echo        map[string]any `json:"echo"`
}

func (r *SubmissionResult) clone() *SubmissionResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Echo = maps.Clone(r.Echo)
	return &c
}

// Coordinator sends the finished form to the external service and makes
// sure only one call is outstanding at a time.
//
//	idle --submit--> in_flight --confirm--> settled
//	                 in_flight --fail-----> idle
type Coordinator struct {
	workflow  WorkflowID
	gate      Gate
	entryStep int
	creator   Creator
	echo      []string
	onConfirm func(result *SubmissionResult)
	machine   *fsm.FSM
	now       func() time.Time
	log       *slog.Logger
}

// NewCoordinator creates a coordinator for one workflow instance.
// onConfirm runs once, after a successful create and before Submit returns.
func NewCoordinator(def *Definition, onConfirm func(result *SubmissionResult), log *slog.Logger) *Coordinator {
	return &Coordinator{
		workflow:  def.ID,
		gate:      def.Gate,
		entryStep: def.LastEntryStep(),
		creator:   def.Creator,
		echo:      def.EchoFields,
		onConfirm: onConfirm,
		machine: fsm.NewFSM(
			SubmissionIdle,
			fsm.Events{
				{Name: eventSubmit, Src: []string{SubmissionIdle}, Dst: SubmissionInFlight},
				{Name: eventConfirm, Src: []string{SubmissionInFlight}, Dst: SubmissionSettled},
				{Name: eventFail, Src: []string{SubmissionInFlight}, Dst: SubmissionIdle},
			},
			fsm.Callbacks{},
		),
		now: time.Now,
		log: log.With(sl.Module("workflow.submission"), slog.String("workflow_id", string(def.ID))),
	}
}

// State returns idle, in_flight or settled.
func (c *Coordinator) State() string {
	return c.machine.Current()
}

// Submit creates the record for form.
//
// A call made while another one is in flight, or after a confirmed one,
// is dropped: it returns a nil result and a nil error and the service is
// not contacted. A call made from any step other than the last data-entry
// step, or with a form that fails the gate of any step up to it, yields
// ErrValidation. A failed create yields a *SubmissionError and leaves the
// coordinator idle so the caller can retry.
//
// The create call is not cancelled with ctx and has no timeout of its own:
// once issued it runs to completion.
func (c *Coordinator) Submit(ctx context.Context, step StepState, form *FormState) (*SubmissionResult, error) {
	if err := c.machine.Event(context.Background(), eventSubmit); err != nil {
		c.log.Debug("duplicate submission ignored", slog.String("state", c.machine.Current()))
		metrics.Submissions.WithLabelValues(string(c.workflow), metrics.OutcomeIgnored).Inc()
		return nil, nil
	}

	snapshot := form.Snapshot()
	if !c.ready(step, snapshot) {
		c.settle(eventFail)
		metrics.Submissions.WithLabelValues(string(c.workflow), metrics.OutcomeInvalid).Inc()
		c.log.Debug("submission refused", slog.Int("step", step.Index))
		return nil, ErrValidation
	}

	receipt, err := c.creator.Create(context.WithoutCancel(ctx), snapshot)
	if err == nil && (receipt == nil || receipt.TrackingID == "") {
		err = errors.New("service returned no tracking id")
	}
	if err != nil {
		c.settle(eventFail)
		metrics.Submissions.WithLabelValues(string(c.workflow), metrics.OutcomeFailed).Inc()
		c.log.Warn("submission failed", sl.Err(err))
		return nil, &SubmissionError{Workflow: c.workflow, Err: err}
	}

	result := c.newResult(receipt, snapshot)
	if c.onConfirm != nil {
		c.onConfirm(result.clone())
	}
	c.settle(eventConfirm)
	metrics.Submissions.WithLabelValues(string(c.workflow), metrics.OutcomeConfirmed).Inc()
	c.log.Info("submission confirmed", slog.String("tracking_id", result.TrackingID))

	return result, nil
}

// ready reports whether step is the last data-entry step and snapshot
// passes every gate on the way to it.
func (c *Coordinator) ready(step StepState, snapshot *FormState) bool {
	if step.Terminal || step.Index != c.entryStep {
		return false
	}
	for i := 1; i <= c.entryStep; i++ {
		if !c.gate.Passes(i, snapshot) {
			return false
		}
	}
	return true
}

func (c *Coordinator) newResult(receipt *entity.Receipt, snapshot *FormState) *SubmissionResult {
	confirmedAt := receipt.CreatedAt
	if confirmedAt.IsZero() {
		confirmedAt = c.now()
	}
	echo := maps.Clone(receipt.Echo)
	if len(echo) == 0 {
		echo = snapshot.Fields(c.echo...)
	}
	return &SubmissionResult{
		TrackingID:  receipt.TrackingID,
		ConfirmedAt: confirmedAt,
		Echo:        echo,
	}
}

func (c *Coordinator) settle(event string) {
	if err := c.machine.Event(context.Background(), event); err != nil {
		// only reachable if the transition table above is broken
		c.log.Error("submission state transition", slog.String("event", event), sl.Err(err))
	}
}
