package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RepairDesk/entity"
)

func readySession(creator Creator) *Session {
	s := NewSession("s-1", testDefinition(creator), nil, testLogger())
	s.Set("pick", "a")
	fillContact(s.Form())
	s.Advance()
	return s
}

func TestSubmit_SuccessJumpsToTerminal(t *testing.T) {
	creator := newFakeCreator("TRK-1")
	s := readySession(creator)

	result, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "TRK-1", result.TrackingID)
	assert.False(t, result.ConfirmedAt.IsZero())
	assert.Equal(t, map[string]any{"pick": "a", KeyName: "Jane Doe"}, result.Echo)

	assert.Equal(t, StepState{Index: 3, Terminal: true}, s.Step())
	assert.Equal(t, SubmissionSettled, s.SubmissionState())
	assert.Equal(t, result, s.Result())
	assert.EqualValues(t, 1, creator.calls.Load())
}

func TestSubmit_UsesServiceEcho(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	creator := &fakeCreator{receipt: &entity.Receipt{
		TrackingID: "TRK-2",
		CreatedAt:  created,
		Echo:       map[string]any{"service": "screen"},
	}}
	s := readySession(creator)

	result, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created, result.ConfirmedAt)
	assert.Equal(t, map[string]any{"service": "screen"}, result.Echo)
}

func TestSubmit_DuplicateWhileInFlightIsIgnored(t *testing.T) {
	creator := newFakeCreator("TRK-3").blocking()
	s := readySession(creator)

	type outcome struct {
		result *SubmissionResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := s.Submit(context.Background())
		done <- outcome{r, err}
	}()

	<-creator.entered
	assert.Equal(t, SubmissionInFlight, s.SubmissionState())

	for i := 0; i < 3; i++ {
		r, err := s.Submit(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, r)
	}
	assert.EqualValues(t, 1, creator.calls.Load())

	close(creator.release)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, "TRK-3", first.result.TrackingID)
	assert.EqualValues(t, 1, creator.calls.Load())
}

func TestSubmit_AfterConfirmationIsIgnored(t *testing.T) {
	creator := newFakeCreator("TRK-4")
	s := readySession(creator)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	r, err := s.Submit(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, r)
	assert.EqualValues(t, 1, creator.calls.Load())
}

func TestSubmit_FailureKeepsStepAndFields(t *testing.T) {
	cause := errors.New("503 service unavailable")
	creator := newFakeCreator("")
	creator.err = cause
	s := readySession(creator)

	stepBefore := s.Step()
	fieldsBefore := s.Form().Fields()

	r, err := s.Submit(context.Background())
	assert.Nil(t, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.ErrorIs(t, err, cause)

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, WorkflowID("test"), subErr.Workflow)

	assert.Equal(t, stepBefore, s.Step())
	assert.Equal(t, fieldsBefore, s.Form().Fields())
	assert.Equal(t, SubmissionIdle, s.SubmissionState())
	assert.Nil(t, s.Result())

	creator.err = nil
	creator.receipt = &entity.Receipt{TrackingID: "TRK-5"}
	r, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRK-5", r.TrackingID)
	assert.EqualValues(t, 2, creator.calls.Load())
}

func TestSubmit_MissingTrackingIDIsFailure(t *testing.T) {
	creator := &fakeCreator{receipt: &entity.Receipt{}}
	s := readySession(creator)

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Equal(t, SubmissionIdle, s.SubmissionState())
	assert.False(t, s.Step().Terminal)
}

func TestSubmit_InvalidFormNeverCallsService(t *testing.T) {
	creator := newFakeCreator("TRK-6")
	s := NewSession("s-2", testDefinition(creator), nil, testLogger())
	s.Set("pick", "a")
	s.Advance()
	s.Set(KeyName, "J")

	r, err := s.Submit(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualValues(t, 0, creator.calls.Load())
	assert.Equal(t, SubmissionIdle, s.SubmissionState())
	assert.Equal(t, StepState{Index: 2}, s.Step())
}

func TestSubmit_PayloadIsCapturedAtCallTime(t *testing.T) {
	creator := newFakeCreator("TRK-7").blocking()
	s := readySession(creator)

	done := make(chan struct{})
	go func() {
		_, _ = s.Submit(context.Background())
		close(done)
	}()

	<-creator.entered
	s.Set("pick", "changed")
	close(creator.release)
	<-done

	require.Len(t, creator.received, 1)
	assert.Equal(t, "a", creator.received[0].GetString("pick"))
	assert.Equal(t, "a", s.Result().Echo["pick"])
}

func TestSubmit_CallerCancellationDoesNotCancelCreate(t *testing.T) {
	creator := newFakeCreator("TRK-8").blocking()
	s := readySession(creator)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(ctx)
		done <- err
	}()

	<-creator.entered
	cancel()
	close(creator.release)

	require.NoError(t, <-done)
	assert.NoError(t, creator.ctxErr)
	assert.True(t, s.Step().Terminal)
}

func TestSubmit_RefusedBeforeLastEntryStep(t *testing.T) {
	creator := newFakeCreator("TRK-9")
	s := NewSession("s-4", testDefinition(creator), nil, testLogger())
	fillContact(s.Form())
	require.False(t, s.CanAdvance())

	r, err := s.Submit(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepState{Index: 1}, s.Step())
	assert.Equal(t, SubmissionIdle, s.SubmissionState())
	assert.Nil(t, s.Result())
	assert.EqualValues(t, 0, creator.calls.Load())

	s.Set("pick", "a")
	r, err = s.Submit(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrValidation, "a valid form still has to be walked to the contact step")
	assert.EqualValues(t, 0, creator.calls.Load())
}

func TestSubmit_RechecksPassedSteps(t *testing.T) {
	creator := newFakeCreator("TRK-10")
	s := readySession(creator)
	s.Set("pick", "")

	r, err := s.Submit(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepState{Index: 2}, s.Step())
	assert.EqualValues(t, 0, creator.calls.Load())

	s.Set("pick", "b")
	r, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRK-10", r.TrackingID)
}

func TestSubmit_GatesTheSentSnapshot(t *testing.T) {
	creator := newFakeCreator("TRK-11")
	def := testDefinition(creator)

	var gated []*FormState
	contact := ContactRule()
	def.Gate = NewGate(map[int]Rule{
		2: func(form *FormState) bool {
			gated = append(gated, form)
			return contact(form)
		},
	})

	s := NewSession("s-5", def, nil, testLogger())
	fillContact(s.Form())
	require.True(t, s.Advance())
	gated = nil

	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, gated, 1)
	require.Len(t, creator.received, 1)
	assert.Same(t, creator.received[0], gated[0])
	assert.NotSame(t, s.Form(), gated[0])
}
