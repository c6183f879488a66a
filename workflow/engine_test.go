package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RepairDesk/entity"
)

func TestEngine_StartAndEndSession(t *testing.T) {
	storage := newMapStorage()
	engine := NewEngine(storage, testLogger())
	require.NoError(t, engine.RegisterWorkflow(testDefinition(newFakeCreator("T"))))

	session, err := engine.StartWorkflow("test", &entity.Profile{Name: "Jane", Phone: "5551234567"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, Start(), session.Step())
	assert.Equal(t, "Jane", session.Form().GetString(KeyName))

	got, err := engine.GetSession(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	engine.EndSession(session.ID)
	_, err = engine.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEngine_UnknownWorkflow(t *testing.T) {
	engine := NewEngine(newMapStorage(), testLogger())
	_, err := engine.StartWorkflow("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownWorkflow)
}

func TestEngine_RejectsIncompleteDefinition(t *testing.T) {
	engine := NewEngine(newMapStorage(), testLogger())

	def := testDefinition(nil)
	assert.Error(t, engine.RegisterWorkflow(def))

	def = testDefinition(newFakeCreator("T"))
	def.Steps = 1
	assert.Error(t, engine.RegisterWorkflow(def))

	def = testDefinition(newFakeCreator("T"))
	def.Estimator = nil
	assert.Error(t, engine.RegisterWorkflow(def))

	assert.Empty(t, engine.Workflows())
}

func TestSession_NavigationAndView(t *testing.T) {
	s := NewSession("s-3", testDefinition(newFakeCreator("T")), nil, testLogger())

	assert.False(t, s.CanAdvance())
	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Step().Index)
	assert.Equal(t, entity.PriceEstimate{}, s.Estimate())

	require.NoError(t, s.SetFields(map[string]any{"pick": "a"}))
	assert.Equal(t, entity.PriceEstimate{Low: 10, High: 20}, s.Estimate())
	assert.True(t, s.CanAdvance())
	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Step().Index)

	assert.Equal(t, 1, s.Retreat().Index)
	assert.Equal(t, 1, s.Retreat().Index)
	assert.Equal(t, "a", s.Form().GetString("pick"), "retreat keeps data")

	v := s.View()
	assert.Equal(t, "s-3", v.ID)
	assert.Equal(t, WorkflowID("test"), v.Workflow)
	assert.Equal(t, 3, v.Steps)
	assert.True(t, v.CanAdvance)
	assert.Equal(t, SubmissionIdle, v.Submission)
	assert.Nil(t, v.Result)
	assert.Equal(t, "a", v.Fields["pick"])
	assert.Equal(t, []string{"pick"}, v.StepFields)
}

func TestSession_SetFieldsRejectsUnknownKeys(t *testing.T) {
	s := NewSession("s-6", testDefinition(newFakeCreator("T")), nil, testLogger())

	err := s.SetFields(map[string]any{"pick": "a", "coupon": "FREE"})
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorContains(t, err, "coupon")
	assert.Empty(t, s.Form().Fields(), "a refused batch stores nothing")

	require.NoError(t, s.SetFields(map[string]any{"pick": "a", KeyPhone: "5551234567"}))
	assert.Len(t, s.Form().Fields(), 2)
}

func TestDefinition_StepFieldsOutsideEntrySteps(t *testing.T) {
	def := testDefinition(newFakeCreator("T"))
	require.NoError(t, def.Validate())
	assert.Nil(t, def.FieldsOf(def.TerminalStep()))

	def.StepFields[def.TerminalStep()] = []string{"extra"}
	assert.Error(t, def.Validate())
}
