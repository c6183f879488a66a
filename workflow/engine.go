package workflow

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
)

// Engine holds the registered workflow types and the live sessions.
type Engine struct {
	definitions map[WorkflowID]*Definition
	storage     SessionStorage
	base        *slog.Logger
	log         *slog.Logger
}

// NewEngine creates a new workflow engine.
func NewEngine(storage SessionStorage, log *slog.Logger) *Engine {
	return &Engine{
		definitions: make(map[WorkflowID]*Definition),
		storage:     storage,
		base:        log,
		log:         log.With(sl.Module("workflow.engine")),
	}
}

// RegisterWorkflow adds a workflow type to the engine.
func (e *Engine) RegisterWorkflow(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	e.definitions[def.ID] = def
	e.log.Info("registered workflow",
		slog.String("workflow_id", string(def.ID)),
		slog.Int("steps", def.Steps),
	)
	return nil
}

// Workflows lists registered workflow ids in name order.
func (e *Engine) Workflows() []WorkflowID {
	ids := make([]WorkflowID, 0, len(e.definitions))
	for id := range e.definitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// StartWorkflow mounts a new session of the given type.
func (e *Engine) StartWorkflow(workflowID WorkflowID, profile *entity.Profile) (*Session, error) {
	def, ok := e.definitions[workflowID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, workflowID)
	}

	session := NewSession(uuid.NewString(), def, profile, e.base)
	e.storage.Save(session)

	e.log.Info("starting workflow",
		slog.String("workflow_id", string(workflowID)),
		slog.String("session_id", session.ID),
		slog.Bool("seeded", profile != nil),
	)
	return session, nil
}

// GetSession returns a live session.
func (e *Engine) GetSession(id string) (*Session, error) {
	session, ok := e.storage.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// EndSession unmounts a session and discards its form and result.
func (e *Engine) EndSession(id string) {
	e.storage.Delete(id)
	e.log.Debug("session ended", slog.String("session_id", id))
}
