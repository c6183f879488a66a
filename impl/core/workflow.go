package core

import (
	"RepairDesk/entity"
	"RepairDesk/workflow"
	"fmt"
)

func (c *Core) Workflows() []workflow.WorkflowID {
	if c.engine == nil {
		return nil
	}
	return c.engine.Workflows()
}

func (c *Core) StartWorkflow(workflowID workflow.WorkflowID, profile *entity.Profile) (*workflow.Session, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("workflow engine is not set")
	}
	return c.engine.StartWorkflow(workflowID, profile)
}

func (c *Core) GetSession(id string) (*workflow.Session, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("workflow engine is not set")
	}
	return c.engine.GetSession(id)
}

func (c *Core) EndSession(id string) {
	if c.engine == nil {
		return
	}
	c.engine.EndSession(id)
}
