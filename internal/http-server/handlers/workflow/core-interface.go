package workflow

import (
	"RepairDesk/entity"
	"RepairDesk/internal/service/catalog"
	"RepairDesk/workflow"
	"context"
)

type Core interface {
	Workflows() []workflow.WorkflowID
	StartWorkflow(workflowID workflow.WorkflowID, profile *entity.Profile) (*workflow.Session, error)
	GetSession(id string) (*workflow.Session, error)
	EndSession(id string)

	CatalogServices(ctx context.Context) (catalog.Listing[entity.RepairService], error)
	CatalogTimeSlots(ctx context.Context) (catalog.Listing[entity.TimeSlot], error)
}
