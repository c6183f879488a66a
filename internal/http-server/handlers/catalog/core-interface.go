package catalog

import (
	"RepairDesk/entity"
	"context"
)

type Core interface {
	ListServices(ctx context.Context) ([]entity.RepairService, error)
	ListTimeSlots(ctx context.Context) ([]entity.TimeSlot, error)
}
