package core

import (
	"RepairDesk/entity"
	"RepairDesk/internal/service/catalog"
	"context"
	"fmt"
)

func (c *Core) ListServices(ctx context.Context) ([]entity.RepairService, error) {
	return c.repo.GetServices(ctx)
}

func (c *Core) ListTimeSlots(ctx context.Context) ([]entity.TimeSlot, error) {
	return c.repo.GetTimeSlots(ctx)
}

// SeedCatalog fills an empty store with the given services and slots.
// A store that already holds services or slots is left as is.
func (c *Core) SeedCatalog(ctx context.Context, services []entity.RepairService, slots []entity.TimeSlot) error {
	existing, err := c.repo.GetServices(ctx)
	if err != nil {
		return fmt.Errorf("read services: %w", err)
	}
	if len(existing) == 0 {
		for i := range services {
			if err = c.repo.UpsertService(ctx, &services[i]); err != nil {
				return fmt.Errorf("seed service %s: %w", services[i].ID, err)
			}
		}
	}

	existingSlots, err := c.repo.GetTimeSlots(ctx)
	if err != nil {
		return fmt.Errorf("read time slots: %w", err)
	}
	if len(existingSlots) == 0 {
		for i := range slots {
			if err = c.repo.UpsertTimeSlot(ctx, &slots[i]); err != nil {
				return fmt.Errorf("seed time slot %s: %w", slots[i].ID, err)
			}
		}
	}
	return nil
}

// CatalogServices is the workflow-facing listing, with fallback metadata.
func (c *Core) CatalogServices(ctx context.Context) (catalog.Listing[entity.RepairService], error) {
	if c.catalog == nil {
		return catalog.Listing[entity.RepairService]{}, fmt.Errorf("catalog is not set")
	}
	return c.catalog.ListServices(ctx), nil
}

func (c *Core) CatalogTimeSlots(ctx context.Context) (catalog.Listing[entity.TimeSlot], error) {
	if c.catalog == nil {
		return catalog.Listing[entity.TimeSlot]{}, fmt.Errorf("catalog is not set")
	}
	return c.catalog.ListTimeSlots(ctx), nil
}
