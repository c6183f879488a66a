package repository

import (
	"RepairDesk/entity"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetServices returns the repair services sorted by name.
func (m *MongoDB) GetServices(ctx context.Context) ([]entity.RepairService, error) {
	var services []entity.RepairService
	err := m.withCollection(servicesCollection, func(collection *mongo.Collection) error {
		cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{"name", 1}}))
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)
		return cursor.All(ctx, &services)
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb find services: %w", err)
	}
	return services, nil
}

func (m *MongoDB) UpsertService(ctx context.Context, service *entity.RepairService) error {
	return m.withCollection(servicesCollection, func(collection *mongo.Collection) error {
		_, err := collection.UpdateOne(ctx,
			bson.D{{"_id", service.ID}},
			bson.D{{"$set", service}},
			options.Update().SetUpsert(true),
		)
		return err
	})
}

// GetTimeSlots returns the bookable slots in label order.
func (m *MongoDB) GetTimeSlots(ctx context.Context) ([]entity.TimeSlot, error) {
	var slots []entity.TimeSlot
	err := m.withCollection(timeSlotsCollection, func(collection *mongo.Collection) error {
		cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{"label", 1}}))
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)
		return cursor.All(ctx, &slots)
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb find time slots: %w", err)
	}
	return slots, nil
}

func (m *MongoDB) UpsertTimeSlot(ctx context.Context, slot *entity.TimeSlot) error {
	return m.withCollection(timeSlotsCollection, func(collection *mongo.Collection) error {
		_, err := collection.UpdateOne(ctx,
			bson.D{{"_id", slot.ID}},
			bson.D{{"$set", slot}},
			options.Update().SetUpsert(true),
		)
		return err
	})
}
