package repository

import (
	"RepairDesk/entity"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoDB) SaveBooking(ctx context.Context, booking *entity.Booking) error {
	return m.withCollection(bookingsCollection, func(collection *mongo.Collection) error {
		if _, err := collection.InsertOne(ctx, booking); err != nil {
			return fmt.Errorf("mongodb insert booking: %w", err)
		}
		return nil
	})
}

// GetBookings returns the latest bookings, newest first.
func (m *MongoDB) GetBookings(ctx context.Context, limit int64) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := m.withCollection(bookingsCollection, func(collection *mongo.Collection) error {
		opts := options.Find().SetSort(bson.D{{"created_at", -1}})
		if limit > 0 {
			opts.SetLimit(limit)
		}
		cursor, err := collection.Find(ctx, bson.D{}, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)
		return cursor.All(ctx, &bookings)
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb find bookings: %w", err)
	}
	return bookings, nil
}

func (m *MongoDB) SetBookingStatus(ctx context.Context, trackingID string, status entity.BookingStatus) error {
	return m.withCollection(bookingsCollection, func(collection *mongo.Collection) error {
		res, err := collection.UpdateOne(ctx,
			bson.D{{"tracking_id", trackingID}},
			bson.D{{"$set", bson.D{{"status", status}}}},
		)
		if err != nil {
			return fmt.Errorf("mongodb update booking: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found", trackingID)
		}
		return nil
	})
}
