package repository

import (
	"RepairDesk/entity"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoDB) SaveSaleQuote(ctx context.Context, quote *entity.SaleQuote) error {
	return m.withCollection(saleQuotesCollection, func(collection *mongo.Collection) error {
		if _, err := collection.InsertOne(ctx, quote); err != nil {
			return fmt.Errorf("mongodb insert sale quote: %w", err)
		}
		return nil
	})
}

// GetSaleQuotes returns the latest sale quotes, newest first.
func (m *MongoDB) GetSaleQuotes(ctx context.Context, limit int64) ([]entity.SaleQuote, error) {
	var quotes []entity.SaleQuote
	err := m.withCollection(saleQuotesCollection, func(collection *mongo.Collection) error {
		opts := options.Find().SetSort(bson.D{{"created_at", -1}})
		if limit > 0 {
			opts.SetLimit(limit)
		}
		cursor, err := collection.Find(ctx, bson.D{}, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)
		return cursor.All(ctx, &quotes)
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb find sale quotes: %w", err)
	}
	return quotes, nil
}
