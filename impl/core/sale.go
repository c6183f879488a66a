package core

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CreateSaleQuote stores a trade-in quote request and returns its receipt.
func (c *Core) CreateSaleQuote(ctx context.Context, req entity.SaleQuoteRequest) (*entity.Receipt, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	quote := entity.SaleQuote{
		TrackingID: newTrackingID(saleQuotePrefix),
		Request:    req,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.repo.SaveSaleQuote(ctx, &quote); err != nil {
		c.log.With(sl.Err(err)).Error("save sale quote")
		return nil, fmt.Errorf("save sale quote: %w", err)
	}

	c.log.With(
		slog.String("tracking_id", quote.TrackingID),
		slog.String("device_type", string(req.DeviceType)),
		slog.String("condition", string(req.Condition)),
	).Info("sale quote created")

	if c.broadcaster != nil {
		c.broadcaster.BroadcastSaleQuoteCreated(quote)
	}
	c.notify(fmt.Sprintf("New sale quote %s\n%s %s (%s), %s\n$%.0f-$%.0f\n%s, %s",
		quote.TrackingID,
		req.DeviceBrand, req.DeviceModel, req.DeviceType, req.Condition,
		req.Estimate.Low, req.Estimate.High,
		req.Contact.Name, req.Contact.Phone,
	))

	return &entity.Receipt{
		TrackingID: quote.TrackingID,
		CreatedAt:  quote.CreatedAt,
		Echo: map[string]any{
			"device_type": string(req.DeviceType),
			"device":      req.DeviceBrand + " " + req.DeviceModel,
			"condition":   string(req.Condition),
			"name":        req.Contact.Name,
			"email":       req.Contact.Email,
		},
	}, nil
}

func (c *Core) ListSaleQuotes(ctx context.Context, limit int64) ([]entity.SaleQuote, error) {
	return c.repo.GetSaleQuotes(ctx, limit)
}
