package core

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	bookingPrefix   = "BK-"
	saleQuotePrefix = "SQ-"
)

func newTrackingID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBooking stores a repair appointment and returns its receipt.
func (c *Core) CreateBooking(ctx context.Context, req entity.BookingRequest) (*entity.Receipt, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Priority == "" {
		req.Priority = entity.PriorityStandard
	}

	booking := entity.Booking{
		TrackingID: newTrackingID(bookingPrefix),
		Request:    req,
		Status:     entity.BookingStatusNew,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.repo.SaveBooking(ctx, &booking); err != nil {
		c.log.With(sl.Err(err)).Error("save booking")
		return nil, fmt.Errorf("save booking: %w", err)
	}

	c.log.With(
		slog.String("tracking_id", booking.TrackingID),
		slog.String("service", req.ServiceID),
		slog.String("date", req.Date),
	).Info("booking created")

	if c.broadcaster != nil {
		c.broadcaster.BroadcastBookingCreated(booking)
	}
	c.notify(fmt.Sprintf("New booking %s\n%s %s: %s\n%s %s\n%s, %s",
		booking.TrackingID,
		req.DeviceBrand, req.DeviceModel, req.ServiceID,
		req.Date, req.TimeSlotID,
		req.Contact.Name, req.Contact.Phone,
	))

	return &entity.Receipt{
		TrackingID: booking.TrackingID,
		CreatedAt:  booking.CreatedAt,
		Echo: map[string]any{
			"service_id":   req.ServiceID,
			"priority":     string(req.Priority),
			"device":       req.DeviceBrand + " " + req.DeviceModel,
			"date":         req.Date,
			"time_slot_id": req.TimeSlotID,
			"name":         req.Contact.Name,
			"email":        req.Contact.Email,
		},
	}, nil
}

func (c *Core) ListBookings(ctx context.Context, limit int64) ([]entity.Booking, error) {
	return c.repo.GetBookings(ctx, limit)
}

func (c *Core) SetBookingStatus(ctx context.Context, trackingID string, status entity.BookingStatus) error {
	switch status {
	case entity.BookingStatusNew, entity.BookingStatusConfirmed, entity.BookingStatusDone:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}
	return c.repo.SetBookingStatus(ctx, trackingID, status)
}
