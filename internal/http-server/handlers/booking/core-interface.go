package booking

import (
	"RepairDesk/entity"
	"context"
)

type Core interface {
	CreateBooking(ctx context.Context, req entity.BookingRequest) (*entity.Receipt, error)
	ListBookings(ctx context.Context, limit int64) ([]entity.Booking, error)
	SetBookingStatus(ctx context.Context, trackingID string, status entity.BookingStatus) error
}
