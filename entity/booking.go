package entity

import "time"

type PriorityTier string

const (
	PriorityStandard PriorityTier = "standard"
	PriorityPriority PriorityTier = "priority"
	PriorityExpress  PriorityTier = "express"
)

// Fee is the flat surcharge added to both bounds of a repair estimate.
func (p PriorityTier) Fee() float64 {
	switch p {
	case PriorityPriority:
		return 20
	case PriorityExpress:
		return 40
	}
	return 0
}

func (p PriorityTier) Valid() bool {
	switch p {
	case PriorityStandard, PriorityPriority, PriorityExpress:
		return true
	}
	return false
}

type RepairService struct {
	ID       string  `json:"id" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	PriceMin float64 `json:"price_min" bson:"price_min"`
	PriceMax float64 `json:"price_max" bson:"price_max"`
	Duration string  `json:"duration" bson:"duration"`
}

type TimeSlot struct {
	ID    string `json:"id" bson:"_id"`
	Label string `json:"label" bson:"label"`
}

type BookingRequest struct {
	ServiceID   string        `json:"service_id" bson:"service_id" validate:"required"`
	Priority    PriorityTier  `json:"priority" bson:"priority"`
	DeviceBrand string        `json:"device_brand" bson:"device_brand" validate:"required"`
	DeviceModel string        `json:"device_model" bson:"device_model" validate:"required"`
	Issue       string        `json:"issue" bson:"issue" validate:"required"`
	Date        string        `json:"date" bson:"date" validate:"required"`
	TimeSlotID  string        `json:"time_slot_id" bson:"time_slot_id" validate:"required"`
	Contact     Contact       `json:"contact" bson:"contact"`
	Estimate    PriceEstimate `json:"estimate" bson:"estimate"`
}

type BookingStatus string

const (
	BookingStatusNew       BookingStatus = "new"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDone      BookingStatus = "done"
)

// Booking is a created repair appointment as stored by the booking service.
type Booking struct {
	TrackingID string         `json:"tracking_id" bson:"tracking_id"`
	Request    BookingRequest `json:"request" bson:"request"`
	Status     BookingStatus  `json:"status" bson:"status"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}
