package entity

import "time"

type DeviceType string

const (
	DevicePhone  DeviceType = "phone"
	DeviceLaptop DeviceType = "laptop"
	DeviceTablet DeviceType = "tablet"
	DeviceOther  DeviceType = "other"
)

// BasePrice is the trade-in price of a device in excellent condition.
func (d DeviceType) BasePrice() (float64, bool) {
	switch d {
	case DevicePhone:
		return 200, true
	case DeviceLaptop:
		return 300, true
	case DeviceTablet:
		return 150, true
	case DeviceOther:
		return 100, true
	}
	return 0, false
}

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Conditions lists tiers from best to worst.
var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

func (c Condition) Multiplier() (float64, bool) {
	switch c {
	case ConditionExcellent:
		return 1.0, true
	case ConditionGood:
		return 0.8, true
	case ConditionFair:
		return 0.6, true
	case ConditionPoor:
		return 0.4, true
	}
	return 0, false
}

type SaleQuoteRequest struct {
	DeviceType    DeviceType    `json:"device_type" bson:"device_type" validate:"required"`
	DeviceBrand   string        `json:"device_brand" bson:"device_brand" validate:"required"`
	DeviceModel   string        `json:"device_model" bson:"device_model" validate:"required"`
	Condition     Condition     `json:"condition" bson:"condition" validate:"required"`
	Storage       string        `json:"storage,omitempty" bson:"storage,omitempty"`
	BatteryHealth string        `json:"battery_health,omitempty" bson:"battery_health,omitempty"`
	Contact       Contact       `json:"contact" bson:"contact"`
	Estimate      PriceEstimate `json:"estimate" bson:"estimate"`
}

type SaleQuote struct {
	TrackingID string           `json:"tracking_id" bson:"tracking_id"`
	Request    SaleQuoteRequest `json:"request" bson:"request"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
}
