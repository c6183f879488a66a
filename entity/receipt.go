package entity

import "time"

// Receipt is what the booking/sale service returns for a created record.
type Receipt struct {
	TrackingID string         `json:"tracking_id"`
	CreatedAt  time.Time      `json:"created_at"`
	Echo       map[string]any `json:"echo,omitempty"`
}
