package catalog

import "RepairDesk/entity"

// DefaultServices is served when the remote catalog cannot be reached.
func DefaultServices() []entity.RepairService {
	return []entity.RepairService{
		{ID: "screen-repair", Name: "Screen Repair", PriceMin: 79, PriceMax: 199, Duration: "1-2 hours"},
		{ID: "battery-replacement", Name: "Battery Replacement", PriceMin: 49, PriceMax: 99, Duration: "30-60 min"},
		{ID: "water-damage", Name: "Water Damage Repair", PriceMin: 99, PriceMax: 299, Duration: "1-3 days"},
		{ID: "charging-port", Name: "Charging Port Repair", PriceMin: 59, PriceMax: 129, Duration: "1 hour"},
		{ID: "camera-repair", Name: "Camera Repair", PriceMin: 69, PriceMax: 159, Duration: "1-2 hours"},
		{ID: "software-issues", Name: "Software Issues", PriceMin: 39, PriceMax: 89, Duration: "30-90 min"},
	}
}

func DefaultTimeSlots() []entity.TimeSlot {
	labels := []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}
	slots := make([]entity.TimeSlot, 0, len(labels))
	for _, l := range labels {
		slots = append(slots, entity.TimeSlot{ID: l, Label: l})
	}
	return slots
}
