package core

import (
	"RepairDesk/entity"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps records for the lifetime of the process.
// It is used when MongoDB is disabled.
type MemoryRepository struct {
	mu         sync.RWMutex
	keys       map[string]string
	bookings   []entity.Booking
	saleQuotes []entity.SaleQuote
	services   map[string]entity.RepairService
	slots      map[string]entity.TimeSlot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		keys:     make(map[string]string),
		services: make(map[string]entity.RepairService),
		slots:    make(map[string]entity.TimeSlot),
	}
}

func (m *MemoryRepository) CheckApiKey(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	username, ok := m.keys[key]
	if !ok {
		return "", fmt.Errorf("api key not found")
	}
	return username, nil
}

func (m *MemoryRepository) GenerateApiKey(username string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, u := range m.keys {
		if u == username {
			return k, nil
		}
	}
	key := uuid.NewString()
	m.keys[key] = username
	return key, nil
}

func (m *MemoryRepository) SaveBooking(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *MemoryRepository) GetBookings(_ context.Context, limit int64) ([]entity.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return latest(m.bookings, limit), nil
}

func (m *MemoryRepository) SetBookingStatus(_ context.Context, trackingID string, status entity.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].TrackingID == trackingID {
			m.bookings[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", trackingID)
}

func (m *MemoryRepository) SaveSaleQuote(_ context.Context, quote *entity.SaleQuote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saleQuotes = append(m.saleQuotes, *quote)
	return nil
}

func (m *MemoryRepository) GetSaleQuotes(_ context.Context, limit int64) ([]entity.SaleQuote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return latest(m.saleQuotes, limit), nil
}

func (m *MemoryRepository) GetServices(_ context.Context) ([]entity.RepairService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	services := make([]entity.RepairService, 0, len(m.services))
	for _, s := range m.services {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

func (m *MemoryRepository) UpsertService(_ context.Context, service *entity.RepairService) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[service.ID] = *service
	return nil
}

func (m *MemoryRepository) GetTimeSlots(_ context.Context) ([]entity.TimeSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slots := make([]entity.TimeSlot, 0, len(m.slots))
	for _, s := range m.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Label < slots[j].Label })
	return slots, nil
}

func (m *MemoryRepository) UpsertTimeSlot(_ context.Context, slot *entity.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot.ID] = *slot
	return nil
}

// latest returns up to limit records, newest first.
func latest[T any](records []T, limit int64) []T {
	n := int64(len(records))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for i := len(records) - 1; i >= 0 && int64(len(out)) < n; i-- {
		out = append(out, records[i])
	}
	return out
}
