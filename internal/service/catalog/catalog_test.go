package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RepairDesk/entity"
)

type fakeRemote struct {
	services []entity.RepairService
	slots    []entity.TimeSlot
	err      error
	calls    atomic.Int32
}

func (f *fakeRemote) ListServices(context.Context) ([]entity.RepairService, error) {
	f.calls.Add(1)
	return f.services, f.err
}

func (f *fakeRemote) ListTimeSlots(context.Context) ([]entity.TimeSlot, error) {
	f.calls.Add(1)
	return f.slots, f.err
}

func newTestService(remote Remote) *Service {
	return NewCatalogService(remote, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListServices_Remote(t *testing.T) {
	remote := &fakeRemote{services: []entity.RepairService{{ID: "glass", Name: "Back Glass", PriceMin: 50, PriceMax: 90}}}
	s := newTestService(remote)

	got := s.ListServices(context.Background())
	assert.Equal(t, SourceRemote, got.Source)
	assert.False(t, got.Degraded)
	assert.Equal(t, remote.services, got.Items)

	s.ListServices(context.Background())
	assert.Equal(t, int32(1), remote.calls.Load(), "second read is cached")
}

func TestListServices_EmptyRemoteIsNotReplaced(t *testing.T) {
	s := newTestService(&fakeRemote{})

	got := s.ListServices(context.Background())
	assert.Equal(t, SourceRemote, got.Source)
	assert.False(t, got.Degraded)
	assert.Empty(t, got.Items)
	assert.NotNil(t, got.Items)
}

func TestListServices_FailureServesDefaults(t *testing.T) {
	s := newTestService(&fakeRemote{err: errors.New("connection refused")})

	got := s.ListServices(context.Background())
	assert.Equal(t, SourceFallback, got.Source)
	assert.True(t, got.Degraded)
	require.Len(t, got.Items, 6)
	assert.Equal(t, "Screen Repair", got.Items[0].Name)
	assert.Equal(t, 79.0, got.Items[0].PriceMin)
	assert.Equal(t, 199.0, got.Items[0].PriceMax)

	slots := s.ListTimeSlots(context.Background())
	assert.True(t, slots.Degraded)
	assert.Len(t, slots.Items, 7)
}

func TestService_Lookup(t *testing.T) {
	s := newTestService(&fakeRemote{err: errors.New("down")})

	svc, ok := s.Service(context.Background(), "battery-replacement")
	require.True(t, ok)
	assert.Equal(t, entity.RepairService{
		ID: "battery-replacement", Name: "Battery Replacement", PriceMin: 49, PriceMax: 99, Duration: "30-60 min",
	}, svc)

	_, ok = s.Service(context.Background(), "unknown")
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	remote := &fakeRemote{err: errors.New("down")}
	s := newTestService(remote)
	assert.True(t, s.ListServices(context.Background()).Degraded)

	remote.err = nil
	remote.services = []entity.RepairService{{ID: "a"}}
	assert.True(t, s.ListServices(context.Background()).Degraded, "fallback still cached")

	s.Invalidate()
	got := s.ListServices(context.Background())
	assert.Equal(t, SourceRemote, got.Source)
	assert.Len(t, got.Items, 1)
}
