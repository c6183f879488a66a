package catalog

import (
	"RepairDesk/entity"
	"RepairDesk/internal/lib/metrics"
	"RepairDesk/internal/lib/sl"
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
)

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

const (
	servicesKey = "services"
	slotsKey    = "slots"

	defaultTTL = 5 * time.Minute
	// fallbackTTL bounds how long defaults are served before the remote is retried.
	fallbackTTL = 30 * time.Second
)

// Listing is a catalog read. Degraded is set when Items are the built-in
// defaults because the remote call failed.
type Listing[T any] struct {
	Items    []T    `json:"items"`
	Source   Source `json:"source"`
	Degraded bool   `json:"degraded"`
}

// Remote is where the catalog really lives.
type Remote interface {
	ListServices(ctx context.Context) ([]entity.RepairService, error)
	ListTimeSlots(ctx context.Context) ([]entity.TimeSlot, error)
}

type Service struct {
	remote Remote
	cache  *cache.Cache
	ttl    time.Duration
	log    *slog.Logger
}

func NewCatalogService(remote Remote, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		remote: remote,
		cache:  cache.New(ttl, 2*ttl),
		ttl:    ttl,
		log:    log.With(sl.Module("catalog")),
	}
}

func (s *Service) ListServices(ctx context.Context) Listing[entity.RepairService] {
	return list(ctx, s, servicesKey, s.remote.ListServices, DefaultServices)
}

func (s *Service) ListTimeSlots(ctx context.Context) Listing[entity.TimeSlot] {
	return list(ctx, s, slotsKey, s.remote.ListTimeSlots, DefaultTimeSlots)
}

// Service resolves a repair service by id from the current listing.
func (s *Service) Service(ctx context.Context, id string) (entity.RepairService, bool) {
	for _, svc := range s.ListServices(ctx).Items {
		if svc.ID == id {
			return svc, true
		}
	}
	return entity.RepairService{}, false
}

// Invalidate drops cached listings so the next read goes to the remote.
func (s *Service) Invalidate() {
	s.cache.Flush()
}

func list[T any](ctx context.Context, s *Service, key string, fetch func(context.Context) ([]T, error), defaults func() []T) Listing[T] {
	if v, ok := s.cache.Get(key); ok {
		return v.(Listing[T])
	}

	items, err := fetch(ctx)
	if err != nil {
		s.log.With(
			slog.String("catalog", key),
			sl.Err(err),
		).Error("remote catalog unavailable, serving defaults")
		metrics.CatalogFallbacks.WithLabelValues(key).Inc()

		listing := Listing[T]{Items: defaults(), Source: SourceFallback, Degraded: true}
		s.cache.Set(key, listing, min(fallbackTTL, s.ttl))
		return listing
	}

	if items == nil {
		items = []T{}
	}
	listing := Listing[T]{Items: items, Source: SourceRemote}
	s.cache.Set(key, listing, s.ttl)
	return listing
}
