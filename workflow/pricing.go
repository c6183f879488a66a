package workflow

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"RepairDesk/entity"
)

const DefaultEstimateCacheSize = 256

// MemoEstimator caches estimates by selection. The selection must capture
// every input the price function reads, so a cached value is never stale.
type MemoEstimator[S comparable] struct {
	selection func(form *FormState) S
	price     func(sel S) entity.PriceEstimate
	cache     *lru.Cache
}

func NewMemoEstimator[S comparable](size int, selection func(form *FormState) S, price func(sel S) entity.PriceEstimate) (*MemoEstimator[S], error) {
	if size <= 0 {
		size = DefaultEstimateCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating estimate cache: %w", err)
	}
	return &MemoEstimator[S]{
		selection: selection,
		price:     price,
		cache:     cache,
	}, nil
}

func (m *MemoEstimator[S]) Estimate(form *FormState) entity.PriceEstimate {
	sel := m.selection(form)
	if v, ok := m.cache.Get(sel); ok {
		return v.(entity.PriceEstimate)
	}
	p := m.price(sel)
	m.cache.Add(sel, p)
	return p
}

// Cached reports how many selections are memoized.
func (m *MemoEstimator[S]) Cached() int {
	return m.cache.Len()
}
