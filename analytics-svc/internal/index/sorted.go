// Package index keeps orders in chronological order and answers inclusive date-range
// queries with a binary search on both boundaries.
package index

import (
	"cmp"
	"fmt"
	"slices"

	"overcooked-analytics/analytics-svc/internal/domain"
)

// Sorted wraps a slice of orders. Range and the bound helpers assume Sort has been
// called since the last change to the slice.
type Sorted struct {
	orders []domain.Order
}

func New(orders []domain.Order) *Sorted {
	return &Sorted{orders: orders}
}

// Sort orders the records ascending by DateKey, in place.
func (s *Sorted) Sort() {
	slices.SortStableFunc(s.orders, func(a, b domain.Order) int {
		return cmp.Compare(a.DateKey, b.DateKey)
	})
}

func (s *Sorted) Len() int { return len(s.orders) }

// Orders returns the sorted records. The slice is shared with the index.
func (s *Sorted) Orders() []domain.Order { return s.orders }

// Range returns the records whose key lies in [startKey, endKey]. The returned slice
// aliases the index.
func (s *Sorted) Range(startKey, endKey int64) ([]domain.Order, error) {
	if len(s.orders) == 0 {
		return nil, domain.ErrEmptyIndex
	}
	if startKey > endKey {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrInvalidRange, startKey, endKey)
	}

	lo := s.LowerBound(startKey)
	hi := s.UpperBound(endKey)
	if lo > hi {
		return []domain.Order{}, nil
	}
	return s.orders[lo : hi+1], nil
}

// LowerBound is the index of the first record with key >= target, or Len() when
// every key is smaller.
func (s *Sorted) LowerBound(target int64) int {
	i, found := s.search(target)
	if !found {
		return i
	}
	for i > 0 && s.orders[i-1].DateKey == target {
		i--
	}
	return i
}

// UpperBound is the index of the last record with key <= target, or -1 when every
// key is larger.
func (s *Sorted) UpperBound(target int64) int {
	i, found := s.search(target)
	if !found {
		return i - 1
	}
	for i < len(s.orders)-1 && s.orders[i+1].DateKey == target {
		i++
	}
	return i
}

// search returns the position of some record equal to target, or the insertion point
// when there is none.
func (s *Sorted) search(target int64) (int, bool) {
	lo, hi := 0, len(s.orders)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch key := s.orders[mid].DateKey; {
		case key == target:
			return mid, true
		case key < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return lo, false
}
