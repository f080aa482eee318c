// Package store holds the order log in insertion order together with one running
// aggregate per dish name. It is the single source of truth the index, the popularity
// tree and the graph are built from.
package store

import (
	"fmt"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const DefaultMaxOrders = 11000

type Records struct {
	maxOrders int
	orders    []domain.Order
	dishes    []domain.Dish
	dishIndex map[string]int
}

// New returns an empty store that rejects orders beyond maxOrders. A non-positive
// limit selects DefaultMaxOrders.
func New(maxOrders int) *Records {
	if maxOrders <= 0 {
		maxOrders = DefaultMaxOrders
	}
	return &Records{
		maxOrders: maxOrders,
		dishIndex: make(map[string]int),
	}
}

// Add appends an order and bumps the aggregate of its dish.
func (r *Records) Add(order domain.Order) error {
	if len(r.orders) >= r.maxOrders {
		return fmt.Errorf("%w (limit %d)", domain.ErrStoreFull, r.maxOrders)
	}
	if order.DateKey < 0 {
		return fmt.Errorf("%w: negative date key for %q", domain.ErrInvalidInput, order.DateText)
	}

	r.orders = append(r.orders, order)

	if i, ok := r.dishIndex[order.Dish]; ok {
		r.dishes[i].TotalOrders++
		return nil
	}
	r.dishIndex[order.Dish] = len(r.dishes)
	r.dishes = append(r.dishes, domain.Dish{Name: order.Dish, TotalOrders: 1})
	return nil
}

// Orders exposes the backing slice. Callers may reorder it (the index sorts it in
// place) but must not change its elements.
func (r *Records) Orders() []domain.Order {
	return r.orders
}

// Dishes returns a copy of the aggregates in first-seen order.
func (r *Records) Dishes() []domain.Dish {
	out := make([]domain.Dish, len(r.dishes))
	copy(out, r.dishes)
	return out
}

func (r *Records) Len() int       { return len(r.orders) }
func (r *Records) DishCount() int { return len(r.dishes) }
func (r *Records) Cap() int       { return r.maxOrders }
func (r *Records) Full() bool     { return len(r.orders) >= r.maxOrders }
