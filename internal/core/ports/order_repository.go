// Package ports defines the contracts between the tracking core and its adapters.
package ports

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// ErrOrderAlreadyExists is returned by Add when the order ID is taken.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid. Returns ErrOrderAlreadyExists when an order
	// with the same ID is stored, including one committed concurrently.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when there is no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
