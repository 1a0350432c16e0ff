// Package ports defines the contracts between the order desk core and the outside world:
// persistence, the serial reservation store, customer lookup, messaging and document
// rendering. Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Use cases call it when an operation starts (create, get) and when it ends (update,
// delete); intermediate pricing state is never stored.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. This is an explicit admin action.
	// Returns an ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByStatus returns the orders currently in status, oldest first.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
