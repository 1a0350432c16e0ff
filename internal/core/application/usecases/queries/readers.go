// Package queries contains read operations of the order desk.
// Query handlers never modify state; list views read straight from the database,
// single-order views go through an OrderReader.
package queries

import (
	"context"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
)

// OrderReader loads a single order aggregate. The postgres order repository implements it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderLister lists order aggregates, oldest first. order.Unknown lists every status.
// The in-memory order store implements it for deployments without a database.
type OrderLister interface {
	List(ctx context.Context, status order.Status) ([]*order.Order, error)
}
