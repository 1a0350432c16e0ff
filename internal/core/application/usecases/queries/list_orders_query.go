package queries

import (
	"errors"
	"time"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders for the desk overview, optionally narrowed to one status.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.AwaitingPayment)
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s owes %s\n", o.ID, o.CustomerName, o.Remaining)
//	}
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. order.Unknown lists orders in every status;
// any other value must be a valid status.
func NewListOrdersQuery(status order.Status) (ListOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, order.Unknown meaning no filter.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse is one row of the desk overview.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	VariantID    string
	Status       order.Status
	Total        kernel.Money
	Paid         kernel.Money
	Remaining    kernel.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
