package queries

import (
	"errors"
	"time"

	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its fee breakdown and history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the detail view of an order.
//
// Lines is the customer-facing breakdown; it deliberately omits the hidden fine
// surcharge, so the lines do not add up to Total when fines are selected.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerPhone string
	NationalID    string
	VariantID     string
	Inputs        pricing.Inputs
	Lines         []fees.Line
	MandatoryFees kernel.Money
	Total         kernel.Money
	Paid          kernel.Money
	Remaining     kernel.Money
	Status        order.Status
	Notes         []order.Note
	WorkOrder     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
