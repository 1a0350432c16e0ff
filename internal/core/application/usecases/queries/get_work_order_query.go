package queries

import (
	"context"
	"errors"
	"fmt"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// ErrWorkOrderNotAvailable is returned for orders outside settlement. It wraps errs.ErrConflict.
var ErrWorkOrderNotAvailable = fmt.Errorf("%w: work order is only available in settlement", errs.ErrConflict)

// GetWorkOrderQuery renders the printable work order of a settlement order.
type GetWorkOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkOrderQuery(orderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

func (q GetWorkOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetWorkOrderQueryHandler loads the order and hands it to the renderer.
// Rendering is a read path: the order is never saved.
type GetWorkOrderQueryHandler struct {
	orders   OrderReader
	renderer ports.WorkOrderRenderer
}

func NewGetWorkOrderQueryHandler(orders OrderReader, renderer ports.WorkOrderRenderer) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{orders: orders, renderer: renderer}
}

// Handle returns an ObjectNotFoundError for a missing order and ErrWorkOrderNotAvailable
// for an order in any status other than settlement.
func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (ports.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return ports.WorkOrder{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return ports.WorkOrder{}, err
	}

	if !o.Status().AllowsWorkOrder() {
		return ports.WorkOrder{}, fmt.Errorf("%w (order is %s)", ErrWorkOrderNotAvailable, o.Status())
	}

	return h.renderer.Render(ctx, o)
}
