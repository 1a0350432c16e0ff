package queries

import (
	"context"

	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/order"
)

// GetOrderQueryHandler loads an order and describes it for display.
type GetOrderQueryHandler struct {
	orders OrderReader
	engine *fees.Engine
}

func NewGetOrderQueryHandler(orders OrderReader, engine *fees.Engine) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, engine: engine}
}

// Handle returns an ObjectNotFoundError if the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return h.describe(o), nil
}

func (h GetOrderQueryHandler) describe(o *order.Order) GetOrderQueryResponse {
	customer := o.Customer()
	sel := o.Inputs().Selection

	return GetOrderQueryResponse{
		ID:            o.ID(),
		CustomerName:  customer.Name(),
		CustomerPhone: customer.Phone(),
		NationalID:    customer.NationalID(),
		VariantID:     o.VariantID(),
		Inputs:        o.Inputs(),
		Lines:         h.engine.Lines(sel),
		MandatoryFees: h.engine.MandatoryFeeAmount(sel),
		Total:         o.Total(),
		Paid:          o.Paid(),
		Remaining:     o.Remaining(),
		Status:        o.Status(),
		Notes:         o.Notes(),
		WorkOrder:     o.Status().AllowsWorkOrder(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}
