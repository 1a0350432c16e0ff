package ports

import (
	"context"

	"paperwork/internal/core/domain/model/order"
)

// WorkOrder is a printable work order document.
type WorkOrder struct {
	Number      string
	ContentType string
	Body        []byte
}

// WorkOrderRenderer turns a finalized order into a printable document.
// Rendering is strictly downstream: it must not modify the order.
type WorkOrderRenderer interface {
	Render(ctx context.Context, o *order.Order) (WorkOrder, error)
}
