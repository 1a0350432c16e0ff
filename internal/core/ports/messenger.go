package ports

import (
	"context"

	"paperwork/internal/core/domain/model/order"
)

// Messenger sends a text message to a phone number. Delivery is fire-and-forget:
// a nil error means the message was handed over, not that it arrived.
type Messenger interface {
	Send(ctx context.Context, phone, text string) error
}

// MessageTemplate names a message text staff can send.
type MessageTemplate string

const (
	TemplateOrderReceived   MessageTemplate = "order-received"
	TemplateStatusUpdate    MessageTemplate = "status-update"
	TemplatePaymentReminder MessageTemplate = "payment-reminder"
	TemplateReadyForPickup  MessageTemplate = "ready-for-pickup"
)

// MessageComposer renders a named template for an order.
type MessageComposer interface {
	// Compose returns the message text. Unknown templates yield a validation error.
	Compose(template MessageTemplate, o *order.Order) (string, error)
}
