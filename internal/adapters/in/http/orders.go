package http

import (
	"net/http"

	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inputs, err := body.Pricing.toDomain(s.engine)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}
	customer, err := order.NewCustomer(body.Customer.Name, body.Customer.Phone, body.Customer.NationalID)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customer, body.VariantID, inputs)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.Bytes()})
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally in one status.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusCode *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &statusCode); err != nil {
		return badRequest(ctx, err.Error())
	}

	status := order.Unknown
	if statusCode != nil && *statusCode != "" {
		parsed, err := order.ParseStatus(*statusCode)
		if err != nil {
			return s.fail(ctx, err, "Failed to list orders")
		}
		status = parsed
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err, "Failed to list orders")
	}
	rows, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to list orders")
	}

	return ctx.JSON(http.StatusOK, orderSummaries(rows))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to get order")
	}
	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to get order")
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}
	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderPricing handles PUT /api/v1/orders/{orderId}/pricing.
func (s *Server) UpdateOrderPricing(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body PricingInputs
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	inputs, err := body.toDomain(s.engine)
	if err != nil {
		return s.fail(ctx, err, "Failed to update pricing")
	}

	cmd, err := commands.NewUpdateOrderPricingCommand(orderID, inputs)
	if err != nil {
		return s.fail(ctx, err, "Failed to update pricing")
	}
	if err := s.handlers.UpdateOrderPricing.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update pricing")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body Payment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	amount, err := body.toDomain()
	if err != nil {
		return s.fail(ctx, err, "Failed to record payment")
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount)
	if err != nil {
		return s.fail(ctx, err, "Failed to record payment")
	}
	if err := s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to record payment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err, "Failed to change status")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, body.Note)
	if err != nil {
		return s.fail(ctx, err, "Failed to change status")
	}
	if err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change status")
	}

	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(status.String()).Inc()
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkOrder handles GET /api/v1/orders/{orderId}/work-order.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetWorkOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Failed to render work order")
	}
	doc, err := s.handlers.GetWorkOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to render work order")
	}

	ctx.Response().Header().Set("X-Work-Order-Number", doc.Number)
	return ctx.Blob(http.StatusOK, doc.ContentType, doc.Body)
}

// NotifyCustomer handles POST /api/v1/orders/{orderId}/notifications.
func (s *Server) NotifyCustomer(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body Notification
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewNotifyCustomerCommand(orderID, ports.MessageTemplate(body.Template))
	if err != nil {
		return s.fail(ctx, err, "Failed to notify customer")
	}
	if err := s.handlers.NotifyCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to notify customer")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// QuoteOrder handles POST /api/v1/quotes - prices a draft without saving it.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var body QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inputs, err := body.Pricing.toDomain(s.engine)
	if err != nil {
		return s.fail(ctx, err, "Failed to quote")
	}
	query, err := queries.NewQuoteOrderQuery(inputs, kernel.NewMoney(body.PaidCents))
	if err != nil {
		return s.fail(ctx, err, "Failed to quote")
	}
	resp, err := s.handlers.QuoteOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to quote")
	}

	return ctx.JSON(http.StatusOK, quoteFromResponse(resp))
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, statusInfos())
}

// SearchCustomers handles GET /api/v1/customers?name= - finds known customers.
func (s *Server) SearchCustomers(ctx echo.Context) error {
	var name string
	if err := runtime.BindQueryParameter("form", true, true, "name", ctx.QueryParams(), &name); err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("name", err), "Failed to search customers")
	}
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limit); err != nil {
		return badRequest(ctx, err.Error())
	}

	n := 0
	if limit != nil {
		n = *limit
	}
	query, err := queries.NewSearchCustomersQuery(name, n)
	if err != nil {
		return s.fail(ctx, err, "Failed to search customers")
	}
	records, err := s.handlers.SearchCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to search customers")
	}

	return ctx.JSON(http.StatusOK, customerRecords(records))
}
