package http

import (
	"log/slog"

	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrderPricing commands.UpdateOrderPricingCommandHandler
	RecordPayment      commands.RecordPaymentCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	ReserveSerial      commands.ReserveSerialCommandHandler
	NotifyCustomer     commands.NotifyCustomerCommandHandler

	// Query handlers
	GetOrder                queries.GetOrderQueryHandler
	ListOrders              queries.ListOrdersQueryHandler
	QuoteOrder              queries.QuoteOrderQueryHandler
	GetWorkOrder            queries.GetWorkOrderQueryHandler
	CheckSerialAvailability queries.CheckSerialAvailabilityQueryHandler
	SearchCustomers         queries.SearchCustomersQueryHandler
	ListCatalog             queries.ListCatalogQueryHandler
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	engine   *fees.Engine
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates the server. The fee engine turns the desk's selected item ids
// into a normalized selection before any use case sees them.
func NewServer(handlers Handlers, engine *fees.Engine, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		engine:   engine,
		metrics:  m,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts the API routes on a router rooted at /api/v1.
func RegisterHandlers(api EchoRouter, s *Server, availability ...echo.MiddlewareFunc) {
	api.GET("/catalog", s.ListCatalog)
	api.GET("/statuses", s.ListStatuses)
	api.POST("/quotes", s.QuoteOrder)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.PUT("/orders/:orderId/pricing", s.UpdateOrderPricing)
	api.POST("/orders/:orderId/payments", s.RecordPayment)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.GET("/orders/:orderId/work-order", s.GetWorkOrder)
	api.POST("/orders/:orderId/notifications", s.NotifyCustomer)
	api.POST("/orders/:orderId/serials", s.ReserveSerial)

	api.GET("/serials/availability", s.CheckSerialAvailability, availability...)
	api.GET("/customers", s.SearchCustomers)
}

// orderIDParam binds the orderId path parameter.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(orderID[:])
}
