package http

import (
	"errors"
	"math"
	"net/http"

	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ClientKeyHeader identifies the desk that sends availability checks. Checks are
// sequenced per key; without the header the client address is used.
const ClientKeyHeader = "X-Client-Key"

func clientKey(ctx echo.Context) string {
	if key := ctx.Request().Header.Get(ClientKeyHeader); key != "" {
		return key
	}
	return ctx.RealIP()
}

// CheckSerialAvailability handles GET /api/v1/serials/availability.
// The answer is advisory and always 200; a failed lookup reads as unavailable.
func (s *Server) CheckSerialAvailability(ctx echo.Context) error {
	var variant, number string
	if err := runtime.BindQueryParameter("form", true, true, "variant", ctx.QueryParams(), &variant); err != nil {
		return badRequest(ctx, err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "serial", ctx.QueryParams(), &number); err != nil {
		return badRequest(ctx, err.Error())
	}
	var seq *int64
	if err := runtime.BindQueryParameter("form", true, false, "seq", ctx.QueryParams(), &seq); err != nil {
		return badRequest(ctx, err.Error())
	}

	var sequence uint64
	if seq != nil {
		if *seq < 0 {
			return s.fail(ctx, errs.NewValueIsOutOfRangeError("seq", *seq, 0, int64(math.MaxInt64)), "Failed to check serial")
		}
		sequence = uint64(*seq)
	}

	query, err := queries.NewCheckSerialAvailabilityQuery(variant, number, clientKey(ctx), sequence)
	if err != nil {
		return s.fail(ctx, err, "Failed to check serial")
	}
	resp, err := s.handlers.CheckSerialAvailability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to check serial")
	}

	s.countCheck(resp)
	return ctx.JSON(http.StatusOK, Availability{
		Available:  resp.Available,
		Reason:     resp.Reason,
		Seq:        resp.Seq,
		Superseded: resp.Superseded,
	})
}

func (s *Server) countCheck(resp queries.CheckSerialAvailabilityQueryResponse) {
	if s.metrics == nil {
		return
	}
	var outcome string
	switch {
	case resp.Superseded:
		outcome = metrics.CheckSuperseded
	case resp.Available:
		outcome = metrics.CheckFree
	case resp.Reason == serial.ReasonCheckFailed:
		outcome = metrics.CheckFailed
	default:
		outcome = metrics.CheckInUse
	}
	s.metrics.SerialChecks.WithLabelValues(outcome).Inc()
}

// ReserveSerial handles POST /api/v1/orders/{orderId}/serials.
// Exactly one of several concurrent reservations of a serial gets 201; the rest get 409.
func (s *Server) ReserveSerial(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body SerialReservation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReserveSerialCommand(orderID, body.VariantID, body.Serial)
	if err != nil {
		return s.fail(ctx, err, "Failed to reserve serial")
	}
	err = s.handlers.ReserveSerial.Handle(ctx.Request().Context(), cmd)
	s.countReservation(err)
	if err != nil {
		return s.fail(ctx, err, "Failed to reserve serial")
	}

	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) countReservation(err error) {
	if s.metrics == nil {
		return
	}
	var outcome string
	switch {
	case err == nil:
		outcome = metrics.ReserveOK
	case errors.Is(err, errs.ErrConflict):
		outcome = metrics.ReserveConflict
	default:
		outcome = metrics.ReserveError
	}
	s.metrics.Reservations.WithLabelValues(outcome).Inc()
}

// ListCatalog handles GET /api/v1/catalog.
func (s *Server) ListCatalog(ctx echo.Context) error {
	var category *string
	if err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &category); err != nil {
		return badRequest(ctx, err.Error())
	}

	var c catalog.Category
	if category != nil {
		c = catalog.Category(*category)
	}
	items, err := s.handlers.ListCatalog.Handle(ctx.Request().Context(), queries.NewListCatalogQuery(c))
	if err != nil {
		return s.fail(ctx, err, "Failed to list catalog")
	}

	return ctx.JSON(http.StatusOK, catalogItems(items))
}
