package queries

import (
	"context"
	"strings"
	"time"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the orders table directly, without loading aggregates.
// Without a database it lists aggregates from an OrderLister instead.
// Results are sorted oldest first, then by id, for stable paging in the desk UI.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	lister OrderLister
}

// NewListOrdersQueryHandler creates a handler for the desk overview.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// NewListOrdersQueryHandlerFromLister creates a handler that lists stored aggregates.
func NewListOrdersQueryHandlerFromLister(lister OrderLister) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{lister: lister}
}

// Handle executes the query.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.lister != nil {
		return h.fromLister(ctx, query.Status())
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			id,
			customer_name,
			variant_id,
			status,
			total_cents,
			paid_cents,
			remaining_cents,
			created_at,
			updated_at
		FROM orders`)
	args := make([]any, 0, 1)
	if query.Status() != order.Unknown {
		sql.WriteString(`
		WHERE status = ?`)
		args = append(args, query.Status().String())
	}
	sql.WriteString(`
		ORDER BY created_at, id`)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError("postgres", err)
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                   ListOrdersQueryResponse
			id                     uuid.UUID
			status                 string
			total, paid, remaining int64
			createdAt, updatedAt   time.Time
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.VariantID,
			&status,
			&total,
			&paid,
			&remaining,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parsed, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp.ID = orderID
		resp.Status = parsed
		resp.Total = kernel.NewMoney(total)
		resp.Paid = kernel.NewMoney(paid)
		resp.Remaining = kernel.NewMoney(remaining)
		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUpstreamUnavailableError("postgres", err)
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) fromLister(ctx context.Context, status order.Status) ([]ListOrdersQueryResponse, error) {
	aggregates, err := h.lister.List(ctx, status)
	if err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0, len(aggregates))
	for _, o := range aggregates {
		orders = append(orders, ListOrdersQueryResponse{
			ID:           o.ID(),
			CustomerName: o.Customer().Name(),
			VariantID:    o.VariantID(),
			Status:       o.Status(),
			Total:        o.Total(),
			Paid:         o.Paid(),
			Remaining:    o.Remaining(),
			CreatedAt:    o.CreatedAt(),
			UpdatedAt:    o.UpdatedAt(),
		})
	}
	return orders, nil
}
