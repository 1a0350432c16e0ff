package orderrepo

import (
	"context"
	"errors"

	"paperwork/internal/adapters/out/postgres/customerrepo"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upstream = "postgres"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	forUpdate bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. tracker may be nil
// when the repository is used outside a unit of work, e.g. by read-only queries.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// LockingRows returns a copy of the repository whose Get locks the order row until
// the surrounding transaction ends. Two read-modify-write commands on one order then
// run one after the other instead of losing an update.
func (r *GormOrderRepository) LockingRows() *GormOrderRepository {
	locking := *r
	locking.forUpdate = true
	return &locking
}

// Add saves a new order together with its fee items and notes. The customer snapshot
// is also remembered in the customer directory.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamUnavailableError(upstream, err)
	}

	if err := customerrepo.NewGormCustomerDirectory(r.db).Remember(ctx, aggregate.Customer()); err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update overwrites the order row and replaces its child rows.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{ID: dto.ID}).
		Select("*").
		Omit("ID", "CreatedAt", "FeeItems", "Notes").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamUnavailableError(upstream, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&FeeItemDTO{}).Error; err != nil {
		return errs.NewUpstreamUnavailableError(upstream, err)
	}
	if len(dto.FeeItems) > 0 {
		if err := db.Create(&dto.FeeItems).Error; err != nil {
			return errs.NewUpstreamUnavailableError(upstream, err)
		}
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&NoteDTO{}).Error; err != nil {
		return errs.NewUpstreamUnavailableError(upstream, err)
	}
	if len(dto.Notes) > 0 {
		if err := db.Create(&dto.Notes).Error; err != nil {
			return errs.NewUpstreamUnavailableError(upstream, err)
		}
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.preloaded(ctx)
	if r.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	err := query.First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewUpstreamUnavailableError(upstream, err)
	}

	return toDomain(dto)
}

// Delete removes an order; fee items and notes go with it.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	for _, child := range []any{&FeeItemDTO{}, &NoteDTO{}} {
		if err := db.Where("order_id = ?", id.Bytes()).Delete(child).Error; err != nil {
			return errs.NewUpstreamUnavailableError(upstream, err)
		}
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewUpstreamUnavailableError(upstream, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// ListByStatus retrieves all orders in status, oldest first.
func (r *GormOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("status = ?", status.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError(upstream, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("FeeItems").
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
