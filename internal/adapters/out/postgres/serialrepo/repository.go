package serialrepo

import (
	"context"

	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSerialReservationRepository implements SerialReservationRepository using GORM.
type GormSerialReservationRepository struct {
	db *gorm.DB
}

func NewGormSerialReservationRepository(db *gorm.DB) *GormSerialReservationRepository {
	return &GormSerialReservationRepository{db: db}
}

func (r *GormSerialReservationRepository) IsConsumed(ctx context.Context, variantID, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Where("service_variant_id = ? AND serial_number = ?", variantID, number).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errs.NewUpstreamUnavailableError("postgres", err)
	}
	return count > 0, nil
}

// Reserve inserts the reservation with ON CONFLICT DO NOTHING. A concurrent or earlier
// reservation of the same serial leaves zero rows affected and yields a ConflictError.
func (r *GormSerialReservationRepository) Reserve(ctx context.Context, reservation *serial.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	dto := fromDomain(reservation)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return errs.NewUpstreamUnavailableError("postgres", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("serial", reservation.Number())
	}
	return nil
}
