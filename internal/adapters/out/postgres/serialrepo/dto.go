// Package serialrepo stores consumed serial numbers in PostgreSQL. The unique index
// over (service_variant_id, serial_number) is what makes a reservation exclusive.
package serialrepo

import (
	"time"

	"paperwork/internal/core/domain/model/serial"

	"github.com/google/uuid"
)

// ReservationDTO is a consumed serial.
type ReservationDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceVariantID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_serial_variant_number"`
	SerialNumber     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_serial_variant_number"`
	ConsumedAt       time.Time `gorm:"not null"`
}

func (ReservationDTO) TableName() string {
	return "serial_reservations"
}

func fromDomain(r *serial.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:               r.ID().Bytes(),
		OrderID:          r.OrderID().Bytes(),
		ServiceVariantID: r.VariantID(),
		SerialNumber:     r.Number(),
		ConsumedAt:       r.ConsumedAt(),
	}
}
