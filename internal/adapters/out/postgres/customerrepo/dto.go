// Package customerrepo is the customer directory kept next to the orders. Every order
// remembers its customer snapshot here so staff can pick a returning customer by name.
package customerrepo

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDTO is one known customer. Name and phone together identify a customer;
// the national id is refreshed from the latest order.
type CustomerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_name_phone"`
	Phone      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_customers_name_phone"`
	NationalID string    `gorm:"type:varchar(64)"`
	UpdatedAt  time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}
