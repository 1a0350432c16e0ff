package customerrepo

import (
	"context"
	"strings"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormCustomerDirectory implements ports.CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// SearchByName matches name anywhere in the customer name, case-insensitively.
// LIKE wildcards typed by staff are matched literally.
func (d *GormCustomerDirectory) SearchByName(ctx context.Context, name string, limit int) ([]ports.CustomerRecord, error) {
	var dtos []CustomerDTO
	err := d.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+likeEscaper.Replace(name)+"%").
		Order("name, phone").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError("postgres", err)
	}

	records := make([]ports.CustomerRecord, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		records = append(records, ports.CustomerRecord{
			ID:         id,
			Name:       dto.Name,
			Phone:      dto.Phone,
			NationalID: dto.NationalID,
		})
	}

	return records, nil
}

// Remember inserts the customer or refreshes the national id of a known one.
func (d *GormCustomerDirectory) Remember(ctx context.Context, customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	dto := CustomerDTO{
		ID:         uuid.New(),
		Name:       customer.Name(),
		Phone:      customer.Phone(),
		NationalID: customer.NationalID(),
	}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"national_id", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return errs.NewUpstreamUnavailableError("postgres", err)
	}

	return nil
}
