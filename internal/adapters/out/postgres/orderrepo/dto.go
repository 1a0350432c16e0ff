// Package orderrepo persists order aggregates with GORM.
//
// An order is stored as one row in orders plus child rows for its fee selection
// (order_fee_items) and its admin notes (order_notes). Money columns hold minor units.
package orderrepo

import (
	"time"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its text code so the table stays readable from psql.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName       string    `gorm:"type:varchar(255);not null"`
	CustomerPhone      string    `gorm:"type:varchar(64)"`
	CustomerNationalID string    `gorm:"type:varchar(64)"`
	VariantID          string    `gorm:"type:varchar(128);not null;index"`

	UnitPriceCents   int64  `gorm:"not null"`
	Quantity         int    `gorm:"not null"`
	Photography      string `gorm:"type:varchar(32);not null"`
	DeliveryMode     string `gorm:"type:varchar(32);not null"`
	DeliveryFeeCents int64  `gorm:"not null"`
	OtherFeesCents   int64  `gorm:"not null"`
	DiscountCents    int64  `gorm:"not null"`

	TotalCents     int64 `gorm:"not null"`
	PaidCents      int64 `gorm:"not null"`
	RemainingCents int64 `gorm:"not null"`

	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`

	FeeItems []FeeItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes    []NoteDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// FeeItemDTO is one catalog item touched by the fee selection. Selected is false for
// manual add-ons that were deselected but still remember the amount typed for them.
type FeeItemDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID            string    `gorm:"type:varchar(64);primaryKey"`
	Selected          bool      `gorm:"not null"`
	ManualAmountCents *int64
}

func (FeeItemDTO) TableName() string {
	return "order_fee_items"
}

// NoteDTO is one entry of the admin history. Seq keeps the original order.
type NoteDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey;autoIncrement:false"`
	Status  string    `gorm:"type:varchar(32);not null"`
	Text    string    `gorm:"type:text;not null"`
	At      time.Time `gorm:"not null"`
}

func (NoteDTO) TableName() string {
	return "order_notes"
}

// Models lists every table the repository needs, for AutoMigrate.
func Models() []any {
	return []any{&OrderDTO{}, &FeeItemDTO{}, &NoteDTO{}}
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	in := o.Inputs()

	return OrderDTO{
		ID:                 id,
		CustomerName:       o.Customer().Name(),
		CustomerPhone:      o.Customer().Phone(),
		CustomerNationalID: o.Customer().NationalID(),
		VariantID:          o.VariantID(),
		UnitPriceCents:     in.VariantUnitPrice.Minor(),
		Quantity:           in.Quantity,
		Photography:        string(in.Photography),
		DeliveryMode:       string(in.DeliveryMode),
		DeliveryFeeCents:   in.DeliveryFee.Minor(),
		OtherFeesCents:     in.OtherFees.Minor(),
		DiscountCents:      in.Discount.Minor(),
		TotalCents:         o.Total().Minor(),
		PaidCents:          o.Paid().Minor(),
		RemainingCents:     o.Remaining().Minor(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		FeeItems:           feeItemsFromSelection(id, in.Selection),
		Notes:              notesFromDomain(id, o.Notes()),
	}
}

func feeItemsFromSelection(orderID uuid.UUID, sel fees.Selection) []FeeItemDTO {
	manual := sel.ManualAmounts()
	items := make([]FeeItemDTO, 0, sel.Len()+len(manual))

	for _, id := range sel.IDs() {
		item := FeeItemDTO{OrderID: orderID, ItemID: string(id), Selected: true}
		if amount, ok := manual[id]; ok {
			cents := amount.Minor()
			item.ManualAmountCents = &cents
			delete(manual, id)
		}
		items = append(items, item)
	}
	for id, amount := range manual {
		cents := amount.Minor()
		items = append(items, FeeItemDTO{OrderID: orderID, ItemID: string(id), ManualAmountCents: &cents})
	}

	return items
}

func notesFromDomain(orderID uuid.UUID, notes []order.Note) []NoteDTO {
	dtos := make([]NoteDTO, 0, len(notes))
	for i, n := range notes {
		dtos = append(dtos, NoteDTO{
			OrderID: orderID,
			Seq:     i + 1,
			Status:  n.Status.String(),
			Text:    n.Text,
			At:      n.At,
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerNationalID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	notes := make([]order.Note, 0, len(dto.Notes))
	for _, n := range dto.Notes {
		noteStatus, noteErr := order.ParseStatus(n.Status)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, order.Note{Status: noteStatus, Text: n.Text, At: n.At})
	}

	inputs := pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(dto.UnitPriceCents),
		Quantity:         dto.Quantity,
		Photography:      pricing.Photography(dto.Photography),
		DeliveryMode:     pricing.DeliveryMode(dto.DeliveryMode),
		DeliveryFee:      kernel.NewMoney(dto.DeliveryFeeCents),
		OtherFees:        kernel.NewMoney(dto.OtherFeesCents),
		Discount:         kernel.NewMoney(dto.DiscountCents),
		Selection:        selectionFromFeeItems(dto.FeeItems),
	}

	return order.RestoreOrder(
		id,
		customer,
		dto.VariantID,
		inputs,
		kernel.NewMoney(dto.TotalCents),
		kernel.NewMoney(dto.PaidCents),
		status,
		notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}

func selectionFromFeeItems(items []FeeItemDTO) fees.Selection {
	ids := make([]catalog.ItemID, 0, len(items))
	manual := make(map[catalog.ItemID]kernel.Money)
	for _, item := range items {
		if item.Selected {
			ids = append(ids, catalog.ItemID(item.ItemID))
		}
		if item.ManualAmountCents != nil {
			manual[catalog.ItemID(item.ItemID)] = kernel.NewMoney(*item.ManualAmountCents)
		}
	}
	return fees.RestoreSelection(ids, manual)
}
