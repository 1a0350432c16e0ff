package queries_test

import (
	"context"
	"time"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSerialReservationRepository struct{ mock.Mock }

func (m *MockSerialReservationRepository) IsConsumed(ctx context.Context, variantID, number string) (bool, error) {
	args := m.Called(ctx, variantID, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockSerialReservationRepository) Reserve(ctx context.Context, r *serial.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(ctx context.Context, o *order.Order) (ports.WorkOrder, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(ports.WorkOrder), args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) SearchByName(ctx context.Context, name string, limit int) ([]ports.CustomerRecord, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CustomerRecord), args.Error(1)
}

func newEngine() *fees.Engine {
	return fees.NewEngine(catalog.Default())
}

func validInputs() pricing.Inputs {
	return pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(50000),
		Quantity:         2,
		Photography:      pricing.PhotographyNone,
		DeliveryMode:     pricing.DeliveryOffice,
	}
}

func newTestOrder(status order.Status) *order.Order {
	customer, err := order.NewCustomer("Amal Haddad", "+961 3 123 456", "LB-1")
	if err != nil {
		panic(err)
	}
	in := validInputs()
	in.Selection = newEngine().Toggle(in.Selection, catalog.FineLostDocument)
	o, err := order.NewOrder(kernel.NewUUID(), customer, "passport-regular", in,
		pricing.NewCalculator(newEngine()), fixedNow)
	if err != nil {
		panic(err)
	}
	if err = o.ChangeStatus(status, "", fixedNow); err != nil {
		panic(err)
	}
	return o
}
