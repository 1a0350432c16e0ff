package commands_test

import (
	"context"
	"time"

	"paperwork/internal/core/application/usecases/commands"
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

func fixedClock() time.Time { return fixedNow }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
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

type MockMessenger struct{ mock.Mock }

func (m *MockMessenger) Send(ctx context.Context, phone, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}

type MockComposer struct{ mock.Mock }

func (m *MockComposer) Compose(template ports.MessageTemplate, o *order.Order) (string, error) {
	args := m.Called(template, o)
	return args.String(0), args.Error(1)
}

func newCalculator() *pricing.Calculator {
	return pricing.NewCalculator(fees.NewEngine(catalog.Default()))
}

func validInputs() pricing.Inputs {
	return pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(50000),
		Quantity:         2,
		Photography:      pricing.PhotographyNone,
		DeliveryMode:     pricing.DeliveryOffice,
	}
}

func newCustomer(phone string) order.Customer {
	c, err := order.NewCustomer("Amal Haddad", phone, "")
	if err != nil {
		panic(err)
	}
	return c
}

func newTestOrder(phone string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), newCustomer(phone), "passport-regular", validInputs(), newCalculator(), fixedNow)
	if err != nil {
		panic(err)
	}
	return o
}

// expectTx wires the standard Begin, OrderRepository, Commit, Rollback sequence.
func expectTx(ctx context.Context, repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}
