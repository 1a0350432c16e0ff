package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"paperwork/internal/adapters/out/postgres/customerrepo"
	"paperwork/internal/adapters/out/postgres/orderrepo"
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	calculator *pricing.Calculator
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(append(orderrepo.Models(), &customerrepo.CustomerDTO{})...))
	suite.calculator = pricing.NewCalculator(fees.NewEngine(catalog.Default()))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_fee_items, order_notes, customers CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("Amal Haddad", time.Now())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RemembersCustomer() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("Amal Haddad", time.Now())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("Amal Haddad", time.Now())))

	var count int64
	suite.Require().NoError(suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	original := suite.createTestOrder("Amal Haddad", now)
	suite.Require().NoError(original.ChangeStatus(order.AwaitingPayment, "customer confirmed by phone", now))
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), got.ID())
	suite.Equal(original.Customer(), got.Customer())
	suite.Equal("passport-regular", got.VariantID())
	suite.Equal(order.AwaitingPayment, got.Status())
	suite.Equal(original.Total(), got.Total())
	suite.Equal(original.Remaining(), got.Remaining())
	suite.True(original.Inputs().Selection.IsEqual(got.Inputs().Selection))
	suite.Equal(pricing.PhotographyBiometric, got.Inputs().Photography)
	suite.Equal(2, got.Inputs().Quantity)
	suite.True(now.Equal(got.CreatedAt()))

	amount, ok := got.Inputs().Selection.ManualAmount(catalog.AddonTranslation)
	suite.True(ok, "manual amount of a deselected add-on survives")
	suite.Equal(int64(4000), amount.Minor())
	suite.False(got.Inputs().Selection.Has(catalog.AddonTranslation))

	suite.Require().Len(got.Notes(), 1)
	suite.Equal("customer confirmed by phone", got.Notes()[0].Text)
	suite.Equal(order.AwaitingPayment, got.Notes()[0].Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("Amal Haddad", time.Now())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	later := time.Now().Add(time.Hour)
	in := testOrder.Inputs()
	in.Selection = suite.calculator.Engine().Deselect(in.Selection, catalog.FineLostDocument)
	suite.Require().NoError(testOrder.UpdatePricing(in, suite.calculator, later))
	suite.Require().NoError(testOrder.RecordPayment(kernel.NewMoney(10000), later))
	suite.Require().NoError(testOrder.ChangeStatus(order.Paid, "paid in cash", later))
	suite.Require().NoError(testOrder.ChangeStatus(order.Settlement, "filed", later))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Settlement, got.Status())
	suite.Equal(testOrder.Total(), got.Total())
	suite.Equal(int64(10000), got.Paid().Minor())
	suite.Equal(testOrder.Remaining(), got.Remaining())
	suite.False(got.Inputs().Selection.Has(catalog.FineLostDocument))
	suite.False(got.Inputs().Selection.Has(catalog.AddonFineHandling))
	suite.Require().Len(got.Notes(), 2)
	suite.Equal("filed", got.Notes()[1].Text)
	suite.WithinDuration(later, got.UpdatedAt(), time.Millisecond)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder("Amal Haddad", time.Now()))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("Amal Haddad", time.Now())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.FeeItemDTO{}).Count(&items).Error)
	suite.Zero(items)

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByStatus_OldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	base := time.Now()

	newer := suite.createTestOrder("Newer", base.Add(time.Minute))
	older := suite.createTestOrder("Older", base)
	paid := suite.createTestOrder("Paid", base)
	suite.Require().NoError(paid.ChangeStatus(order.Paid, "", base))

	for _, o := range []*order.Order{newer, older, paid} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	waiting, err := suite.repository.ListByStatus(ctx, order.AwaitingConfirmation)
	suite.Require().NoError(err)
	suite.Require().Len(waiting, 2)
	suite.Equal(older.ID(), waiting[0].ID())
	suite.Equal(newer.ID(), waiting[1].ID())

	cancelled, err := suite.repository.ListByStatus(ctx, order.Cancelled)
	suite.Require().NoError(err)
	suite.Empty(cancelled)

	_, err = suite.repository.ListByStatus(ctx, order.Unknown)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNilTracker() {
	repo := orderrepo.NewGormOrderRepository(suite.db, nil)

	suite.Require().NoError(repo.Add(context.Background(), suite.createTestOrder("Amal Haddad", time.Now())))
}

// createTestOrder builds an order with a lost-document fine, a biometric photo and a
// translation amount typed but not selected.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(name string, now time.Time) *order.Order {
	engine := suite.calculator.Engine()
	sel := engine.Select(fees.Selection{}, catalog.FineLostDocument)
	sel = engine.SetManualAmount(sel, catalog.AddonTranslation, kernel.NewMoney(4000))

	customer, err := order.NewCustomer(name, "+961 3 123 456", "LB-1")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, "passport-regular", pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(50000),
		Quantity:         2,
		Photography:      pricing.PhotographyBiometric,
		DeliveryMode:     pricing.DeliveryOffice,
		Selection:        sel,
	}, suite.calculator, now)
	suite.Require().NoError(err)
	return o
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
