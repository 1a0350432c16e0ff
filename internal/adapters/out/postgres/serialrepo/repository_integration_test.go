package serialrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"paperwork/internal/adapters/out/postgres/serialrepo"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/serial"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type SerialReservationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *serialrepo.GormSerialReservationRepository
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	suite.Require().NoError(db.AutoMigrate(&serialrepo.ReservationDTO{}))
	suite.repository = serialrepo.NewGormSerialReservationRepository(db)
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE serial_reservations").Error)
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) newReservation(variant, number string) *serial.Reservation {
	r, err := serial.NewReservation(kernel.NewUUID(), kernel.NewUUID(), variant, number, time.Now())
	suite.Require().NoError(err)
	return r
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) TestReserve_ThenConsumed() {
	ctx := context.Background()

	consumed, err := suite.repository.IsConsumed(ctx, "passport-regular", "AB-1001")
	suite.Require().NoError(err)
	suite.False(consumed)

	suite.Require().NoError(suite.repository.Reserve(ctx, suite.newReservation("passport-regular", "AB-1001")))

	consumed, err = suite.repository.IsConsumed(ctx, "passport-regular", "AB-1001")
	suite.Require().NoError(err)
	suite.True(consumed)

	consumed, err = suite.repository.IsConsumed(ctx, "id-card", "AB-1001")
	suite.Require().NoError(err)
	suite.False(consumed, "serials are scoped per service variant")
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) TestReserve_Twice_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Reserve(ctx, suite.newReservation("passport-regular", "AB-1001")))

	err := suite.repository.Reserve(ctx, suite.newReservation("passport-regular", "AB-1001"))

	suite.Require().ErrorIs(err, errs.ErrConflict)
	var count int64
	suite.Require().NoError(suite.db.Model(&serialrepo.ReservationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) TestReserve_Concurrent_ExactlyOneWinner() {
	const contenders = 16
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)
	start := make(chan struct{})
	for range contenders {
		r := suite.newReservation("passport-regular", "AB-4004")
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := suite.repository.Reserve(ctx, r)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, errs.ErrConflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	suite.Equal(1, winners)
	suite.Equal(contenders-1, conflicts)
}

func (suite *SerialReservationRepositoryIntegrationTestSuite) TestIsConsumed_CancelledContext_Upstream() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.repository.IsConsumed(ctx, "passport-regular", "AB-1001")

	suite.Require().ErrorIs(err, errs.ErrUpstreamUnavailable)
}

func TestSerialReservationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SerialReservationRepositoryIntegrationTestSuite))
}
