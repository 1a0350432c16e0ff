package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"paperwork/internal/adapters/out/postgres/customerrepo"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CustomerDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *customerrepo.GormCustomerDirectory
}

func (suite *CustomerDirectoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
	suite.directory = customerrepo.NewGormCustomerDirectory(db)
}

func (suite *CustomerDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
}

func (suite *CustomerDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerDirectoryIntegrationTestSuite) remember(name, phone, nationalID string) {
	customer, err := order.NewCustomer(name, phone, nationalID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.directory.Remember(context.Background(), customer))
}

func (suite *CustomerDirectoryIntegrationTestSuite) TestSearchByName_CaseInsensitiveSubstring() {
	suite.remember("Amal Haddad", "+961 3 111 111", "LB-1")
	suite.remember("Karim Haddad", "+961 3 222 222", "LB-2")
	suite.remember("Nour Khoury", "+961 3 333 333", "LB-3")

	records, err := suite.directory.SearchByName(context.Background(), "HADD", 10)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("Amal Haddad", records[0].Name)
	suite.Equal("Karim Haddad", records[1].Name)
	suite.NoError(records[0].ID.Validate())
}

func (suite *CustomerDirectoryIntegrationTestSuite) TestSearchByName_Limit() {
	suite.remember("Amal Haddad", "+961 3 111 111", "")
	suite.remember("Karim Haddad", "+961 3 222 222", "")

	records, err := suite.directory.SearchByName(context.Background(), "haddad", 1)

	suite.Require().NoError(err)
	suite.Len(records, 1)
}

func (suite *CustomerDirectoryIntegrationTestSuite) TestSearchByName_WildcardsAreLiteral() {
	suite.remember("Amal Haddad", "+961 3 111 111", "")

	records, err := suite.directory.SearchByName(context.Background(), "%", 10)

	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *CustomerDirectoryIntegrationTestSuite) TestRemember_RefreshesNationalID() {
	suite.remember("Amal Haddad", "+961 3 111 111", "LB-1")
	suite.remember("Amal Haddad", "+961 3 111 111", "LB-9")

	records, err := suite.directory.SearchByName(context.Background(), "amal", 10)

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("LB-9", records[0].NationalID)
}

func (suite *CustomerDirectoryIntegrationTestSuite) TestRemember_UnconstructedCustomer() {
	err := suite.directory.Remember(context.Background(), order.Customer{})

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func TestCustomerDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerDirectoryIntegrationTestSuite))
}
