package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderStoreIntegrationTestSuite provides integration tests for the GORM
// order store using PostgreSQL containers to verify persistence behavior.
type OrderStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *orderrepo.GormOrderStore
}

func (suite *OrderStoreIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.store = orderrepo.NewGormOrderStore(suite.db)
}

func (suite *OrderStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderStoreIntegrationTestSuite) mustOrder(ownerID int64, tag order.TypeTag, amount float64) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), ownerID, tag, amount, false)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderStoreIntegrationTestSuite) TestSaveAndFindByOwner() {
	ctx := context.Background()

	first := suite.mustOrder(1, order.TypeA, 100)
	second := suite.mustOrder(1, order.TypeB, 250)
	other := suite.mustOrder(2, order.TypeC, 10)

	suite.Require().NoError(suite.store.Save(ctx, first))
	suite.Require().NoError(suite.store.Save(ctx, second))
	suite.Require().NoError(suite.store.Save(ctx, other))

	orders, err := suite.store.FindByOwner(ctx, 1)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, aggregate := range orders {
		suite.Equal(int64(1), aggregate.OwnerID())
	}
}

func (suite *OrderStoreIntegrationTestSuite) TestFindByOwnerEmpty() {
	orders, err := suite.store.FindByOwner(context.Background(), 99)

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderStoreIntegrationTestSuite) TestSaveUpsertsStatusAndPriority() {
	ctx := context.Background()

	aggregate := suite.mustOrder(1, order.TypeB, 250)
	suite.Require().NoError(suite.store.Save(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.Processed))
	aggregate.RecalculatePriority()
	suite.Require().NoError(suite.store.Save(ctx, aggregate))

	orders, err := suite.store.FindByOwner(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.Processed, orders[0].Status())
	suite.Equal(order.High, orders[0].Priority())
	suite.True(orders[0].IsEqual(aggregate))
}

func (suite *OrderStoreIntegrationTestSuite) TestSaveRejectsUnconstructedOrder() {
	var aggregate order.Order

	err := suite.store.Save(context.Background(), &aggregate)

	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderStoreIntegrationTestSuite) TestOwnersWithUnprocessed() {
	ctx := context.Background()

	fresh := suite.mustOrder(3, order.TypeA, 10)
	done := suite.mustOrder(5, order.TypeC, 10)
	suite.Require().NoError(done.ChangeStatus(order.Completed))

	suite.Require().NoError(suite.store.Save(ctx, fresh))
	suite.Require().NoError(suite.store.Save(ctx, done))

	owners, err := suite.store.OwnersWithUnprocessed(ctx)

	suite.Require().NoError(err)
	suite.Equal([]int64{3}, owners)
}

func TestOrderStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	suite.Run(t, new(OrderStoreIntegrationTestSuite))
}
