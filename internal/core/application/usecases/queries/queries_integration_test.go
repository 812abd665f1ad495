package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/historyrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.OrderID, any) {}

// QueriesIntegrationTestSuite runs every read projection against a real
// PostgreSQL instance, seeding orders through the same repositories the
// write side uses.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	historyRepo *historyrepo.GormHistoryRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &historyrepo.HistoryEntryDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.historyRepo = historyrepo.NewGormHistoryRepository(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_history").Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedOrder(customerID kernel.ActorID) *order.Order {
	pickup, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewAddress("4 Mill Ln", "Delft")
	suite.Require().NoError(err)
	contact, err := kernel.NewContact("J. Visser", "+31 6 1234 5678")
	suite.Require().NoError(err)
	window, err := kernel.NewWindow(
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(customerID, pickup, dropoff, contact, 2, 4.5, window)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	return aggregate
}

func (suite *QueriesIntegrationTestSuite) claim(id kernel.OrderID, courierID kernel.ActorID) {
	claimed, err := suite.orderRepo.Claim(context.Background(), id, courierID)
	suite.Require().NoError(err)
	suite.Require().True(claimed)
}

func (suite *QueriesIntegrationTestSuite) TestAvailableOrders_OnlyUnclaimedPending_OldestFirst() {
	ctx := context.Background()

	first := suite.seedOrder(7)
	second := suite.seedOrder(8)
	claimedOrder := suite.seedOrder(7)
	suite.claim(claimedOrder.ID(), 9)

	handler := queries.NewAvailableOrdersQueryHandler(suite.db)
	pool, err := handler.Handle(ctx, queries.NewAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(pool, 2)
	suite.Equal(first.ID().Int64(), pool[0].ID)
	suite.Equal(second.ID().Int64(), pool[1].ID)
	suite.Equal("12 Harbor Rd", pool[0].PickupStreet)
	suite.Require().NoError(pool[0].TrackingID.Validate())
}

func (suite *QueriesIntegrationTestSuite) TestCourierActiveOrders_ScopedToCourier() {
	ctx := context.Background()

	mine := suite.seedOrder(7)
	suite.claim(mine.ID(), 9)

	theirs := suite.seedOrder(7)
	suite.claim(theirs.ID(), 10)

	delivered := suite.seedOrder(7)
	suite.claim(delivered.ID(), 9)
	applied, err := suite.orderRepo.AdvanceOwned(ctx, delivered.ID(), 9, order.EnRoutePickup, order.PickedUp)
	suite.Require().NoError(err)
	suite.Require().True(applied)
	applied, err = suite.orderRepo.AdvanceOwned(ctx, delivered.ID(), 9, order.PickedUp, order.Delivered)
	suite.Require().NoError(err)
	suite.Require().True(applied)

	query, err := queries.NewCourierActiveOrdersQuery(9)
	suite.Require().NoError(err)

	handler := queries.NewCourierActiveOrdersQueryHandler(suite.db)
	jobs, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(jobs, 1)
	suite.Equal(mine.ID().Int64(), jobs[0].ID)
	suite.Equal("EnRoutePickup", jobs[0].Status)
	suite.Equal("J. Visser", jobs[0].ContactName)
}

func (suite *QueriesIntegrationTestSuite) TestCustomerOrders_NewestFirstPaginated() {
	ctx := context.Background()

	const seeded = queries.DefaultPageSize + 5
	ids := make([]int64, 0, seeded)
	for range seeded {
		ids = append(ids, suite.seedOrder(7).ID().Int64())
	}
	// Another customer's order must never appear
	suite.seedOrder(8)

	handler := queries.NewCustomerOrdersQueryHandler(suite.db)

	query, err := queries.NewCustomerOrdersQuery(7, 1)
	suite.Require().NoError(err)
	pageOne, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pageOne, queries.DefaultPageSize)
	suite.Equal(ids[len(ids)-1], pageOne[0].ID, "newest order comes first")

	query, err = queries.NewCustomerOrdersQuery(7, 2)
	suite.Require().NoError(err)
	pageTwo, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pageTwo, 5)
	suite.Equal(ids[0], pageTwo[len(pageTwo)-1].ID, "oldest order comes last")

	query, err = queries.NewCustomerOrdersQuery(7, 3)
	suite.Require().NoError(err)
	pageThree, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(pageThree, "a page past the end is empty, not an error")
}

func (suite *QueriesIntegrationTestSuite) TestOrdersInRange() {
	ctx := context.Background()

	seeded := suite.seedOrder(7)
	claimedOrder := suite.seedOrder(8)
	suite.claim(claimedOrder.ID(), 9)

	now := time.Now().UTC()

	query, err := queries.NewOrdersInRangeQuery(now.Add(-time.Hour), now.Add(time.Hour))
	suite.Require().NoError(err)

	handler := queries.NewOrdersInRangeQueryHandler(suite.db)
	orders, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(seeded.ID().Int64(), orders[0].ID)
	suite.Nil(orders[0].CourierID)
	suite.Require().NotNil(orders[1].CourierID)
	suite.Equal(int64(9), *orders[1].CourierID)

	// A window in the past matches nothing
	query, err = queries.NewOrdersInRangeQuery(now.Add(-2*time.Hour), now.Add(-time.Hour))
	suite.Require().NoError(err)
	empty, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_ReplayOrder() {
	ctx := context.Background()

	seeded := suite.seedOrder(7)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, status := range []order.Status{order.EnRoutePickup, order.PickedUp, order.Delivered} {
		entry, err := history.NewEntry(seeded.ID(), 9, status, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.historyRepo.Append(ctx, entry))
	}

	query, err := queries.NewOrderHistoryQuery(seeded.ID())
	suite.Require().NoError(err)

	handler := queries.NewOrderHistoryQueryHandler(suite.db)
	entries, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal("EnRoutePickup", entries[0].Status)
	suite.Equal("PickedUp", entries[1].Status)
	suite.Equal("Delivered", entries[2].Status)
	suite.Equal(int64(9), entries[0].ChangedBy)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_EmptyLedger() {
	ctx := context.Background()
	seeded := suite.seedOrder(7)

	query, err := queries.NewOrderHistoryQuery(seeded.ID())
	suite.Require().NoError(err)

	handler := queries.NewOrderHistoryQueryHandler(suite.db)
	entries, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
