package queries_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/clock"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	clock     *clock.FixedClock
	tracker   services.OrderTracker

	getOrder  queries.GetOrderWithStatusQueryHandler
	getOrders queries.GetOrdersWithStatusQueryHandler
	getRecent queries.GetRecentOrdersWithStatusQueryHandler
}

var base = time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.tracker = services.NewOrderTracker()
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.clock = clock.NewFixedClock(base)
	suite.getOrder = queries.NewGetOrderWithStatusQueryHandler(suite.db, suite.tracker, suite.clock)
	suite.getOrders = queries.NewGetOrdersWithStatusQueryHandler(suite.db, suite.tracker, suite.clock)
	suite.getRecent = queries.NewGetRecentOrdersWithStatusQueryHandler(suite.db, suite.tracker, suite.clock)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_ProgressesThroughWindows() {
	o := suite.addOrder("user-1", base)

	query, err := queries.NewGetOrderWithStatusQuery(o.ID(), "user-1")
	suite.Require().NoError(err)

	steps := []struct {
		advance  time.Duration
		status   order.DeliveryStatus
		progress int
		markers  []string
	}{
		{0, order.Preparing, 33, []string{tracking.CustomerMarker}},
		{10 * time.Second, order.OutForDelivery, 66, []string{tracking.CustomerMarker, tracking.DriverMarker}},
		{59 * time.Second, order.OutForDelivery, 66, []string{tracking.CustomerMarker, tracking.DriverMarker}},
		{time.Second, order.Delivered, 100, []string{tracking.DeliveryLocationMarker}},
	}

	for _, step := range steps {
		suite.clock.Advance(step.advance)

		result, err := suite.getOrder.Handle(context.Background(), query)
		suite.Require().NoError(err)

		suite.Equal(step.status, result.Status())
		suite.Equal(step.status.String(), result.StatusText())
		suite.Equal(step.progress, result.Progress())
		suite.Equal(step.markers, markerNames(result))
		suite.True(result.ComputedAt().Equal(suite.clock.Now()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_MatchesDirectComputation() {
	o := suite.addOrder("user-1", base)
	suite.clock.Advance(40 * time.Second)

	query, _ := queries.NewGetOrderWithStatusQuery(o.ID(), "user-1")
	result, err := suite.getOrder.Handle(context.Background(), query)
	suite.Require().NoError(err)

	expected := suite.tracker.ComputeStatus(o, suite.clock.Now())
	suite.Require().Len(result.MapMarkers(), 2)
	suite.InDelta(expected.MapMarkers()[1].X(), result.MapMarkers()[1].X(), 1e-9)
	suite.InDelta(expected.MapMarkers()[1].Y(), result.MapMarkers()[1].Y(), 1e-9)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_UnknownOrder_ReturnsNotFound() {
	query, _ := queries.NewGetOrderWithStatusQuery(kernel.NewUUID(), "user-1")

	result, err := suite.getOrder.Handle(context.Background(), query)

	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_OtherUsersOrder_ReturnsNotFound() {
	o := suite.addOrder("user-1", base)
	query, _ := queries.NewGetOrderWithStatusQuery(o.ID(), "user-2")

	result, err := suite.getOrder.Handle(context.Background(), query)

	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_InvalidQuery_ReturnsError() {
	result, err := suite.getOrder.Handle(context.Background(), queries.GetOrderWithStatusQuery{})

	suite.Nil(result)
	suite.Require().ErrorIs(err, queries.ErrGetOrderWithStatusQueryIsNotConstructed)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrders_NewestFirst_OnlyOwnOrders() {
	oldest := suite.addOrder("user-1", base.Add(-2*time.Hour))
	newest := suite.addOrder("user-1", base.Add(-5*time.Second))
	middle := suite.addOrder("user-1", base.Add(-30*time.Second))
	suite.addOrder("user-2", base)

	query, _ := queries.NewGetOrdersWithStatusQuery("user-1")
	result, err := suite.getOrders.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.True(result[0].Order().ID().IsEqual(newest.ID()))
	suite.True(result[1].Order().ID().IsEqual(middle.ID()))
	suite.True(result[2].Order().ID().IsEqual(oldest.ID()))

	suite.Equal(order.Preparing, result[0].Status())
	suite.Equal(order.OutForDelivery, result[1].Status())
	suite.Equal(order.Delivered, result[2].Status())
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrders_NoOrders_ReturnsEmptySlice() {
	query, _ := queries.NewGetOrdersWithStatusQuery("nobody")

	result, err := suite.getOrders.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetRecent_ReturnsOrdersWithinLookback() {
	suite.addOrder("user-1", base.Add(-10*time.Minute))
	delivered := suite.addOrder("user-2", base.Add(-90*time.Second))
	preparing := suite.addOrder("user-1", base.Add(-time.Second))

	query, _ := queries.NewGetRecentOrdersWithStatusQuery(2 * time.Minute)
	result, err := suite.getRecent.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].Order().ID().IsEqual(delivered.ID()))
	suite.Equal(order.Delivered, result[0].Status())
	suite.True(result[1].Order().ID().IsEqual(preparing.ID()))
	suite.Equal(order.Preparing, result[1].Status())
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetRecent_CancelledContext_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, _ := queries.NewGetRecentOrdersWithStatusQuery(queries.MinLookback)
	result, err := suite.getRecent.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *OrderQueriesIntegrationTestSuite) addOrder(userID string, created time.Time) *order.Order {
	location, err := kernel.NewLatLong(40.7484, -73.9857)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, "350 5th Ave, New York", created, location)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func markerNames(s *tracking.OrderWithStatus) []string {
	names := make([]string, 0, len(s.MapMarkers()))
	for _, m := range s.MapMarkers() {
		names = append(names, m.Description())
	}
	return names
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
