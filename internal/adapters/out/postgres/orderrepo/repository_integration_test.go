package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), t0)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) weigh(o *order.Order, at time.Time) {
	w, err := kernel.NewWeightFromFloat(3.25)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), w, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AssignItems([]order.Item{item}, decimal.NewFromInt(40000), at))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsTheAggregate() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.True(loaded.OutletID().IsEqual(o.OutletID()))
	suite.True(loaded.CustomerID().IsEqual(o.CustomerID()))
	suite.Equal(1, loaded.Version())
	suite.Empty(loaded.NewProgress())
	_, hasFee := loaded.LaundryFee()
	suite.False(hasFee)

	stage, err := loaded.CurrentStage()
	suite.Require().NoError(err)
	suite.Equal(order.Created, stage)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AdvancesInMemoryVersion() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Empty(o.NewProgress())

	suite.Require().NoError(o.Advance(order.ArrivedAtOutlet, t0.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(2, o.Version())
	suite.Empty(o.NewProgress())

	suite.weigh(o, t0.Add(2*time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, o), "a second write with the same aggregate is not stale")
	suite.Equal(3, o.Version())

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(3, reloaded.Version())
	suite.Len(reloaded.Progress(), 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsProgressAndBumpsVersion() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Advance(order.ArrivedAtOutlet, t0.Add(time.Hour)))
	suite.weigh(loaded, t0.Add(2*time.Hour))
	suite.Require().NoError(loaded.MarkPaid(t0.Add(3 * time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(2, reloaded.Version())
	suite.True(reloaded.IsPaid())

	fee, ok := reloaded.LaundryFee()
	suite.True(ok)
	suite.True(fee.Equal(decimal.NewFromInt(40000)))

	items := reloaded.Items()
	suite.Require().Len(items, 1)
	suite.Equal(4, items[0].Quantity())
	suite.Equal("3.25", items[0].Weight().Kilograms().String())

	progress := reloaded.Progress()
	suite.Require().Len(progress, 3)
	for i, e := range progress {
		suite.Equal(i+1, e.Sequence)
	}
	suite.Equal(order.OnProgressWashing, progress[2].Stage)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	a, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	b, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(a.Advance(order.ArrivedAtOutlet, t0.Add(time.Hour)))
	suite.Require().NoError(b.Advance(order.ArrivedAtOutlet, t0.Add(time.Hour)))

	suite.Require().NoError(suite.repository.Update(ctx, a))
	err = suite.repository.Update(ctx, b)

	suite.Require().Error(err)
	suite.Equal(errs.KindConflict, errs.KindOf(err))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(reloaded.Progress(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	o := suite.newOrder()

	err := suite.repository.Update(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestComplaintRoundTrip_KeepsBranchAndNotes() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(o.Advance(order.ArrivedAtOutlet, t0.Add(time.Minute)))
	suite.Require().NoError(o.RaiseComplaint("missing sock", t0.Add(2*time.Minute)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	desc, open := loaded.OpenComplaint()
	suite.True(open)
	suite.Equal("missing sock", desc)

	back, err := loaded.ResolveComplaint("found it", t0.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(order.ArrivedAtOutlet, back)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	stage, _ := reloaded.CurrentStage()
	suite.Equal(order.ArrivedAtOutlet, stage)
	suite.Equal("found it", reloaded.Progress()[3].Note)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
