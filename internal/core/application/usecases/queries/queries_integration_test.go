package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
	outletID kernel.UUID
	shirt    *catalog.ItemType
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.outletID = kernel.NewUUID()

	shirt, err := catalog.NewItemType(kernel.NewUUID(), "Shirt")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ItemTypeRepository().Add(context.Background(), shirt))
	suite.shirt = shirt
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

// seed stores an order created at createdAt and, when weighed, its items, fee and washing job.
func (suite *QueriesIntegrationTestSuite) seed(createdAt time.Time, fee int64, weighed bool) *order.Order {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), suite.outletID, kernel.NewUUID(), createdAt)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	if weighed {
		suite.Require().NoError(o.Advance(order.ArrivedAtOutlet, createdAt))
		w, _ := kernel.NewWeightFromFloat(2)
		item, _ := order.NewItem(suite.shirt.ID(), w, 3)
		suite.Require().NoError(o.AssignItems([]order.Item{item}, decimal.NewFromInt(fee), createdAt))
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

		washing, jErr := job.NewJob(kernel.NewUUID(), o.ID(), suite.outletID, job.Washing, createdAt)
		suite.Require().NoError(jErr)
		suite.Require().NoError(uow.JobRepository().Add(ctx, washing))
		return o
	}

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsAggregateView() {
	o := suite.seed(t0, 20000, true)
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.OnProgressWashing.String(), view.Stage)
	suite.Require().NotNil(view.LaundryFee)
	suite.True(view.LaundryFee.Equal(decimal.NewFromInt(20000)))
	suite.False(view.Paid)
	suite.Require().Len(view.Items, 1)
	suite.Equal("Shirt", view.Items[0].ItemTypeName)
	suite.Equal(3, view.Items[0].Quantity)
	suite.Require().Len(view.Progress, 3)
	suite.Equal(order.Created.String(), view.Progress[0].Stage)
	suite.Require().Len(view.Jobs, 1)
	suite.Equal(job.Washing.String(), view.Jobs[0].Type)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Missing() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersSortsAndPages() {
	cheap := suite.seed(t0, 10000, true)
	pricey := suite.seed(t0.Add(time.Hour), 90000, true)
	fresh := suite.seed(t0.Add(2*time.Hour), 0, false)
	handler := queries.NewListOrdersQueryHandler(suite.database.DB)
	ctx := context.Background()

	all, err := queries.NewListOrdersQuery(&suite.outletID, nil, nil, "", "", 0, 0)
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Equal(int64(3), result.Total)
	suite.True(result.Orders[0].ID.IsEqual(fresh.ID()), "newest first by default")

	byFee, err := queries.NewListOrdersQuery(&suite.outletID, nil,
		[]order.Stage{order.OnProgressWashing}, "laundry_fee", queries.Ascending, 1, 1)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, byFee)
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Require().Len(result.Orders, 1)
	suite.True(result.Orders[0].ID.IsEqual(pricey.ID()))

	customer := cheap.CustomerID()
	mine, err := queries.NewListOrdersQuery(nil, &customer, nil, "updated_at", queries.Descending, 10, 0)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, mine)
	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.True(result.Orders[0].ID.IsEqual(cheap.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestListOutletJobs_OnlyUnassigned() {
	o := suite.seed(t0, 10000, true)
	other := suite.seed(t0, 10000, true)
	ctx := context.Background()

	uow := suite.factory.Create()
	jobs, err := uow.JobRepository().ListByOrder(ctx, other.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(jobs[0].Claim(kernel.NewUUID()))
	suite.Require().NoError(uow.JobRepository().Update(ctx, jobs[0]))

	washing := job.Washing
	query, err := queries.NewListOutletJobsQuery(suite.outletID, &washing, true)
	suite.Require().NoError(err)
	result, err := queries.NewListOutletJobsQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].OrderID.IsEqual(o.ID()))
	suite.Nil(result[0].WorkerID)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
