package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type FindOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.FindOrdersQueryHandler
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *FindOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryDTO{},
	))

	suite.handler = queries.NewFindOrdersQueryHandler(db)
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *FindOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE order_items, deliveries, orders, items, members").Error)
}

func (suite *FindOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// placeOrder persists a member, an item and one placed order for that pair.
func (suite *FindOrdersQueryHandlerTestSuite) placeOrder(memberName string, price int, quantity int) *order.Order {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Reuse the member when an earlier placement already registered the name
	existing, err := uow.MemberRepository().GetByName(ctx, memberName)
	suite.Require().NoError(err)

	var buyer *member.Member
	if len(existing) > 0 {
		buyer = existing[0]
	} else {
		address, addrErr := kernel.NewAddress("1 Main St", "Springfield", "12345")
		suite.Require().NoError(addrErr)

		buyer, err = member.NewMember(kernel.NewUUID(), memberName, address)
		suite.Require().NoError(err)
		suite.Require().NoError(uow.MemberRepository().Add(ctx, buyer))
	}

	book, err := item.NewBook(kernel.NewUUID(), "DDD", price, 100, "Eric Evans", "978-0321125217")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, book))

	delivery, err := order.NewDelivery(kernel.NewUUID(), buyer.Address())
	suite.Require().NoError(err)

	line, err := order.NewOrderItem(kernel.NewUUID(), book, book.Price(), quantity)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(kernel.NewUUID(), buyer.ID(), delivery, []*order.OrderItem{line})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, book))

	suite.Require().NoError(uow.Commit(ctx))
	return placed
}

func (suite *FindOrdersQueryHandlerTestSuite) cancelOrder(placed *order.Order) {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Cancel())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *FindOrdersQueryHandlerTestSuite) TestHandle_NoFilter_ReturnsAllOrders() {
	aliceOrder := suite.placeOrder("Alice", 100, 3)
	suite.placeOrder("Bob", 50, 1)

	query, err := queries.NewFindOrdersQuery("", order.Unknown)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[kernel.UUID]queries.FindOrdersQueryResponse, len(result))
	for _, row := range result {
		byID[row.OrderID] = row
	}

	aliceRow, ok := byID[aliceOrder.ID()]
	suite.Require().True(ok)
	suite.Equal("Alice", aliceRow.MemberName)
	suite.Equal(order.Placed, aliceRow.Status)
	suite.Equal(300, aliceRow.TotalPrice)
	suite.WithinDuration(aliceOrder.OrderDate(), aliceRow.OrderDate, time.Second)
}

func (suite *FindOrdersQueryHandlerTestSuite) TestHandle_FilterByMemberName() {
	aliceOrder := suite.placeOrder("Alice", 100, 3)
	suite.placeOrder("Bob", 50, 1)

	query, err := queries.NewFindOrdersQuery("Alice", order.Unknown)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(aliceOrder.ID(), result[0].OrderID)
}

func (suite *FindOrdersQueryHandlerTestSuite) TestHandle_FilterByStatus() {
	suite.placeOrder("Alice", 100, 3)
	cancelled := suite.placeOrder("Bob", 50, 1)
	suite.cancelOrder(cancelled)

	query, err := queries.NewFindOrdersQuery("", order.Cancelled)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(cancelled.ID(), result[0].OrderID)
	suite.Equal(order.Cancelled, result[0].Status)
}

func (suite *FindOrdersQueryHandlerTestSuite) TestHandle_CombinedFilters() {
	suite.placeOrder("Alice", 100, 3)
	cancelled := suite.placeOrder("Alice", 50, 1)
	suite.cancelOrder(cancelled)
	suite.placeOrder("Bob", 50, 1)

	query, err := queries.NewFindOrdersQuery("Alice", order.Placed)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Alice", result[0].MemberName)
	suite.Equal(order.Placed, result[0].Status)
}

func (suite *FindOrdersQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmpty() {
	suite.placeOrder("Alice", 100, 3)

	query, err := queries.NewFindOrdersQuery("Carol", order.Unknown)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestFindOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FindOrdersQueryHandlerTestSuite))
}
