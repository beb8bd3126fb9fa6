package orderrepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg              *pgtest.Database
	orderRepository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	addressID := kernel.NewUUID()
	original, err := order.NewOrder(kernel.NewUUID(), "CMD-1042", "Amira Ben Salah", "+21620000000", &addressID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepository.Add(ctx, original))

	retrieved, err := suite.orderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("CMD-1042", retrieved.Reference())
	suite.Equal("Amira Ben Salah", retrieved.CustomerName())
	suite.Equal("+21620000000", retrieved.CustomerPhone())
	suite.Equal(&addressID, retrieved.AddressID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_OrderWithoutAddress_ReturnsNilAddress() {
	ctx := context.Background()
	original, err := order.NewOrder(kernel.NewUUID(), "CMD-7", "", "", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepository.Add(ctx, original))

	retrieved, err := suite.orderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.AddressID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.orderRepository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateReference_Fails() {
	ctx := context.Background()
	first, err := order.NewOrder(kernel.NewUUID(), "CMD-1", "", "", nil)
	suite.Require().NoError(err)
	second, err := order.NewOrder(kernel.NewUUID(), "CMD-1", "", "", nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepository.Add(ctx, first))
	suite.Require().Error(suite.orderRepository.Add(ctx, second))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
