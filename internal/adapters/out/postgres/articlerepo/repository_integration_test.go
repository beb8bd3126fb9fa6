package articlerepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/articlerepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ArticleRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *articlerepo.GormArticleRepository
}

func (suite *ArticleRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ArticleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = articlerepo.NewGormArticleRepository(suite.pg.DB)
}

func (suite *ArticleRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ArticleRepositoryIntegrationTestSuite) TestListByOrder_ReturnsOrderArticlesByName() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	shirt := suite.addArticle(orderID, "Shirt")
	blanket := suite.addArticle(orderID, "Blanket")
	suite.addArticle(kernel.NewUUID(), "Curtain")

	articles, err := suite.repository.ListByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().Len(articles, 2)
	suite.Equal(blanket.ID(), articles[0].ID())
	suite.Equal(shirt.ID(), articles[1].ID())
	suite.False(articles[0].IsWeighed())
}

func (suite *ArticleRepositoryIntegrationTestSuite) TestUpdate_RecordedWeight_IsPersisted() {
	ctx := context.Background()
	a := suite.addArticle(kernel.NewUUID(), "Duvet")

	suite.Require().NoError(a.RecordWeight(2.45))
	suite.Require().NoError(suite.repository.Update(ctx, a))

	stored, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Require().True(stored.IsWeighed())
	suite.InDelta(2.45, *stored.ActualWeight(), 1e-9)
}

func (suite *ArticleRepositoryIntegrationTestSuite) TestGet_NonExistentArticle_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ArticleRepositoryIntegrationTestSuite) addArticle(orderID kernel.UUID, name string) *article.Article {
	a, err := article.NewArticle(kernel.NewUUID(), orderID, name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), a))
	return a
}

func TestArticleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleRepositoryIntegrationTestSuite))
}
