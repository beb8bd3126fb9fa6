package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListTaskArticles handles GET /api/v1/logistics/tasks/{taskId}/articles.
func (s *Server) ListTaskArticles(ctx echo.Context, taskId openapi_types.UUID) error {
	query, err := taskArticlesQuery(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	articles, err := s.h.Weighing.ArticlesToWeigh(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Article, len(articles))
	for i, a := range articles {
		response[i] = toAPIArticle(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// VerifyTaskWeighing handles GET /api/v1/logistics/tasks/{taskId}/weighing.
func (s *Server) VerifyTaskWeighing(ctx echo.Context, taskId openapi_types.UUID) error {
	query, err := taskArticlesQuery(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := s.h.Weighing.Verify(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.WeighingStatus{
		Total:      status.Total,
		Unweighed:  status.Unweighed,
		AllWeighed: status.AllWeighed,
	})
}

// RecordArticleWeight handles PUT /api/v1/logistics/articles/{articleId}/weight.
func (s *Server) RecordArticleWeight(ctx echo.Context, articleId openapi_types.UUID) error {
	var body servers.ArticleWeight
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(articleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRecordArticleWeightCommand(id, body.WeightKg)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.RecordArticleWeight.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func taskArticlesQuery(taskId openapi_types.UUID) (queries.TaskArticlesQuery, error) {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return queries.TaskArticlesQuery{}, err
	}
	return queries.NewTaskArticlesQuery(id)
}
