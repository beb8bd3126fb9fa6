package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrTaskArticlesQueryIsNotConstructed = errors.New(
	"TaskArticlesQuery must be created via NewTaskArticlesQuery constructor",
)

// TaskArticlesQuery targets the garments of the order a task belongs to.
type TaskArticlesQuery struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTaskArticlesQuery(taskID kernel.UUID) (TaskArticlesQuery, error) {
	if err := taskID.Validate(); err != nil {
		return TaskArticlesQuery{}, err
	}
	return TaskArticlesQuery{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q TaskArticlesQuery) Validate() error {
	return q.guard.Validate(ErrTaskArticlesQueryIsNotConstructed)
}

// WeighingStatus tells whether a pickup may be closed.
type WeighingStatus struct {
	Total      int
	Unweighed  int
	AllWeighed bool
}

type WeighingQueryHandler struct {
	tasks    TaskReader
	articles ArticleReader
}

func NewWeighingQueryHandler(tasks TaskReader, articles ArticleReader) WeighingQueryHandler {
	return WeighingQueryHandler{tasks: tasks, articles: articles}
}

// ArticlesToWeigh lists the articles with no recorded weight.
func (h WeighingQueryHandler) ArticlesToWeigh(ctx context.Context, q TaskArticlesQuery) ([]*article.Article, error) {
	all, err := h.load(ctx, q)
	if err != nil {
		return nil, err
	}

	pending := make([]*article.Article, 0, len(all))
	for _, a := range all {
		if !a.IsWeighed() {
			pending = append(pending, a)
		}
	}
	return pending, nil
}

// Verify reports whether every article has been weighed. An order without
// articles counts as fully weighed.
func (h WeighingQueryHandler) Verify(ctx context.Context, q TaskArticlesQuery) (WeighingStatus, error) {
	all, err := h.load(ctx, q)
	if err != nil {
		return WeighingStatus{}, err
	}

	status := WeighingStatus{Total: len(all)}
	for _, a := range all {
		if !a.IsWeighed() {
			status.Unweighed++
		}
	}
	status.AllWeighed = status.Unweighed == 0
	return status, nil
}

func (h WeighingQueryHandler) load(ctx context.Context, q TaskArticlesQuery) ([]*article.Article, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	t, err := h.tasks.Get(ctx, q.taskID)
	if err != nil {
		return nil, err
	}
	return h.articles.ListByOrder(ctx, t.OrderID())
}
