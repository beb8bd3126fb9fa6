package ports

import (
	"context"

	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
)

// ArticleRepository gives access to the garments of an order for weighing.
type ArticleRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*article.Article, error)
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*article.Article, error)
	Update(ctx context.Context, a *article.Article) error
}
