// Package articlerepo persists the laundry articles of an order and their
// recorded weights.
package articlerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleDTO maps an article row. ActualWeight stays NULL until the article
// is weighed at pickup.
type ArticleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ActualWeight *float64  `gorm:"type:double precision"`
}

func (ArticleDTO) TableName() string {
	return "articles"
}

// GormArticleRepository implements ports.ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

func (r *GormArticleRepository) Add(ctx context.Context, a *article.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormArticleRepository) Get(ctx context.Context, id kernel.UUID) (*article.Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("article", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder returns the order's articles sorted by name.
func (r *GormArticleRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*article.Article, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ArticleDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	articles := make([]*article.Article, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, nil
}

func (r *GormArticleRepository) Update(ctx context.Context, a *article.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Model(&ArticleDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("article", a.ID().String())
	}

	return nil
}

func fromDomain(a *article.Article) ArticleDTO {
	return ArticleDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		Name:         a.Name(),
		ActualWeight: a.ActualWeight(),
	}
}

func toDomain(dto ArticleDTO) (*article.Article, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	return article.RestoreArticle(id, orderID, dto.Name, dto.ActualWeight)
}
