package repository

import (
	"context"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// ArticleRepository persists inventory articles, keyed by SKU.
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Article, int64, error) {
	var items []entity.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Article{})

	if search := filters["search"]; search != "" {
		query = query.Where("sku ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("sku ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *ArticleRepository) FindBySKU(ctx context.Context, sku string) (*entity.Article, error) {
	var a entity.Article
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&a).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	return translateErr(r.db.WithContext(ctx).Create(a).Error)
}

func (r *ArticleRepository) Update(ctx context.Context, a *entity.Article) error {
	return translateErr(r.db.WithContext(ctx).Save(a).Error)
}

func (r *ArticleRepository) Delete(ctx context.Context, sku string) error {
	res := r.db.WithContext(ctx).Where("sku = ?", sku).Delete(&entity.Article{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
