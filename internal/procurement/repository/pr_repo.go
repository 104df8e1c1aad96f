package repository

import (
	"context"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// PRRepository persists purchase requests.
type PRRepository struct {
	db *gorm.DB
}

func NewPRRepository(db *gorm.DB) *PRRepository {
	return &PRRepository{db: db}
}

func (r *PRRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PurchaseRequest, int64, error) {
	var items []entity.PurchaseRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseRequest{})

	if projectID := filters["project_id"]; projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if urgency := filters["urgency"]; urgency != "" {
		query = query.Where("urgency = ?", urgency)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("requester ILIKE ? OR article_sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Article").
		Preload("Project").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *PRRepository) FindByID(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	var pr entity.PurchaseRequest
	err := r.db.WithContext(ctx).
		Preload("Article").
		Preload("Project").
		Where("id = ?", id).
		First(&pr).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &pr, nil
}

func (r *PRRepository) Create(ctx context.Context, pr *entity.PurchaseRequest) error {
	return translateErr(r.db.WithContext(ctx).Create(pr).Error)
}

func (r *PRRepository) Update(ctx context.Context, pr *entity.PurchaseRequest) error {
	return translateErr(r.db.WithContext(ctx).Save(pr).Error)
}

// Delete removes the request and cascades to its quotations. Orders are
// left in place; they carry their own copy of the commercial terms.
func (r *PRRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&entity.Quotation{}).Error; err != nil {
			return translateErr(err)
		}
		res := tx.Where("id = ?", id).Delete(&entity.PurchaseRequest{})
		if res.Error != nil {
			return translateErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
