package repository

import (
	"context"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// QuotationRepository persists supplier quotations.
type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Quotation, int64, error) {
	var items []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})

	if requestID := filters["request_id"]; requestID != "" {
		query = query.Where("request_id = ?", requestID)
	}
	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Supplier").
		Preload("Article").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	var q entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Article").
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &q, nil
}

// Create inserts the quotation; a duplicate (request, supplier, article)
// triple comes back as ErrDuplicate from the unique index.
func (r *QuotationRepository) Create(ctx context.Context, q *entity.Quotation) error {
	return translateErr(r.db.WithContext(ctx).Create(q).Error)
}

func (r *QuotationRepository) Update(ctx context.Context, q *entity.Quotation) error {
	return translateErr(r.db.WithContext(ctx).Save(q).Error)
}

// Delete fails with ErrReferenced while a purchase order still selects
// this quotation (ON DELETE RESTRICT).
func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Quotation{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
