package repository

import (
	"context"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// ReceiptRepository persists goods receipts.
type ReceiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

func (r *ReceiptRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.GoodsReceipt, int64, error) {
	var items []entity.GoodsReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.GoodsReceipt{})

	if orderID := filters["order_id"]; orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
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

func (r *ReceiptRepository) FindByID(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	var gr entity.GoodsReceipt
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Article").
		Where("id = ?", id).
		First(&gr).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &gr, nil
}

func (r *ReceiptRepository) Create(ctx context.Context, gr *entity.GoodsReceipt) error {
	return translateErr(r.db.WithContext(ctx).Create(gr).Error)
}

func (r *ReceiptRepository) Update(ctx context.Context, gr *entity.GoodsReceipt) error {
	return translateErr(r.db.WithContext(ctx).Save(gr).Error)
}

func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.GoodsReceipt{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GenerateNumber allocates the next receipt number GR-{year}-{4 digits}
// within tx, before the first insert.
func (r *ReceiptRepository) GenerateNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	return GenerateNumber(tx.WithContext(ctx), &entity.GoodsReceipt{}, "receipt_number", "GR")
}
