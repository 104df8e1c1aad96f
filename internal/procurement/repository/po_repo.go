package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// PORepository persists purchase orders.
type PORepository struct {
	db *gorm.DB
}

func NewPORepository(db *gorm.DB) *PORepository {
	return &PORepository{db: db}
}

func (r *PORepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PurchaseOrder, int64, error) {
	var items []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{})

	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if requestID := filters["request_id"]; requestID != "" {
		query = query.Where("request_id = ?", requestID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("order_number ILIKE ? OR article_sku ILIKE ?", "%"+search+"%", "%"+search+"%")
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

func (r *PORepository) FindByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Article").
		Preload("Quotation").
		Where("id = ?", id).
		First(&po).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &po, nil
}

func (r *PORepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return translateErr(r.db.WithContext(ctx).Create(po).Error)
}

func (r *PORepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return translateErr(r.db.WithContext(ctx).Save(po).Error)
}

// Delete removes the order and cascades to its invoices and receipts.
func (r *PORepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.Invoice{}).Error; err != nil {
			return translateErr(err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.GoodsReceipt{}).Error; err != nil {
			return translateErr(err)
		}
		res := tx.Where("id = ?", id).Delete(&entity.PurchaseOrder{})
		if res.Error != nil {
			return translateErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GenerateNumber allocates the next order number PO-{year}-{4 digits}.
// Runs before the first insert, so the number never depends on a
// not-yet-assigned primary key.
func GenerateNumber(tx *gorm.DB, model interface{}, column, prefix string) (string, error) {
	year := time.Now().Format("2006")
	like := fmt.Sprintf("%s-%s-", prefix, year)

	var maxNumber string
	err := tx.
		Model(model).
		Select(fmt.Sprintf("COALESCE(MAX(%s), '')", column)).
		Where(column+" LIKE ?", like+"%").
		Scan(&maxNumber).Error
	if err != nil {
		return "", err
	}

	var seq int
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, prefix+"-"+year+"-%04d", &seq)
	}
	seq++
	return fmt.Sprintf("%s-%s-%04d", prefix, year, seq), nil
}

// GenerateNumber allocates the next PO number within tx.
func (r *PORepository) GenerateNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	return GenerateNumber(tx.WithContext(ctx), &entity.PurchaseOrder{}, "order_number", "PO")
}
