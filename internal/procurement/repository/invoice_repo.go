package repository

import (
	"context"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"gorm.io/gorm"
)

// InvoiceRepository persists invoices.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Invoice, int64, error) {
	var items []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if orderID := filters["order_id"]; orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+search+"%")
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

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Article").
		Where("id = ?", id).
		First(&inv).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	return translateErr(r.db.WithContext(ctx).Create(inv).Error)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	return translateErr(r.db.WithContext(ctx).Save(inv).Error)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Invoice{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
