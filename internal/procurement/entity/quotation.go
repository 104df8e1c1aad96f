package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is one supplier offer against a purchase request. A request
// can collect many competing offers, but at most one per
// (request, supplier, article) triple.
type Quotation struct {
	ID         string          `json:"id" gorm:"primaryKey;size:32"`
	RequestID  string          `json:"request_id" gorm:"size:32;not null;uniqueIndex:uq_quotation_offer"`
	SupplierID string          `json:"supplier_id" gorm:"size:32;not null;uniqueIndex:uq_quotation_offer"`
	ArticleSKU string          `json:"article_sku" gorm:"size:64;not null;uniqueIndex:uq_quotation_offer"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(15,2);not null"`
	QtyOffered int             `json:"quantity_offered" gorm:"not null"`
	Validity   time.Time       `json:"validity_date" gorm:"not null"`
	Delivery   *time.Time      `json:"delivery_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request  *PurchaseRequest `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	Supplier *Supplier        `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Article  *Article         `json:"article,omitempty" gorm:"foreignKey:ArticleSKU"`
}

func (Quotation) TableName() string {
	return "quotations"
}

func (q *Quotation) Validate() error {
	if q.RequestID == "" {
		return &ValidationError{Field: "request_id", Message: "is required"}
	}
	if q.SupplierID == "" {
		return &ValidationError{Field: "supplier_id", Message: "is required"}
	}
	if q.ArticleSKU == "" {
		return &ValidationError{Field: "article_sku", Message: "is required"}
	}
	if !q.UnitPrice.IsPositive() {
		return &ValidationError{Field: "unit_price", Message: "must be greater than zero"}
	}
	if q.QtyOffered < 1 {
		return &ValidationError{Field: "quantity_offered", Message: "must be at least 1"}
	}
	if q.Validity.IsZero() {
		return &ValidationError{Field: "validity_date", Message: "is required"}
	}
	return nil
}
