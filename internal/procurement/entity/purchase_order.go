package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is raised from an approved request against one selected
// quotation. TotalAmount is derived; it is recomputed on every
// persistence and never trusted from input.
type PurchaseOrder struct {
	ID          string          `json:"id" gorm:"primaryKey;size:32"`
	OrderNumber string          `json:"order_number" gorm:"size:32;uniqueIndex;not null"`
	RequestID   string          `json:"request_id" gorm:"size:32;not null;index"`
	QuotationID string          `json:"selected_quotation_id" gorm:"size:32;not null;index"`
	SupplierID  string          `json:"supplier_id" gorm:"size:32;not null;index"`
	ArticleSKU  string          `json:"article_sku" gorm:"size:64;not null"`
	QtyOrdered  int             `json:"quantity_ordered" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(15,2);not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);not null"`
	Status      string          `json:"status" gorm:"size:20;default:draft"` // draft/sent/confirmed/cancelled
	OrderDate   time.Time       `json:"order_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request   *PurchaseRequest `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	Quotation *Quotation       `json:"selected_quotation,omitempty" gorm:"foreignKey:QuotationID;constraint:OnDelete:RESTRICT"`
	Supplier  *Supplier        `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Article   *Article         `json:"article,omitempty" gorm:"foreignKey:ArticleSKU"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrder status
const (
	POStatusDraft     = "draft"
	POStatusSent      = "sent"
	POStatusConfirmed = "confirmed"
	POStatusCancelled = "cancelled"
)

func (po *PurchaseOrder) Validate() error {
	if po.RequestID == "" {
		return &ValidationError{Field: "request_id", Message: "is required"}
	}
	if po.QuotationID == "" {
		return &ValidationError{Field: "selected_quotation_id", Message: "is required"}
	}
	if po.SupplierID == "" {
		return &ValidationError{Field: "supplier_id", Message: "is required"}
	}
	if po.ArticleSKU == "" {
		return &ValidationError{Field: "article_sku", Message: "is required"}
	}
	if po.QtyOrdered < 1 {
		return &ValidationError{Field: "quantity_ordered", Message: "must be at least 1"}
	}
	if !po.UnitPrice.IsPositive() {
		return &ValidationError{Field: "unit_price", Message: "must be greater than zero"}
	}
	return nil
}

// RecalculateTotal derives total_amount = quantity_ordered × unit_price,
// overriding whatever the caller supplied. Called on every persistence.
func (po *PurchaseOrder) RecalculateTotal() {
	po.TotalAmount = po.UnitPrice.Mul(decimal.NewFromInt(int64(po.QtyOrdered))).Round(2)
}

// Send moves draft → sent.
func (po *PurchaseOrder) Send() error {
	switch po.Status {
	case POStatusDraft:
		po.Status = POStatusSent
		return nil
	default:
		return &InvalidTransitionError{Entity: "purchase order", Action: "send", Status: po.Status}
	}
}

// Confirm moves sent → confirmed.
func (po *PurchaseOrder) Confirm() error {
	switch po.Status {
	case POStatusSent:
		po.Status = POStatusConfirmed
		return nil
	default:
		return &InvalidTransitionError{Entity: "purchase order", Action: "confirm", Status: po.Status}
	}
}

// Cancel is allowed from any non-terminal status.
func (po *PurchaseOrder) Cancel() error {
	switch po.Status {
	case POStatusDraft, POStatusSent:
		po.Status = POStatusCancelled
		return nil
	default:
		return &InvalidTransitionError{Entity: "purchase order", Action: "cancel", Status: po.Status}
	}
}

func (po *PurchaseOrder) Editable() bool {
	return po.Status == POStatusDraft || po.Status == POStatusSent
}
