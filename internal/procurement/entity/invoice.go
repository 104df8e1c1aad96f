package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice tracks financial settlement of a purchase order. TotalAmount
// is derived the same way as on the order.
type Invoice struct {
	ID            string          `json:"id" gorm:"primaryKey;size:32"`
	InvoiceNumber string          `json:"invoice_number" gorm:"size:64;uniqueIndex;not null"`
	OrderID       string          `json:"purchase_order_id" gorm:"size:32;not null;index"`
	SupplierID    string          `json:"supplier_id" gorm:"size:32;not null;index"`
	ArticleSKU    string          `json:"article_sku" gorm:"size:64;not null"`
	QtyInvoiced   int             `json:"quantity_invoiced" gorm:"not null"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:decimal(15,2);not null"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(15,2);not null"`
	IssueDate     time.Time       `json:"issue_date" gorm:"not null"`
	DueDate       time.Time       `json:"due_date" gorm:"not null"`
	Status        string          `json:"status" gorm:"size:20;default:draft"` // draft/submitted/validated/rejected/paid

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Order    *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:OrderID"`
	Supplier *Supplier      `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Article  *Article       `json:"article,omitempty" gorm:"foreignKey:ArticleSKU"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Invoice status
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSubmitted = "submitted"
	InvoiceStatusValidated = "validated"
	InvoiceStatusRejected  = "rejected"
	InvoiceStatusPaid      = "paid"
)

func (inv *Invoice) Validate() error {
	if inv.InvoiceNumber == "" {
		return &ValidationError{Field: "invoice_number", Message: "is required"}
	}
	if inv.OrderID == "" {
		return &ValidationError{Field: "purchase_order_id", Message: "is required"}
	}
	if inv.SupplierID == "" {
		return &ValidationError{Field: "supplier_id", Message: "is required"}
	}
	if inv.ArticleSKU == "" {
		return &ValidationError{Field: "article_sku", Message: "is required"}
	}
	if inv.QtyInvoiced < 1 {
		return &ValidationError{Field: "quantity_invoiced", Message: "must be at least 1"}
	}
	if !inv.UnitPrice.IsPositive() {
		return &ValidationError{Field: "unit_price", Message: "must be greater than zero"}
	}
	if inv.IssueDate.IsZero() {
		return &ValidationError{Field: "issue_date", Message: "is required"}
	}
	if inv.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Message: "is required"}
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return &ValidationError{Field: "due_date", Message: "cannot be before issue date"}
	}
	return nil
}

// RecalculateTotal derives total_amount = quantity_invoiced × unit_price.
func (inv *Invoice) RecalculateTotal() {
	inv.TotalAmount = inv.UnitPrice.Mul(decimal.NewFromInt(int64(inv.QtyInvoiced))).Round(2)
}

// ValidateInvoice moves draft or submitted → validated.
func (inv *Invoice) ValidateInvoice() error {
	switch inv.Status {
	case InvoiceStatusDraft, InvoiceStatusSubmitted:
		inv.Status = InvoiceStatusValidated
		return nil
	default:
		return &InvalidTransitionError{Entity: "invoice", Action: "validate", Status: inv.Status}
	}
}

// Editable reports whether generic field edits are still allowed.
// rejected and paid are terminal.
func (inv *Invoice) Editable() bool {
	return inv.Status != InvoiceStatusRejected && inv.Status != InvoiceStatusPaid
}
