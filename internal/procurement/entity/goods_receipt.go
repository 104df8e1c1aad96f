package entity

import "time"

// GoodsReceipt tracks physical delivery against a purchase order.
// QtyOrdered is captured from the order when the receipt is created and
// never re-read, so later edits to the order do not move the baseline.
type GoodsReceipt struct {
	ID            string     `json:"id" gorm:"primaryKey;size:32"`
	ReceiptNumber string     `json:"receipt_number" gorm:"size:32;uniqueIndex;not null"`
	OrderID       string     `json:"purchase_order_id" gorm:"size:32;not null;index"`
	SupplierID    string     `json:"supplier_id" gorm:"size:32;not null;index"`
	ArticleSKU    string     `json:"article_sku" gorm:"size:64;not null"`
	QtyReceived   int        `json:"quantity_received" gorm:"not null;default:0"`
	QtyOrdered    int        `json:"quantity_ordered" gorm:"not null"`
	Status        string     `json:"delivery_status" gorm:"size:20;default:pending"` // pending/partial/complete/rejected
	DeliveryDate  *time.Time `json:"delivery_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Order    *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:OrderID"`
	Supplier *Supplier      `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Article  *Article       `json:"article,omitempty" gorm:"foreignKey:ArticleSKU"`
}

func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// Delivery status
const (
	DeliveryStatusPending  = "pending"
	DeliveryStatusPartial  = "partial"
	DeliveryStatusComplete = "complete"
	DeliveryStatusRejected = "rejected"
)

func (gr *GoodsReceipt) Validate() error {
	if gr.OrderID == "" {
		return &ValidationError{Field: "purchase_order_id", Message: "is required"}
	}
	if gr.SupplierID == "" {
		return &ValidationError{Field: "supplier_id", Message: "is required"}
	}
	if gr.ArticleSKU == "" {
		return &ValidationError{Field: "article_sku", Message: "is required"}
	}
	if gr.QtyReceived < 0 {
		return &ValidationError{Field: "quantity_received", Message: "cannot be negative"}
	}
	return nil
}

// ValidateDelivery classifies the delivery from the received/ordered
// quantities. Deterministic and idempotent; there is no failure path.
func (gr *GoodsReceipt) ValidateDelivery() {
	switch {
	case gr.QtyReceived == 0:
		gr.Status = DeliveryStatusRejected
	case gr.QtyReceived < gr.QtyOrdered:
		gr.Status = DeliveryStatusPartial
	default:
		gr.Status = DeliveryStatusComplete
	}
}
