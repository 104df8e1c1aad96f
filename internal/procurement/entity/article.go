package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article inventory master record, keyed by SKU.
type Article struct {
	SKU         string          `json:"sku" gorm:"primaryKey;size:64"`
	Description string          `json:"description" gorm:"type:text"`
	ReorderMax  int             `json:"reorder_max" gorm:"default:1"` // reorder threshold, >= 1
	AverageCost decimal.Decimal `json:"average_cost" gorm:"type:decimal(15,2);default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) Validate() error {
	if a.SKU == "" {
		return &ValidationError{Field: "sku", Message: "is required"}
	}
	if a.ReorderMax < 1 {
		return &ValidationError{Field: "reorder_max", Message: "must be at least 1"}
	}
	if a.AverageCost.IsNegative() {
		return &ValidationError{Field: "average_cost", Message: "cannot be negative"}
	}
	return nil
}
