package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project (chantier) master record
type Project struct {
	ID     string          `json:"id" gorm:"primaryKey;size:32"`
	Name   string          `json:"name" gorm:"size:200;not null"`
	Budget decimal.Decimal `json:"budget" gorm:"type:decimal(15,2);not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !p.Budget.IsPositive() {
		return &ValidationError{Field: "budget", Message: "must be greater than zero"}
	}
	return nil
}
