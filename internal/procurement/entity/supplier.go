package entity

import "time"

// Supplier master record
type Supplier struct {
	ID            string  `json:"id" gorm:"primaryKey;size:32"`
	Name          string  `json:"name" gorm:"size:200;not null"`
	Address       string  `json:"address" gorm:"size:500"`
	ContactPerson string  `json:"contact_person" gorm:"size:100"`
	Email         string  `json:"email" gorm:"size:200"`
	Phone         string  `json:"phone" gorm:"size:50"`
	Rating        float64 `json:"rating" gorm:"type:decimal(3,2);default:0"` // 0..5

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// Validate checks per-field constraints before persistence.
func (s *Supplier) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if s.Rating < 0 || s.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "must be between 0 and 5"}
	}
	return nil
}
