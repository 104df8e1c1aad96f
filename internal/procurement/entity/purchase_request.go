package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest is the entry point of the purchase-document chain.
type PurchaseRequest struct {
	ID         string          `json:"id" gorm:"primaryKey;size:32"`
	ArticleSKU string          `json:"article_sku" gorm:"size:64;not null;index"`
	ProjectID  string          `json:"project_id" gorm:"size:32;not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Urgency    string          `json:"urgency" gorm:"size:20;default:normal"` // low/normal/high/urgent
	Budget     decimal.Decimal `json:"budget" gorm:"type:decimal(15,2);default:0"`
	Requester  string          `json:"requester" gorm:"size:200;not null"`
	Status     string          `json:"status" gorm:"size:20;default:pending"` // pending/approved/rejected/flagged

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleSKU"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

// PurchaseRequest status
const (
	PRStatusPending  = "pending"
	PRStatusApproved = "approved"
	PRStatusRejected = "rejected"
	PRStatusFlagged  = "flagged"
)

// Urgency levels
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

func (pr *PurchaseRequest) Validate() error {
	if pr.ArticleSKU == "" {
		return &ValidationError{Field: "article_sku", Message: "is required"}
	}
	if pr.ProjectID == "" {
		return &ValidationError{Field: "project_id", Message: "is required"}
	}
	if pr.Quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	switch pr.Urgency {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
	default:
		return &ValidationError{Field: "urgency", Message: "must be one of low/normal/high/urgent"}
	}
	if pr.Budget.IsNegative() {
		return &ValidationError{Field: "budget", Message: "cannot be negative"}
	}
	if pr.Requester == "" {
		return &ValidationError{Field: "requester", Message: "is required"}
	}
	return nil
}

// Approve moves pending → approved. Any other current status is an
// invalid transition; the status is left untouched.
func (pr *PurchaseRequest) Approve() error {
	switch pr.Status {
	case PRStatusPending:
		pr.Status = PRStatusApproved
		return nil
	default:
		return &InvalidTransitionError{Entity: "purchase request", Action: "approve", Status: pr.Status}
	}
}

// FlagForReview puts the request on a soft hold. Allowed from every
// status and idempotent.
func (pr *PurchaseRequest) FlagForReview() {
	pr.Status = PRStatusFlagged
}

// SetStatus applies a direct status edit along the remaining legal edges
// (pending → rejected, flagged → approved/rejected). approve() stays the
// only way from pending to approved.
func (pr *PurchaseRequest) SetStatus(next string) error {
	if next == pr.Status {
		return nil
	}
	switch pr.Status {
	case PRStatusPending:
		if next == PRStatusRejected {
			pr.Status = next
			return nil
		}
	case PRStatusFlagged:
		if next == PRStatusApproved || next == PRStatusRejected {
			pr.Status = next
			return nil
		}
	}
	return &InvalidTransitionError{Entity: "purchase request", Action: "set status " + next, Status: pr.Status}
}

// Editable reports whether generic field edits are still allowed.
func (pr *PurchaseRequest) Editable() bool {
	return pr.Status == PRStatusPending || pr.Status == PRStatusFlagged
}
