package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// BillingService manages supplier invoices raised against purchase
// orders. Invoice numbers come from the supplier, so they are caller
// input rather than generated.
type BillingService struct {
	db    *gorm.DB
	repos *repository.Repositories
}

func NewBillingService(db *gorm.DB, repos *repository.Repositories) *BillingService {
	return &BillingService{db: db, repos: repos}
}

type CreateInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number" binding:"required"`
	OrderID       string           `json:"purchase_order_id" binding:"required"`
	QtyInvoiced   int              `json:"quantity_invoiced"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	IssueDate     time.Time        `json:"issue_date" binding:"required"`
	DueDate       time.Time        `json:"due_date" binding:"required"`
}

type UpdateInvoiceRequest struct {
	QtyInvoiced *int             `json:"quantity_invoiced"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	IssueDate   *time.Time       `json:"issue_date"`
	DueDate     *time.Time       `json:"due_date"`
	Status      *string          `json:"status"`
}

func (s *BillingService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Invoice, int64, error) {
	return s.repos.Invoice.FindAll(ctx, page, pageSize, filters)
}

func (s *BillingService) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	return s.repos.Invoice.FindByID(ctx, id)
}

// Create registers an invoice against an order. Quantity and price
// default from the order; the total is always derived server-side.
func (s *BillingService) Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	order, err := s.repos.PO.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String()[:32],
		InvoiceNumber: req.InvoiceNumber,
		OrderID:       order.ID,
		SupplierID:    order.SupplierID,
		ArticleSKU:    order.ArticleSKU,
		QtyInvoiced:   order.QtyOrdered,
		UnitPrice:     order.UnitPrice,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Status:        entity.InvoiceStatusDraft,
	}
	if req.QtyInvoiced > 0 {
		inv.QtyInvoiced = req.QtyInvoiced
	}
	if req.UnitPrice != nil {
		inv.UnitPrice = *req.UnitPrice
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.RecalculateTotal()

	if err := s.repos.Invoice.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *BillingService) Update(ctx context.Context, id string, req *UpdateInvoiceRequest) (*entity.Invoice, error) {
	inv, err := s.repos.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Editable() {
		return nil, &entity.InvalidTransitionError{Entity: "invoice", Action: "edit", Status: inv.Status}
	}

	if req.QtyInvoiced != nil {
		inv.QtyInvoiced = *req.QtyInvoiced
	}
	if req.UnitPrice != nil {
		inv.UnitPrice = *req.UnitPrice
	}
	if req.IssueDate != nil {
		inv.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		inv.DueDate = *req.DueDate
	}
	if req.Status != nil {
		switch *req.Status {
		case entity.InvoiceStatusDraft, entity.InvoiceStatusSubmitted,
			entity.InvoiceStatusValidated, entity.InvoiceStatusRejected, entity.InvoiceStatusPaid:
			inv.Status = *req.Status
		default:
			return nil, &entity.ValidationError{Field: "status", Message: "must be one of draft/submitted/validated/rejected/paid"}
		}
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.RecalculateTotal()

	if err := s.repos.Invoice.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.repos.Invoice.Delete(ctx, id)
}

// Validate approves an invoice for payment as one read-modify-write
// transaction.
func (s *BillingService) Validate(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		if err := inv.ValidateInvoice(); err != nil {
			return err
		}
		inv.RecalculateTotal()
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
