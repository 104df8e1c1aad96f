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

// OrderService raises and manages purchase orders. Order numbers are
// generated inside the creating transaction so they are assigned before
// the row is inserted and never regenerated afterwards.
type OrderService struct {
	db    *gorm.DB
	repos *repository.Repositories
}

func NewOrderService(db *gorm.DB, repos *repository.Repositories) *OrderService {
	return &OrderService{db: db, repos: repos}
}

type CreateOrderRequest struct {
	RequestID   string           `json:"request_id" binding:"required"`
	QuotationID string           `json:"selected_quotation_id" binding:"required"`
	QtyOrdered  int              `json:"quantity_ordered"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	OrderDate   *time.Time       `json:"order_date"`
}

type UpdateOrderRequest struct {
	QtyOrdered *int             `json:"quantity_ordered"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	OrderDate  *time.Time       `json:"order_date"`
}

func (s *OrderService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PurchaseOrder, int64, error) {
	return s.repos.PO.FindAll(ctx, page, pageSize, filters)
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return s.repos.PO.FindByID(ctx, id)
}

// Create raises an order from a request and one of its quotations. The
// supplier, article and terms default from the quotation; quantity and
// price can be overridden. The total is always derived server-side.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*entity.PurchaseOrder, error) {
	request, err := s.repos.PR.FindByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	quotation, err := s.repos.Quotation.FindByID(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation.RequestID != request.ID {
		return nil, &entity.ValidationError{Field: "selected_quotation_id", Message: "does not belong to the given request"}
	}

	po := &entity.PurchaseOrder{
		ID:          uuid.New().String()[:32],
		RequestID:   request.ID,
		QuotationID: quotation.ID,
		SupplierID:  quotation.SupplierID,
		ArticleSKU:  quotation.ArticleSKU,
		QtyOrdered:  quotation.QtyOffered,
		UnitPrice:   quotation.UnitPrice,
		Status:      entity.POStatusDraft,
		OrderDate:   time.Now(),
	}
	if req.QtyOrdered > 0 {
		po.QtyOrdered = req.QtyOrdered
	}
	if req.UnitPrice != nil {
		po.UnitPrice = *req.UnitPrice
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}

	if err := po.Validate(); err != nil {
		return nil, err
	}
	po.RecalculateTotal()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := s.repos.PO.GenerateNumber(ctx, tx)
		if err != nil {
			return err
		}
		po.OrderNumber = number
		return tx.Create(po).Error
	})
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (s *OrderService) Update(ctx context.Context, id string, req *UpdateOrderRequest) (*entity.PurchaseOrder, error) {
	po, err := s.repos.PO.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !po.Editable() {
		return nil, &entity.InvalidTransitionError{Entity: "purchase order", Action: "edit", Status: po.Status}
	}

	if req.QtyOrdered != nil {
		po.QtyOrdered = *req.QtyOrdered
	}
	if req.UnitPrice != nil {
		po.UnitPrice = *req.UnitPrice
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}

	if err := po.Validate(); err != nil {
		return nil, err
	}
	po.RecalculateTotal()

	if err := s.repos.PO.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repos.PO.Delete(ctx, id)
}

// Send marks a draft order as sent to the supplier.
func (s *OrderService) Send(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return s.transition(ctx, id, (*entity.PurchaseOrder).Send)
}

// Confirm records the supplier's acknowledgement of a sent order.
func (s *OrderService) Confirm(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return s.transition(ctx, id, (*entity.PurchaseOrder).Confirm)
}

// Cancel withdraws an order that has not been confirmed yet.
func (s *OrderService) Cancel(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return s.transition(ctx, id, (*entity.PurchaseOrder).Cancel)
}

func (s *OrderService) transition(ctx context.Context, id string, apply func(*entity.PurchaseOrder) error) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&po, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		if err := apply(&po); err != nil {
			return err
		}
		po.RecalculateTotal()
		return tx.Save(&po).Error
	})
	if err != nil {
		return nil, err
	}
	return &po, nil
}
