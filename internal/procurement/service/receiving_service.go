package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// ReceivingService tracks goods receipts. The ordered quantity is
// snapshotted from the order at creation time; it is the fixed baseline
// every later delivery validation compares against.
type ReceivingService struct {
	db    *gorm.DB
	repos *repository.Repositories
}

func NewReceivingService(db *gorm.DB, repos *repository.Repositories) *ReceivingService {
	return &ReceivingService{db: db, repos: repos}
}

type CreateReceiptRequest struct {
	OrderID      string     `json:"purchase_order_id" binding:"required"`
	QtyReceived  int        `json:"quantity_received"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

type UpdateReceiptRequest struct {
	QtyReceived  *int       `json:"quantity_received"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

func (s *ReceivingService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.GoodsReceipt, int64, error) {
	return s.repos.Receipt.FindAll(ctx, page, pageSize, filters)
}

func (s *ReceivingService) Get(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	return s.repos.Receipt.FindByID(ctx, id)
}

// Create opens a receipt against an order, capturing the order's
// quantity as the delivery baseline.
func (s *ReceivingService) Create(ctx context.Context, req *CreateReceiptRequest) (*entity.GoodsReceipt, error) {
	order, err := s.repos.PO.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	gr := &entity.GoodsReceipt{
		ID:           uuid.New().String()[:32],
		OrderID:      order.ID,
		SupplierID:   order.SupplierID,
		ArticleSKU:   order.ArticleSKU,
		QtyReceived:  req.QtyReceived,
		QtyOrdered:   order.QtyOrdered,
		Status:       entity.DeliveryStatusPending,
		DeliveryDate: req.DeliveryDate,
	}

	if err := gr.Validate(); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := s.repos.Receipt.GenerateNumber(ctx, tx)
		if err != nil {
			return err
		}
		gr.ReceiptNumber = number
		return tx.Create(gr).Error
	})
	if err != nil {
		return nil, err
	}
	return gr, nil
}

// Update edits the received quantity or delivery date. The ordered
// baseline is immutable after creation.
func (s *ReceivingService) Update(ctx context.Context, id string, req *UpdateReceiptRequest) (*entity.GoodsReceipt, error) {
	gr, err := s.repos.Receipt.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.QtyReceived != nil {
		gr.QtyReceived = *req.QtyReceived
	}
	if req.DeliveryDate != nil {
		gr.DeliveryDate = req.DeliveryDate
	}

	if err := gr.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Receipt.Update(ctx, gr); err != nil {
		return nil, err
	}
	return gr, nil
}

func (s *ReceivingService) Delete(ctx context.Context, id string) error {
	return s.repos.Receipt.Delete(ctx, id)
}

// ValidateDelivery classifies the receipt from its quantities. Always
// succeeds on an existing receipt; re-running it is harmless.
func (s *ReceivingService) ValidateDelivery(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	var gr entity.GoodsReceipt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gr, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		gr.ValidateDelivery()
		return tx.Save(&gr).Error
	})
	if err != nil {
		return nil, err
	}
	return &gr, nil
}
