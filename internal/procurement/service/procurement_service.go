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

// ProcurementService covers the front half of the purchase chain:
// purchase requests and the supplier quotations collected against them.
type ProcurementService struct {
	db    *gorm.DB
	repos *repository.Repositories
}

func NewProcurementService(db *gorm.DB, repos *repository.Repositories) *ProcurementService {
	return &ProcurementService{db: db, repos: repos}
}

type CreateRequestRequest struct {
	ArticleSKU string          `json:"article_sku" binding:"required"`
	ProjectID  string          `json:"project_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required"`
	Urgency    string          `json:"urgency"`
	Budget     decimal.Decimal `json:"budget"`
	Requester  string          `json:"requester" binding:"required"`
}

type UpdateRequestRequest struct {
	ArticleSKU *string          `json:"article_sku"`
	ProjectID  *string          `json:"project_id"`
	Quantity   *int             `json:"quantity"`
	Urgency    *string          `json:"urgency"`
	Budget     *decimal.Decimal `json:"budget"`
	Requester  *string          `json:"requester"`
	Status     *string          `json:"status"`
}

func (s *ProcurementService) ListRequests(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PurchaseRequest, int64, error) {
	return s.repos.PR.FindAll(ctx, page, pageSize, filters)
}

func (s *ProcurementService) GetRequest(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	return s.repos.PR.FindByID(ctx, id)
}

func (s *ProcurementService) CreateRequest(ctx context.Context, req *CreateRequestRequest) (*entity.PurchaseRequest, error) {
	if _, err := s.repos.Article.FindBySKU(ctx, req.ArticleSKU); err != nil {
		return nil, err
	}
	if _, err := s.repos.Project.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	pr := &entity.PurchaseRequest{
		ID:         uuid.New().String()[:32],
		ArticleSKU: req.ArticleSKU,
		ProjectID:  req.ProjectID,
		Quantity:   req.Quantity,
		Urgency:    req.Urgency,
		Budget:     req.Budget,
		Requester:  req.Requester,
		Status:     entity.PRStatusPending,
	}
	if pr.Urgency == "" {
		pr.Urgency = entity.UrgencyNormal
	}

	if err := pr.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.PR.Create(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

func (s *ProcurementService) UpdateRequest(ctx context.Context, id string, req *UpdateRequestRequest) (*entity.PurchaseRequest, error) {
	pr, err := s.repos.PR.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Field edits are only allowed while the request is still open;
	// a pure status edit stays possible on the remaining legal edges.
	fieldEdit := req.ArticleSKU != nil || req.ProjectID != nil || req.Quantity != nil ||
		req.Urgency != nil || req.Budget != nil || req.Requester != nil
	if fieldEdit && !pr.Editable() {
		return nil, &entity.InvalidTransitionError{Entity: "purchase request", Action: "edit", Status: pr.Status}
	}

	if req.ArticleSKU != nil {
		if _, err := s.repos.Article.FindBySKU(ctx, *req.ArticleSKU); err != nil {
			return nil, err
		}
		pr.ArticleSKU = *req.ArticleSKU
	}
	if req.ProjectID != nil {
		if _, err := s.repos.Project.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		pr.ProjectID = *req.ProjectID
	}
	if req.Quantity != nil {
		pr.Quantity = *req.Quantity
	}
	if req.Urgency != nil {
		pr.Urgency = *req.Urgency
	}
	if req.Budget != nil {
		pr.Budget = *req.Budget
	}
	if req.Requester != nil {
		pr.Requester = *req.Requester
	}
	if req.Status != nil {
		if err := pr.SetStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	if err := pr.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.PR.Update(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

func (s *ProcurementService) DeleteRequest(ctx context.Context, id string) error {
	return s.repos.PR.Delete(ctx, id)
}

// ApproveRequest moves a pending request to approved as one
// read-modify-write transaction.
func (s *ProcurementService) ApproveRequest(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	var pr entity.PurchaseRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pr, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		if err := pr.Approve(); err != nil {
			return err
		}
		return tx.Save(&pr).Error
	})
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// FlagRequest puts a request on hold for manual review. Works from any
// status and is idempotent.
func (s *ProcurementService) FlagRequest(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	var pr entity.PurchaseRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pr, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		pr.FlagForReview()
		return tx.Save(&pr).Error
	})
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

type CreateQuotationRequest struct {
	RequestID  string          `json:"request_id" binding:"required"`
	SupplierID string          `json:"supplier_id" binding:"required"`
	ArticleSKU string          `json:"article_sku" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	QtyOffered int             `json:"quantity_offered" binding:"required"`
	Validity   time.Time       `json:"validity_date" binding:"required"`
	Delivery   *time.Time      `json:"delivery_date"`
}

type UpdateQuotationRequest struct {
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	QtyOffered *int             `json:"quantity_offered"`
	Validity   *time.Time       `json:"validity_date"`
	Delivery   *time.Time       `json:"delivery_date"`
}

func (s *ProcurementService) ListQuotations(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Quotation, int64, error) {
	return s.repos.Quotation.FindAll(ctx, page, pageSize, filters)
}

func (s *ProcurementService) GetQuotation(ctx context.Context, id string) (*entity.Quotation, error) {
	return s.repos.Quotation.FindByID(ctx, id)
}

func (s *ProcurementService) CreateQuotation(ctx context.Context, req *CreateQuotationRequest) (*entity.Quotation, error) {
	if _, err := s.repos.PR.FindByID(ctx, req.RequestID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Supplier.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Article.FindBySKU(ctx, req.ArticleSKU); err != nil {
		return nil, err
	}

	q := &entity.Quotation{
		ID:         uuid.New().String()[:32],
		RequestID:  req.RequestID,
		SupplierID: req.SupplierID,
		ArticleSKU: req.ArticleSKU,
		UnitPrice:  req.UnitPrice,
		QtyOffered: req.QtyOffered,
		Validity:   req.Validity,
		Delivery:   req.Delivery,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Quotation.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *ProcurementService) UpdateQuotation(ctx context.Context, id string, req *UpdateQuotationRequest) (*entity.Quotation, error) {
	q, err := s.repos.Quotation.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UnitPrice != nil {
		q.UnitPrice = *req.UnitPrice
	}
	if req.QtyOffered != nil {
		q.QtyOffered = *req.QtyOffered
	}
	if req.Validity != nil {
		q.Validity = *req.Validity
	}
	if req.Delivery != nil {
		q.Delivery = req.Delivery
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Quotation.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *ProcurementService) DeleteQuotation(ctx context.Context, id string) error {
	return s.repos.Quotation.Delete(ctx, id)
}
