package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// SupplierService manages supplier master data.
type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// CreateSupplierRequest carries supplier creation input.
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Rating        float64 `json:"rating"`
}

// UpdateSupplierRequest carries optional supplier edits.
type UpdateSupplierRequest struct {
	Name          *string  `json:"name"`
	Address       *string  `json:"address"`
	ContactPerson *string  `json:"contact_person"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Rating        *float64 `json:"rating"`
}

func (s *SupplierService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Supplier, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

func (s *SupplierService) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SupplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:            uuid.New().String()[:32],
		Name:          req.Name,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Rating:        req.Rating,
	}

	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Rating != nil {
		supplier.Rating = *req.Rating
	}

	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
