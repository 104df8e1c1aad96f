package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// ArticleService manages the article catalog. Articles are keyed by SKU
// rather than a generated id.
type ArticleService struct {
	repo *repository.ArticleRepository
}

func NewArticleService(repo *repository.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

type CreateArticleRequest struct {
	SKU         string          `json:"sku" binding:"required"`
	Description string          `json:"description" binding:"required"`
	ReorderMax  int             `json:"reorder_max"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

type UpdateArticleRequest struct {
	Description *string          `json:"description"`
	ReorderMax  *int             `json:"reorder_max"`
	AverageCost *decimal.Decimal `json:"average_cost"`
}

func (s *ArticleService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Article, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

func (s *ArticleService) Get(ctx context.Context, sku string) (*entity.Article, error) {
	return s.repo.FindBySKU(ctx, sku)
}

func (s *ArticleService) Create(ctx context.Context, req *CreateArticleRequest) (*entity.Article, error) {
	article := &entity.Article{
		SKU:         req.SKU,
		Description: req.Description,
		ReorderMax:  req.ReorderMax,
		AverageCost: req.AverageCost,
	}
	if article.ReorderMax == 0 {
		article.ReorderMax = 1
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, sku string, req *UpdateArticleRequest) (*entity.Article, error) {
	article, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.ReorderMax != nil {
		article.ReorderMax = *req.ReorderMax
	}
	if req.AverageCost != nil {
		article.AverageCost = *req.AverageCost
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, sku string) error {
	return s.repo.Delete(ctx, sku)
}
