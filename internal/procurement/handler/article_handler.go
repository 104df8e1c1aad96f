package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type ArticleHandler struct {
	svc *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "search")

	articles, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: articles, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /articles/:sku
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("sku"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, article)
}

// Create POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	article, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, article)
}

// Update PUT /articles/:sku
func (h *ArticleHandler) Update(c *gin.Context) {
	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	article, err := h.svc.Update(c.Request.Context(), c.Param("sku"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, article)
}

// Delete DELETE /articles/:sku
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("sku")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}
