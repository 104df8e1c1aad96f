package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type QuotationHandler struct {
	svc *service.ProcurementService
}

func NewQuotationHandler(svc *service.ProcurementService) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// List GET /quotations
func (h *QuotationHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "request_id", "supplier_id")

	quotations, total, err := h.svc.ListQuotations(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: quotations, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /quotations/:id
func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.svc.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, q)
}

// Create POST /quotations
func (h *QuotationHandler) Create(c *gin.Context) {
	var req service.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	q, err := h.svc.CreateQuotation(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, q)
}

// Update PUT /quotations/:id
func (h *QuotationHandler) Update(c *gin.Context) {
	var req service.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	q, err := h.svc.UpdateQuotation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, q)
}

// Delete DELETE /quotations/:id
// Returns 409 while the quotation is selected by a purchase order.
func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteQuotation(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}
