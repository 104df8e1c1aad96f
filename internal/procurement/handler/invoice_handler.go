package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type InvoiceHandler struct {
	svc *service.BillingService
}

func NewInvoiceHandler(svc *service.BillingService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// List GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "order_id", "supplier_id", "status", "search")

	invoices, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: invoices, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, inv)
}

// Create POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	inv, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, inv)
}

// Update PUT /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req service.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	inv, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, inv)
}

// Delete DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}

// Validate POST /invoices/:id/validate
func (h *InvoiceHandler) Validate(c *gin.Context) {
	inv, err := h.svc.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, inv)
}
