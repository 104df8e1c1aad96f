package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type ReceiptHandler struct {
	svc *service.ReceivingService
}

func NewReceiptHandler(svc *service.ReceivingService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

// List GET /goods-receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "order_id", "supplier_id", "status")

	receipts, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: receipts, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /goods-receipts/:id
func (h *ReceiptHandler) Get(c *gin.Context) {
	gr, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, gr)
}

// Create POST /goods-receipts
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req service.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	gr, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, gr)
}

// Update PUT /goods-receipts/:id
func (h *ReceiptHandler) Update(c *gin.Context) {
	var req service.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	gr, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, gr)
}

// Delete DELETE /goods-receipts/:id
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}

// ValidateDelivery POST /goods-receipts/:id/validate-delivery
func (h *ReceiptHandler) ValidateDelivery(c *gin.Context) {
	gr, err := h.svc.ValidateDelivery(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, gr)
}
