package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type OrderHandler struct {
	svc    *service.OrderService
	report *service.ReportService
}

func NewOrderHandler(svc *service.OrderService, report *service.ReportService) *OrderHandler {
	return &OrderHandler{svc: svc, report: report}
}

// List GET /purchase-orders
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "supplier_id", "request_id", "status", "search")

	orders, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: orders, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /purchase-orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	po, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, po)
}

// Create POST /purchase-orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	po, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, po)
}

// Update PUT /purchase-orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	po, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, po)
}

// Delete DELETE /purchase-orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}

// Send POST /purchase-orders/:id/send
func (h *OrderHandler) Send(c *gin.Context) {
	po, err := h.svc.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, po)
}

// Confirm POST /purchase-orders/:id/confirm
func (h *OrderHandler) Confirm(c *gin.Context) {
	po, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, po)
}

// Cancel POST /purchase-orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	po, err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, po)
}

// Export GET /purchase-orders/export
func (h *OrderHandler) Export(c *gin.Context) {
	filters := getFilters(c, "supplier_id", "request_id", "status", "search")

	f, filename, err := h.report.ExportOrders(c.Request.Context(), filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
