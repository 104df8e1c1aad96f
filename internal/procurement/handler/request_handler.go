package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

type RequestHandler struct {
	svc *service.ProcurementService
}

func NewRequestHandler(svc *service.ProcurementService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// List GET /purchase-requests
func (h *RequestHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := getFilters(c, "project_id", "status", "urgency", "search")

	requests, total, err := h.svc.ListRequests(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, ListResponse{Items: requests, Pagination: newPagination(page, pageSize, total)})
}

// Get GET /purchase-requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	pr, err := h.svc.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, pr)
}

// Create POST /purchase-requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	pr, err := h.svc.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Created(c, pr)
}

// Update PUT /purchase-requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	var req service.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	pr, err := h.svc.UpdateRequest(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, pr)
}

// Delete DELETE /purchase-requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	Success(c, nil)
}

// Approve POST /purchase-requests/:id/approve
func (h *RequestHandler) Approve(c *gin.Context) {
	pr, err := h.svc.ApproveRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, pr)
}

// Flag POST /purchase-requests/:id/flag
func (h *RequestHandler) Flag(c *gin.Context) {
	pr, err := h.svc.FlagRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	Success(c, pr)
}
