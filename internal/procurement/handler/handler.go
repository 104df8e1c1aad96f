package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
	"github.com/zakariadrk66/BTP/internal/procurement/service"
)

// Handlers bundles the procurement HTTP handlers.
type Handlers struct {
	Supplier  *SupplierHandler
	Project   *ProjectHandler
	Article   *ArticleHandler
	Request   *RequestHandler
	Quotation *QuotationHandler
	Order     *OrderHandler
	Invoice   *InvoiceHandler
	Receipt   *ReceiptHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Supplier:  NewSupplierHandler(svc.Supplier),
		Project:   NewProjectHandler(svc.Project),
		Article:   NewArticleHandler(svc.Article),
		Request:   NewRequestHandler(svc.Procurement),
		Quotation: NewQuotationHandler(svc.Procurement),
		Order:     NewOrderHandler(svc.Order, svc.Report),
		Invoice:   NewInvoiceHandler(svc.Billing),
		Receipt:   NewReceiptHandler(svc.Receiving),
	}
}

// Response is the common envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse wraps paginated collections.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error response; the HTTP status is the first three
// digits of the business code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// respondErr maps service errors onto the response taxonomy: validation
// and illegal transitions are 400, missing records 404, uniqueness and
// reference conflicts 409, everything else 500.
func respondErr(c *gin.Context, err error) {
	var vErr *entity.ValidationError
	var tErr *entity.InvalidTransitionError
	switch {
	case errors.As(err, &vErr), errors.As(err, &tErr):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrReferenced):
		Conflict(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID reads the authenticated user id set by the auth middleware.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

// getFilters copies the whitelisted query parameters into a filter map.
func getFilters(c *gin.Context, keys ...string) map[string]string {
	filters := make(map[string]string)
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			filters[k] = v
		}
	}
	return filters
}

func newPagination(page, pageSize int, total int64) *Pagination {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: totalPages,
	}
}
