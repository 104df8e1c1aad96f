package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/repository"
	"github.com/zakariadrk66/BTP/internal/procurement/service"
	"github.com/zakariadrk66/BTP/internal/testutil"
)

func setupProcurementTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	services := service.NewServices(db, repos)
	handlers := NewHandlers(services)

	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/purchase-requests", handlers.Request.List)
	api.POST("/purchase-requests", handlers.Request.Create)
	api.GET("/purchase-requests/:id", handlers.Request.Get)
	api.PUT("/purchase-requests/:id", handlers.Request.Update)
	api.DELETE("/purchase-requests/:id", handlers.Request.Delete)
	api.POST("/purchase-requests/:id/approve", handlers.Request.Approve)
	api.POST("/purchase-requests/:id/flag", handlers.Request.Flag)

	api.GET("/quotations", handlers.Quotation.List)
	api.POST("/quotations", handlers.Quotation.Create)
	api.DELETE("/quotations/:id", handlers.Quotation.Delete)

	api.POST("/purchase-orders", handlers.Order.Create)
	api.GET("/purchase-orders/:id", handlers.Order.Get)
	api.PUT("/purchase-orders/:id", handlers.Order.Update)
	api.POST("/purchase-orders/:id/send", handlers.Order.Send)
	api.POST("/purchase-orders/:id/confirm", handlers.Order.Confirm)

	api.POST("/invoices", handlers.Invoice.Create)
	api.POST("/invoices/:id/validate", handlers.Invoice.Validate)

	api.POST("/goods-receipts", handlers.Receipt.Create)
	api.PUT("/goods-receipts/:id", handlers.Receipt.Update)
	api.POST("/goods-receipts/:id/validate-delivery", handlers.Receipt.ValidateDelivery)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()
	supplier := &entity.Supplier{
		ID: "sup-001", Name: "Lafarge", Email: "sales@lafarge.test",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	project := &entity.Project{
		ID: "proj-001", Name: "Tram extension", Budget: decimal.NewFromInt(500000),
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	article := &entity.Article{
		SKU: "CEM-42.5", Description: "Portland cement 42.5", ReorderMax: 10,
		AverageCost: decimal.RequireFromString("12.00"),
		CreatedAt:   time.Now(), UpdatedAt: time.Now(),
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}
}

func TestRequestCreateAndApprove(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	seedReferenceData(t, env.DB)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests",
		map[string]interface{}{
			"article_sku": "CEM-42.5",
			"project_id":  "proj-001",
			"quantity":    100,
			"urgency":     "high",
			"budget":      "1500.00",
			"requester":   "site.manager@btp.test",
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != "pending" {
		t.Errorf("Expected pending, got %v", data["status"])
	}
	reqID := data["id"].(string)

	// Approve pending request
	w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests/"+reqID+"/approve", nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	data2 := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if data2["status"] != "approved" {
		t.Errorf("Expected approved, got %v", data2["status"])
	}

	// Second approve must fail, status untouched
	w3 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests/"+reqID+"/approve", nil, token)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 on re-approve, got %d: %s", w3.Code, w3.Body.String())
	}

	var pr entity.PurchaseRequest
	if err := env.DB.First(&pr, "id = ?", reqID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if pr.Status != entity.PRStatusApproved {
		t.Errorf("status changed by failed approve: %s", pr.Status)
	}
}

func TestRequestFlagWorksFromAnyStatus(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	seedReferenceData(t, env.DB)

	pr := &entity.PurchaseRequest{
		ID: "req-flag-001", ArticleSKU: "CEM-42.5", ProjectID: "proj-001",
		Quantity: 10, Urgency: "normal", Requester: "x@btp.test",
		Status:    entity.PRStatusApproved,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := env.DB.Create(pr).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests/req-flag-001/flag", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["status"] != "flagged" {
		t.Errorf("Expected flagged, got %v", data["status"])
	}

	// Flagging again stays flagged
	w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests/req-flag-001/flag", nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200 on repeat flag, got %d", w2.Code)
	}
}

func TestRequestApproveNotFound(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests/missing/approve", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequestCreateRejectsUnknownReferences(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	seedReferenceData(t, env.DB)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-requests",
		map[string]interface{}{
			"article_sku": "NO-SUCH-SKU",
			"project_id":  "proj-001",
			"quantity":    5,
			"requester":   "x@btp.test",
		}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown article, got %d: %s", w.Code, w.Body.String())
	}
}
