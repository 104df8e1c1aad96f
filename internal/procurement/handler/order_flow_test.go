package handler

import (
	"net/http"
	"testing"

	"github.com/zakariadrk66/BTP/internal/procurement/entity"
	"github.com/zakariadrk66/BTP/internal/testutil"
)

// createOrder drives the happy path up to a freshly created order and
// returns its id.
func createOrder(t *testing.T, env *testutil.TestEnv, token string) string {
	t.Helper()
	seedReferenceData(t, env.DB)
	seedApprovedRequest(t, env.DB, "req-001")

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/quotations", quotationBody("req-001"), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create quotation: %d: %s", w.Code, w.Body.String())
	}
	quoID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders",
		map[string]interface{}{
			"request_id":            "req-001",
			"selected_quotation_id": quoID,
		}, token)
	if w2.Code != http.StatusCreated {
		t.Fatalf("create order: %d: %s", w2.Code, w2.Body.String())
	}
	return testutil.ParseResponse(w2)["data"].(map[string]interface{})["id"].(string)
}

func TestOrderCreateDerivesFromQuotation(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	var po entity.PurchaseOrder
	if err := env.DB.First(&po, "id = ?", orderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if po.SupplierID != "sup-001" || po.ArticleSKU != "CEM-42.5" {
		t.Errorf("supplier/article not taken from quotation: %s / %s", po.SupplierID, po.ArticleSKU)
	}
	if po.QtyOrdered != 100 {
		t.Errorf("expected quantity 100 from quotation, got %d", po.QtyOrdered)
	}
	// 100 × 12.50
	if po.TotalAmount.String() != "1250" {
		t.Errorf("expected total 1250, got %s", po.TotalAmount)
	}
	if po.OrderNumber == "" {
		t.Error("order number not assigned")
	}
	if po.Status != entity.POStatusDraft {
		t.Errorf("expected draft, got %s", po.Status)
	}
}

func TestOrderNumbersAreSequential(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	seedReferenceData(t, env.DB)
	seedApprovedRequest(t, env.DB, "req-001")
	seedApprovedRequest(t, env.DB, "req-002")

	var orderNumbers []string
	for _, reqID := range []string{"req-001", "req-002"} {
		w := testutil.DoRequest(env.Router, "POST", "/api/v1/quotations", quotationBody(reqID), token)
		if w.Code != http.StatusCreated {
			t.Fatalf("create quotation: %d: %s", w.Code, w.Body.String())
		}
		quoID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

		w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders",
			map[string]interface{}{
				"request_id":            reqID,
				"selected_quotation_id": quoID,
			}, token)
		if w2.Code != http.StatusCreated {
			t.Fatalf("create order: %d: %s", w2.Code, w2.Body.String())
		}
		data := testutil.ParseResponse(w2)["data"].(map[string]interface{})
		orderNumbers = append(orderNumbers, data["order_number"].(string))
	}

	if orderNumbers[0] == orderNumbers[1] {
		t.Fatalf("duplicate order numbers: %v", orderNumbers)
	}
}

func TestOrderUpdateRecomputesTotal(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	w := testutil.DoRequest(env.Router, "PUT", "/api/v1/purchase-orders/"+orderID,
		map[string]interface{}{
			"quantity_ordered": 40,
			"unit_price":       "10.00",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var po entity.PurchaseOrder
	env.DB.First(&po, "id = ?", orderID)
	if po.TotalAmount.String() != "400" {
		t.Errorf("expected total 400 after update, got %s", po.TotalAmount)
	}
}

func TestOrderSendAndConfirmTransitions(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	// Confirm before send must fail
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders/"+orderID+"/confirm", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 confirming a draft, got %d: %s", w.Code, w.Body.String())
	}

	w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders/"+orderID+"/send", nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	data := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if data["status"] != "sent" {
		t.Errorf("Expected sent, got %v", data["status"])
	}

	// Second send must fail
	w3 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders/"+orderID+"/send", nil, token)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 on re-send, got %d: %s", w3.Code, w3.Body.String())
	}

	w4 := testutil.DoRequest(env.Router, "POST", "/api/v1/purchase-orders/"+orderID+"/confirm", nil, token)
	if w4.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w4.Code, w4.Body.String())
	}
}

func TestInvoiceValidateFlow(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/invoices",
		map[string]interface{}{
			"invoice_number":    "FACT-2026-100",
			"purchase_order_id": orderID,
			"issue_date":        "2026-03-01T00:00:00Z",
			"due_date":          "2026-04-01T00:00:00Z",
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	invID := data["id"].(string)
	if data["status"] != "draft" {
		t.Errorf("Expected draft, got %v", data["status"])
	}

	// Due date before issue date rejected
	w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/invoices",
		map[string]interface{}{
			"invoice_number":    "FACT-2026-101",
			"purchase_order_id": orderID,
			"issue_date":        "2026-03-01T00:00:00Z",
			"due_date":          "2026-02-01T00:00:00Z",
		}, token)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for bad due date, got %d: %s", w2.Code, w2.Body.String())
	}

	w3 := testutil.DoRequest(env.Router, "POST", "/api/v1/invoices/"+invID+"/validate", nil, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	data3 := testutil.ParseResponse(w3)["data"].(map[string]interface{})
	if data3["status"] != "validated" {
		t.Errorf("Expected validated, got %v", data3["status"])
	}

	// Validating twice fails, validated is not a valid source
	w4 := testutil.DoRequest(env.Router, "POST", "/api/v1/invoices/"+invID+"/validate", nil, token)
	if w4.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 on re-validate, got %d: %s", w4.Code, w4.Body.String())
	}
}

func TestReceiptBaselineImmutable(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/goods-receipts",
		map[string]interface{}{
			"purchase_order_id": orderID,
			"quantity_received": 60,
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	grID := data["id"].(string)
	if int(data["quantity_ordered"].(float64)) != 100 {
		t.Errorf("baseline not captured from order: %v", data["quantity_ordered"])
	}

	// Shrink the order afterwards; the receipt baseline must not move
	w2 := testutil.DoRequest(env.Router, "PUT", "/api/v1/purchase-orders/"+orderID,
		map[string]interface{}{"quantity_ordered": 50}, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("update order: %d: %s", w2.Code, w2.Body.String())
	}

	w3 := testutil.DoRequest(env.Router, "POST", "/api/v1/goods-receipts/"+grID+"/validate-delivery", nil, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	data3 := testutil.ParseResponse(w3)["data"].(map[string]interface{})
	// 60 of the original 100, even though the order now says 50
	if data3["delivery_status"] != "partial" {
		t.Errorf("Expected partial against original baseline, got %v", data3["delivery_status"])
	}
}

func TestReceiptValidateDeliveryGrid(t *testing.T) {
	env := setupProcurementTest(t)
	token := testutil.DefaultTestToken()
	orderID := createOrder(t, env, token)

	cases := []struct {
		received int
		want     string
	}{
		{0, "rejected"},
		{50, "partial"},
		{100, "complete"},
		{120, "complete"},
	}
	for _, tc := range cases {
		w := testutil.DoRequest(env.Router, "POST", "/api/v1/goods-receipts",
			map[string]interface{}{
				"purchase_order_id": orderID,
				"quantity_received": tc.received,
			}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("create receipt: %d: %s", w.Code, w.Body.String())
		}
		grID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

		w2 := testutil.DoRequest(env.Router, "POST", "/api/v1/goods-receipts/"+grID+"/validate-delivery", nil, token)
		if w2.Code != http.StatusOK {
			t.Fatalf("validate delivery: %d: %s", w2.Code, w2.Body.String())
		}
		data := testutil.ParseResponse(w2)["data"].(map[string]interface{})
		if data["delivery_status"] != tc.want {
			t.Errorf("received=%d: expected %s, got %v", tc.received, tc.want, data["delivery_status"])
		}
	}
}
