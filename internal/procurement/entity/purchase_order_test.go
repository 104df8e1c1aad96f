package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validOrder() *PurchaseOrder {
	return &PurchaseOrder{
		ID:          "po-001",
		OrderNumber: "PO-2026-0001",
		RequestID:   "req-001",
		QuotationID: "quo-001",
		SupplierID:  "sup-001",
		ArticleSKU:  "CEM-42.5",
		QtyOrdered:  10,
		UnitPrice:   decimal.RequireFromString("12.50"),
		Status:      POStatusDraft,
	}
}

func TestOrderRecalculateTotal(t *testing.T) {
	po := validOrder()
	po.RecalculateTotal()
	if !po.TotalAmount.Equal(decimal.RequireFromString("125.00")) {
		t.Errorf("expected 125.00, got %s", po.TotalAmount)
	}
}

func TestOrderTotalOverridesCallerValue(t *testing.T) {
	po := validOrder()
	po.TotalAmount = decimal.NewFromInt(999999)
	po.RecalculateTotal()
	if !po.TotalAmount.Equal(decimal.RequireFromString("125.00")) {
		t.Errorf("caller-supplied total survived: %s", po.TotalAmount)
	}
}

func TestOrderSend(t *testing.T) {
	po := validOrder()
	if err := po.Send(); err != nil {
		t.Fatalf("send from draft: %v", err)
	}
	if po.Status != POStatusSent {
		t.Errorf("expected sent, got %s", po.Status)
	}

	for _, status := range []string{POStatusSent, POStatusConfirmed, POStatusCancelled} {
		po := validOrder()
		po.Status = status
		if err := po.Send(); err == nil {
			t.Errorf("send from %s should fail", status)
		}
		if po.Status != status {
			t.Errorf("status changed on failed send: %s -> %s", status, po.Status)
		}
	}
}

func TestOrderConfirm(t *testing.T) {
	po := validOrder()
	po.Status = POStatusSent
	if err := po.Confirm(); err != nil {
		t.Fatalf("confirm from sent: %v", err)
	}
	if po.Status != POStatusConfirmed {
		t.Errorf("expected confirmed, got %s", po.Status)
	}

	for _, status := range []string{POStatusDraft, POStatusConfirmed, POStatusCancelled} {
		po := validOrder()
		po.Status = status
		if err := po.Confirm(); err == nil {
			t.Errorf("confirm from %s should fail", status)
		}
	}
}

func TestOrderCancel(t *testing.T) {
	for _, status := range []string{POStatusDraft, POStatusSent} {
		po := validOrder()
		po.Status = status
		if err := po.Cancel(); err != nil {
			t.Errorf("cancel from %s: %v", status, err)
		}
	}

	for _, status := range []string{POStatusConfirmed, POStatusCancelled} {
		po := validOrder()
		po.Status = status
		if err := po.Cancel(); err == nil {
			t.Errorf("cancel from %s should fail", status)
		}
	}
}

func TestOrderValidate(t *testing.T) {
	po := validOrder()
	if err := po.Validate(); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}

	po = validOrder()
	po.QtyOrdered = 0
	if err := po.Validate(); err == nil {
		t.Error("zero quantity accepted")
	}

	po = validOrder()
	po.UnitPrice = decimal.Zero
	if err := po.Validate(); err == nil {
		t.Error("zero unit price accepted")
	}
}
