package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validInvoice() *Invoice {
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Invoice{
		ID:            "inv-001",
		InvoiceNumber: "FACT-2026-100",
		OrderID:       "po-001",
		SupplierID:    "sup-001",
		ArticleSKU:    "CEM-42.5",
		QtyInvoiced:   10,
		UnitPrice:     decimal.RequireFromString("12.50"),
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		Status:        InvoiceStatusDraft,
	}
}

func TestInvoiceRecalculateTotal(t *testing.T) {
	inv := validInvoice()
	inv.TotalAmount = decimal.NewFromInt(1)
	inv.RecalculateTotal()
	if !inv.TotalAmount.Equal(decimal.RequireFromString("125.00")) {
		t.Errorf("expected 125.00, got %s", inv.TotalAmount)
	}
}

func TestInvoiceDueDateBeforeIssueDate(t *testing.T) {
	inv := validInvoice()
	inv.DueDate = inv.IssueDate.AddDate(0, 0, -1)
	if err := inv.Validate(); err == nil {
		t.Error("due date before issue date accepted")
	}

	// same day is fine
	inv = validInvoice()
	inv.DueDate = inv.IssueDate
	if err := inv.Validate(); err != nil {
		t.Errorf("same-day due date rejected: %v", err)
	}
}

func TestInvoiceValidateTransition(t *testing.T) {
	for _, status := range []string{InvoiceStatusDraft, InvoiceStatusSubmitted} {
		inv := validInvoice()
		inv.Status = status
		if err := inv.ValidateInvoice(); err != nil {
			t.Errorf("validate from %s: %v", status, err)
		}
		if inv.Status != InvoiceStatusValidated {
			t.Errorf("expected validated, got %s", inv.Status)
		}
	}

	for _, status := range []string{InvoiceStatusValidated, InvoiceStatusRejected, InvoiceStatusPaid} {
		inv := validInvoice()
		inv.Status = status
		if err := inv.ValidateInvoice(); err == nil {
			t.Errorf("validate from %s should fail", status)
		}
	}
}

func TestInvoiceEditable(t *testing.T) {
	for _, status := range []string{InvoiceStatusDraft, InvoiceStatusSubmitted, InvoiceStatusValidated} {
		inv := validInvoice()
		inv.Status = status
		if !inv.Editable() {
			t.Errorf("%s should be editable", status)
		}
	}
	for _, status := range []string{InvoiceStatusRejected, InvoiceStatusPaid} {
		inv := validInvoice()
		inv.Status = status
		if inv.Editable() {
			t.Errorf("%s should not be editable", status)
		}
	}
}
