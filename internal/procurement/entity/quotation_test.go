package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestQuotationValidate(t *testing.T) {
	valid := func() *Quotation {
		return &Quotation{
			ID:         "quo-001",
			RequestID:  "req-001",
			SupplierID: "sup-001",
			ArticleSKU: "CEM-42.5",
			UnitPrice:  decimal.RequireFromString("12.50"),
			QtyOffered: 10,
			Validity:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid quotation rejected: %v", err)
	}

	q := valid()
	q.UnitPrice = decimal.Zero
	if err := q.Validate(); err == nil {
		t.Error("zero unit price accepted")
	}

	q = valid()
	q.UnitPrice = decimal.NewFromInt(-5)
	if err := q.Validate(); err == nil {
		t.Error("negative unit price accepted")
	}

	q = valid()
	q.QtyOffered = 0
	if err := q.Validate(); err == nil {
		t.Error("zero offered quantity accepted")
	}

	q = valid()
	q.Validity = time.Time{}
	if err := q.Validate(); err == nil {
		t.Error("missing validity date accepted")
	}
}
