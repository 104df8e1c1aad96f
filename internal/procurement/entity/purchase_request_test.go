package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validRequest() *PurchaseRequest {
	return &PurchaseRequest{
		ID:         "req-001",
		ArticleSKU: "CEM-42.5",
		ProjectID:  "proj-001",
		Quantity:   100,
		Urgency:    UrgencyNormal,
		Budget:     decimal.NewFromInt(5000),
		Requester:  "site.manager@btp.test",
		Status:     PRStatusPending,
	}
}

func TestRequestApproveFromPending(t *testing.T) {
	pr := validRequest()
	if err := pr.Approve(); err != nil {
		t.Fatalf("approve from pending: %v", err)
	}
	if pr.Status != PRStatusApproved {
		t.Errorf("expected approved, got %s", pr.Status)
	}
}

func TestRequestApproveRejectedFromOtherStatuses(t *testing.T) {
	for _, status := range []string{PRStatusApproved, PRStatusRejected, PRStatusFlagged} {
		pr := validRequest()
		pr.Status = status

		err := pr.Approve()
		if err == nil {
			t.Fatalf("approve from %s should fail", status)
		}
		var tErr *InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %T", err)
		}
		if pr.Status != status {
			t.Errorf("status changed on failed approve: %s -> %s", status, pr.Status)
		}
	}
}

func TestRequestFlagFromAnyStatus(t *testing.T) {
	for _, status := range []string{PRStatusPending, PRStatusApproved, PRStatusRejected, PRStatusFlagged} {
		pr := validRequest()
		pr.Status = status

		pr.FlagForReview()
		if pr.Status != PRStatusFlagged {
			t.Errorf("flag from %s: expected flagged, got %s", status, pr.Status)
		}
	}
}

func TestRequestFlagIsIdempotent(t *testing.T) {
	pr := validRequest()
	pr.FlagForReview()
	pr.FlagForReview()
	if pr.Status != PRStatusFlagged {
		t.Errorf("expected flagged, got %s", pr.Status)
	}
}

func TestRequestSetStatusEdges(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{PRStatusPending, PRStatusRejected, true},
		{PRStatusFlagged, PRStatusApproved, true},
		{PRStatusFlagged, PRStatusRejected, true},
		{PRStatusPending, PRStatusApproved, false},
		{PRStatusApproved, PRStatusPending, false},
		{PRStatusRejected, PRStatusApproved, false},
	}
	for _, tc := range cases {
		pr := validRequest()
		pr.Status = tc.from

		err := pr.SetStatus(tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s -> %s: expected error", tc.from, tc.to)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	pr := validRequest()
	if err := pr.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	pr = validRequest()
	pr.Quantity = 0
	if err := pr.Validate(); err == nil {
		t.Error("zero quantity accepted")
	}

	pr = validRequest()
	pr.Urgency = "asap"
	if err := pr.Validate(); err == nil {
		t.Error("unknown urgency accepted")
	}

	pr = validRequest()
	pr.Budget = decimal.NewFromInt(-1)
	if err := pr.Validate(); err == nil {
		t.Error("negative budget accepted")
	}

	// zero budget is allowed
	pr = validRequest()
	pr.Budget = decimal.Zero
	if err := pr.Validate(); err != nil {
		t.Errorf("zero budget rejected: %v", err)
	}
}
