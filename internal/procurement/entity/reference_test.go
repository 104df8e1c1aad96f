package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSupplierRatingBounds(t *testing.T) {
	s := &Supplier{ID: "sup-001", Name: "Lafarge"}
	for _, rating := range []float64{0, 2.5, 5} {
		s.Rating = rating
		if err := s.Validate(); err != nil {
			t.Errorf("rating %v rejected: %v", rating, err)
		}
	}
	for _, rating := range []float64{-0.1, 5.1} {
		s.Rating = rating
		if err := s.Validate(); err == nil {
			t.Errorf("rating %v accepted", rating)
		}
	}
}

func TestProjectBudgetMustBePositive(t *testing.T) {
	p := &Project{ID: "proj-001", Name: "Tram extension", Budget: decimal.NewFromInt(100000)}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}

	p.Budget = decimal.Zero
	if err := p.Validate(); err == nil {
		t.Error("zero budget accepted")
	}
}

func TestArticleReorderMax(t *testing.T) {
	a := &Article{SKU: "CEM-42.5", Description: "Portland cement", ReorderMax: 1}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid article rejected: %v", err)
	}

	a.ReorderMax = 0
	if err := a.Validate(); err == nil {
		t.Error("reorder_max below 1 accepted")
	}

	a.ReorderMax = 5
	a.AverageCost = decimal.NewFromInt(-1)
	if err := a.Validate(); err == nil {
		t.Error("negative average cost accepted")
	}
}
