package service

import (
	"errors"
	"testing"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
)

func TestProductDraftValid(t *testing.T) {
	draft := ProductDraft{Name: "Desk Lamp", SKU: "DL-0042", Category: "Home & Kitchen", Price: "19.99", Inventory: "4"}
	p, err := draft.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Price != 19.99 || p.Inventory != 4 {
		t.Fatalf("coercion: %+v", p)
	}
	if p.Threshold != domain.DefaultLowStockThreshold {
		t.Fatalf("default threshold: got %d", p.Threshold)
	}
	if p.StockStatus() != domain.StockLowStock {
		t.Fatalf("status: got %s, want Low Stock", p.StockStatus())
	}
}

func TestProductDraftRejects(t *testing.T) {
	cases := []struct {
		name  string
		draft ProductDraft
		field string
	}{
		{"empty name", ProductDraft{Price: "10", Inventory: "1"}, "name"},
		{"missing price", ProductDraft{Name: "X", Inventory: "1"}, "price"},
		{"bad price", ProductDraft{Name: "X", Price: "abc", Inventory: "1"}, "price"},
		{"negative price", ProductDraft{Name: "X", Price: "-5", Inventory: "1"}, "price"},
		{"bad inventory", ProductDraft{Name: "X", Price: "10", Inventory: "4.5"}, "inventory"},
		{"negative inventory", ProductDraft{Name: "X", Price: "10", Inventory: "-1"}, "inventory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.draft.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			found := false
			for _, f := range vErr.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("no error for field %q in %v", tc.field, vErr.Fields)
			}
		})
	}
}

func TestDiscountDraftRejectsEmptyCodeAndZeroValue(t *testing.T) {
	_, err := DiscountDraft{Code: "", Value: "0"}.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(vErr.Fields) < 2 {
		t.Fatalf("expected errors for code and value, got %v", vErr.Fields)
	}
}

func TestDiscountDraftValid(t *testing.T) {
	d, err := DiscountDraft{Code: "spring15", Type: "percentage", Value: "15", MinPurchase: "50", UsageLimit: "200", StartDate: "2024-03-01", EndDate: "2024-03-31"}.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if d.Code != "SPRING15" {
		t.Fatalf("code not uppercased: %q", d.Code)
	}
	if d.EndDate == nil || d.EndDate.Before(d.StartDate) {
		t.Fatalf("dates: start %v end %v", d.StartDate, d.EndDate)
	}
}

func TestDiscountDraftRejectsReversedDates(t *testing.T) {
	_, err := DiscountDraft{Code: "X", Value: "10", StartDate: "2024-05-01", EndDate: "2024-04-01"}.Validate()
	if err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestDiscountDraftRejectsPercentOver100(t *testing.T) {
	_, err := DiscountDraft{Code: "BIG", Type: "percentage", Value: "150"}.Validate()
	if err == nil {
		t.Fatal("expected error for percentage over 100")
	}
}

func TestUserDraftPasswordMismatch(t *testing.T) {
	_, err := UserDraft{Name: "A", Email: "a@b.com", Role: "Administrator", Password: "longenough", Confirm: "different1"}.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if vErr.Fields[0].Field != "confirm" {
		t.Fatalf("field: %v", vErr.Fields)
	}
}

func TestRestockDraftRejectsZero(t *testing.T) {
	if _, err := (RestockDraft{Quantity: "0"}).Validate(); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if _, err := (RestockDraft{Quantity: "-3"}).Validate(); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	qty, err := RestockDraft{Quantity: "20"}.Validate()
	if err != nil || qty != 20 {
		t.Fatalf("got %d, %v", qty, err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Home & Kitchen": "home-kitchen",
		"Men's Wear":     "mens-wear",
		"Women’s Wear":   "womens-wear",
		"Electronics":    "electronics",
		"  spaced  out ": "spaced-out",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
