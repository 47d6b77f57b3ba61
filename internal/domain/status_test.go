package domain

import (
	"testing"
	"time"
)

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		inventory, threshold int64
		want                 StockStatus
	}{
		{0, 10, StockOutOfStock},
		{-1, 10, StockOutOfStock},
		{10, 10, StockLowStock},
		{1, 10, StockLowStock},
		{11, 10, StockInStock},
		{0, 0, StockOutOfStock},
		{1, 0, StockInStock},
	}
	for _, tc := range cases {
		if got := DeriveStockStatus(tc.inventory, tc.threshold); got != tc.want {
			t.Errorf("DeriveStockStatus(%d, %d) = %s, want %s", tc.inventory, tc.threshold, got, tc.want)
		}
	}
}

func TestDeriveAlertSeverity(t *testing.T) {
	cases := []struct {
		stock, threshold int64
		want             AlertSeverity
	}{
		{0, 10, AlertCritical},
		{4, 10, AlertCritical},
		{5, 10, AlertWarning},
		{10, 10, AlertWarning},
		{4, 15, AlertCritical},
	}
	for _, tc := range cases {
		if got := DeriveAlertSeverity(tc.stock, tc.threshold); got != tc.want {
			t.Errorf("DeriveAlertSeverity(%d, %d) = %s, want %s", tc.stock, tc.threshold, got, tc.want)
		}
	}
}

func TestProductAlertMembership(t *testing.T) {
	p := Product{ID: "PROD-001", Name: "Widget", Inventory: 5, Threshold: 10}
	if _, ok := p.Alert(); !ok {
		t.Fatal("product at or below threshold must alert")
	}
	p.Inventory = 11
	if _, ok := p.Alert(); ok {
		t.Fatal("product above threshold must not alert")
	}
	p.Inventory = 10
	a, ok := p.Alert()
	if !ok {
		t.Fatal("product exactly at threshold must alert")
	}
	if a.Status != AlertWarning {
		t.Fatalf("severity: %s", a.Status)
	}
}

func TestDiscountStatusAt(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	d := Discount{Code: "X", StartDate: past}
	if got := d.StatusAt(now); got != DiscountActive {
		t.Fatalf("open-ended started: %s", got)
	}

	d.Disabled = true
	if got := d.StatusAt(now); got != DiscountInactive {
		t.Fatalf("disabled: %s", got)
	}
	d.Disabled = false

	d.StartDate = future
	if got := d.StatusAt(now); got != DiscountScheduled {
		t.Fatalf("scheduled: %s", got)
	}

	d.StartDate = past
	end := now.AddDate(0, 0, -1)
	d.EndDate = &end
	if got := d.StatusAt(now); got != DiscountExpired {
		t.Fatalf("past end date: %s", got)
	}
	d.EndDate = nil

	d.UsageLimit = 100
	d.UsedCount = 100
	if got := d.StatusAt(now); got != DiscountExpired {
		t.Fatalf("exhausted limit: %s", got)
	}
	d.UsedCount = 99
	if got := d.StatusAt(now); got != DiscountActive {
		t.Fatalf("under limit: %s", got)
	}
}

func TestRoleAllowsDefaultDeny(t *testing.T) {
	r := Role{Permissions: Permissions{"products": {"view": true}}}
	if !r.Allows("products", "view") {
		t.Fatal("granted permission denied")
	}
	if r.Allows("products", "delete") {
		t.Fatal("missing action must be denied")
	}
	if r.Allows("settings", "view") {
		t.Fatal("missing module must be denied")
	}
}
