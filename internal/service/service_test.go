package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

type fixture struct {
	store *repository.MemoryStore
	rec   *notify.Recorder
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	store.Seed()
	return fixture{store: store, rec: &notify.Recorder{}}
}

func TestCreateProductDeskLamp(t *testing.T) {
	fx := setup(t)
	svc := NewCatalogService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductDraft{
		Name: "Desk Lamp", SKU: "DL-0042", Category: "Home & Kitchen",
		Price: "19.99", Inventory: "4",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != "PROD-009" {
		t.Fatalf("id: got %q, want PROD-009", p.ID)
	}
	if p.StockStatus() != domain.StockLowStock {
		t.Fatalf("status: got %s, want Low Stock", p.StockStatus())
	}
	if got := len(svc.ListProducts(ctx, repository.ProductFilter{})); got != 9 {
		t.Fatalf("length: got %d, want 9", got)
	}
	if got := fx.rec.CountKind(notify.KindSuccess); got != 1 {
		t.Fatalf("success notifications: got %d, want 1", got)
	}
}

func TestCreateProductInvalidDraftLeavesStoreUntouched(t *testing.T) {
	fx := setup(t)
	svc := NewCatalogService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, ProductDraft{Name: "", Price: "abc", Inventory: "-1"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if got := len(svc.ListProducts(ctx, repository.ProductFilter{})); got != 8 {
		t.Fatalf("length: got %d, want 8", got)
	}
	if got := fx.rec.CountKind(notify.KindError); got != 1 {
		t.Fatalf("error notifications: got %d, want 1", got)
	}
	if got := fx.rec.CountKind(notify.KindSuccess); got != 0 {
		t.Fatalf("success notifications: got %d, want 0", got)
	}
}

func TestDeleteProduct(t *testing.T) {
	fx := setup(t)
	svc := NewCatalogService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	if err := svc.DeleteProduct(ctx, "PROD-003"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(svc.ListProducts(ctx, repository.ProductFilter{})); got != 7 {
		t.Fatalf("length: got %d, want 7", got)
	}
	if _, err := svc.GetProduct(ctx, "PROD-003"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get deleted: %v", err)
	}
	if got := fx.rec.CountKind(notify.KindSuccess); got != 1 {
		t.Fatalf("success notifications: got %d, want 1", got)
	}
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	fx := setup(t)
	svc := NewCatalogService(fx.store, fx.store, fx.rec)

	c, err := svc.CreateCategory(context.Background(), CategoryDraft{Name: "Beauty & Health"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Slug != "beauty-health" {
		t.Fatalf("slug: got %q", c.Slug)
	}
	if c.ID != "cat-008" {
		t.Fatalf("id: got %q", c.ID)
	}
}

func TestDiscountCreateEmptyCodeRejected(t *testing.T) {
	fx := setup(t)
	svc := NewDiscountService(fx.store, fx.rec)
	ctx := context.Background()

	before := len(svc.List(ctx, ""))
	_, err := svc.Create(ctx, DiscountDraft{Code: "", Value: "0"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if got := len(svc.List(ctx, "")); got != before {
		t.Fatalf("store changed: %d -> %d", before, got)
	}
	if got := fx.rec.CountKind(notify.KindError); got != 1 {
		t.Fatalf("error notifications: got %d, want 1", got)
	}
}

func TestDiscountToggle(t *testing.T) {
	fx := setup(t)
	svc := NewDiscountService(fx.store, fx.rec)
	ctx := context.Background()

	// WELCOME10 активен; выключение делает его inactive, повторное включение возвращает active.
	v, err := svc.Toggle(ctx, "disc-002")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if v.Status != domain.DiscountInactive {
		t.Fatalf("status after disable: %s", v.Status)
	}
	v, err = svc.Toggle(ctx, "disc-002")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if v.Status != domain.DiscountActive {
		t.Fatalf("status after enable: %s", v.Status)
	}
}

func TestReviewModerationTransitions(t *testing.T) {
	fx := setup(t)
	svc := NewReviewService(fx.store, fx.rec)
	ctx := context.Background()

	// rev-003 ожидает модерации.
	if err := svc.Approve(ctx, "rev-003"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	// Повторное одобрение уже опубликованного отклоняется.
	if err := svc.Approve(ctx, "rev-003"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("approve published: got %v, want ErrInvalidState", err)
	}
	// Публикацию можно спрятать обратно.
	if err := svc.Hide(ctx, "rev-003"); err != nil {
		t.Fatalf("hide: %v", err)
	}
	// rev-005 ожидает, reject удаляет его.
	if err := svc.Reject(ctx, "rev-005"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got := len(svc.List(ctx, repository.ReviewFilter{})); got != 4 {
		t.Fatalf("length: got %d, want 4", got)
	}
	// Отклонить опубликованный нельзя.
	if err := svc.Reject(ctx, "rev-001"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("reject published: got %v, want ErrInvalidState", err)
	}
}

func TestInventoryAlertsAndRestock(t *testing.T) {
	fx := setup(t)
	inv := NewInventoryService(fx.store, fx.rec)
	ctx := context.Background()

	alerts := inv.Alerts(ctx, repository.AlertFilter{})
	// PROD-001 (5<=10), PROD-003 (4<=15), PROD-004 (12<=20), PROD-005 (15<=25),
	// PROD-006 (2<=10), PROD-008 (0<=10).
	if len(alerts) != 6 {
		t.Fatalf("alerts: got %d, want 6", len(alerts))
	}
	for _, a := range alerts {
		if a.ProductID == "PROD-006" && a.Status != domain.AlertCritical {
			t.Fatalf("PROD-006 severity: %s", a.Status)
		}
		if a.ProductID == "PROD-001" && a.Status != domain.AlertWarning {
			t.Fatalf("PROD-001 severity: %s", a.Status)
		}
	}

	critical := inv.Alerts(ctx, repository.AlertFilter{Status: "critical"})
	for _, a := range critical {
		if a.Status != domain.AlertCritical {
			t.Fatalf("filter leak: %s is %s", a.ProductID, a.Status)
		}
	}

	p, err := inv.Restock(ctx, "PROD-001", RestockDraft{Quantity: "20"})
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if p.Inventory != 25 {
		t.Fatalf("inventory: got %d, want 25", p.Inventory)
	}
	// После пополнения товар выше порога и исчезает из оповещений.
	after := inv.Alerts(ctx, repository.AlertFilter{})
	for _, a := range after {
		if a.ProductID == "PROD-001" {
			t.Fatal("PROD-001 still in alerts after restock")
		}
	}
}

func TestRestockRejectsNonPositive(t *testing.T) {
	fx := setup(t)
	inv := NewInventoryService(fx.store, fx.rec)

	if _, err := inv.Restock(context.Background(), "PROD-001", RestockDraft{Quantity: "0"}); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	p, _ := fx.store.GetProduct("PROD-001")
	if p.Inventory != 5 {
		t.Fatalf("inventory changed: %d", p.Inventory)
	}
	if got := fx.rec.CountKind(notify.KindError); got != 1 {
		t.Fatalf("error notifications: got %d, want 1", got)
	}
}

func TestCustomerSetStatus(t *testing.T) {
	fx := setup(t)
	svc := NewCustomerService(fx.store, fx.rec)
	ctx := context.Background()

	if err := svc.SetStatus(ctx, "CUST-5818", domain.CustomerStatusActive); err != nil {
		t.Fatalf("set status: %v", err)
	}
	c, _ := svc.Get(ctx, "CUST-5818")
	if c.Status != domain.CustomerStatusActive {
		t.Fatalf("status: %s", c.Status)
	}
	if err := svc.SetStatus(ctx, "CUST-5818", "frozen"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestSystemRoleProtected(t *testing.T) {
	fx := setup(t)
	svc := NewAccessService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	if err := svc.DeleteRole(ctx, "role-1"); !errors.Is(err, ErrSystemRole) {
		t.Fatalf("delete system role: got %v, want ErrSystemRole", err)
	}
	// Пользовательскую роль удалить можно.
	if err := svc.DeleteRole(ctx, "role-4"); err != nil {
		t.Fatalf("delete custom role: %v", err)
	}
	if got := len(svc.ListRoles(ctx, "")); got != 4 {
		t.Fatalf("roles: got %d, want 4", got)
	}
}

func TestUpdateRole(t *testing.T) {
	fx := setup(t)
	svc := NewAccessService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	// Системную роль редактировать нельзя.
	_, err := svc.UpdateRole(ctx, "role-2", RoleDraft{Name: "Renamed"})
	if !errors.Is(err, ErrSystemRole) {
		t.Fatalf("update system role: got %v, want ErrSystemRole", err)
	}

	perms := domain.Permissions{"products": {"view": true, "edit": true}}
	r, err := svc.UpdateRole(ctx, "role-4", RoleDraft{Name: "Catalog Editor", Description: "Edits catalog", Permissions: perms})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.ID != "role-4" || r.Name != "Catalog Editor" {
		t.Fatalf("updated role: %+v", r)
	}
	stored, _ := svc.GetRole(ctx, "role-4")
	if !stored.Allows("products", "edit") || stored.Allows("dashboard", "view") {
		t.Fatalf("permissions not replaced: %+v", stored.Permissions)
	}
}

func TestSetUserRole(t *testing.T) {
	fx := setup(t)
	svc := NewAccessService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	if err := svc.SetUserRole(ctx, "user-5", "Store Manager"); err != nil {
		t.Fatalf("set role: %v", err)
	}
	users := svc.ListUsers(ctx, "David Brown")
	if len(users) != 1 || users[0].Role != "Store Manager" {
		t.Fatalf("role not changed: %+v", users)
	}
	if err := svc.SetUserRole(ctx, "user-5", "Ghost Role"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestCreateUserRequiresKnownRole(t *testing.T) {
	fx := setup(t)
	svc := NewAccessService(fx.store, fx.store, fx.rec)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, UserDraft{Name: "New User", Email: "new@estore.com", Role: "Ghost Role", Password: "longenough", Confirm: "longenough"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}

	u, err := svc.CreateUser(ctx, UserDraft{Name: "New User", Email: "new@estore.com", Role: "Store Manager", Password: "longenough", Confirm: "longenough"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != "user-7" {
		t.Fatalf("id: got %q, want user-7", u.ID)
	}
}

func TestSettingsSaveAndValidate(t *testing.T) {
	fx := setup(t)
	svc := NewSettingsService(fx.store, fx.store, fx.store, fx.rec)
	ctx := context.Background()

	s := svc.Get(ctx)
	s.General.StoreName = "Updated Store"
	if err := svc.SaveGeneral(ctx, s.General); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := svc.Get(ctx).General.StoreName; got != "Updated Store" {
		t.Fatalf("store name: %q", got)
	}

	bad := s.General
	bad.StoreName = ""
	if err := svc.SaveGeneral(ctx, bad); err == nil {
		t.Fatal("expected error for empty store name")
	}

	if err := svc.SaveShipping(ctx, domain.ShippingSettings{CalculationType: "magic"}); err == nil {
		t.Fatal("expected error for unknown calculation type")
	}
	if err := svc.SaveTax(ctx, domain.TaxSettings{Calculation: "per_order", PriceDisplay: "excluding"}); err != nil {
		t.Fatalf("save tax: %v", err)
	}
}

func TestAddZoneAndTaxRate(t *testing.T) {
	fx := setup(t)
	svc := NewSettingsService(fx.store, fx.store, fx.store, fx.rec)
	ctx := context.Background()

	z, err := svc.AddZone(ctx, ZoneDraft{Name: "Europe", Methods: []MethodDraft{{Name: "Standard", ETA: "5-10 days", Rate: "350"}}})
	if err != nil {
		t.Fatalf("add zone: %v", err)
	}
	if z.ID != "zone-003" {
		t.Fatalf("zone id: %q", z.ID)
	}

	if _, err := svc.AddZone(ctx, ZoneDraft{Name: "Empty"}); err == nil {
		t.Fatal("expected error for zone without methods")
	}

	r, err := svc.AddTaxRate(ctx, TaxRateDraft{Country: "Germany", Rate: "19", Name: "VAT"})
	if err != nil {
		t.Fatalf("add rate: %v", err)
	}
	if r.State != "All" {
		t.Fatalf("default state: %q", r.State)
	}
}

func TestDashboardView(t *testing.T) {
	fx := setup(t)
	inv := NewInventoryService(fx.store, fx.rec)
	svc := NewAnalyticsService(fx.store, fx.store, fx.store, inv, fx.rec)
	ctx := context.Background()

	view := svc.Dashboard(ctx)
	if len(view.Cards) != 4 {
		t.Fatalf("cards: got %d, want 4", len(view.Cards))
	}
	if view.Cards[2].Value != "8" {
		t.Fatalf("products card: %q, want live count 8", view.Cards[2].Value)
	}
	if view.Cards[3].Value != "6" {
		t.Fatalf("customers card: %q, want live count 6", view.Cards[3].Value)
	}
	if len(view.RecentOrders) != 5 {
		t.Fatalf("recent orders: got %d, want 5", len(view.RecentOrders))
	}
	if len(view.Revenue.Points) != 12 {
		t.Fatalf("revenue points: got %d, want 12", len(view.Revenue.Points))
	}
	if len(view.Alerts) != 6 {
		t.Fatalf("alerts: got %d, want 6", len(view.Alerts))
	}
}

func TestAnalyticsExportNotifies(t *testing.T) {
	fx := setup(t)
	inv := NewInventoryService(fx.store, fx.rec)
	svc := NewAnalyticsService(fx.store, fx.store, fx.store, inv, fx.rec)

	svc.Export(context.Background(), "")
	if got := fx.rec.CountKind(notify.KindSuccess); got != 1 {
		t.Fatalf("success notifications: got %d, want 1", got)
	}
}
