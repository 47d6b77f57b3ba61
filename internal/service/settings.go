package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// SettingsService настройки магазина, зоны доставки и налоговые ставки
type SettingsService struct {
	settings repository.SettingsRepository
	shipping repository.ShippingRepository
	tax      repository.TaxRepository
	notifier notify.Notifier
}

func NewSettingsService(settings repository.SettingsRepository, shipping repository.ShippingRepository, tax repository.TaxRepository, notifier notify.Notifier) *SettingsService {
	return &SettingsService{settings: settings, shipping: shipping, tax: tax, notifier: notifier}
}

// Get текущий документ настроек
func (s *SettingsService) Get(_ context.Context) domain.Settings {
	return s.settings.Settings()
}

// SaveGeneral сохраняет основные настройки магазина
func (s *SettingsService) SaveGeneral(ctx context.Context, g domain.GeneralSettings) error {
	var v ValidationError
	if strings.TrimSpace(g.StoreName) == "" {
		v.add("store_name", "store name is required")
	}
	if strings.TrimSpace(g.StoreEmail) == "" {
		v.add("store_email", "store email is required")
	}
	if err := v.orNil(); err != nil {
		notifyValidation(ctx, s.notifier, "Settings not saved", err)
		return err
	}
	s.settings.SaveGeneral(g)
	s.notifier.Notify(ctx, notify.KindSuccess, "Settings saved", "General settings updated")
	return nil
}

// SaveShipping сохраняет настройки расчёта доставки
func (s *SettingsService) SaveShipping(ctx context.Context, sh domain.ShippingSettings) error {
	switch sh.CalculationType {
	case "flat", "weight", "price":
	default:
		err := &ValidationError{Fields: []FieldError{{Field: "calculation_type", Message: fmt.Sprintf("unknown calculation type %q", sh.CalculationType)}}}
		notifyValidation(ctx, s.notifier, "Settings not saved", err)
		return err
	}
	s.settings.SaveShipping(sh)
	s.notifier.Notify(ctx, notify.KindSuccess, "Settings saved", "Shipping settings updated")
	return nil
}

// SaveTax сохраняет настройки расчёта налогов
func (s *SettingsService) SaveTax(ctx context.Context, t domain.TaxSettings) error {
	var v ValidationError
	if t.Calculation != "per_item" && t.Calculation != "per_order" {
		v.add("calculation", fmt.Sprintf("unknown calculation %q", t.Calculation))
	}
	if t.PriceDisplay != "including" && t.PriceDisplay != "excluding" {
		v.add("price_display", fmt.Sprintf("unknown price display %q", t.PriceDisplay))
	}
	if err := v.orNil(); err != nil {
		notifyValidation(ctx, s.notifier, "Settings not saved", err)
		return err
	}
	s.settings.SaveTax(t)
	s.notifier.Notify(ctx, notify.KindSuccess, "Settings saved", "Tax settings updated")
	return nil
}

// ListZones зоны доставки
func (s *SettingsService) ListZones(_ context.Context) []domain.ShippingZone {
	return s.shipping.ListZones()
}

// AddZone валидирует форму и добавляет зону доставки
func (s *SettingsService) AddZone(ctx context.Context, draft ZoneDraft) (*domain.ShippingZone, error) {
	z, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Zone not added", err)
		return nil, err
	}
	if err := s.shipping.CreateZone(&z); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Zone added", fmt.Sprintf("%s with %d methods", z.Name, len(z.Methods)))
	return &z, nil
}

// DeleteZone удаляет зону доставки
func (s *SettingsService) DeleteZone(ctx context.Context, id string) error {
	if err := s.shipping.DeleteZone(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Zone deleted", fmt.Sprintf("%s removed", id))
	return nil
}

// ListTaxRates налоговые ставки
func (s *SettingsService) ListTaxRates(_ context.Context) []domain.TaxRate {
	return s.tax.ListTaxRates()
}

// AddTaxRate валидирует форму и добавляет ставку
func (s *SettingsService) AddTaxRate(ctx context.Context, draft TaxRateDraft) (*domain.TaxRate, error) {
	t, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Tax rate not added", err)
		return nil, err
	}
	if err := s.tax.CreateTaxRate(&t); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Tax rate added", fmt.Sprintf("%s %.0f%% for %s", t.Name, t.Rate, t.Country))
	return &t, nil
}

// DeleteTaxRate удаляет ставку
func (s *SettingsService) DeleteTaxRate(ctx context.Context, id string) error {
	if err := s.tax.DeleteTaxRate(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Tax rate deleted", fmt.Sprintf("%s removed", id))
	return nil
}
