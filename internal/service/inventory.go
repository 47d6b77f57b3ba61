package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// InventoryService складские оповещения и пополнение остатков.
// Оповещения нигде не хранятся: список всегда выводится из товаров.
type InventoryService struct {
	products repository.ProductRepository
	notifier notify.Notifier
	now      func() time.Time
}

func NewInventoryService(products repository.ProductRepository, notifier notify.Notifier) *InventoryService {
	return &InventoryService{
		products: products,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Alerts товары, чей остаток не превышает их порог
func (s *InventoryService) Alerts(_ context.Context, f repository.AlertFilter) []domain.InventoryAlert {
	all := s.products.ListProducts(repository.ProductFilter{})
	alerts := make([]domain.InventoryAlert, 0, len(all))
	for _, p := range all {
		if a, ok := p.Alert(); ok {
			alerts = append(alerts, a)
		}
	}
	return repository.FilterAlerts(alerts, f)
}

// Restock увеличивает остаток товара и обновляет дату пополнения.
func (s *InventoryService) Restock(ctx context.Context, id string, draft RestockDraft) (*domain.Product, error) {
	qty, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Restock failed", err)
		return nil, err
	}
	p, err := s.products.GetProduct(id)
	if err != nil {
		return nil, err
	}
	p.Inventory += qty
	p.LastRestocked = s.now()
	if err := s.products.UpdateProduct(p); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Stock updated", fmt.Sprintf("%s restocked by %d, now %d", p.Name, qty, p.Inventory))
	return p, nil
}
