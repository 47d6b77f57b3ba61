package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// DiscountView промокод вместе с производным статусом
type DiscountView struct {
	domain.Discount
	Status domain.DiscountStatus `json:"status"`
}

// DiscountService промокоды
type DiscountService struct {
	discounts repository.DiscountRepository
	notifier  notify.Notifier
	now       func() time.Time
}

func NewDiscountService(discounts repository.DiscountRepository, notifier notify.Notifier) *DiscountService {
	return &DiscountService{
		discounts: discounts,
		notifier:  notifier,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List промокоды по строке поиска, каждый со статусом на текущий момент
func (s *DiscountService) List(_ context.Context, query string) []DiscountView {
	now := s.now()
	records := s.discounts.ListDiscounts(query)
	out := make([]DiscountView, len(records))
	for i, d := range records {
		out[i] = DiscountView{Discount: d, Status: d.StatusAt(now)}
	}
	return out
}

// Create валидирует форму и добавляет промокод. Пустая дата начала
// означает немедленное действие.
func (s *DiscountService) Create(ctx context.Context, draft DiscountDraft) (*domain.Discount, error) {
	d, err := draft.Validate()
	if err != nil {
		notifyValidation(ctx, s.notifier, "Discount not created", err)
		return nil, err
	}
	if d.StartDate.IsZero() {
		d.StartDate = s.now()
	}
	if err := s.discounts.CreateDiscount(&d); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Discount created", fmt.Sprintf("Code %s is ready", d.Code))
	return &d, nil
}

// Delete удаляет промокод по id
func (s *DiscountService) Delete(ctx context.Context, id string) error {
	if err := s.discounts.DeleteDiscount(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Discount deleted", fmt.Sprintf("%s removed", id))
	return nil
}

// Toggle переключает промокод между включённым и выключенным состоянием.
func (s *DiscountService) Toggle(ctx context.Context, id string) (*DiscountView, error) {
	d, err := s.discounts.GetDiscount(id)
	if err != nil {
		return nil, err
	}
	d.Disabled = !d.Disabled
	if err := s.discounts.UpdateDiscount(d); err != nil {
		return nil, err
	}
	state := "enabled"
	if d.Disabled {
		state = "disabled"
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Discount updated", fmt.Sprintf("Code %s %s", d.Code, state))
	return &DiscountView{Discount: *d, Status: d.StatusAt(s.now())}, nil
}
