package service

import (
	"context"
	"fmt"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// ReviewService модерация отзывов.
// Разрешённые переходы: pending -> published (Approve),
// published -> pending (Hide), pending -> удаление (Reject).
type ReviewService struct {
	reviews  repository.ReviewRepository
	notifier notify.Notifier
}

func NewReviewService(reviews repository.ReviewRepository, notifier notify.Notifier) *ReviewService {
	return &ReviewService{reviews: reviews, notifier: notifier}
}

// List отзывы по фильтру
func (s *ReviewService) List(_ context.Context, f repository.ReviewFilter) []domain.Review {
	return s.reviews.ListReviews(f)
}

// Get отзыв по id
func (s *ReviewService) Get(_ context.Context, id string) (*domain.Review, error) {
	return s.reviews.GetReview(id)
}

// Approve публикует ожидающий отзыв
func (s *ReviewService) Approve(ctx context.Context, id string) error {
	r, err := s.reviews.GetReview(id)
	if err != nil {
		return err
	}
	if r.Status != domain.ReviewStatusPending {
		return fmt.Errorf("approve %s: %w", id, ErrInvalidState)
	}
	r.Status = domain.ReviewStatusPublished
	r.Reported = false
	if err := s.reviews.UpdateReview(r); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Review approved", fmt.Sprintf("Review of %s published", r.ProductName))
	return nil
}

// Reject удаляет ожидающий отзыв
func (s *ReviewService) Reject(ctx context.Context, id string) error {
	r, err := s.reviews.GetReview(id)
	if err != nil {
		return err
	}
	if r.Status != domain.ReviewStatusPending {
		return fmt.Errorf("reject %s: %w", id, ErrInvalidState)
	}
	if err := s.reviews.DeleteReview(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Review rejected", fmt.Sprintf("Review of %s removed", r.ProductName))
	return nil
}

// Hide возвращает опубликованный отзыв на модерацию
func (s *ReviewService) Hide(ctx context.Context, id string) error {
	r, err := s.reviews.GetReview(id)
	if err != nil {
		return err
	}
	if r.Status != domain.ReviewStatusPublished {
		return fmt.Errorf("hide %s: %w", id, ErrInvalidState)
	}
	r.Status = domain.ReviewStatusPending
	if err := s.reviews.UpdateReview(r); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Review hidden", fmt.Sprintf("Review of %s sent back to moderation", r.ProductName))
	return nil
}
