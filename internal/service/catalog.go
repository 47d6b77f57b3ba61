package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// CatalogService товары и категории каталога.
// Каждая успешная команда публикует ровно одно success-уведомление,
// каждая отклонённая форма — ровно одно error-уведомление, не трогая хранилище.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	notifier   notify.Notifier
	now        func() time.Time
}

// NewCatalogService собирает сервис каталога
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, notifier notify.Notifier) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		notifier:   notifier,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ListProducts список товаров по фильтру
func (s *CatalogService) ListProducts(_ context.Context, f repository.ProductFilter) []domain.Product {
	return s.products.ListProducts(f)
}

// GetProduct товар по id
func (s *CatalogService) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	return s.products.GetProduct(id)
}

// CreateProduct валидирует форму и добавляет товар
func (s *CatalogService) CreateProduct(ctx context.Context, draft ProductDraft) (*domain.Product, error) {
	p, err := draft.Validate()
	if err != nil {
		s.notifyValidation(ctx, "Product not created", err)
		return nil, err
	}
	p.LastRestocked = s.now()
	if err := s.products.CreateProduct(&p); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Product created", fmt.Sprintf("%s added to the catalog", p.Name))
	return &p, nil
}

// DeleteProduct удаляет товар по id
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.DeleteProduct(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Product deleted", fmt.Sprintf("%s removed from the catalog", id))
	return nil
}

// ListCategories список категорий по строке поиска
func (s *CatalogService) ListCategories(_ context.Context, query string) []domain.Category {
	return s.categories.ListCategories(query)
}

// CreateCategory валидирует форму и добавляет категорию
func (s *CatalogService) CreateCategory(ctx context.Context, draft CategoryDraft) (*domain.Category, error) {
	c, err := draft.Validate()
	if err != nil {
		s.notifyValidation(ctx, "Category not created", err)
		return nil, err
	}
	if err := s.categories.CreateCategory(&c); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Category created", fmt.Sprintf("%s added", c.Name))
	return &c, nil
}

// DeleteCategory удаляет категорию по id
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.DeleteCategory(id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Category deleted", fmt.Sprintf("%s removed", id))
	return nil
}

func (s *CatalogService) notifyValidation(ctx context.Context, title string, err error) {
	notifyValidation(ctx, s.notifier, title, err)
}
