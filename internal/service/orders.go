package service

import (
	"context"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// OrderService просмотр заказов. Раздел только читающий, команд нет.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List заказы по фильтру
func (s *OrderService) List(_ context.Context, f repository.OrderFilter) []domain.Order {
	return s.orders.ListOrders(f)
}

// Get заказ по id
func (s *OrderService) Get(_ context.Context, id string) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}
