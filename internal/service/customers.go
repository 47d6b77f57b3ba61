package service

import (
	"context"
	"fmt"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// CustomerService покупатели магазина
type CustomerService struct {
	customers repository.CustomerRepository
	notifier  notify.Notifier
}

func NewCustomerService(customers repository.CustomerRepository, notifier notify.Notifier) *CustomerService {
	return &CustomerService{customers: customers, notifier: notifier}
}

// List покупатели по фильтру
func (s *CustomerService) List(_ context.Context, f repository.CustomerFilter) []domain.Customer {
	return s.customers.ListCustomers(f)
}

// Get покупатель по id
func (s *CustomerService) Get(_ context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetCustomer(id)
}

// SetStatus переводит покупателя в новый статус (active, inactive, banned).
func (s *CustomerService) SetStatus(ctx context.Context, id string, status domain.CustomerStatus) error {
	switch status {
	case domain.CustomerStatusActive, domain.CustomerStatusInactive, domain.CustomerStatusBanned:
	default:
		err := &ValidationError{Fields: []FieldError{{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}}}
		notifyValidation(ctx, s.notifier, "Customer not updated", err)
		return err
	}
	c, err := s.customers.GetCustomer(id)
	if err != nil {
		return err
	}
	c.Status = status
	if err := s.customers.UpdateCustomer(c); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Customer updated", fmt.Sprintf("%s is now %s", c.Name, status))
	return nil
}
