package repository

import (
	"errors"
	"strings"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
)

// ErrNotFound возвращается, когда запись не найдена
var ErrNotFound = errors.New("not found")

// FilterAll сентинел «без фильтра» для категориальных селекторов
const FilterAll = "all"

// ProductFilter параметры поиска по каталогу
type ProductFilter struct {
	Query    string
	Category string
	Status   string
	MinPrice *float64
	MaxPrice *float64
}

// OrderFilter параметры поиска по заказам
type OrderFilter struct {
	Query  string
	Status string
}

// CustomerFilter параметры поиска по покупателям
type CustomerFilter struct {
	Query  string
	Status string
}

// ReviewFilter параметры поиска по отзывам
type ReviewFilter struct {
	Query  string
	Status string
	Rating int // 0 = любой
}

// AlertFilter параметры поиска по складским оповещениям
type AlertFilter struct {
	Query  string
	Status string
}

// ProductRepository интерфейс хранилища товаров
type ProductRepository interface {
	ListProducts(f ProductFilter) []domain.Product
	GetProduct(id string) (*domain.Product, error)
	CreateProduct(p *domain.Product) error
	UpdateProduct(p *domain.Product) error
	DeleteProduct(id string) error
}

// CategoryRepository интерфейс хранилища категорий
type CategoryRepository interface {
	ListCategories(query string) []domain.Category
	GetCategory(id string) (*domain.Category, error)
	CreateCategory(c *domain.Category) error
	DeleteCategory(id string) error
}

// OrderRepository интерфейс хранилища заказов
type OrderRepository interface {
	ListOrders(f OrderFilter) []domain.Order
	GetOrder(id string) (*domain.Order, error)
}

// CustomerRepository интерфейс хранилища покупателей
type CustomerRepository interface {
	ListCustomers(f CustomerFilter) []domain.Customer
	GetCustomer(id string) (*domain.Customer, error)
	UpdateCustomer(c *domain.Customer) error
}

// DiscountRepository интерфейс хранилища промокодов
type DiscountRepository interface {
	ListDiscounts(query string) []domain.Discount
	GetDiscount(id string) (*domain.Discount, error)
	CreateDiscount(d *domain.Discount) error
	UpdateDiscount(d *domain.Discount) error
	DeleteDiscount(id string) error
}

// ReviewRepository интерфейс хранилища отзывов
type ReviewRepository interface {
	ListReviews(f ReviewFilter) []domain.Review
	GetReview(id string) (*domain.Review, error)
	UpdateReview(r *domain.Review) error
	DeleteReview(id string) error
}

// RoleRepository интерфейс хранилища ролей
type RoleRepository interface {
	ListRoles(query string) []domain.Role
	GetRole(id string) (*domain.Role, error)
	CreateRole(r *domain.Role) error
	UpdateRole(r *domain.Role) error
	DeleteRole(id string) error
}

// UserRepository интерфейс хранилища административных пользователей
type UserRepository interface {
	ListUsers(query string) []domain.AdminUser
	GetUser(id string) (*domain.AdminUser, error)
	CreateUser(u *domain.AdminUser) error
	UpdateUser(u *domain.AdminUser) error
}

// ShippingRepository зоны доставки
type ShippingRepository interface {
	ListZones() []domain.ShippingZone
	CreateZone(z *domain.ShippingZone) error
	DeleteZone(id string) error
}

// TaxRepository налоговые ставки
type TaxRepository interface {
	ListTaxRates() []domain.TaxRate
	CreateTaxRate(t *domain.TaxRate) error
	DeleteTaxRate(id string) error
}

// SettingsRepository документ настроек магазина
type SettingsRepository interface {
	Settings() domain.Settings
	SaveGeneral(s domain.GeneralSettings)
	SaveShipping(s domain.ShippingSettings)
	SaveTax(s domain.TaxSettings)
}

// containsFold true, если query пустой или хотя бы одно поле содержит его без учёта регистра
func containsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// canonSel нормализует значение селектора для сравнения
func canonSel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return s
}

// matchSel true, если селектор пуст, равен "all" или совпадает со значением
func matchSel(sel, value string) bool {
	if sel == "" || canonSel(sel) == FilterAll {
		return true
	}
	return canonSel(sel) == canonSel(value)
}

// FilterProducts чистый редьюсер списка товаров: подпоследовательность records,
// сохраняющая исходный порядок. Пустой query совпадает со всем, фильтры
// сравниваются на равенство (сентинел "all" пропускает любое значение).
func FilterProducts(records []domain.Product, f ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(records))
	for _, p := range records {
		if !containsFold(f.Query, p.Name, p.SKU, p.Category) {
			continue
		}
		if !matchSel(f.Category, p.Category) {
			continue
		}
		if !matchSel(f.Status, string(p.StockStatus())) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterOrders редьюсер списка заказов
func FilterOrders(records []domain.Order, f OrderFilter) []domain.Order {
	out := make([]domain.Order, 0, len(records))
	for _, o := range records {
		if !containsFold(f.Query, o.ID, o.Customer, o.Email) {
			continue
		}
		if !matchSel(f.Status, string(o.Status)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterCustomers редьюсер списка покупателей
func FilterCustomers(records []domain.Customer, f CustomerFilter) []domain.Customer {
	out := make([]domain.Customer, 0, len(records))
	for _, c := range records {
		if !containsFold(f.Query, c.Name, c.Email) {
			continue
		}
		if !matchSel(f.Status, string(c.Status)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterCategories редьюсер списка категорий
func FilterCategories(records []domain.Category, query string) []domain.Category {
	out := make([]domain.Category, 0, len(records))
	for _, c := range records {
		if !containsFold(query, c.Name) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterDiscounts редьюсер промокодов: поиск по коду и производному статусу
func FilterDiscounts(records []domain.Discount, query string, at func(domain.Discount) domain.DiscountStatus) []domain.Discount {
	out := make([]domain.Discount, 0, len(records))
	for _, d := range records {
		if !containsFold(query, d.Code, string(at(d))) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterReviews редьюсер отзывов
func FilterReviews(records []domain.Review, f ReviewFilter) []domain.Review {
	out := make([]domain.Review, 0, len(records))
	for _, r := range records {
		if !containsFold(f.Query, r.ProductName, r.CustomerName, r.Title, r.Comment) {
			continue
		}
		if !matchSel(f.Status, string(r.Status)) {
			continue
		}
		if f.Rating != 0 && r.Rating != f.Rating {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterAlerts редьюсер складских оповещений
func FilterAlerts(records []domain.InventoryAlert, f AlertFilter) []domain.InventoryAlert {
	out := make([]domain.InventoryAlert, 0, len(records))
	for _, a := range records {
		if !containsFold(f.Query, a.Name, a.SKU, a.Category) {
			continue
		}
		if !matchSel(f.Status, string(a.Status)) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterRoles редьюсер ролей
func FilterRoles(records []domain.Role, query string) []domain.Role {
	out := make([]domain.Role, 0, len(records))
	for _, r := range records {
		if !containsFold(query, r.Name, r.Description) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterUsers редьюсер административных пользователей
func FilterUsers(records []domain.AdminUser, query string) []domain.AdminUser {
	out := make([]domain.AdminUser, 0, len(records))
	for _, u := range records {
		if !containsFold(query, u.Name, u.Email, u.Role) {
			continue
		}
		out = append(out, u)
	}
	return out
}
