package repository

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
)

// MemoryStore единое in-memory хранилище всех разделов панели.
// Записи лежат в упорядоченных слайсах: фильтрация всегда даёт стабильную
// подпоследовательность, чтение возвращает копии.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	orders     []domain.Order
	customers  []domain.Customer
	discounts  []domain.Discount
	reviews    []domain.Review
	roles      []domain.Role
	users      []domain.AdminUser
	zones      []domain.ShippingZone
	taxRates   []domain.TaxRate
	settings   domain.Settings
	now        func() time.Time
}

// NewMemoryStore пустое хранилище. Для наполнения витринными данными см. Seed.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// Ensure interfaces
var (
	_ ProductRepository  = (*MemoryStore)(nil)
	_ CategoryRepository = (*MemoryStore)(nil)
	_ OrderRepository    = (*MemoryStore)(nil)
	_ CustomerRepository = (*MemoryStore)(nil)
	_ DiscountRepository = (*MemoryStore)(nil)
	_ ReviewRepository   = (*MemoryStore)(nil)
	_ RoleRepository     = (*MemoryStore)(nil)
	_ UserRepository     = (*MemoryStore)(nil)
	_ ShippingRepository = (*MemoryStore)(nil)
	_ TaxRepository      = (*MemoryStore)(nil)
	_ SettingsRepository = (*MemoryStore)(nil)
)

// nextID сканирует существующие id с данным префиксом, берёт максимум
// числового суффикса и возвращает следующий, дополненный нулями до width цифр.
// Счётчик нигде не хранится, поэтому id не переиспользуются и после удалений.
func nextID(prefix string, ids []string, width int) string {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}

// Product repository

func (m *MemoryStore) ListProducts(f ProductFilter) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterProducts(m.products, f)
}

func (m *MemoryStore) GetProduct(id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProduct(p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.products))
	for i, existing := range m.products {
		ids[i] = existing.ID
	}
	p.ID = nextID("PROD-", ids, 3)
	m.products = append(m.products, *p)
	return nil
}

func (m *MemoryStore) UpdateProduct(p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.products {
		if existing.ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteProduct(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.products {
		if existing.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Category repository

func (m *MemoryStore) ListCategories(query string) []domain.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterCategories(m.categories, query)
}

func (m *MemoryStore) GetCategory(id string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateCategory(c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.categories))
	for i, existing := range m.categories {
		ids[i] = existing.ID
	}
	c.ID = nextID("cat-", ids, 3)
	c.CreatedAt = m.now()
	m.categories = append(m.categories, *c)
	return nil
}

func (m *MemoryStore) DeleteCategory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.categories {
		if existing.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Order repository (витрина только читает заказы)

func (m *MemoryStore) ListOrders(f OrderFilter) []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterOrders(m.orders, f)
}

func (m *MemoryStore) GetOrder(id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Customer repository

func (m *MemoryStore) ListCustomers(f CustomerFilter) []domain.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterCustomers(m.customers, f)
}

func (m *MemoryStore) GetCustomer(id string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateCustomer(c *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.customers {
		if existing.ID == c.ID {
			m.customers[i] = *c
			return nil
		}
	}
	return ErrNotFound
}

// Discount repository

func (m *MemoryStore) ListDiscounts(query string) []domain.Discount {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	return FilterDiscounts(m.discounts, query, func(d domain.Discount) domain.DiscountStatus {
		return d.StatusAt(now)
	})
}

func (m *MemoryStore) GetDiscount(id string) (*domain.Discount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.discounts {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateDiscount(d *domain.Discount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.discounts))
	for i, existing := range m.discounts {
		ids[i] = existing.ID
	}
	d.ID = nextID("disc-", ids, 3)
	m.discounts = append(m.discounts, *d)
	return nil
}

func (m *MemoryStore) UpdateDiscount(d *domain.Discount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.discounts {
		if existing.ID == d.ID {
			m.discounts[i] = *d
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteDiscount(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.discounts {
		if existing.ID == id {
			m.discounts = append(m.discounts[:i], m.discounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Review repository

func (m *MemoryStore) ListReviews(f ReviewFilter) []domain.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterReviews(m.reviews, f)
}

func (m *MemoryStore) GetReview(id string) (*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reviews {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateReview(r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.reviews {
		if existing.ID == r.ID {
			m.reviews[i] = *r
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteReview(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.reviews {
		if existing.ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Role repository

func (m *MemoryStore) ListRoles(query string) []domain.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	filtered := FilterRoles(m.roles, query)
	out := make([]domain.Role, len(filtered))
	for i, r := range filtered {
		out[i] = r.Clone()
	}
	return out
}

func (m *MemoryStore) GetRole(id string) (*domain.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.roles {
		if r.ID == id {
			cp := r.Clone()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateRole(r *domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.roles))
	for i, existing := range m.roles {
		ids[i] = existing.ID
	}
	r.ID = nextID("role-", ids, 1)
	m.roles = append(m.roles, r.Clone())
	return nil
}

func (m *MemoryStore) UpdateRole(r *domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.roles {
		if existing.ID == r.ID {
			m.roles[i] = r.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteRole(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.roles {
		if existing.ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// User repository

func (m *MemoryStore) ListUsers(query string) []domain.AdminUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterUsers(m.users, query)
}

func (m *MemoryStore) GetUser(id string) (*domain.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateUser(u *domain.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.users))
	for i, existing := range m.users {
		ids[i] = existing.ID
	}
	u.ID = nextID("user-", ids, 1)
	m.users = append(m.users, *u)
	return nil
}

func (m *MemoryStore) UpdateUser(u *domain.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = *u
			return nil
		}
	}
	return ErrNotFound
}

// Shipping repository

func (m *MemoryStore) ListZones() []domain.ShippingZone {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ShippingZone, len(m.zones))
	for i, z := range m.zones {
		out[i] = z.Clone()
	}
	return out
}

func (m *MemoryStore) CreateZone(z *domain.ShippingZone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.zones))
	for i, existing := range m.zones {
		ids[i] = existing.ID
	}
	z.ID = nextID("zone-", ids, 3)
	m.zones = append(m.zones, z.Clone())
	return nil
}

func (m *MemoryStore) DeleteZone(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.zones {
		if existing.ID == id {
			m.zones = append(m.zones[:i], m.zones[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Tax repository

func (m *MemoryStore) ListTaxRates() []domain.TaxRate {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.TaxRate, len(m.taxRates))
	copy(out, m.taxRates)
	return out
}

func (m *MemoryStore) CreateTaxRate(t *domain.TaxRate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.taxRates))
	for i, existing := range m.taxRates {
		ids[i] = existing.ID
	}
	t.ID = nextID("tax-", ids, 3)
	m.taxRates = append(m.taxRates, *t)
	return nil
}

func (m *MemoryStore) DeleteTaxRate(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.taxRates {
		if existing.ID == id {
			m.taxRates = append(m.taxRates[:i], m.taxRates[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Settings repository

func (m *MemoryStore) Settings() domain.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

func (m *MemoryStore) SaveGeneral(s domain.GeneralSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.General = s
}

func (m *MemoryStore) SaveShipping(s domain.ShippingSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Shipping = s
}

func (m *MemoryStore) SaveTax(s domain.TaxSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Tax = s
}
