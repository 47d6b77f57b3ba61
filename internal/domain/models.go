package domain

import "time"

// Product товар каталога. Статус склада не хранится — всегда выводится из Inventory.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Inventory     int64     `json:"inventory"`
	Threshold     int64     `json:"threshold"` // порог оповещения склада для этого товара
	LastRestocked time.Time `json:"last_restocked"`
}

// OrderStatus статус заказа. Таблицы переходов нет: поле свободное, как и в витрине.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus статус оплаты заказа
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order заказ покупателя
type Order struct {
	ID            string        `json:"id"`
	Customer      string        `json:"customer"`
	Email         string        `json:"email"`
	Date          time.Time     `json:"date"`
	Total         float64       `json:"total"`
	Items         int           `json:"items"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// CustomerStatus статус покупателя
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusBanned   CustomerStatus = "banned"
)

// Customer покупатель магазина
type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Orders    int            `json:"orders"`
	Spent     float64        `json:"spent"`
	LastOrder time.Time      `json:"last_order"`
	Status    CustomerStatus `json:"status"`
}

// Category категория каталога. Parent — имя родительской категории (один уровень, не id).
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Parent       string    `json:"parent,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// DiscountType тип скидки
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount промокод. Статус выводится из дат и счётчика использований, см. StatusAt.
type Discount struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Type        DiscountType `json:"type"`
	Value       float64      `json:"value"`
	MinPurchase float64      `json:"min_purchase"`
	UsageLimit  int          `json:"usage_limit"` // 0 = без ограничения
	UsedCount   int          `json:"used_count"`
	Disabled    bool         `json:"disabled"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
}

// ReviewStatus статус отзыва
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusPublished ReviewStatus = "published"
)

// Review отзыв покупателя о товаре
type Review struct {
	ID           string       `json:"id"`
	ProductName  string       `json:"product_name"`
	CustomerName string       `json:"customer_name"`
	Rating       int          `json:"rating"` // 1..5
	Title        string       `json:"title"`
	Comment      string       `json:"comment"`
	Status       ReviewStatus `json:"status"`
	Reported     bool         `json:"reported"`
	Date         time.Time    `json:"date"`
}

// Permissions матрица прав: модуль -> действие -> разрешено
type Permissions map[string]map[string]bool

// Role роль административного пользователя
type Role struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UsersCount  int         `json:"users_count"`
	Permissions Permissions `json:"permissions"`
	IsSystem    bool        `json:"is_system"` // системные роли нельзя менять и удалять
}

// Allows проверяет право (модуль, действие). Отсутствие записи — запрет.
func (r Role) Allows(module, action string) bool {
	perms, ok := r.Permissions[module]
	if !ok {
		return false
	}
	return perms[action]
}

// Clone возвращает глубокую копию роли (Permissions — map)
func (r Role) Clone() Role {
	cp := r
	cp.Permissions = make(Permissions, len(r.Permissions))
	for module, actions := range r.Permissions {
		acts := make(map[string]bool, len(actions))
		for action, allowed := range actions {
			acts[action] = allowed
		}
		cp.Permissions[module] = acts
	}
	return cp
}

// UserStatus статус административного пользователя
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// AdminUser пользователь админ-панели
type AdminUser struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"` // имя роли, не id
	LastActive time.Time  `json:"last_active"`
	Status     UserStatus `json:"status"`
}

// ShippingMethod способ доставки внутри зоны
type ShippingMethod struct {
	Name string  `json:"name"`
	ETA  string  `json:"eta"`
	Rate float64 `json:"rate"`
	Note string  `json:"note,omitempty"`
}

// ShippingZone зона доставки
type ShippingZone struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Methods []ShippingMethod `json:"methods"`
}

// Clone копия зоны вместе со слайсом методов
func (z ShippingZone) Clone() ShippingZone {
	cp := z
	cp.Methods = make([]ShippingMethod, len(z.Methods))
	copy(cp.Methods, z.Methods)
	return cp
}

// TaxRate налоговая ставка
type TaxRate struct {
	ID      string  `json:"id"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Rate    float64 `json:"rate"` // проценты
	Name    string  `json:"name"`
}

// GeneralSettings основные настройки магазина
type GeneralSettings struct {
	StoreName    string `json:"store_name"`
	StoreEmail   string `json:"store_email"`
	SupportEmail string `json:"support_email"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	Timezone     string `json:"timezone"`
	DateFormat   string `json:"date_format"`
	Currency     string `json:"currency"`
}

// ShippingSettings настройки расчёта доставки
type ShippingSettings struct {
	CalculationType string `json:"calculation_type"` // flat, weight, price
	ClassesEnabled  bool   `json:"classes_enabled"`
}

// TaxSettings настройки расчёта налогов
type TaxSettings struct {
	Calculation  string `json:"calculation"`   // per_item, per_order
	PriceDisplay string `json:"price_display"` // including, excluding
}

// Settings сводный документ настроек
type Settings struct {
	General  GeneralSettings  `json:"general"`
	Shipping ShippingSettings `json:"shipping"`
	Tax      TaxSettings      `json:"tax"`
}

// InventoryAlert производное представление товара с низким остатком
type InventoryAlert struct {
	ProductID     string        `json:"product_id"`
	Name          string        `json:"name"`
	SKU           string        `json:"sku"`
	CurrentStock  int64         `json:"current_stock"`
	Threshold     int64         `json:"threshold"`
	Category      string        `json:"category"`
	LastRestocked time.Time     `json:"last_restocked"`
	Status        AlertSeverity `json:"status"`
}
