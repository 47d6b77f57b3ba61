package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
)

var (
	// ErrInvalidState операция неприменима к текущему состоянию записи
	ErrInvalidState = errors.New("invalid state")
	// ErrSystemRole системную роль нельзя менять или удалять
	ErrSystemRole = errors.New("system role is read-only")
)

// FieldError ошибка валидации одного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError накопленные ошибки формы. Команда с такой ошибкой
// не меняет хранилище.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// First сообщение первой ошибки, удобно для уведомлений
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Формы приходят с фронта строками, числа разбираются при валидации.

func parseMoney(v *ValidationError, field, raw string, required bool) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			v.add(field, field+" is required")
		}
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v.add(field, field+" must be a number")
		return 0
	}
	if n < 0 {
		v.add(field, field+" must not be negative")
		return 0
	}
	return n
}

func parseCount(v *ValidationError, field, raw string, required bool) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			v.add(field, field+" is required")
		}
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		v.add(field, field+" must be an integer")
		return 0
	}
	if n < 0 {
		v.add(field, field+" must not be negative")
		return 0
	}
	return n
}

func parseDate(v *ValidationError, field, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		v.add(field, field+" must be a date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

// ProductDraft форма создания товара
type ProductDraft struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Inventory string `json:"inventory"`
	Threshold string `json:"threshold"`
}

// Validate проверяет форму и собирает товар. Порог по умолчанию стандартный.
func (d ProductDraft) Validate() (domain.Product, error) {
	var v ValidationError
	name := strings.TrimSpace(d.Name)
	if name == "" {
		v.add("name", "name is required")
	}
	price := parseMoney(&v, "price", d.Price, true)
	inventory := parseCount(&v, "inventory", d.Inventory, true)
	threshold := parseCount(&v, "threshold", d.Threshold, false)
	if strings.TrimSpace(d.Threshold) == "" {
		threshold = domain.DefaultLowStockThreshold
	}
	if err := v.orNil(); err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		Name:      name,
		SKU:       strings.TrimSpace(d.SKU),
		Category:  strings.TrimSpace(d.Category),
		Price:     price,
		Inventory: inventory,
		Threshold: threshold,
	}, nil
}

// CategoryDraft форма создания категории
type CategoryDraft struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Parent      string `json:"parent"`
}

// Validate пустой slug выводится из имени
func (d CategoryDraft) Validate() (domain.Category, error) {
	var v ValidationError
	name := strings.TrimSpace(d.Name)
	if name == "" {
		v.add("name", "name is required")
	}
	if err := v.orNil(); err != nil {
		return domain.Category{}, err
	}
	slug := strings.TrimSpace(d.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	return domain.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(d.Description),
		Parent:      strings.TrimSpace(d.Parent),
	}, nil
}

// Slugify приводит имя к url-виду: строчные буквы и цифры через дефис.
// Апострофы опускаются без разделителя, "Men's Wear" даёт "mens-wear".
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '\'' || r == '’':
			// пропуск
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// DiscountDraft форма создания промокода
type DiscountDraft struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	MinPurchase string `json:"min_purchase"`
	UsageLimit  string `json:"usage_limit"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Validate код обязателен, значение положительное, процент не выше 100.
func (d DiscountDraft) Validate() (domain.Discount, error) {
	var v ValidationError
	code := strings.ToUpper(strings.TrimSpace(d.Code))
	if code == "" {
		v.add("code", "code is required")
	}
	dtype := domain.DiscountType(strings.TrimSpace(d.Type))
	if dtype == "" {
		dtype = domain.DiscountPercentage
	}
	if dtype != domain.DiscountPercentage && dtype != domain.DiscountFixed {
		v.add("type", "type must be percentage or fixed")
	}
	value := parseMoney(&v, "value", d.Value, true)
	if value == 0 && strings.TrimSpace(d.Value) != "" {
		v.add("value", "value must be positive")
	}
	if dtype == domain.DiscountPercentage && value > 100 {
		v.add("value", "percentage cannot exceed 100")
	}
	minPurchase := parseMoney(&v, "min_purchase", d.MinPurchase, false)
	usageLimit := parseCount(&v, "usage_limit", d.UsageLimit, false)

	start, hasStart := parseDate(&v, "start_date", d.StartDate)
	end, hasEnd := parseDate(&v, "end_date", d.EndDate)
	if hasStart && hasEnd && end.Before(start) {
		v.add("end_date", "end date must not precede start date")
	}
	if err := v.orNil(); err != nil {
		return domain.Discount{}, err
	}
	out := domain.Discount{
		Code:        code,
		Type:        dtype,
		Value:       value,
		MinPurchase: minPurchase,
		UsageLimit:  int(usageLimit),
		StartDate:   start,
	}
	if hasEnd {
		out.EndDate = &end
	}
	return out, nil
}

// RoleDraft форма создания роли
type RoleDraft struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Permissions domain.Permissions `json:"permissions"`
}

func (d RoleDraft) Validate() (domain.Role, error) {
	var v ValidationError
	name := strings.TrimSpace(d.Name)
	if name == "" {
		v.add("name", "name is required")
	}
	if err := v.orNil(); err != nil {
		return domain.Role{}, err
	}
	perms := d.Permissions
	if perms == nil {
		perms = domain.Permissions{}
	}
	return domain.Role{
		Name:        name,
		Description: strings.TrimSpace(d.Description),
		Permissions: perms,
	}, nil
}

// UserDraft форма создания административного пользователя
type UserDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

func (d UserDraft) Validate() (domain.AdminUser, error) {
	var v ValidationError
	name := strings.TrimSpace(d.Name)
	if name == "" {
		v.add("name", "name is required")
	}
	email := strings.TrimSpace(d.Email)
	if email == "" {
		v.add("email", "email is required")
	} else if !strings.Contains(email, "@") {
		v.add("email", "email must contain @")
	}
	if strings.TrimSpace(d.Role) == "" {
		v.add("role", "role is required")
	}
	if len(d.Password) < 8 {
		v.add("password", "password must be at least 8 characters")
	}
	if d.Password != d.Confirm {
		v.add("confirm", "passwords do not match")
	}
	if err := v.orNil(); err != nil {
		return domain.AdminUser{}, err
	}
	return domain.AdminUser{
		Name:   name,
		Email:  email,
		Role:   strings.TrimSpace(d.Role),
		Status: domain.UserStatusActive,
	}, nil
}

// TaxRateDraft форма добавления налоговой ставки
type TaxRateDraft struct {
	Country string `json:"country"`
	State   string `json:"state"`
	Rate    string `json:"rate"`
	Name    string `json:"name"`
}

func (d TaxRateDraft) Validate() (domain.TaxRate, error) {
	var v ValidationError
	country := strings.TrimSpace(d.Country)
	if country == "" {
		v.add("country", "country is required")
	}
	rate := parseMoney(&v, "rate", d.Rate, true)
	if rate > 100 {
		v.add("rate", "rate cannot exceed 100")
	}
	if err := v.orNil(); err != nil {
		return domain.TaxRate{}, err
	}
	state := strings.TrimSpace(d.State)
	if state == "" {
		state = "All"
	}
	return domain.TaxRate{
		Country: country,
		State:   state,
		Rate:    rate,
		Name:    strings.TrimSpace(d.Name),
	}, nil
}

// MethodDraft способ доставки внутри формы зоны
type MethodDraft struct {
	Name string `json:"name"`
	ETA  string `json:"eta"`
	Rate string `json:"rate"`
	Note string `json:"note"`
}

// ZoneDraft форма создания зоны доставки
type ZoneDraft struct {
	Name    string        `json:"name"`
	Methods []MethodDraft `json:"methods"`
}

func (d ZoneDraft) Validate() (domain.ShippingZone, error) {
	var v ValidationError
	name := strings.TrimSpace(d.Name)
	if name == "" {
		v.add("name", "name is required")
	}
	if len(d.Methods) == 0 {
		v.add("methods", "at least one shipping method is required")
	}
	methods := make([]domain.ShippingMethod, 0, len(d.Methods))
	for i, m := range d.Methods {
		mName := strings.TrimSpace(m.Name)
		if mName == "" {
			v.add(fmt.Sprintf("methods[%d].name", i), "method name is required")
		}
		rate := parseMoney(&v, fmt.Sprintf("methods[%d].rate", i), m.Rate, true)
		methods = append(methods, domain.ShippingMethod{
			Name: mName,
			ETA:  strings.TrimSpace(m.ETA),
			Rate: rate,
			Note: strings.TrimSpace(m.Note),
		})
	}
	if err := v.orNil(); err != nil {
		return domain.ShippingZone{}, err
	}
	return domain.ShippingZone{Name: name, Methods: methods}, nil
}

// RestockDraft форма пополнения склада
type RestockDraft struct {
	Quantity string `json:"quantity"`
}

func (d RestockDraft) Validate() (int64, error) {
	var v ValidationError
	qty := parseCount(&v, "quantity", d.Quantity, true)
	if qty == 0 && strings.TrimSpace(d.Quantity) != "" {
		v.add("quantity", "quantity must be positive")
	}
	if err := v.orNil(); err != nil {
		return 0, err
	}
	return qty, nil
}
