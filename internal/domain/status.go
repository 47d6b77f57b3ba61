package domain

import "time"

// StockStatus производный статус наличия товара
type StockStatus string

const (
	StockInStock    StockStatus = "In Stock"
	StockLowStock   StockStatus = "Low Stock"
	StockOutOfStock StockStatus = "Out of Stock"
)

// DefaultLowStockThreshold граница «мало на складе» для статуса товара
const DefaultLowStockThreshold int64 = 10

// DeriveStockStatus чистая функция статуса по остатку:
// <=0 — нет в наличии, <=threshold — мало, иначе в наличии.
func DeriveStockStatus(inventory, threshold int64) StockStatus {
	switch {
	case inventory <= 0:
		return StockOutOfStock
	case inventory <= threshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

// StockStatus статус товара при стандартном пороге
func (p Product) StockStatus() StockStatus {
	return DeriveStockStatus(p.Inventory, DefaultLowStockThreshold)
}

// AlertSeverity серьёзность складского оповещения
type AlertSeverity string

const (
	AlertCritical AlertSeverity = "critical"
	AlertWarning  AlertSeverity = "warning"
)

// DeriveAlertSeverity critical, когда остаток меньше половины порога
func DeriveAlertSeverity(stock, threshold int64) AlertSeverity {
	if stock*2 < threshold {
		return AlertCritical
	}
	return AlertWarning
}

// Alert производное оповещение по товару. Товар попадает в оповещения,
// когда остаток не превышает его собственный порог.
func (p Product) Alert() (InventoryAlert, bool) {
	if p.Inventory > p.Threshold {
		return InventoryAlert{}, false
	}
	return InventoryAlert{
		ProductID:     p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		CurrentStock:  p.Inventory,
		Threshold:     p.Threshold,
		Category:      p.Category,
		LastRestocked: p.LastRestocked,
		Status:        DeriveAlertSeverity(p.Inventory, p.Threshold),
	}, true
}

// DiscountStatus производный статус промокода
type DiscountStatus string

const (
	DiscountActive    DiscountStatus = "active"
	DiscountInactive  DiscountStatus = "inactive"
	DiscountScheduled DiscountStatus = "scheduled"
	DiscountExpired   DiscountStatus = "expired"
)

// StatusAt единственное правило вывода статуса промокода:
// выключенный — inactive, до начала — scheduled, после конца или
// исчерпанного лимита — expired, иначе active.
func (d Discount) StatusAt(now time.Time) DiscountStatus {
	if d.Disabled {
		return DiscountInactive
	}
	if now.Before(d.StartDate) {
		return DiscountScheduled
	}
	if d.EndDate != nil && now.After(*d.EndDate) {
		return DiscountExpired
	}
	if d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit {
		return DiscountExpired
	}
	return DiscountActive
}
