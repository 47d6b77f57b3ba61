package repository

import (
	"time"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Seed наполняет хранилище витринными данными магазина.
func (m *MemoryStore) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = []domain.Product{
		{ID: "PROD-001", Name: "Wireless Earbuds", SKU: "WE-1001", Category: "Electronics", Price: 79.99, Inventory: 5, Threshold: 10, LastRestocked: date(2023, time.October, 15)},
		{ID: "PROD-002", Name: "Smart Watch", SKU: "SW-2034", Category: "Electronics", Price: 199.99, Inventory: 32, Threshold: 15, LastRestocked: date(2023, time.October, 28)},
		{ID: "PROD-003", Name: "Premium Leather Wallet", SKU: "LW-5023", Category: "Accessories", Price: 49.99, Inventory: 4, Threshold: 15, LastRestocked: date(2023, time.October, 20)},
		{ID: "PROD-004", Name: "Stainless Steel Water Bottle", SKU: "WB-3089", Category: "Home & Kitchen", Price: 24.99, Inventory: 12, Threshold: 20, LastRestocked: date(2023, time.October, 18)},
		{ID: "PROD-005", Name: "Organic Cotton T-Shirt", SKU: "CT-4567", Category: "Clothing", Price: 19.99, Inventory: 15, Threshold: 25, LastRestocked: date(2023, time.October, 25)},
		{ID: "PROD-006", Name: "Wireless Charging Pad", SKU: "WCP-8976", Category: "Electronics", Price: 34.99, Inventory: 2, Threshold: 10, LastRestocked: date(2023, time.October, 12)},
		{ID: "PROD-007", Name: "Yoga Mat", SKU: "YM-1203", Category: "Sports", Price: 29.99, Inventory: 45, Threshold: 10, LastRestocked: date(2023, time.October, 30)},
		{ID: "PROD-008", Name: "Coffee Maker", SKU: "CM-7612", Category: "Home & Kitchen", Price: 89.99, Inventory: 0, Threshold: 10, LastRestocked: date(2023, time.September, 28)},
	}

	m.categories = []domain.Category{
		{ID: "cat-001", Name: "Electronics", Slug: "electronics", Description: "Electronic devices and gadgets", ProductCount: 124, CreatedAt: date(2023, time.June, 15)},
		{ID: "cat-002", Name: "Smartphones", Slug: "smartphones", Description: "Mobile phones and accessories", Parent: "Electronics", ProductCount: 56, CreatedAt: date(2023, time.June, 16)},
		{ID: "cat-003", Name: "Laptops", Slug: "laptops", Description: "Notebooks and ultrabooks", Parent: "Electronics", ProductCount: 35, CreatedAt: date(2023, time.June, 17)},
		{ID: "cat-004", Name: "Clothing", Slug: "clothing", Description: "Apparel for men and women", ProductCount: 210, CreatedAt: date(2023, time.June, 18)},
		{ID: "cat-005", Name: "Men's Wear", Slug: "mens-wear", Description: "Clothing for men", Parent: "Clothing", ProductCount: 95, CreatedAt: date(2023, time.June, 19)},
		{ID: "cat-006", Name: "Women's Wear", Slug: "womens-wear", Description: "Clothing for women", Parent: "Clothing", ProductCount: 115, CreatedAt: date(2023, time.June, 20)},
		{ID: "cat-007", Name: "Home & Kitchen", Slug: "home-kitchen", Description: "Everything for your home", ProductCount: 87, CreatedAt: date(2023, time.June, 21)},
	}

	m.orders = []domain.Order{
		{ID: "ORD-3917", Customer: "John Smith", Email: "john.smith@example.com", Date: date(2023, time.October, 21), Total: 129.99, Items: 2, Status: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPaid},
		{ID: "ORD-3918", Customer: "Emma Johnson", Email: "emma.j@example.com", Date: date(2023, time.October, 22), Total: 79.95, Items: 1, Status: domain.OrderStatusShipped, PaymentStatus: domain.PaymentStatusPaid},
		{ID: "ORD-3919", Customer: "Michael Brown", Email: "m.brown@example.com", Date: date(2023, time.October, 23), Total: 214.50, Items: 3, Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid},
		{ID: "ORD-3920", Customer: "Sarah Wilson", Email: "sarah.w@example.com", Date: date(2023, time.October, 24), Total: 49.99, Items: 1, Status: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusRefunded},
		{ID: "ORD-3921", Customer: "David Miller", Email: "david.m@example.com", Date: date(2023, time.October, 25), Total: 159.98, Items: 2, Status: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPending},
	}

	m.customers = []domain.Customer{
		{ID: "CUST-5816", Name: "Alice Johnson", Email: "alice.johnson@example.com", Orders: 12, Spent: 1243.99, LastOrder: date(2023, time.October, 18), Status: domain.CustomerStatusActive},
		{ID: "CUST-5817", Name: "Robert Smith", Email: "robert.smith@example.com", Orders: 8, Spent: 876.50, LastOrder: date(2023, time.October, 12), Status: domain.CustomerStatusActive},
		{ID: "CUST-5818", Name: "Emily Brown", Email: "emily.brown@example.com", Orders: 5, Spent: 429.95, LastOrder: date(2023, time.September, 30), Status: domain.CustomerStatusInactive},
		{ID: "CUST-5819", Name: "Michael Davis", Email: "michael.davis@example.com", Orders: 19, Spent: 2156.75, LastOrder: date(2023, time.October, 24), Status: domain.CustomerStatusActive},
		{ID: "CUST-5820", Name: "Jennifer Wilson", Email: "jennifer.wilson@example.com", Orders: 3, Spent: 189.99, LastOrder: date(2023, time.August, 15), Status: domain.CustomerStatusBanned},
		{ID: "CUST-5821", Name: "Daniel Taylor", Email: "daniel.taylor@example.com", Orders: 7, Spent: 659.45, LastOrder: date(2023, time.October, 20), Status: domain.CustomerStatusActive},
	}

	m.discounts = []domain.Discount{
		{ID: "disc-001", Code: "SUMMER25", Type: domain.DiscountPercentage, Value: 25, MinPurchase: 100, UsageLimit: 1000, UsedCount: 342, StartDate: date(2023, time.June, 1), EndDate: datePtr(2023, time.August, 31)},
		{ID: "disc-002", Code: "WELCOME10", Type: domain.DiscountPercentage, Value: 10, MinPurchase: 50, UsageLimit: 0, UsedCount: 896, StartDate: date(2023, time.January, 1)},
		{ID: "disc-003", Code: "FREESHIP", Type: domain.DiscountFixed, Value: 15, MinPurchase: 75, UsageLimit: 500, UsedCount: 218, StartDate: date(2023, time.September, 1), EndDate: datePtr(2023, time.December, 31)},
		{ID: "disc-004", Code: "FLASH50", Type: domain.DiscountPercentage, Value: 50, MinPurchase: 200, UsageLimit: 100, UsedCount: 100, StartDate: date(2023, time.October, 10), EndDate: datePtr(2023, time.October, 12)},
		{ID: "disc-005", Code: "HOLIDAY20", Type: domain.DiscountPercentage, Value: 20, MinPurchase: 80, UsageLimit: 750, UsedCount: 0, StartDate: date(2025, time.December, 1), EndDate: datePtr(2025, time.December, 31)},
	}

	m.reviews = []domain.Review{
		{ID: "rev-001", ProductName: "Wireless Earbuds", CustomerName: "John Smith", Rating: 5, Title: "Excellent sound quality", Comment: "Best earbuds I have ever owned, battery lasts all day.", Status: domain.ReviewStatusPublished, Date: date(2023, time.October, 15)},
		{ID: "rev-002", ProductName: "Premium Leather Wallet", CustomerName: "Emily Johnson", Rating: 4, Title: "Great quality", Comment: "Beautiful leather, slightly smaller than expected.", Status: domain.ReviewStatusPublished, Date: date(2023, time.October, 17)},
		{ID: "rev-003", ProductName: "Smart Watch", CustomerName: "Michael Brown", Rating: 2, Title: "Disappointing battery", Comment: "Barely lasts half a day, not what was advertised.", Status: domain.ReviewStatusPending, Reported: true, Date: date(2023, time.October, 19)},
		{ID: "rev-004", ProductName: "Yoga Mat", CustomerName: "Sarah Wilson", Rating: 5, Title: "Perfect grip", Comment: "No slipping even during hot yoga sessions.", Status: domain.ReviewStatusPublished, Date: date(2023, time.October, 21)},
		{ID: "rev-005", ProductName: "Coffee Maker", CustomerName: "David Martinez", Rating: 1, Title: "Stopped working", Comment: "Broke after two weeks of normal use.", Status: domain.ReviewStatusPending, Reported: true, Date: date(2023, time.October, 23)},
	}

	fullAccess := map[string]bool{"view": true, "create": true, "edit": true, "delete": true}
	viewOnly := map[string]bool{"view": true}
	m.roles = []domain.Role{
		{
			ID: "role-1", Name: "Administrator", Description: "Full access to all modules", UsersCount: 2, IsSystem: true,
			Permissions: domain.Permissions{
				"dashboard": cloneActions(fullAccess), "products": cloneActions(fullAccess), "orders": cloneActions(fullAccess),
				"customers": cloneActions(fullAccess), "discounts": cloneActions(fullAccess), "reports": cloneActions(fullAccess),
				"settings": cloneActions(fullAccess),
			},
		},
		{
			ID: "role-2", Name: "Store Manager", Description: "Manage catalog, orders and customers", UsersCount: 3, IsSystem: true,
			Permissions: domain.Permissions{
				"dashboard": cloneActions(viewOnly), "products": cloneActions(fullAccess), "orders": cloneActions(fullAccess),
				"customers": {"view": true, "edit": true}, "discounts": cloneActions(fullAccess),
				"reports": cloneActions(viewOnly), "settings": cloneActions(viewOnly),
			},
		},
		{
			ID: "role-3", Name: "Customer Support", Description: "Handle orders and customer requests", UsersCount: 4, IsSystem: true,
			Permissions: domain.Permissions{
				"dashboard": cloneActions(viewOnly), "products": cloneActions(viewOnly), "orders": {"view": true, "edit": true},
				"customers": {"view": true, "edit": true}, "discounts": cloneActions(viewOnly),
			},
		},
		{
			ID: "role-4", Name: "Content Editor", Description: "Manage product content and categories", UsersCount: 2,
			Permissions: domain.Permissions{
				"dashboard": cloneActions(viewOnly), "products": {"view": true, "create": true, "edit": true},
			},
		},
		{
			ID: "role-5", Name: "Analytics Team", Description: "View reports and statistics", UsersCount: 1,
			Permissions: domain.Permissions{
				"dashboard": cloneActions(viewOnly), "reports": cloneActions(viewOnly),
			},
		},
	}

	m.users = []domain.AdminUser{
		{ID: "user-1", Name: "John Doe", Email: "john.doe@estore.com", Role: "Administrator", LastActive: date(2023, time.October, 25), Status: domain.UserStatusActive},
		{ID: "user-2", Name: "Jane Smith", Email: "jane.smith@estore.com", Role: "Administrator", LastActive: date(2023, time.October, 24), Status: domain.UserStatusActive},
		{ID: "user-3", Name: "Mike Johnson", Email: "mike.johnson@estore.com", Role: "Store Manager", LastActive: date(2023, time.October, 25), Status: domain.UserStatusActive},
		{ID: "user-4", Name: "Sarah Williams", Email: "sarah.williams@estore.com", Role: "Customer Support", LastActive: date(2023, time.October, 23), Status: domain.UserStatusActive},
		{ID: "user-5", Name: "David Brown", Email: "david.brown@estore.com", Role: "Content Editor", LastActive: date(2023, time.September, 10), Status: domain.UserStatusInactive},
		{ID: "user-6", Name: "Lisa Chen", Email: "lisa.chen@estore.com", Role: "Analytics Team", LastActive: date(2023, time.October, 22), Status: domain.UserStatusActive},
	}

	m.zones = []domain.ShippingZone{
		{ID: "zone-001", Name: "India", Methods: []domain.ShippingMethod{
			{Name: "Standard Shipping", ETA: "3-5 days", Rate: 70},
			{Name: "Express Shipping", ETA: "1-2 days", Rate: 150},
			{Name: "Free Shipping", ETA: "5-7 days", Rate: 0, Note: "Orders over ₹1000"},
		}},
		{ID: "zone-002", Name: "International", Methods: []domain.ShippingMethod{
			{Name: "Standard Shipping", ETA: "7-14 days", Rate: 500},
			{Name: "Express Shipping", ETA: "3-5 days", Rate: 1200},
		}},
	}

	m.taxRates = []domain.TaxRate{
		{ID: "tax-001", Country: "India", State: "All", Rate: 18, Name: "GST Standard"},
		{ID: "tax-002", Country: "India", State: "All", Rate: 12, Name: "GST Reduced"},
		{ID: "tax-003", Country: "India", State: "All", Rate: 5, Name: "GST Lower"},
	}

	m.settings = domain.Settings{
		General: domain.GeneralSettings{
			StoreName:    "eStore Admin",
			StoreEmail:   "admin@estore.com",
			SupportEmail: "support@estore.com",
			PhoneNumber:  "+1 (555) 123-4567",
			Address:      "1234 Commerce St, Suite 500, Portland, OR 97205, USA",
			Timezone:     "America/Los_Angeles",
			DateFormat:   "YYYY-MM-DD",
			Currency:     "USD",
		},
		Shipping: domain.ShippingSettings{CalculationType: "flat", ClassesEnabled: false},
		Tax:      domain.TaxSettings{Calculation: "per_item", PriceDisplay: "including"},
	}
}

func cloneActions(src map[string]bool) map[string]bool {
	out := make(map[string]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
