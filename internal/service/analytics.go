package service

import (
	"context"
	"fmt"

	"github.com/jaswanth12321/ecom-admin-suite/internal/chart"
	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
)

// StatCard сводная карточка дашборда
type StatCard struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change,omitempty"` // проценты к прошлому периоду
}

// DashboardView полезная нагрузка главного экрана
type DashboardView struct {
	Cards        []StatCard              `json:"cards"`
	Revenue      chart.Series            `json:"revenue"`
	Categories   chart.Series            `json:"categories"`
	TopProducts  chart.Series            `json:"top_products"`
	RecentOrders []domain.Order          `json:"recent_orders"`
	Alerts       []domain.InventoryAlert `json:"alerts"`
}

// TopProduct строка таблицы лучших товаров
type TopProduct struct {
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsView полезная нагрузка экрана аналитики
type AnalyticsView struct {
	Cards       []StatCard   `json:"cards"`
	Sales       chart.Series `json:"sales"`
	Orders      chart.Series `json:"orders"`
	Customers   chart.Series `json:"customers"`
	Categories  chart.Series `json:"categories"`
	Devices     chart.Series `json:"devices"`
	Traffic     chart.Series `json:"traffic"`
	TopProducts []TopProduct `json:"top_products"`
}

// AnalyticsService дашборд и отчёты. Живые числа берутся из хранилища,
// исторические серии витринные.
type AnalyticsService struct {
	products  repository.ProductRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	inventory *InventoryService
	notifier  notify.Notifier
}

func NewAnalyticsService(products repository.ProductRepository, orders repository.OrderRepository, customers repository.CustomerRepository, inventory *InventoryService, notifier notify.Notifier) *AnalyticsService {
	return &AnalyticsService{
		products:  products,
		orders:    orders,
		customers: customers,
		inventory: inventory,
		notifier:  notifier,
	}
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Dashboard собирает главный экран
func (s *AnalyticsService) Dashboard(ctx context.Context) DashboardView {
	products := s.products.ListProducts(repository.ProductFilter{})
	customers := s.customers.ListCustomers(repository.CustomerFilter{})
	orders := s.orders.ListOrders(repository.OrderFilter{})

	recent := orders
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	return DashboardView{
		Cards: []StatCard{
			{Title: "Total Revenue", Value: "$45,231.89", Change: 12.5},
			{Title: "Total Orders", Value: "538", Change: 8.2},
			{Title: "Products", Value: fmt.Sprintf("%d", len(products))},
			{Title: "Customers", Value: fmt.Sprintf("%d", len(customers)), Change: 4.3},
		},
		Revenue:      salesRevenueSeries(),
		Categories:   categoryShareSeries(),
		TopProducts:  topProductsSeries(),
		RecentOrders: recent,
		Alerts:       s.inventory.Alerts(ctx, repository.AlertFilter{}),
	}
}

// Report собирает экран аналитики
func (s *AnalyticsService) Report(_ context.Context) AnalyticsView {
	sales := salesRevenueSeries()
	ordersTotal := 3589.0
	return AnalyticsView{
		Cards: []StatCard{
			{Title: "Total Revenue", Value: fmt.Sprintf("$%.2f", sales.Total()), Change: 12.5},
			{Title: "Total Orders", Value: fmt.Sprintf("%.0f", ordersTotal), Change: 8.2},
			{Title: "Conversion Rate", Value: "3.6%", Change: 0.8},
			{Title: "Avg. Order Value", Value: fmt.Sprintf("$%.2f", sales.Total()/ordersTotal), Change: 4.1},
		},
		Sales:      sales,
		Orders:     chart.New("Orders", chart.KindBar, months, []float64{240, 198, 300, 278, 260, 305, 280, 322, 310, 356, 340, 400}),
		Customers:  chart.New("Customers", chart.KindLine, months, []float64{120, 132, 145, 162, 178, 195, 210, 226, 242, 265, 288, 310}),
		Categories: categoryShareSeries(),
		Devices:    chart.New("Devices", chart.KindPie, []string{"Desktop", "Mobile", "Tablet"}, []float64{48, 45, 7}),
		Traffic:    chart.New("Traffic", chart.KindPie, []string{"Direct", "Search", "Social", "Referral", "Email"}, []float64{30, 40, 15, 10, 5}),
		TopProducts: []TopProduct{
			{Name: "Wireless Earbuds", Units: 230, Revenue: 16100},
			{Name: "Smart Watch", Units: 180, Revenue: 23400},
			{Name: "Fitness Tracker", Units: 170, Revenue: 15300},
			{Name: "Gaming Laptop", Units: 125, Revenue: 187500},
			{Name: "Bluetooth Speaker", Units: 210, Revenue: 14700},
		},
	}
}

// Export отчёт никуда не выгружается, команда только подтверждается уведомлением.
func (s *AnalyticsService) Export(ctx context.Context, format string) {
	if format == "" {
		format = "csv"
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Export started", fmt.Sprintf("Report export to %s has been queued", format))
}

func salesRevenueSeries() chart.Series {
	return chart.New("Revenue", chart.KindLine, months, []float64{24000, 19800, 30000, 27800, 26000, 30500, 28000, 32200, 31000, 35600, 34000, 42000})
}

func topProductsSeries() chart.Series {
	return chart.New("Top Products", chart.KindBar,
		[]string{"Wireless Earbuds", "Smart Watch", "Fitness Tracker", "Gaming Laptop", "Bluetooth Speaker"},
		[]float64{16100, 23400, 15300, 187500, 14700})
}

func categoryShareSeries() chart.Series {
	return chart.New("Sales by Category", chart.KindPie,
		[]string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Beauty", "Sports"},
		[]float64{35, 25, 15, 10, 8, 7})
}
