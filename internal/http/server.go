package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// Server HTTP-обвязка админ-панели
type Server struct {
	engine    *gin.Engine
	catalog   *service.CatalogService
	orders    *service.OrderService
	customers *service.CustomerService
	discounts *service.DiscountService
	reviews   *service.ReviewService
	inventory *service.InventoryService
	access    *service.AccessService
	settings  *service.SettingsService
	analytics *service.AnalyticsService
}

// Deps сервисы, которыми владеет сервер
type Deps struct {
	Catalog   *service.CatalogService
	Orders    *service.OrderService
	Customers *service.CustomerService
	Discounts *service.DiscountService
	Reviews   *service.ReviewService
	Inventory *service.InventoryService
	Access    *service.AccessService
	Settings  *service.SettingsService
	Analytics *service.AnalyticsService
}

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "admin_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// NewServer собирает движок gin с маршрутами всех разделов
func NewServer(d Deps) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metricsMiddleware())
	s := &Server{
		engine:    r,
		catalog:   d.Catalog,
		orders:    d.Orders,
		customers: d.Customers,
		discounts: d.Discounts,
		reviews:   d.Reviews,
		inventory: d.Inventory,
		access:    d.Access,
		settings:  d.Settings,
		analytics: d.Analytics,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/dashboard", s.getDashboard)
		v1.GET("/analytics", s.getAnalytics)
		v1.POST("/analytics/export", s.exportAnalytics)

		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.POST("", s.createProduct)
		products.GET(":id", s.getProduct)
		products.DELETE(":id", s.deleteProduct)

		categories := v1.Group("/categories")
		categories.GET("", s.listCategories)
		categories.POST("", s.createCategory)
		categories.DELETE(":id", s.deleteCategory)

		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)

		customers := v1.Group("/customers")
		customers.GET("", s.listCustomers)
		customers.GET(":id", s.getCustomer)
		customers.PUT(":id/status", s.setCustomerStatus)

		discounts := v1.Group("/discounts")
		discounts.GET("", s.listDiscounts)
		discounts.POST("", s.createDiscount)
		discounts.DELETE(":id", s.deleteDiscount)
		discounts.POST(":id/toggle", s.toggleDiscount)

		reviews := v1.Group("/reviews")
		reviews.GET("", s.listReviews)
		reviews.GET(":id", s.getReview)
		reviews.POST(":id/approve", s.approveReview)
		reviews.POST(":id/reject", s.rejectReview)
		reviews.POST(":id/hide", s.hideReview)

		inventory := v1.Group("/inventory")
		inventory.GET("/alerts", s.listAlerts)
		inventory.POST("/:id/restock", s.restockProduct)

		roles := v1.Group("/roles")
		roles.GET("", s.listRoles)
		roles.POST("", s.createRole)
		roles.GET(":id", s.getRole)
		roles.PUT(":id", s.updateRole)
		roles.DELETE(":id", s.deleteRole)

		users := v1.Group("/users")
		users.GET("", s.listUsers)
		users.POST("", s.createUser)
		users.PUT(":id/status", s.setUserStatus)
		users.PUT(":id/role", s.setUserRole)

		settings := v1.Group("/settings")
		settings.GET("", s.getSettings)
		settings.PUT("/general", s.saveGeneralSettings)
		settings.PUT("/shipping", s.saveShippingSettings)
		settings.PUT("/tax", s.saveTaxSettings)

		shipping := v1.Group("/shipping/zones")
		shipping.GET("", s.listZones)
		shipping.POST("", s.addZone)
		shipping.DELETE(":id", s.deleteZone)

		tax := v1.Group("/tax-rates")
		tax.GET("", s.listTaxRates)
		tax.POST("", s.addTaxRate)
		tax.DELETE(":id", s.deleteTaxRate)
	}

	// Несуществующий путь ведёт на страницу 404 панели.
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "page not found",
			"path":  c.Request.URL.Path,
			"home":  "/api/v1/dashboard",
		})
	})
}

func mapErrorToStatus(err error) int {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSystemRole):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	payload := gin.H{"error": err.Error()}
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		payload["fields"] = vErr.Fields
	}
	c.JSON(status, payload)
}
