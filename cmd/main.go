package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/config"
	httpapi "github.com/jaswanth12321/ecom-admin-suite/internal/http"
	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"

	_ "github.com/jaswanth12321/ecom-admin-suite/docs"
)

// @title E-commerce Admin API
// @version 1.0
// @description Back-office API for catalog, orders, customers and store settings.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to yaml config")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Mode)

	store := repository.NewMemoryStore()
	store.Seed()

	bus := notify.NewBus(logger)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := bus.RunLogger(ctx); err != nil {
		logger.Error("notification logger", "error", err)
		os.Exit(1)
	}

	inventory := service.NewInventoryService(store, bus)
	srv := httpapi.NewServer(httpapi.Deps{
		Catalog:   service.NewCatalogService(store, store, bus),
		Orders:    service.NewOrderService(store),
		Customers: service.NewCustomerService(store, bus),
		Discounts: service.NewDiscountService(store, bus),
		Reviews:   service.NewReviewService(store, bus),
		Inventory: inventory,
		Access:    service.NewAccessService(store, store, bus),
		Settings:  service.NewSettingsService(store, store, store, bus),
		Analytics: service.NewAnalyticsService(store, store, store, inventory, bus),
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
