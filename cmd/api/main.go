package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courier-billing/internal/core/cache"
	"courier-billing/internal/core/config"
	"courier-billing/internal/core/database"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/core/metrics"
	"courier-billing/internal/core/server"
	chargeadapters "courier-billing/internal/features/charges/adapters"
	chargehandler "courier-billing/internal/features/charges/handler"
	chargeservice "courier-billing/internal/features/charges/service"
	customeradapters "courier-billing/internal/features/customers/adapters"
	customerhandler "courier-billing/internal/features/customers/handler"
	customerservice "courier-billing/internal/features/customers/service"
	invoiceadapters "courier-billing/internal/features/invoices/adapters"
	invoicedomain "courier-billing/internal/features/invoices/domain"
	invoicehandler "courier-billing/internal/features/invoices/handler"
	invoiceservice "courier-billing/internal/features/invoices/service"
	statsadapters "courier-billing/internal/features/statistics/adapters"
	statshandler "courier-billing/internal/features/statistics/handler"
	statsservice "courier-billing/internal/features/statistics/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Courier Billing API
// @version 1.0
// @description Customer registry, shipment charges, dashboard statistics and invoice documents for a courier locker service.
// @contact.name API Support
// @contact.email soporte@vbox.hn
// @license.name MIT
// @host localhost:5000
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("billing_timezone", cfg.Billing.Timezone),
	)

	metrics.MustRegister(nil)

	ctx := context.Background()

	if cfg.Database.AutoMigrate {
		if err := database.MigrateUp(ctx, cfg.Database.URL); err != nil {
			l.Fatal("Database migration failed", zap.Error(err))
		}
		l.Info("Database schema up to date")
	}

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		l.Fatal("Postgres connection failed", zap.Error(err))
	}
	defer pool.Close()
	l.Info("Postgres connection verified")

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "courier-billing")
	if err != nil {
		l.Fatal("Redis configuration invalid", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		// Statistics fall back to the database while Redis is unreachable.
		l.Warn("Redis unreachable, statistics cache degraded", zap.Error(err))
	}

	renderer, err := invoiceadapters.NewRodRenderer(cfg.Invoice.BrowserBin, cfg.Invoice.RenderTimeout())
	if err != nil {
		l.Fatal("Invoice renderer init failed", zap.Error(err))
	}

	loc := cfg.Billing.Location()

	// Repositories
	customerRepo := customeradapters.NewPostgresCustomerRepository(pool)
	chargeRepo := chargeadapters.NewPostgresChargeRepository(pool)
	chargeStats := statsadapters.NewPostgresChargeStats(pool)

	// Services
	customerSvc := customerservice.NewCustomerService(customerRepo, chargeRepo)
	statsSvc := statsservice.NewStatisticsService(chargeStats, redisCache, cfg.Redis.StatsTTL(), loc)
	chargeSvc := chargeservice.NewChargeService(chargeRepo, customerRepo, loc).WithStats(statsSvc)
	invoiceSvc := invoiceservice.NewInvoiceService(
		chargeRepo,
		customerRepo,
		renderer,
		invoicedomain.Company{
			Name:    cfg.Invoice.CompanyName,
			Tagline: cfg.Invoice.CompanyTagline,
			City:    cfg.Invoice.CompanyCity,
		},
		invoicedomain.NewPageOptions(cfg.Invoice.PageFormat, cfg.Invoice.PageMarginInches),
		loc,
	)

	// Handlers
	customerHdl := customerhandler.NewCustomerHandler(customerSvc)
	chargeHdl := chargehandler.NewChargeHandler(chargeSvc)
	statsHdl := statshandler.NewStatisticsHandler(statsSvc)
	invoiceHdl := invoicehandler.NewInvoiceHandler(invoiceSvc)

	srv := server.New(cfg)
	srv.AddHealthCheck("database", customerRepo)
	srv.AddHealthCheck("redis", redisCache)

	// Register Routes. Fixed paths go before /:id so they are not captured as ids.
	customerHdl.RegisterRoutes(srv.API.Group("/clientes"))

	cobros := srv.API.Group("/cobros")
	statsHdl.RegisterRoutes(cobros)
	cobros.Get("/buscar-cliente/:nombre", customerHdl.Search)
	invoiceHdl.RegisterRoutes(cobros)
	chargeHdl.RegisterRoutes(cobros)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case sig := <-quit:
		l.Info("Shutting down", zap.String("signal", sig.String()))
		if err := srv.Shutdown(shutdownTimeout); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}
