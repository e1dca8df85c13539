// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/customer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/product"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/warehouse"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
	"github.com/salilgupta4/agile-rental-management/internal/domain/settings"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres/document_repo"
	"github.com/salilgupta4/agile-rental-management/pkg/logger"
	"github.com/salilgupta4/agile-rental-management/pkg/numerator"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)
	num := numerator.New(pool)

	if err := seedSettings(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed settings", "error", err)
	}

	if err := seedCatalogs(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed catalogs", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoDocuments(ctx, txm, num, log); err != nil {
			log.Fatalw("failed to seed demo documents", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedSettings(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	store := postgres.NewSettingsRepo(txm)

	// Only write defaults when nothing is configured yet
	if _, err := store.GSTRates(ctx); err != nil {
		if !apperror.IsNotFound(err) {
			return err
		}
		rates := gst.DefaultRates()
		if err := settings.NewService(store).UpdateGSTRates(ctx, rates); err != nil {
			return err
		}
		log.Infow("gst rates configured",
			"cgst", rates.CGST,
			"sgst", rates.SGST,
			"igst", rates.IGST,
		)
	}
	return nil
}

func seedCatalogs(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	products := product.NewService(catalog_repo.NewProductRepo(txm))
	warehouses := warehouse.NewService(catalog_repo.NewWarehouseRepo(txm))
	customers := customer.NewService(catalog_repo.NewCustomerRepo(txm))

	productSeeds := []struct {
		name string
		unit string
	}{
		{"MS Prop", "Nos"},
		{"Acro Span", "Nos"},
		{"Scaffolding Pipe 3m", "Nos"},
		{"Cuplock Vertical 2m", "Nos"},
		{"Base Jack", "Nos"},
		{"H-Frame", "Sets"},
	}
	for _, p := range productSeeds {
		if err := products.Create(ctx, product.NewProduct(p.name, p.unit)); err != nil {
			log.Warnw("failed to seed product", "name", p.name, "error", err)
		}
	}

	warehouseSeeds := []struct {
		name     string
		location string
	}{
		{"Main Yard", "Plot 14, Industrial Area Phase 2"},
		{"Site Store", "NH-44 service road depot"},
	}
	for _, w := range warehouseSeeds {
		if err := warehouses.Create(ctx, warehouse.NewWarehouse(w.name, w.location)); err != nil {
			log.Warnw("failed to seed warehouse", "name", w.name, "error", err)
		}
	}

	customerSeeds := []struct {
		name  string
		sites []string
	}{
		{"Apex Constructions", []string{"Metro Station Site", "Tower B"}},
		{"Sharma Builders", []string{"Highway Bridge"}},
	}
	for _, c := range customerSeeds {
		if err := customers.Create(ctx, customer.NewCustomer(c.name, c.sites)); err != nil {
			log.Warnw("failed to seed customer", "name", c.name, "error", err)
		}
	}

	log.Info("catalogs seeded")
	return nil
}

func seedDemoDocuments(ctx context.Context, txm *postgres.TxManager, num *numerator.Service, log *logger.Logger) error {
	purchases := purchase.NewService(document_repo.NewPurchaseRepo(txm), num)
	transfers := transfer.NewService(document_repo.NewTransferRepo(txm), num)
	orders := rentalorder.NewService(document_repo.NewRentalOrderRepo(txm), num)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buy := &purchase.Purchase{
		Document:  entity.NewDocument(monthStart),
		Warehouse: "Main Yard",
		TaxType:   gst.TaxLocal,
		Items: []purchase.Line{
			{Product: "MS Prop", Quantity: types.NewQuantityFromInt(200), UnitPrice: types.NewMoneyFromInt(450)},
			{Product: "Base Jack", Quantity: types.NewQuantityFromInt(100), UnitPrice: types.NewMoneyFromInt(220)},
		},
	}
	if err := purchases.Create(ctx, buy); err != nil {
		return fmt.Errorf("seed purchase: %w", err)
	}

	order := &rentalorder.RentalOrder{
		Document:        entity.NewDocument(monthStart.AddDate(0, 0, 2)),
		Customer:        "Apex Constructions",
		Site:            "Metro Station Site",
		WorkOrderNumber: "WO/2215",
		TaxType:         gst.TaxLocal,
		Items: []rentalorder.Line{
			{Product: "MS Prop", Quantity: types.NewQuantityFromInt(80), PerDayRent: types.NewMoney(2.5)},
		},
	}
	if err := orders.Create(ctx, order); err != nil {
		return fmt.Errorf("seed rental order: %w", err)
	}

	move := &transfer.Transfer{
		Document:        entity.NewDocument(monthStart.AddDate(0, 0, 4)),
		From:            "Main Yard",
		Customer:        "Apex Constructions",
		Site:            "Metro Station Site",
		RentalStartDate: monthStart.AddDate(0, 0, 4),
		Status:          transfer.StatusRented,
		RentalOrderID:   &order.ID,
		WorkOrderNumber: "WO/2215",
		Items: []transfer.Line{
			{Product: "MS Prop", Quantity: types.NewQuantityFromInt(80), PerDayRent: types.NewMoney(2.5)},
		},
	}
	if err := transfers.Create(ctx, move); err != nil {
		return fmt.Errorf("seed transfer: %w", err)
	}

	log.Infow("demo documents seeded",
		"purchase", buy.Number,
		"rental_order", order.Number,
		"transfer", move.Number,
	)
	return nil
}
