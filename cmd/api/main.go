package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stocktrack/internal/handler"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"
	"stocktrack/internal/service"
	"stocktrack/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Open the store and provision the schema
	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = database.DefaultPath
	}
	db, err := database.Open(storePath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", storePath, err)
	}
	if err := database.Initialize(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	partyRepo := repository.NewPartyRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	invService := service.NewInventoryService(itemRepo, categoryRepo, db)
	partyService := service.NewPartyService(partyRepo)
	orderService := service.NewOrderService(orderRepo, db)
	reportService := service.NewReportService(itemRepo, partyRepo, orderRepo)

	invHandler := handler.NewInventoryHandler(invService)
	supplierHandler := handler.NewPartyHandler(partyService, model.KindSupplier)
	customerHandler := handler.NewPartyHandler(partyService, model.KindCustomer)
	purchaseHandler := handler.NewOrderHandler(orderService, model.KindPurchase)
	salesHandler := handler.NewOrderHandler(orderService, model.KindSales)
	reportHandler := handler.NewReportHandler(reportService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "StockTrack v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 5. Routes
	handler.Register(app, invHandler, supplierHandler, customerHandler, purchaseHandler, salesHandler, reportHandler)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
