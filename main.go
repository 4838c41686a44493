// File: stayflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayflow/config"
	"stayflow/cron"
	"stayflow/database"
	bookingRepoPkg "stayflow/database/repository/booking"
	inventoryRepoPkg "stayflow/database/repository/inventory"
	pricingRepoPkg "stayflow/database/repository/pricing"
	profileRepoPkg "stayflow/database/repository/profile"
	roomRepoPkg "stayflow/database/repository/room"
	staffRepoPkg "stayflow/database/repository/staff"
	transactionRepoPkg "stayflow/database/repository/transaction"
	"stayflow/handlers"
	"stayflow/middleware"
	"stayflow/routes"
	"stayflow/services/crm"
	"stayflow/services/frontoffice"
	"stayflow/services/housekeeping"
	ai "stayflow/services/intelligence"
	"stayflow/services/inventory"
	"stayflow/services/notification"
	"stayflow/services/payments"
	"stayflow/services/pricing"
	"stayflow/services/revenue"
	"stayflow/services/staff"
	"stayflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAIContextCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	transactionRepo := transactionRepoPkg.NewMongoTransactionRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	pricingRepo := pricingRepoPkg.NewMongoPricingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	inventoryRepo := inventoryRepoPkg.NewMongoInventoryRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	crmService := &crm.DefaultCRMService{
		Bookings:     bookingRepo,
		Transactions: transactionRepo,
		Profiles:     profileRepo,
		Cache:        utils.GetCacheClient(),
	}

	bookingService := &frontoffice.DefaultBookingService{
		Repo: bookingRepo,
		CRM:  crmService,
	}

	transactionService := &payments.DefaultTransactionService{
		Repo: transactionRepo,
		CRM:  crmService,
	}

	revenueService := &revenue.DefaultRevenueService{
		Bookings:     bookingRepo,
		Transactions: transactionRepo,
		Rooms:        roomRepo,
		Summaries:    profileRepo,
		Cache:        utils.GetCacheClient(),
	}

	pricingService := &pricing.DefaultPricingService{
		Repo:      pricingRepo,
		Occupancy: revenueService,
	}

	staffService := &staff.DefaultStaffService{
		Repo: staffRepo,
	}

	tokenRevoker := &staff.RedisTokenRevoker{
		Client: utils.GetCacheClient(),
	}

	notificationService := &notification.DefaultNotificationService{
		Staff: staffRepo,
	}

	housekeepingService := &housekeeping.DefaultHousekeepingService{
		Repo:     roomRepo,
		Notifier: notificationService,
	}

	inventoryService := &inventory.DefaultInventoryService{
		Repo:     inventoryRepo,
		Notifier: notificationService,
	}

	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	aiService := &ai.DefaultAIService{
		Client: geminiClient,
		Store:  ai.NewRedisContextStore(utils.GetAIContextCacheClient()),
	}

	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,
		Tokens:    tokenRevoker,

		// Staff & auth endpoints.
		RegisterStaffHandler:     handlers.RegisterStaffHandler(staffService),
		AuthenticateStaffHandler: handlers.AuthenticateStaffHandler(staffService),
		LogoutStaffHandler:       handlers.LogoutStaffHandler(tokenRevoker),
		UpdateFCMTokenHandler:    handlers.UpdateFCMTokenHandler(staffService),
		GetStaffHandler:          handlers.GetStaffHandler(staffService),
		ListStaffHandler:         handlers.ListStaffHandler(staffService),
		DeleteStaffHandler:       handlers.DeleteStaffHandler(staffService),
		CreateShiftHandler:       handlers.CreateShiftHandler(staffService),
		DeleteShiftHandler:       handlers.DeleteShiftHandler(staffService),
		RosterHandler:            handlers.RosterHandler(staffService),

		// Booking endpoints.
		CreateBookingHandler:       handlers.CreateBookingHandler(bookingService),
		UpdateBookingHandler:       handlers.UpdateBookingHandler(bookingService),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatusHandler(bookingService),
		CancelBookingHandler:       handlers.CancelBookingHandler(bookingService),
		GetBookingHandler:          handlers.GetBookingHandler(bookingService),
		ListBookingsHandler:        handlers.ListBookingsHandler(bookingService),

		// Transaction endpoints.
		CreateTransactionHandler: handlers.CreateTransactionHandler(transactionService),
		GetTransactionHandler:    handlers.GetTransactionHandler(transactionService),
		ListTransactionsHandler:  handlers.ListTransactionsHandler(transactionService),
		SettleTransactionHandler: handlers.SettleTransactionHandler(transactionService),

		// Guest CRM endpoints.
		LoyalGuestsHandler:    handlers.LoyalGuestsHandler(crmService),
		GuestDirectoryHandler: handlers.GuestDirectoryHandler(crmService),

		// Pricing endpoints.
		CreateRatePlanHandler:    handlers.CreateRatePlanHandler(pricingService),
		ListRatePlansHandler:     handlers.ListRatePlansHandler(pricingService),
		DeleteRatePlanHandler:    handlers.DeleteRatePlanHandler(pricingService),
		AddPricingRuleHandler:    handlers.AddPricingRuleHandler(pricingService),
		ListPricingRulesHandler:  handlers.ListPricingRulesHandler(pricingService),
		DeletePricingRuleHandler: handlers.DeletePricingRuleHandler(pricingService),
		SimulatePriceHandler:     handlers.SimulatePriceHandler(pricingService),

		// Housekeeping endpoints.
		CreateRoomHandler:    handlers.CreateRoomHandler(housekeepingService),
		RoomBoardHandler:     handlers.RoomBoardHandler(housekeepingService),
		SetRoomStatusHandler: handlers.SetRoomStatusHandler(housekeepingService),
		CreateTaskHandler:    handlers.CreateTaskHandler(housekeepingService),
		AssignTaskHandler:    handlers.AssignTaskHandler(housekeepingService),
		CompleteTaskHandler:  handlers.CompleteTaskHandler(housekeepingService),
		OpenTasksHandler:     handlers.OpenTasksHandler(housekeepingService),

		// Inventory endpoints.
		CreateItemHandler:     handlers.CreateItemHandler(inventoryService),
		UpdateItemHandler:     handlers.UpdateItemHandler(inventoryService),
		DeleteItemHandler:     handlers.DeleteItemHandler(inventoryService),
		ListItemsHandler:      handlers.ListItemsHandler(inventoryService),
		RecordMovementHandler: handlers.RecordMovementHandler(inventoryService),
		ListMovementsHandler:  handlers.ListMovementsHandler(inventoryService),
		LowStockHandler:       handlers.LowStockHandler(inventoryService),

		// Revenue endpoints.
		OccupancyHandler:      handlers.OccupancyHandler(revenueService),
		RevenueSummaryHandler: handlers.RevenueSummaryHandler(revenueService),
		RevenueRangeHandler:   handlers.RevenueRangeHandler(revenueService),

		// AI endpoints.
		ExtractReceiptHandler:    handlers.ExtractReceiptHandler(aiService),
		ForecastInventoryHandler: handlers.ForecastInventoryHandler(aiService, inventoryService),
		GenerateOfferHandler:     handlers.GenerateOfferHandler(aiService, crmService),
		ClearAIContextHandler:    handlers.ClearAIContextHandler(aiService),

		// Storage endpoints.
		StorageHandler: storageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker for nightly rollups and task reminders.
	cron.InitWorker(revenueService, roomRepo, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
