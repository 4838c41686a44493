package routes

import (
	"net/http"
	"time"

	"stayflow/handlers"
	"stayflow/middleware"
	"stayflow/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStaffRoutes registers staff account and scheduling endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/register", hb.RegisterStaffHandler)
		api.POST("/login", hb.AuthenticateStaffHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.POST("/logout", hb.LogoutStaffHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.GET("/roster", hb.RosterHandler)

		// Account and shift administration is manager-only.
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleManager))
		admin.GET("", hb.ListStaffHandler)
		admin.GET("/id/:id", hb.GetStaffHandler)
		admin.DELETE("/id/:id", hb.DeleteStaffHandler)
		admin.POST("/shifts", hb.CreateShiftHandler)
		admin.DELETE("/shifts/:id", hb.DeleteShiftHandler)
	}
}

// RegisterBookingRoutes registers the front-office booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)

		write := api.Group("")
		write.Use(middleware.RequireRole(models.RoleFrontDesk))
		write.POST("", hb.CreateBookingHandler)
		write.PUT("/:id", hb.UpdateBookingHandler)
		write.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		write.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterTransactionRoutes registers transaction and settlement endpoints.
func RegisterTransactionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transactions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("", hb.ListTransactionsHandler)
		api.GET("/:id", hb.GetTransactionHandler)

		write := api.Group("")
		write.Use(middleware.RequireRole(models.RoleFrontDesk))
		write.POST("", hb.CreateTransactionHandler)
		write.POST("/:id/settle", hb.SettleTransactionHandler)
	}
}

// RegisterGuestRoutes registers the derived guest profile endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("/loyal", hb.LoyalGuestsHandler)
		api.GET("/directory", hb.GuestDirectoryHandler)
	}
}

// RegisterPricingRoutes registers rate plan, rule, and simulation endpoints.
// Plan and rule mutation is manager-only; simulation is open to front desk.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("/plans", hb.ListRatePlansHandler)
		api.GET("/plans/:id/rules", hb.ListPricingRulesHandler)

		simulate := api.Group("")
		simulate.Use(middleware.RequireRole(models.RoleFrontDesk))
		simulate.POST("/plans/:id/simulate", hb.SimulatePriceHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleManager))
		admin.POST("/plans", hb.CreateRatePlanHandler)
		admin.DELETE("/plans/:id", hb.DeleteRatePlanHandler)
		admin.POST("/plans/:id/rules", hb.AddPricingRuleHandler)
		admin.DELETE("/plans/:id/rules/:ruleId", hb.DeletePricingRuleHandler)
	}
}

// RegisterHousekeepingRoutes registers room board and task endpoints.
func RegisterHousekeepingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/housekeeping")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("/rooms", hb.RoomBoardHandler)
		api.GET("/tasks", hb.OpenTasksHandler)

		write := api.Group("")
		write.Use(middleware.RequireRole(models.RoleHousekeeping, models.RoleFrontDesk))
		write.PATCH("/rooms/:id/status", hb.SetRoomStatusHandler)
		write.POST("/tasks", hb.CreateTaskHandler)
		write.POST("/tasks/:id/assign", hb.AssignTaskHandler)
		write.POST("/tasks/:id/complete", hb.CompleteTaskHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleManager))
		admin.POST("/rooms", hb.CreateRoomHandler)
	}
}

// RegisterInventoryRoutes registers stock item and movement endpoints.
func RegisterInventoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inventory")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("/items", hb.ListItemsHandler)
		api.GET("/items/:id/movements", hb.ListMovementsHandler)
		api.GET("/low-stock", hb.LowStockHandler)

		write := api.Group("")
		write.Use(middleware.RequireRole(models.RoleInventory))
		write.POST("/items", hb.CreateItemHandler)
		write.PUT("/items/:id", hb.UpdateItemHandler)
		write.DELETE("/items/:id", hb.DeleteItemHandler)
		write.POST("/items/:id/movements", hb.RecordMovementHandler)
	}
}

// RegisterRevenueRoutes registers occupancy and summary endpoints.
func RegisterRevenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/revenue")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.GET("/occupancy", hb.OccupancyHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleManager))
		admin.GET("/summary/:date", hb.RevenueSummaryHandler)
		admin.GET("/summaries", hb.RevenueRangeHandler)
	}
}

// RegisterAIRoutes registers the generative assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.POST("/receipts/extract", hb.ExtractReceiptHandler)
		api.POST("/inventory/forecast", hb.ForecastInventoryHandler)
		api.POST("/guests/offer", hb.GenerateOfferHandler)
		api.DELETE("/context", hb.ClearAIContextHandler)
	}
}

// RegisterStorageRoutes registers upload endpoints for receipts and avatars.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo, hb.Tokens))
		api.POST("/:bucket", hb.StorageHandler.UploadFileHandler)
		api.GET("/signed/:publicId", hb.StorageHandler.GetSecureDownloadURLHandler)
		api.DELETE("/:publicId", hb.StorageHandler.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stayflow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStaffRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTransactionRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterHousekeepingRoutes(r, hb)
	RegisterInventoryRoutes(r, hb)
	RegisterRevenueRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
