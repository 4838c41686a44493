// File: stayflow/handlers/bundle.go
package handlers

import (
	staffRepoPkg "stayflow/database/repository/staff"
	"stayflow/services/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepoPkg.StaffRepository
	Tokens    staff.TokenRevoker

	// Staff & auth endpoints
	RegisterStaffHandler     gin.HandlerFunc
	AuthenticateStaffHandler gin.HandlerFunc
	LogoutStaffHandler       gin.HandlerFunc
	UpdateFCMTokenHandler    gin.HandlerFunc
	GetStaffHandler          gin.HandlerFunc
	ListStaffHandler         gin.HandlerFunc
	DeleteStaffHandler       gin.HandlerFunc
	CreateShiftHandler       gin.HandlerFunc
	DeleteShiftHandler       gin.HandlerFunc
	RosterHandler            gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc

	// Transaction endpoints
	CreateTransactionHandler gin.HandlerFunc
	GetTransactionHandler    gin.HandlerFunc
	ListTransactionsHandler  gin.HandlerFunc
	SettleTransactionHandler gin.HandlerFunc

	// Guest CRM endpoints
	LoyalGuestsHandler    gin.HandlerFunc
	GuestDirectoryHandler gin.HandlerFunc

	// Pricing endpoints
	CreateRatePlanHandler    gin.HandlerFunc
	ListRatePlansHandler     gin.HandlerFunc
	DeleteRatePlanHandler    gin.HandlerFunc
	AddPricingRuleHandler    gin.HandlerFunc
	ListPricingRulesHandler  gin.HandlerFunc
	DeletePricingRuleHandler gin.HandlerFunc
	SimulatePriceHandler     gin.HandlerFunc

	// Housekeeping endpoints
	CreateRoomHandler    gin.HandlerFunc
	RoomBoardHandler     gin.HandlerFunc
	SetRoomStatusHandler gin.HandlerFunc
	CreateTaskHandler    gin.HandlerFunc
	AssignTaskHandler    gin.HandlerFunc
	CompleteTaskHandler  gin.HandlerFunc
	OpenTasksHandler     gin.HandlerFunc

	// Inventory endpoints
	CreateItemHandler     gin.HandlerFunc
	UpdateItemHandler     gin.HandlerFunc
	DeleteItemHandler     gin.HandlerFunc
	ListItemsHandler      gin.HandlerFunc
	RecordMovementHandler gin.HandlerFunc
	ListMovementsHandler  gin.HandlerFunc
	LowStockHandler       gin.HandlerFunc

	// Revenue endpoints
	OccupancyHandler      gin.HandlerFunc
	RevenueSummaryHandler gin.HandlerFunc
	RevenueRangeHandler   gin.HandlerFunc

	// AI endpoints
	ExtractReceiptHandler    gin.HandlerFunc
	ForecastInventoryHandler gin.HandlerFunc
	GenerateOfferHandler     gin.HandlerFunc
	ClearAIContextHandler    gin.HandlerFunc

	// Storage endpoints
	StorageHandler *StorageHandler
}
