package revenue

import (
	bookingRepo "stayflow/database/repository/booking"
	profileRepo "stayflow/database/repository/profile"
	roomRepo "stayflow/database/repository/room"
	transactionRepo "stayflow/database/repository/transaction"
	"stayflow/models"

	"github.com/go-redis/redis/v8"
)

// RevenueService produces revenue summaries and the live occupancy figure
// consumed by the pricing simulator.
type RevenueService interface {
	// CurrentOccupancy returns today's occupancy percentage, cached briefly.
	CurrentOccupancy() (float64, error)
	// SummaryForDate builds a revenue summary for one calendar date.
	SummaryForDate(date string) (*models.RevenueSummary, error)
	// RollupDate builds and persists the summary document for a date.
	RollupDate(date string) error
	// Range returns persisted summaries in [from, to].
	Range(from, to string) ([]models.RevenueSummary, error)
}

// DefaultRevenueService is the production implementation.
type DefaultRevenueService struct {
	Bookings     bookingRepo.BookingRepository
	Transactions transactionRepo.TransactionRepository
	Rooms        roomRepo.RoomRepository
	Summaries    profileRepo.ProfileRepository
	Cache        *redis.Client
}
