package crm

import (
	bookingRepo "stayflow/database/repository/booking"
	profileRepo "stayflow/database/repository/profile"
	transactionRepo "stayflow/database/repository/transaction"
	"stayflow/models"

	"github.com/go-redis/redis/v8"
)

// CRMService exposes the derived guest views. Profiles are recomputed from
// the source collections; mutations to bookings or transactions must call
// Invalidate so the next read recomputes.
type CRMService interface {
	// LoyalGuests returns guests with at least two completed stays,
	// sorted by total spend descending.
	LoyalGuests() ([]models.GuestProfile, error)
	// GuestDirectory returns every guest aggregate, unfiltered.
	GuestDirectory() ([]models.GuestProfile, error)
	// Invalidate drops the cached derivation.
	Invalidate()
}

// DefaultCRMService is the production implementation.
type DefaultCRMService struct {
	Bookings     bookingRepo.BookingRepository
	Transactions transactionRepo.TransactionRepository
	Profiles     profileRepo.ProfileRepository
	Cache        *redis.Client
}
