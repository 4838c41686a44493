package bookingRepo

import "stayflow/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	Update(b *models.Booking) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	CountActiveOnDate(date string) (int64, error)
}
