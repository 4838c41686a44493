package frontoffice

import (
	bookingRepo "stayflow/database/repository/booking"
	"stayflow/models"
)

// ProfileInvalidator is notified after every booking mutation so derived
// guest views recompute on the next read.
type ProfileInvalidator interface {
	Invalidate()
}

// BookingService manages the front-office booking lifecycle.
type BookingService interface {
	CreateBooking(b *models.Booking) (*models.Booking, error)
	UpdateBooking(b *models.Booking) error
	UpdateStatus(id, status string) error
	CancelBooking(id string) error
	GetBooking(id string) (*models.Booking, error)
	ListBookings() ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
	CRM  ProfileInvalidator
}
