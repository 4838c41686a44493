package frontoffice

import (
	"errors"
	"fmt"
	"time"

	"stayflow/models"

	"github.com/google/uuid"
)

// ErrBookingNotFound indicates the referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

var validStatuses = map[string]bool{
	models.BookingPending:    true,
	models.BookingConfirmed:  true,
	models.BookingCheckedIn:  true,
	models.BookingCheckedOut: true,
}

var validTypes = map[string]bool{
	models.PropertyHotel:      true,
	models.PropertyLodge:      true,
	models.PropertyRestaurant: true,
}

// validate rejects malformed bookings at the entry boundary. The profile
// aggregator downstream assumes well-formed dates.
func validate(b *models.Booking) error {
	if b.Guest.Name == "" || b.Guest.Email == "" {
		return fmt.Errorf("frontoffice: booking requires guest name and email")
	}
	if !validTypes[b.Type] {
		return fmt.Errorf("frontoffice: unknown property type %q", b.Type)
	}
	if !validStatuses[b.Status] {
		return fmt.Errorf("frontoffice: unknown booking status %q", b.Status)
	}
	in, err := models.ParseDate(b.CheckIn)
	if err != nil {
		return fmt.Errorf("frontoffice: invalid check-in date %q", b.CheckIn)
	}
	out, err := models.ParseDate(b.CheckOut)
	if err != nil {
		return fmt.Errorf("frontoffice: invalid check-out date %q", b.CheckOut)
	}
	if in.After(out) {
		return fmt.Errorf("frontoffice: check-in %s is after check-out %s", b.CheckIn, b.CheckOut)
	}
	return nil
}

func (s *DefaultBookingService) CreateBooking(b *models.Booking) (*models.Booking, error) {
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if err := validate(b); err != nil {
		return nil, err
	}
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now()
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("frontoffice: failed to create booking: %w", err)
	}
	s.invalidate()
	return b, nil
}

func (s *DefaultBookingService) UpdateBooking(b *models.Booking) error {
	if err := validate(b); err != nil {
		return err
	}
	if _, err := s.GetBooking(b.ID); err != nil {
		return err
	}
	if err := s.Repo.Update(b); err != nil {
		return fmt.Errorf("frontoffice: failed to update booking %s: %w", b.ID, err)
	}
	s.invalidate()
	return nil
}

func (s *DefaultBookingService) UpdateStatus(id, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("frontoffice: unknown booking status %q", status)
	}
	if _, err := s.GetBooking(id); err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("frontoffice: failed to update status of booking %s: %w", id, err)
	}
	s.invalidate()
	return nil
}

func (s *DefaultBookingService) CancelBooking(id string) error {
	if _, err := s.GetBooking(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("frontoffice: failed to cancel booking %s: %w", id, err)
	}
	s.invalidate()
	return nil
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

func (s *DefaultBookingService) invalidate() {
	if s.CRM != nil {
		s.CRM.Invalidate()
	}
}
