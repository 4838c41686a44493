package models

import "time"

// Booking statuses.
const (
	BookingPending    = "Pending"
	BookingConfirmed  = "Confirmed"
	BookingCheckedIn  = "Checked-in"
	BookingCheckedOut = "Checked-out"
)

// Property types a booking can belong to.
const (
	PropertyHotel      = "Hotel"
	PropertyLodge      = "Lodge"
	PropertyRestaurant = "Restaurant"
)

// GuestRef is the guest identity embedded in a booking.
type GuestRef struct {
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"` // Cloudinary public URL
}

// Booking represents a front-office booking record.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	Guest     GuestRef  `bson:"guest" json:"guest"`           // Embedded guest reference
	Status    string    `bson:"status" json:"status"`         // Pending | Confirmed | Checked-in | Checked-out
	CheckIn   string    `bson:"check_in" json:"checkIn"`      // "YYYY-MM-DD", checkIn <= checkOut
	CheckOut  string    `bson:"check_out" json:"checkOut"`    // "YYYY-MM-DD"
	Type      string    `bson:"type" json:"type"`             // Hotel | Lodge | Restaurant
	Room      string    `bson:"room" json:"room"`             // Free-text room/table label
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when booking was created
}

// DateLayout is the calendar-date format used across booking and
// transaction records.
const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
