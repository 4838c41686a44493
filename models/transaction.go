package models

import "time"

// Transaction statuses.
const (
	TransactionPaid    = "Paid"
	TransactionPending = "Pending"
)

// Transaction represents a guest payment record. Guest holds the guest's
// name and is the loose join key back to Booking.Guest.Name; there is no
// foreign key.
type Transaction struct {
	ID        string    `bson:"id" json:"id"`                 // Unique transaction identifier (UUID)
	Guest     string    `bson:"guest" json:"guest"`           // Guest name (loose join to bookings)
	Date      string    `bson:"date" json:"date"`             // "YYYY-MM-DD"
	Type      string    `bson:"type" json:"type"`             // Free-text category (Room, Restaurant, Spa, ...)
	Amount    int64     `bson:"amount" json:"amount"`         // Whole currency units
	Status    string    `bson:"status" json:"status"`         // Paid | Pending
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
