package models

import "time"

// Staff roles. The role claim in the JWT must match one of these.
const (
	RoleManager      = "manager"
	RoleFrontDesk    = "frontdesk"
	RoleHousekeeping = "housekeeping"
	RoleInventory    = "inventory"
)

// Staff is a back-office staff member account.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // manager | frontdesk | housekeeping | inventory
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Shift is a scheduled staff shift. Start and End are minutes from midnight.
type Shift struct {
	ID      string `bson:"id" json:"id"`
	StaffID string `bson:"staff_id" json:"staffId"`
	Date    string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start   int    `bson:"start" json:"start"`
	End     int    `bson:"end" json:"end"`
	Role    string `bson:"role" json:"role"` // role the shift covers
}
