package models

import "time"

// Housekeeping room statuses.
const (
	RoomClean      = "clean"
	RoomDirty      = "dirty"
	RoomInspected  = "inspected"
	RoomOutOfOrder = "out-of-order"
)

// Housekeeping task statuses.
const (
	TaskOpen       = "open"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

// Room is a physical room on the housekeeping board.
type Room struct {
	ID     string `bson:"id" json:"id"`
	Number string `bson:"number" json:"number"`
	Type   string `bson:"type" json:"type"`     // Hotel | Lodge | Restaurant
	Status string `bson:"status" json:"status"` // clean | dirty | inspected | out-of-order
}

// HousekeepingTask is a unit of housekeeping work tied to a room.
type HousekeepingTask struct {
	ID         string    `bson:"id" json:"id"`
	RoomID     string    `bson:"room_id" json:"roomId"`
	AssignedTo string    `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"` // staff ID
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	Status     string    `bson:"status" json:"status"`
	DueDate    string    `bson:"due_date,omitempty" json:"dueDate,omitempty"` // "YYYY-MM-DD"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
