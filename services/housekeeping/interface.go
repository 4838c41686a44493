package housekeeping

import (
	roomRepo "stayflow/database/repository/room"
	"stayflow/models"
	"stayflow/services/notification"
)

// HousekeepingService manages the room board and housekeeping tasks.
type HousekeepingService interface {
	CreateRoom(r *models.Room) (*models.Room, error)
	Board() ([]models.Room, error)
	SetRoomStatus(roomID, status string) error

	CreateTask(t *models.HousekeepingTask) (*models.HousekeepingTask, error)
	// AssignTask assigns the task to a staff member and pushes a notification.
	AssignTask(taskID, staffID string) error
	CompleteTask(taskID string) error
	OpenTasks() ([]models.HousekeepingTask, error)
}

// DefaultHousekeepingService is the production implementation.
type DefaultHousekeepingService struct {
	Repo     roomRepo.RoomRepository
	Notifier notification.NotificationService
}
