package roomRepo

import "stayflow/models"

// RoomRepository defines persistence operations for rooms and
// housekeeping tasks.
type RoomRepository interface {
	CreateRoom(r *models.Room) error
	UpdateRoomStatus(id, status string) error
	GetRoomByID(id string) (*models.Room, error)
	GetAllRooms() ([]models.Room, error)
	CountRooms() (int64, error)

	CreateTask(t *models.HousekeepingTask) error
	UpdateTask(t *models.HousekeepingTask) error
	GetTaskByID(id string) (*models.HousekeepingTask, error)
	GetOpenTasks() ([]models.HousekeepingTask, error)
	GetTasksDueOn(date string) ([]models.HousekeepingTask, error)
}
