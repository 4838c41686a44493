package housekeeping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTaskNotFound indicates the referenced housekeeping task does not exist.
var ErrTaskNotFound = errors.New("housekeeping task not found")

var validRoomStatuses = map[string]bool{
	models.RoomClean:      true,
	models.RoomDirty:      true,
	models.RoomInspected:  true,
	models.RoomOutOfOrder: true,
}

func (s *DefaultHousekeepingService) CreateRoom(r *models.Room) (*models.Room, error) {
	if r.Number == "" {
		return nil, fmt.Errorf("housekeeping: room requires a number")
	}
	if r.Status == "" {
		r.Status = models.RoomClean
	}
	if !validRoomStatuses[r.Status] {
		return nil, fmt.Errorf("housekeeping: unknown room status %q", r.Status)
	}
	r.ID = uuid.New().String()
	if err := s.Repo.CreateRoom(r); err != nil {
		return nil, fmt.Errorf("housekeeping: failed to create room: %w", err)
	}
	return r, nil
}

func (s *DefaultHousekeepingService) Board() ([]models.Room, error) {
	return s.Repo.GetAllRooms()
}

func (s *DefaultHousekeepingService) SetRoomStatus(roomID, status string) error {
	if !validRoomStatuses[status] {
		return fmt.Errorf("housekeeping: unknown room status %q", status)
	}
	if err := s.Repo.UpdateRoomStatus(roomID, status); err != nil {
		return fmt.Errorf("housekeeping: failed to set room %s to %s: %w", roomID, status, err)
	}
	return nil
}

func (s *DefaultHousekeepingService) CreateTask(t *models.HousekeepingTask) (*models.HousekeepingTask, error) {
	room, err := s.Repo.GetRoomByID(t.RoomID)
	if err != nil {
		return nil, fmt.Errorf("housekeeping: failed to fetch room %s: %w", t.RoomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("housekeeping: room %s does not exist", t.RoomID)
	}
	if t.DueDate != "" {
		if _, err := models.ParseDate(t.DueDate); err != nil {
			return nil, fmt.Errorf("housekeeping: invalid due date %q", t.DueDate)
		}
	}
	t.ID = uuid.New().String()
	t.Status = models.TaskOpen
	t.CreatedAt = time.Now()
	if err := s.Repo.CreateTask(t); err != nil {
		return nil, fmt.Errorf("housekeeping: failed to create task: %w", err)
	}
	return t, nil
}

// AssignTask sets the assignee and notifies them. A failed push is logged,
// not surfaced; the assignment itself already happened.
func (s *DefaultHousekeepingService) AssignTask(taskID, staffID string) error {
	t, err := s.Repo.GetTaskByID(taskID)
	if err != nil {
		return fmt.Errorf("housekeeping: failed to fetch task %s: %w", taskID, err)
	}
	if t == nil {
		return ErrTaskNotFound
	}

	t.AssignedTo = staffID
	t.Status = models.TaskInProgress
	if err := s.Repo.UpdateTask(t); err != nil {
		return fmt.Errorf("housekeeping: failed to assign task %s: %w", taskID, err)
	}

	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Notifier.SendStaffPush(ctx, staffID, "New housekeeping task",
			fmt.Sprintf("Room task assigned: %s", t.Note),
			map[string]string{"taskId": t.ID, "roomId": t.RoomID})
		if err != nil {
			utils.GetLogger().Warn("housekeeping: failed to notify assignee",
				zap.String("staffId", staffID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultHousekeepingService) CompleteTask(taskID string) error {
	t, err := s.Repo.GetTaskByID(taskID)
	if err != nil {
		return fmt.Errorf("housekeeping: failed to fetch task %s: %w", taskID, err)
	}
	if t == nil {
		return ErrTaskNotFound
	}
	t.Status = models.TaskDone
	if err := s.Repo.UpdateTask(t); err != nil {
		return fmt.Errorf("housekeeping: failed to complete task %s: %w", taskID, err)
	}
	return nil
}

func (s *DefaultHousekeepingService) OpenTasks() ([]models.HousekeepingTask, error) {
	return s.Repo.GetOpenTasks()
}
