package handlers

import (
	"errors"
	"net/http"

	"stayflow/models"
	"stayflow/services/housekeeping"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateRoomHandler registers a room on the board.
func CreateRoomHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var r models.Room
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateRoom(&r)
		if err != nil {
			logger.Error("Failed to create room", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// RoomBoardHandler returns every room with its current status.
func RoomBoardHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := svc.Board()
		if err != nil {
			getLogger(c).Error("Failed to load room board", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room board"})
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

// SetRoomStatusHandler updates a room's housekeeping status.
func SetRoomStatusHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SetRoomStatus(c.Param("id"), req.Status); err != nil {
			logger.Error("Failed to set room status", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// CreateTaskHandler opens a housekeeping task.
func CreateTaskHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var t models.HousekeepingTask
		if err := c.ShouldBindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateTask(&t)
		if err != nil {
			logger.Error("Failed to create housekeeping task", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// AssignTaskHandler assigns a task to a staff member and notifies them.
func AssignTaskHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			StaffID string `json:"staffId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.AssignTask(c.Param("id"), req.StaffID); err != nil {
			if errors.Is(err, housekeeping.ErrTaskNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
				return
			}
			logger.Error("Failed to assign task", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "assigned"})
	}
}

// CompleteTaskHandler marks a task done.
func CompleteTaskHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CompleteTask(c.Param("id")); err != nil {
			if errors.Is(err, housekeeping.ErrTaskNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
				return
			}
			getLogger(c).Error("Failed to complete task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "done"})
	}
}

// OpenTasksHandler returns tasks not yet done.
func OpenTasksHandler(svc housekeeping.HousekeepingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := svc.OpenTasks()
		if err != nil {
			getLogger(c).Error("Failed to list open tasks", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list open tasks"})
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}
