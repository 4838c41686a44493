package handlers

import (
	"errors"
	"net/http"

	"stayflow/models"
	"stayflow/services/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStaffHandler returns one staff member.
func GetStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := svc.GetStaff(c.Param("id"))
		if err != nil {
			if errors.Is(err, staff.ErrStaffNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
				return
			}
			getLogger(c).Error("Failed to fetch staff", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// ListStaffHandler returns all staff accounts.
func ListStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := svc.ListStaff()
		if err != nil {
			getLogger(c).Error("Failed to list staff", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

// DeleteStaffHandler removes a staff account.
func DeleteStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteStaff(c.Param("id")); err != nil {
			if errors.Is(err, staff.ErrStaffNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
				return
			}
			getLogger(c).Error("Failed to delete staff", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// CreateShiftHandler schedules a shift, rejecting overlaps.
func CreateShiftHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var sh models.Shift
		if err := c.ShouldBindJSON(&sh); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateShift(&sh)
		if err != nil {
			switch {
			case errors.Is(err, staff.ErrShiftOverlap):
				c.JSON(http.StatusConflict, gin.H{"error": "Shift overlaps an existing shift"})
			case errors.Is(err, staff.ErrStaffNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			default:
				logger.Error("Failed to create shift", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// DeleteShiftHandler removes a scheduled shift.
func DeleteShiftHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteShift(c.Param("id")); err != nil {
			getLogger(c).Error("Failed to delete shift", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shift"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// RosterHandler returns shifts scheduled in [from, to], optionally
// narrowed to one staff member or one role.
func RosterHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from")
		to := c.Query("to")
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
			return
		}

		shifts, err := svc.Roster(from, to)
		if err != nil {
			getLogger(c).Error("Failed to load roster", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roster"})
			return
		}

		staffID := c.Query("staffId")
		role := c.Query("role")
		if staffID != "" || role != "" {
			filtered := make([]models.Shift, 0, len(shifts))
			for _, sh := range shifts {
				if staffID != "" && sh.StaffID != staffID {
					continue
				}
				if role != "" && sh.Role != role {
					continue
				}
				filtered = append(filtered, sh)
			}
			shifts = filtered
		}
		c.JSON(http.StatusOK, shifts)
	}
}
