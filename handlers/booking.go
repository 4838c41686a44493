package handlers

import (
	"errors"
	"net/http"

	"stayflow/models"
	"stayflow/services/frontoffice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler records a new booking.
func CreateBookingHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var b models.Booking
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateBooking(&b)
		if err != nil {
			logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateBookingHandler replaces a booking's mutable fields.
func UpdateBookingHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var b models.Booking
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		b.ID = c.Param("id")

		if err := svc.UpdateBooking(&b); err != nil {
			if errors.Is(err, frontoffice.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logger.Error("Failed to update booking", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// UpdateBookingStatusHandler moves a booking through its lifecycle.
func UpdateBookingStatusHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.UpdateStatus(c.Param("id"), req.Status); err != nil {
			if errors.Is(err, frontoffice.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logger.Error("Failed to update booking status", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// CancelBookingHandler deletes a booking.
func CancelBookingHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.CancelBooking(c.Param("id")); err != nil {
			if errors.Is(err, frontoffice.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logger.Error("Failed to cancel booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

// GetBookingHandler returns one booking by ID.
func GetBookingHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.GetBooking(c.Param("id"))
		if err != nil {
			if errors.Is(err, frontoffice.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			getLogger(c).Error("Failed to fetch booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// ListBookingsHandler returns all bookings in creation order.
func ListBookingsHandler(svc frontoffice.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListBookings()
		if err != nil {
			getLogger(c).Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
