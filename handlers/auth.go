package handlers

import (
	"errors"
	"net/http"
	"strings"

	"stayflow/models"
	"stayflow/services/staff"
	"stayflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requireManagerToken enforces a manager-role bearer token on an otherwise
// public route. Used by registration, which must stay reachable before the
// first account exists.
func requireManagerToken(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Staff registration requires a manager token"})
		return false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := utils.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return false
	}
	_, role, err := utils.ExtractClaims(tokenString)
	if err != nil || role != models.RoleManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only managers can register staff"})
		return false
	}
	return true
}

// LogoutStaffHandler revokes the presented token so it stops working
// immediately, not at its natural expiry. Runs behind the auth middleware,
// so the bearer token is present and valid here.
func LogoutStaffHandler(tokens staff.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if err := tokens.Revoke(c.Request.Context(), tokenString, utils.TokenTTL(tokenString)); err != nil {
			getLogger(c).Error("Failed to revoke token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}

// RegisterStaffHandler creates a staff account. Open for the very first
// account (bootstrap); manager-only once any staff exist.
func RegisterStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.ListStaff()
		if err != nil {
			logger.Error("Failed to check existing staff", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration unavailable"})
			return
		}
		if len(existing) > 0 && !requireManagerToken(c) {
			return
		}

		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
			Role     string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		member, err := svc.Register(req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			logger.Error("Failed to register staff", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		member.PasswordHash = ""
		c.JSON(http.StatusCreated, member)
	}
}

// AuthenticateStaffHandler logs a staff member in and issues a JWT.
func AuthenticateStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, staff.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			logger.Error("Failed to authenticate staff", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// UpdateFCMTokenHandler stores the caller's device token for pushes.
func UpdateFCMTokenHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		staffID := c.GetString("staffID")
		var req struct {
			Token string `json:"token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.UpdateFCMToken(staffID, req.Token); err != nil {
			logger.Error("Failed to update FCM token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update device token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
