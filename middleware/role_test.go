package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayflow/models"

	"github.com/gin-gonic/gin"
)

func roleRouter(role string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("staffRole", role)
		}
	})
	r.GET("/guarded", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"matching role passes", models.RoleHousekeeping, []string{models.RoleHousekeeping}, http.StatusOK},
		{"manager passes any guard", models.RoleManager, []string{models.RoleInventory}, http.StatusOK},
		{"wrong role is forbidden", models.RoleFrontDesk, []string{models.RoleInventory}, http.StatusForbidden},
		{"missing role is unauthorized", "", []string{models.RoleInventory}, http.StatusUnauthorized},
		{"one of several roles passes", models.RoleFrontDesk, []string{models.RoleHousekeeping, models.RoleFrontDesk}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := roleRouter(tc.role, RequireRole(tc.allowed...))
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}
