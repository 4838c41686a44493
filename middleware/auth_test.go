package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"github.com/gin-gonic/gin"
)

// fakeStaffRepo serves one known staff member.
type fakeStaffRepo struct {
	member *models.Staff
}

func (f *fakeStaffRepo) Create(s *models.Staff) error { return nil }
func (f *fakeStaffRepo) Update(s *models.Staff) error { return nil }
func (f *fakeStaffRepo) Delete(id string) error       { return nil }
func (f *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	if f.member != nil && f.member.ID == id {
		return f.member, nil
	}
	return nil, nil
}
func (f *fakeStaffRepo) GetByEmail(email string) (*models.Staff, error) { return nil, nil }
func (f *fakeStaffRepo) GetAll() ([]models.Staff, error)                { return nil, nil }
func (f *fakeStaffRepo) GetByRole(role string) ([]models.Staff, error)  { return nil, nil }
func (f *fakeStaffRepo) SetFCMToken(id, token string) error             { return nil }
func (f *fakeStaffRepo) CreateShift(sh *models.Shift) error             { return nil }
func (f *fakeStaffRepo) DeleteShift(id string) error                    { return nil }
func (f *fakeStaffRepo) GetShiftsByStaffAndDate(staffID, date string) ([]models.Shift, error) {
	return nil, nil
}
func (f *fakeStaffRepo) GetShiftsInRange(from, to string) ([]models.Shift, error) {
	return nil, nil
}

// setRevoker marks selected tokens as revoked.
type setRevoker struct {
	revoked map[string]bool
}

func (s *setRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	s.revoked[token] = true
	return nil
}

func (s *setRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

func authRouter(repo *fakeStaffRepo, revoker *setRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuthMiddleware(repo, revoker), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("staffID")})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	repo := &fakeStaffRepo{member: &models.Staff{ID: "s1", Role: models.RoleFrontDesk}}
	revoker := &setRevoker{revoked: make(map[string]bool)}
	r := authRouter(repo, revoker)

	token, err := utils.GenerateToken("s1", "ann@x.com", models.RoleFrontDesk, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	get := func(authHeader string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("valid token passes", func(t *testing.T) {
		if code := get("Bearer " + token); code != http.StatusOK {
			t.Errorf("status = %d, want 200", code)
		}
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		if code := get(""); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", code)
		}
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		if code := get("Bearer not-a-token"); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", code)
		}
	})

	t.Run("unknown staff account is unauthorized", func(t *testing.T) {
		ghost, err := utils.GenerateToken("s2", "bob@x.com", models.RoleFrontDesk, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code := get("Bearer " + ghost); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", code)
		}
	})

	t.Run("revoked token is unauthorized", func(t *testing.T) {
		if err := revoker.Revoke(context.Background(), token, time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code := get("Bearer " + token); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401 after revocation", code)
		}
	})
}
