package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayflow/models"

	"github.com/gin-gonic/gin"
)

// fakeCRMService serves canned profiles.
type fakeCRMService struct {
	loyal []models.GuestProfile
	err   error
}

func (f *fakeCRMService) LoyalGuests() ([]models.GuestProfile, error)    { return f.loyal, f.err }
func (f *fakeCRMService) GuestDirectory() ([]models.GuestProfile, error) { return f.loyal, f.err }
func (f *fakeCRMService) Invalidate()                                    {}

func TestLoyalGuestsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns profiles as JSON", func(t *testing.T) {
		svc := &fakeCRMService{loyal: []models.GuestProfile{
			{Email: "ben@x.com", Name: "Ben", TotalStays: 2, TotalSpend: 80000, Tier: models.TierGold},
			{Email: "ann@x.com", Name: "Ann", TotalStays: 2, TotalSpend: 30000, Tier: models.TierSilver},
		}}

		r := gin.New()
		r.GET("/api/guests/loyal", LoyalGuestsHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/guests/loyal", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var got []models.GuestProfile
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(got) != 2 || got[0].Email != "ben@x.com" {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})

	t.Run("propagates failures as 500", func(t *testing.T) {
		svc := &fakeCRMService{err: errors.New("mongo down")}

		r := gin.New()
		r.GET("/api/guests/loyal", LoyalGuestsHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/guests/loyal", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})
}
