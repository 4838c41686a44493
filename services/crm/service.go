package crm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"go.uber.org/zap"
)

const (
	loyalCacheKey = "crm:loyal"
	cacheTTL      = time.Hour
)

// cachedDerivation pairs a derived profile list with the content hash of
// the inputs it was derived from.
type cachedDerivation struct {
	Hash     string                `json:"hash"`
	Profiles []models.GuestProfile `json:"profiles"`
}

// LoyalGuests returns the loyal-guest view, memoized in Redis keyed by a
// content hash of the source collections.
func (s *DefaultCRMService) LoyalGuests() ([]models.GuestProfile, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("crm: failed to load bookings: %w", err)
	}
	txns, err := s.Transactions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("crm: failed to load transactions: %w", err)
	}

	hash := contentHash(bookings, txns)
	if cached := s.lookupCache(hash); cached != nil {
		return cached, nil
	}

	profiles := DeriveGuestProfiles(bookings, txns)
	s.storeCache(hash, profiles)

	// Persist snapshots out-of-band; a storage failure never fails the read.
	go s.persistSnapshots(profiles)

	return profiles, nil
}

// GuestDirectory returns the unfiltered guest aggregates. Not memoized;
// the directory view is rarely hit compared to the loyalty dashboard.
func (s *DefaultCRMService) GuestDirectory() ([]models.GuestProfile, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("crm: failed to load bookings: %w", err)
	}
	txns, err := s.Transactions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("crm: failed to load transactions: %w", err)
	}
	return DeriveGuestDirectory(bookings, txns), nil
}

// Invalidate drops the cached derivation. Called after every booking or
// transaction mutation.
func (s *DefaultCRMService) Invalidate() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, loyalCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("crm: failed to invalidate profile cache", zap.Error(err))
	}
}

func (s *DefaultCRMService) lookupCache(hash string) []models.GuestProfile {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, loyalCacheKey).Result()
	if err != nil {
		return nil
	}
	var cached cachedDerivation
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached.Hash != hash {
		return nil
	}
	return cached.Profiles
}

func (s *DefaultCRMService) storeCache(hash string, profiles []models.GuestProfile) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(cachedDerivation{Hash: hash, Profiles: profiles})
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, loyalCacheKey, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("crm: failed to cache profiles", zap.Error(err))
	}
}

// persistSnapshots merge-writes each derived profile to the document store.
// Failures are reported via the log only.
func (s *DefaultCRMService) persistSnapshots(profiles []models.GuestProfile) {
	if s.Profiles == nil {
		return
	}
	for i := range profiles {
		if err := s.Profiles.UpsertProfile(&profiles[i]); err != nil {
			utils.GetLogger().Warn("crm: failed to persist profile snapshot",
				zap.String("email", profiles[i].Email), zap.Error(err))
		}
	}
}

// contentHash computes a hash over the serialized source collections.
func contentHash(bookings []models.Booking, txns []models.Transaction) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	enc.Encode(bookings)
	enc.Encode(txns)
	return hex.EncodeToString(h.Sum(nil))
}
