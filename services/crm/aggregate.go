package crm

import (
	"sort"

	"stayflow/models"
)

// DeriveGuestProfiles folds the flat booking and transaction lists into
// per-guest aggregates keyed by email, then filters to loyal guests: a
// profile survives only if at least two of its stays correspond to
// checked-out bookings with the same (room, checkIn, checkOut) triple.
// Pure and deterministic; recomputed from scratch on every call.
func DeriveGuestProfiles(bookings []models.Booking, transactions []models.Transaction) []models.GuestProfile {
	profiles, order := foldProfiles(bookings, transactions)
	completed := completedStays(bookings)

	var result []models.GuestProfile
	for _, email := range order {
		p := profiles[email]
		n := 0
		for _, s := range p.StayHistory {
			if _, ok := completed[email][s]; ok {
				n++
			}
		}
		if n >= 2 {
			result = append(result, *p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpend > result[j].TotalSpend
	})
	return result
}

// DeriveGuestDirectory returns the aggregate for every guest seen in the
// booking list, with no repeat-stay filter, sorted by spend. This backs the
// unfiltered guest directory view.
func DeriveGuestDirectory(bookings []models.Booking, transactions []models.Transaction) []models.GuestProfile {
	profiles, order := foldProfiles(bookings, transactions)

	var result []models.GuestProfile
	for _, email := range order {
		result = append(result, *profiles[email])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpend > result[j].TotalSpend
	})
	return result
}

// foldProfiles builds the email-keyed aggregates. The returned order slice
// preserves first-seen booking order so stay history follows booking
// insertion order, not chronological order.
func foldProfiles(bookings []models.Booking, transactions []models.Transaction) (map[string]*models.GuestProfile, []string) {
	profiles := make(map[string]*models.GuestProfile)
	var order []string

	for _, b := range bookings {
		email := b.Guest.Email
		p, ok := profiles[email]
		if !ok {
			// Name and avatar come from the first booking seen for this email.
			p = &models.GuestProfile{
				Email:  email,
				Name:   b.Guest.Name,
				Avatar: b.Guest.Avatar,
			}
			profiles[email] = p
			order = append(order, email)
		}
		p.TotalStays++
		p.StayHistory = append(p.StayHistory, models.Stay{
			Room:     b.Room,
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
		})
	}

	// Spend attribution joins each Paid transaction to the first booking
	// whose guest NAME matches the transaction's guest field. The join is
	// by name, not email; two guests sharing a name collide and the first
	// booking wins. Kept as-is for parity with the books.
	for _, t := range transactions {
		if t.Status != models.TransactionPaid {
			continue
		}
		for _, b := range bookings {
			if b.Guest.Name == t.Guest {
				profiles[b.Guest.Email].TotalSpend += t.Amount
				break
			}
		}
	}

	for _, p := range profiles {
		p.Tier = ClassifyTier(p.TotalSpend)
	}
	return profiles, order
}

// completedStays collects, per email, the set of (room, checkIn, checkOut)
// triples belonging to checked-out bookings.
func completedStays(bookings []models.Booking) map[string]map[models.Stay]struct{} {
	completed := make(map[string]map[models.Stay]struct{})
	for _, b := range bookings {
		if b.Status != models.BookingCheckedOut {
			continue
		}
		key := models.Stay{Room: b.Room, CheckIn: b.CheckIn, CheckOut: b.CheckOut}
		m := completed[b.Guest.Email]
		if m == nil {
			m = make(map[models.Stay]struct{})
			completed[b.Guest.Email] = m
		}
		m[key] = struct{}{}
	}
	return completed
}
