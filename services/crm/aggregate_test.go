package crm

import (
	"testing"

	"stayflow/models"
)

func booking(name, email, status, room, checkIn, checkOut string) models.Booking {
	return models.Booking{
		Guest:    models.GuestRef{Name: name, Email: email},
		Status:   status,
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func paid(guest string, amount int64) models.Transaction {
	return models.Transaction{Guest: guest, Amount: amount, Status: models.TransactionPaid}
}

func TestDeriveGuestProfilesEmptyInputs(t *testing.T) {
	if got := DeriveGuestProfiles(nil, nil); len(got) != 0 {
		t.Fatalf("expected no profiles, got %d", len(got))
	}
	if got := DeriveGuestProfiles(nil, []models.Transaction{paid("Ann", 500)}); len(got) != 0 {
		t.Fatalf("transactions without bookings must yield no profiles, got %d", len(got))
	}
}

func TestDeriveGuestProfilesSingleStayExcluded(t *testing.T) {
	bookings := []models.Booking{
		booking("Ann", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
	}
	if got := DeriveGuestProfiles(bookings, nil); len(got) != 0 {
		t.Fatalf("one completed stay must not qualify, got %d profiles", len(got))
	}
}

func TestDeriveGuestProfilesPendingStaysExcluded(t *testing.T) {
	// Two stays but only one checked out: still below the repeat threshold.
	bookings := []models.Booking{
		booking("Ann", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
		booking("Ann", "ann@x.com", models.BookingConfirmed, "102", "2026-02-01", "2026-02-03"),
	}
	if got := DeriveGuestProfiles(bookings, nil); len(got) != 0 {
		t.Fatalf("confirmed booking must not count as a completed stay, got %d profiles", len(got))
	}
}

func TestDeriveGuestProfilesIdenticalStaysBothCount(t *testing.T) {
	// Two checked-out bookings with the same room and dates: both history
	// entries match the completed set, so the guest qualifies.
	bookings := []models.Booking{
		booking("Ann", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
		booking("Ann", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
	}

	got := DeriveGuestProfiles(bookings, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(got))
	}
	p := got[0]
	if p.TotalStays != 2 {
		t.Errorf("TotalStays = %d, want 2", p.TotalStays)
	}
	if p.TotalSpend != 0 {
		t.Errorf("TotalSpend = %d, want 0 with no transactions", p.TotalSpend)
	}
	if p.Tier != models.TierBronze {
		t.Errorf("Tier = %q, want Bronze", p.Tier)
	}
}

func TestDeriveGuestProfilesEndToEnd(t *testing.T) {
	bookings := []models.Booking{
		booking("Ann Ochieng", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
		booking("Ben Karimi", "ben@x.com", models.BookingCheckedOut, "201", "2026-01-05", "2026-01-06"),
		booking("Ann Ochieng", "ann@x.com", models.BookingCheckedOut, "102", "2026-02-10", "2026-02-12"),
		booking("Ben Karimi", "ben@x.com", models.BookingCheckedOut, "202", "2026-02-15", "2026-02-16"),
		booking("Cara Wanjiru", "cara@x.com", models.BookingCheckedIn, "301", "2026-03-01", "2026-03-02"),
	}
	transactions := []models.Transaction{
		paid("Ann Ochieng", 30000),
		paid("Ben Karimi", 80000),
		{Guest: "Ann Ochieng", Amount: 99999, Status: models.TransactionPending},
		paid("Nobody Known", 12345),
	}

	got := DeriveGuestProfiles(bookings, transactions)
	if len(got) != 2 {
		t.Fatalf("expected 2 loyal guests, got %d", len(got))
	}

	// Sorted by spend descending.
	if got[0].Email != "ben@x.com" || got[1].Email != "ann@x.com" {
		t.Fatalf("wrong order: %q then %q", got[0].Email, got[1].Email)
	}

	ben, ann := got[0], got[1]
	if ben.TotalSpend != 80000 || ben.Tier != models.TierGold {
		t.Errorf("ben: spend %d tier %q, want 80000 Gold", ben.TotalSpend, ben.Tier)
	}
	if ann.TotalSpend != 30000 || ann.Tier != models.TierSilver {
		t.Errorf("ann: spend %d tier %q, want 30000 Silver (pending excluded)", ann.TotalSpend, ann.Tier)
	}

	// Stay history preserves booking input order.
	if ann.StayHistory[0].Room != "101" || ann.StayHistory[1].Room != "102" {
		t.Errorf("ann stay history out of input order: %+v", ann.StayHistory)
	}
}

func TestDeriveGuestProfilesNameJoinFirstBookingWins(t *testing.T) {
	// Two different guests sharing a printed name: the transaction lands on
	// the guest whose booking appears first in the input.
	bookings := []models.Booking{
		booking("J. Smith", "j1@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-02"),
		booking("J. Smith", "j1@x.com", models.BookingCheckedOut, "103", "2026-03-01", "2026-03-02"),
		booking("J. Smith", "j2@x.com", models.BookingCheckedOut, "102", "2026-02-01", "2026-02-02"),
		booking("J. Smith", "j2@x.com", models.BookingCheckedOut, "104", "2026-04-01", "2026-04-02"),
	}
	transactions := []models.Transaction{paid("J. Smith", 40000)}

	got := DeriveGuestProfiles(bookings, transactions)
	if len(got) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(got))
	}

	var first, second *models.GuestProfile
	for i := range got {
		switch got[i].Email {
		case "j1@x.com":
			first = &got[i]
		case "j2@x.com":
			second = &got[i]
		}
	}
	if first == nil || second == nil {
		t.Fatalf("missing profiles: %+v", got)
	}
	if first.TotalSpend != 40000 {
		t.Errorf("first booking's guest should take the spend, got %d", first.TotalSpend)
	}
	if second.TotalSpend != 0 {
		t.Errorf("second guest should get nothing, got %d", second.TotalSpend)
	}
}

func TestDeriveGuestDirectoryIncludesEveryone(t *testing.T) {
	bookings := []models.Booking{
		booking("Ann", "ann@x.com", models.BookingCheckedOut, "101", "2026-01-01", "2026-01-03"),
		booking("Ben", "ben@x.com", models.BookingPending, "201", "2026-01-05", "2026-01-06"),
	}

	got := DeriveGuestDirectory(bookings, nil)
	if len(got) != 2 {
		t.Fatalf("directory should include one-time and pending guests, got %d", len(got))
	}
}
