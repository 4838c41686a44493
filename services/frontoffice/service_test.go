package frontoffice

import (
	"testing"

	"stayflow/models"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) Update(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveOnDate(date string) (int64, error) {
	return 0, nil
}

// countingInvalidator records how often derived views were invalidated.
type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

func validBooking() *models.Booking {
	return &models.Booking{
		Guest:    models.GuestRef{Name: "Ann", Email: "ann@x.com"},
		Status:   models.BookingConfirmed,
		Type:     models.PropertyHotel,
		Room:     "101",
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-04",
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	cases := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"missing guest email", func(b *models.Booking) { b.Guest.Email = "" }},
		{"unknown type", func(b *models.Booking) { b.Type = "Resort" }},
		{"unknown status", func(b *models.Booking) { b.Status = "Archived" }},
		{"malformed check-in", func(b *models.Booking) { b.CheckIn = "01/09/2026" }},
		{"malformed check-out", func(b *models.Booking) { b.CheckOut = "tomorrow" }},
		{"check-in after check-out", func(b *models.Booking) { b.CheckIn = "2026-09-10" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(b)
			if _, err := svc.CreateBooking(b); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestCreateBookingDefaultsAndInvalidation(t *testing.T) {
	inv := &countingInvalidator{}
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), CRM: inv}

	b := validBooking()
	b.Status = ""
	created, err := svc.CreateBooking(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != models.BookingPending {
		t.Errorf("Status = %q, want default Pending", created.Status)
	}
	if created.ID == "" {
		t.Error("expected an assigned booking ID")
	}
	if inv.n != 1 {
		t.Errorf("derived views invalidated %d times, want 1", inv.n)
	}
}

func TestMutationsInvalidateDerivedViews(t *testing.T) {
	inv := &countingInvalidator{}
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, CRM: inv}

	created, err := svc.CreateBooking(validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(created.ID, models.BookingCheckedIn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CancelBooking(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.n != 3 {
		t.Errorf("derived views invalidated %d times, want 3", inv.n)
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}
	if err := svc.UpdateStatus("any", "Vanished"); err == nil {
		t.Error("expected an error for an unknown status")
	}
}
