package staff

import (
	"errors"
	"testing"

	"stayflow/models"
)

// fakeStaffRepo is an in-memory StaffRepository for shift scheduling tests.
type fakeStaffRepo struct {
	staff  map[string]*models.Staff
	shifts []models.Shift
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*models.Staff)}
}

func (f *fakeStaffRepo) Create(s *models.Staff) error {
	f.staff[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Update(s *models.Staff) error {
	f.staff[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Delete(id string) error {
	delete(f.staff, id)
	return nil
}

func (f *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	return f.staff[id], nil
}

func (f *fakeStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	for _, s := range f.staff {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) GetAll() ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.staff {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStaffRepo) GetByRole(role string) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.staff {
		if s.Role == role {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) SetFCMToken(id, token string) error {
	if s, ok := f.staff[id]; ok {
		s.FCMToken = token
	}
	return nil
}

func (f *fakeStaffRepo) CreateShift(sh *models.Shift) error {
	f.shifts = append(f.shifts, *sh)
	return nil
}

func (f *fakeStaffRepo) DeleteShift(id string) error {
	for i, sh := range f.shifts {
		if sh.ID == id {
			f.shifts = append(f.shifts[:i], f.shifts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStaffRepo) GetShiftsByStaffAndDate(staffID, date string) ([]models.Shift, error) {
	var out []models.Shift
	for _, sh := range f.shifts {
		if sh.StaffID == staffID && sh.Date == date {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) GetShiftsInRange(from, to string) ([]models.Shift, error) {
	var out []models.Shift
	for _, sh := range f.shifts {
		if sh.Date >= from && sh.Date <= to {
			out = append(out, sh)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*DefaultStaffService, *models.Staff) {
	t.Helper()
	repo := newFakeStaffRepo()
	member := &models.Staff{ID: "s1", Name: "Wanjiru", Email: "w@x.com", Role: models.RoleHousekeeping}
	repo.staff[member.ID] = member
	return &DefaultStaffService{Repo: repo}, member
}

func TestCreateShiftOverlap(t *testing.T) {
	svc, member := newTestService(t)

	first := &models.Shift{StaffID: member.ID, Date: "2026-09-01", Start: 8 * 60, End: 16 * 60}
	if _, err := svc.CreateShift(first); err != nil {
		t.Fatalf("first shift should schedule: %v", err)
	}

	cases := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{"identical shift", 8 * 60, 16 * 60, true},
		{"overlaps tail", 15 * 60, 22 * 60, true},
		{"overlaps head", 6 * 60, 9 * 60, true},
		{"contained within", 10 * 60, 12 * 60, true},
		{"back to back after", 16 * 60, 22 * 60, false},
		{"ends exactly at start", 4 * 60, 8 * 60, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sh := &models.Shift{StaffID: member.ID, Date: "2026-09-01", Start: tc.start, End: tc.end}
			_, err := svc.CreateShift(sh)
			if tc.wantErr && !errors.Is(err, ErrShiftOverlap) {
				t.Errorf("expected overlap error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected schedule to succeed, got %v", err)
			}
		})
	}
}

func TestCreateShiftOtherDayDoesNotCollide(t *testing.T) {
	svc, member := newTestService(t)

	a := &models.Shift{StaffID: member.ID, Date: "2026-09-01", Start: 8 * 60, End: 16 * 60}
	if _, err := svc.CreateShift(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := &models.Shift{StaffID: member.ID, Date: "2026-09-02", Start: 8 * 60, End: 16 * 60}
	if _, err := svc.CreateShift(b); err != nil {
		t.Fatalf("same hours on another day should schedule: %v", err)
	}
}

func TestCreateShiftValidation(t *testing.T) {
	svc, member := newTestService(t)

	t.Run("unknown staff", func(t *testing.T) {
		sh := &models.Shift{StaffID: "ghost", Date: "2026-09-01", Start: 60, End: 120}
		if _, err := svc.CreateShift(sh); !errors.Is(err, ErrStaffNotFound) {
			t.Errorf("expected ErrStaffNotFound, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		sh := &models.Shift{StaffID: member.ID, Date: "01-09-2026", Start: 60, End: 120}
		if _, err := svc.CreateShift(sh); err == nil {
			t.Error("expected an error for a malformed date")
		}
	})

	t.Run("inverted times", func(t *testing.T) {
		sh := &models.Shift{StaffID: member.ID, Date: "2026-09-01", Start: 600, End: 540}
		if _, err := svc.CreateShift(sh); err == nil {
			t.Error("expected an error for start >= end")
		}
	})

	t.Run("role defaults to staff role", func(t *testing.T) {
		sh := &models.Shift{StaffID: member.ID, Date: "2026-10-01", Start: 600, End: 720}
		created, err := svc.CreateShift(sh)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Role != models.RoleHousekeeping {
			t.Errorf("Role = %q, want staff member's role", created.Role)
		}
	})
}

func TestRegisterValidation(t *testing.T) {
	svc, member := newTestService(t)

	t.Run("short password", func(t *testing.T) {
		if _, err := svc.Register("New", "new@x.com", "short", models.RoleFrontDesk); err == nil {
			t.Error("expected an error for a short password")
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		if _, err := svc.Register("New", "new@x.com", "longenough", "janitor"); err == nil {
			t.Error("expected an error for an unknown role")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := svc.Register("New", member.Email, "longenough", models.RoleFrontDesk); err == nil {
			t.Error("expected an error for a duplicate email")
		}
	})
}
