package staffRepo

import "stayflow/models"

// StaffRepository defines persistence operations for staff accounts and
// their scheduled shifts.
type StaffRepository interface {
	Create(s *models.Staff) error
	Update(s *models.Staff) error
	Delete(id string) error
	GetByID(id string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	GetByRole(role string) ([]models.Staff, error)
	SetFCMToken(id, token string) error

	CreateShift(sh *models.Shift) error
	DeleteShift(id string) error
	GetShiftsByStaffAndDate(staffID, date string) ([]models.Shift, error)
	GetShiftsInRange(from, to string) ([]models.Shift, error)
}
