package staff

import (
	staffRepo "stayflow/database/repository/staff"
	"stayflow/models"
)

// AuthResponse carries the staff identity and token returned on login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// StaffService manages staff accounts, authentication and shift scheduling.
type StaffService interface {
	Register(name, email, password, role string) (*models.Staff, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetStaff(id string) (*models.Staff, error)
	ListStaff() ([]models.Staff, error)
	DeleteStaff(id string) error
	UpdateFCMToken(id, token string) error

	// CreateShift rejects shifts overlapping an existing shift of the same
	// staff member on the same date.
	CreateShift(sh *models.Shift) (*models.Shift, error)
	DeleteShift(id string) error
	Roster(from, to string) ([]models.Shift, error)
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
