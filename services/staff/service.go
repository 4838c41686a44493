package staff

import (
	"errors"
	"fmt"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var (
	// ErrStaffNotFound indicates the referenced staff member does not exist.
	ErrStaffNotFound = errors.New("staff not found")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrShiftOverlap indicates a shift colliding with an existing one.
	ErrShiftOverlap = errors.New("shift overlaps an existing shift")
)

var validRoles = map[string]bool{
	models.RoleManager:      true,
	models.RoleFrontDesk:    true,
	models.RoleHousekeeping: true,
	models.RoleInventory:    true,
}

func (s *DefaultStaffService) Register(name, email, password, role string) (*models.Staff, error) {
	if name == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("staff: name, email and a password of at least 8 characters are required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("staff: unknown role %q", role)
	}
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("staff: email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to hash password: %w", err)
	}

	member := &models.Staff{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(member); err != nil {
		return nil, fmt.Errorf("staff: failed to create staff: %w", err)
	}
	return member, nil
}

func (s *DefaultStaffService) Authenticate(email, password string) (*AuthResponse, error) {
	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to fetch staff: %w", err)
	}
	if member == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(member.ID, member.Email, member.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to generate token: %w", err)
	}
	return &AuthResponse{
		ID:    member.ID,
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
		Token: token,
	}, nil
}

func (s *DefaultStaffService) GetStaff(id string) (*models.Staff, error) {
	member, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}
	return member, nil
}

func (s *DefaultStaffService) ListStaff() ([]models.Staff, error) {
	return s.Repo.GetAll()
}

func (s *DefaultStaffService) DeleteStaff(id string) error {
	if _, err := s.GetStaff(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("staff: failed to delete staff %s: %w", id, err)
	}
	return nil
}

func (s *DefaultStaffService) UpdateFCMToken(id, token string) error {
	if err := s.Repo.SetFCMToken(id, token); err != nil {
		return fmt.Errorf("staff: failed to update FCM token for %s: %w", id, err)
	}
	return nil
}

func (s *DefaultStaffService) CreateShift(sh *models.Shift) (*models.Shift, error) {
	if _, err := models.ParseDate(sh.Date); err != nil {
		return nil, fmt.Errorf("staff: invalid shift date %q", sh.Date)
	}
	if sh.Start < 0 || sh.End > 24*60 || sh.Start >= sh.End {
		return nil, fmt.Errorf("staff: shift times must satisfy 0 <= start < end <= 1440")
	}
	member, err := s.Repo.GetByID(sh.StaffID)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to fetch staff %s: %w", sh.StaffID, err)
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}

	existing, err := s.Repo.GetShiftsByStaffAndDate(sh.StaffID, sh.Date)
	if err != nil {
		return nil, fmt.Errorf("staff: failed to check shift overlap: %w", err)
	}
	for _, e := range existing {
		if sh.Start < e.End && e.Start < sh.End {
			return nil, ErrShiftOverlap
		}
	}

	if sh.Role == "" {
		sh.Role = member.Role
	}
	sh.ID = uuid.New().String()
	if err := s.Repo.CreateShift(sh); err != nil {
		return nil, fmt.Errorf("staff: failed to create shift: %w", err)
	}
	return sh, nil
}

func (s *DefaultStaffService) DeleteShift(id string) error {
	if err := s.Repo.DeleteShift(id); err != nil {
		return fmt.Errorf("staff: failed to delete shift %s: %w", id, err)
	}
	return nil
}

func (s *DefaultStaffService) Roster(from, to string) ([]models.Shift, error) {
	if _, err := models.ParseDate(from); err != nil {
		return nil, fmt.Errorf("staff: invalid roster start %q", from)
	}
	if _, err := models.ParseDate(to); err != nil {
		return nil, fmt.Errorf("staff: invalid roster end %q", to)
	}
	return s.Repo.GetShiftsInRange(from, to)
}
