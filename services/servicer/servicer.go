package servicer

import (
	"fmt"
	"strings"
	"time"

	appointmentRepo "servana/database/repository/appointment"
	servicerRepo "servana/database/repository/servicer"
	"servana/models"
	"servana/schedule"
	"servana/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// AuthResponse contains the servicer's ID and the JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// ServicerService defines business logic for service-provider accounts.
type ServicerService interface {
	// Register creates a servicer in the pending state. Pending servicers
	// cannot log in or take bookings until an admin approves them.
	Register(s models.Servicer) (string, error)
	// Authenticate verifies credentials for an approved, unblocked servicer.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetByID retrieves a servicer profile.
	GetByID(servicerID string) (*models.Servicer, error)
	// UpdateProfile updates profile fields on an existing servicer.
	UpdateProfile(s models.Servicer) (*models.Servicer, error)
	// UpdateWorkingHours replaces the weekly template, sanitizing the input
	// down to the seven recognized day keys.
	UpdateWorkingHours(servicerID string, hours map[string]schedule.DayHours) (*schedule.WorkingHours, error)
	// ToggleDay flips one day's available flag in the weekly template.
	ToggleDay(servicerID, day string) (*schedule.WorkingHours, error)
	// ToggleAvailable flips the servicer-wide availability switch.
	ToggleAvailable(servicerID string) (bool, error)
	// ListAppointments lists bookings targeting this servicer.
	ListAppointments(servicerID string) ([]models.Appointment, error)
	// ListApproved lists bookable servicer profiles for customer browsing.
	ListApproved() ([]models.Servicer, error)
}

// DefaultServicerService is the production implementation.
type DefaultServicerService struct {
	Repo            servicerRepo.ServicerRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// Register validates registration details and creates the servicer in the
// pending state with the default weekly template.
func (s *DefaultServicerService) Register(ser models.Servicer) (string, error) {
	if ser.Name == "" || ser.Email == "" || ser.Password == "" || ser.Speciality == "" {
		return "", fmt.Errorf("name, email, password and speciality are required")
	}
	if !strings.Contains(ser.Email, "@") {
		return "", fmt.Errorf("invalid email address")
	}
	if len(ser.Password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(ser.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing servicer: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("servicer with email %s already exists", ser.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(ser.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	ser.PasswordHash = string(hashedPassword)
	ser.Password = ""
	ser.ID = uuid.New().String()
	ser.Status = models.ServicerPending
	ser.Available = true
	ser.Blocked = false
	ser.WorkingHours = schedule.DefaultWorkingHours()
	ser.SlotsBooked = schedule.SlotLedger{}

	if err := s.Repo.Create(&ser); err != nil {
		return "", fmt.Errorf("failed to create servicer: %w", err)
	}

	utils.GetLogger().Info("servicer registered",
		zap.String("servicerID", ser.ID),
		zap.String("speciality", ser.Speciality))
	return ser.ID, nil
}

// Authenticate verifies credentials. Pending, rejected and blocked servicers
// are refused even with a correct password.
func (s *DefaultServicerService) Authenticate(email, password string) (*AuthResponse, error) {
	ser, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up servicer: %w", err)
	}
	if ser == nil {
		return nil, fmt.Errorf("servicer does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ser.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	switch {
	case ser.Blocked:
		return nil, fmt.Errorf("account is blocked")
	case ser.Status == models.ServicerPending:
		return nil, fmt.Errorf("account is pending approval")
	case ser.Status == models.ServicerRejected:
		return nil, fmt.Errorf("account application was rejected")
	}

	token, err := utils.GenerateToken(ser.ID, "servicer", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{ID: ser.ID, Token: token}, nil
}

// GetByID retrieves a servicer profile.
func (s *DefaultServicerService) GetByID(servicerID string) (*models.Servicer, error) {
	ser, err := s.Repo.GetByID(servicerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get servicer: %w", err)
	}
	if ser == nil {
		return nil, fmt.Errorf("servicer with id %s not found", servicerID)
	}
	return ser, nil
}

// UpdateProfile updates profile fields. Approval status, the block flag and
// the slot ledger are not touchable from here.
func (s *DefaultServicerService) UpdateProfile(ser models.Servicer) (*models.Servicer, error) {
	existing, err := s.GetByID(ser.ID)
	if err != nil {
		return nil, err
	}

	if ser.Name != "" {
		existing.Name = ser.Name
	}
	if ser.Phone != "" {
		existing.Phone = ser.Phone
	}
	if ser.Speciality != "" {
		existing.Speciality = ser.Speciality
	}
	if ser.Experience != "" {
		existing.Experience = ser.Experience
	}
	if ser.About != "" {
		existing.About = ser.About
	}
	if ser.Fees != 0 {
		existing.Fees = ser.Fees
	}
	if ser.Address.Line1 != "" {
		existing.Address = ser.Address
	}
	if ser.District != "" {
		existing.District = ser.District
	}
	if ser.Image != "" {
		existing.Image = ser.Image
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update servicer: %w", err)
	}
	return existing, nil
}

// UpdateWorkingHours replaces the weekly template from client input. Unknown
// day names are dropped, missing start/end times fall back to defaults, and
// untouched days keep their previous entries.
func (s *DefaultServicerService) UpdateWorkingHours(servicerID string, hours map[string]schedule.DayHours) (*schedule.WorkingHours, error) {
	ser, err := s.GetByID(servicerID)
	if err != nil {
		return nil, err
	}

	wh := ser.WorkingHours
	for day, h := range hours {
		wh.Set(strings.ToLower(day), h)
	}
	if err := s.Repo.SetWorkingHours(servicerID, wh); err != nil {
		return nil, fmt.Errorf("failed to update working hours: %w", err)
	}
	return &wh, nil
}

// ToggleDay flips one day's available flag.
func (s *DefaultServicerService) ToggleDay(servicerID, day string) (*schedule.WorkingHours, error) {
	ser, err := s.GetByID(servicerID)
	if err != nil {
		return nil, err
	}

	wh := ser.WorkingHours
	if !wh.Toggle(strings.ToLower(day)) {
		return nil, fmt.Errorf("unknown day %q", day)
	}
	if err := s.Repo.SetWorkingHours(servicerID, wh); err != nil {
		return nil, fmt.Errorf("failed to update working hours: %w", err)
	}
	return &wh, nil
}

// ToggleAvailable flips the servicer-wide availability switch and returns the
// new value.
func (s *DefaultServicerService) ToggleAvailable(servicerID string) (bool, error) {
	ser, err := s.GetByID(servicerID)
	if err != nil {
		return false, err
	}

	next := !ser.Available
	if err := s.Repo.SetAvailable(servicerID, next); err != nil {
		return false, fmt.Errorf("failed to update availability: %w", err)
	}
	return next, nil
}

// ListAppointments lists bookings targeting this servicer, most recent first.
func (s *DefaultServicerService) ListAppointments(servicerID string) ([]models.Appointment, error) {
	appointments, err := s.AppointmentRepo.ListByServicer(servicerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListApproved lists bookable servicer profiles with credentials stripped.
func (s *DefaultServicerService) ListApproved() ([]models.Servicer, error) {
	servicers, err := s.Repo.ListApproved()
	if err != nil {
		return nil, fmt.Errorf("failed to list servicers: %w", err)
	}
	out := make([]models.Servicer, 0, len(servicers))
	for _, ser := range servicers {
		out = append(out, ser.Snapshot())
	}
	return out, nil
}
