package admin

import (
	"crypto/subtle"
	"fmt"
	"time"

	"servana/config"
	appointmentRepo "servana/database/repository/appointment"
	servicerRepo "servana/database/repository/servicer"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/services/booking"
	"servana/utils"

	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

// Dashboard is the admin landing-page summary.
type Dashboard struct {
	Users              int                  `json:"users"`
	Servicers          int                  `json:"servicers"`
	Appointments       int                  `json:"appointments"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

// AdminService defines the back-office operations: servicer approval,
// blocking, account removal and platform-wide listings.
type AdminService interface {
	Authenticate(email, password string) (string, error)
	GetDashboard() (*Dashboard, error)

	ListPendingServicers() ([]models.Servicer, error)
	ApproveServicer(servicerID string) error
	RejectServicer(servicerID string) error
	SetServicerBlocked(servicerID string, blocked bool) error
	UpdateServicer(s models.Servicer) (*models.Servicer, error)
	// DeleteServicer removes a servicer account. Refused while any
	// appointment still references the servicer.
	DeleteServicer(servicerID string) error

	ListUsers() ([]models.User, error)
	// DeleteUser removes a user account along with every appointment the
	// user ever made, in either direction of the lifecycle.
	DeleteUser(userID string) (int64, error)

	ListServicers() ([]models.Servicer, error)
	ListAppointments() ([]models.Appointment, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users        userRepo.UserRepository
	Servicers    servicerRepo.ServicerRepository
	Appointments appointmentRepo.AppointmentRepository
}

// Authenticate checks the single admin credential pair from configuration and
// returns a token.
func (s *DefaultAdminService) Authenticate(email, password string) (string, error) {
	if config.AppConfig.AdminPassword == "" {
		return "", fmt.Errorf("admin login is not configured")
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(config.AppConfig.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(config.AppConfig.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", fmt.Errorf("invalid credentials")
	}
	token, err := utils.GenerateToken(email, "admin", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetDashboard returns platform counts and the five most recent bookings.
func (s *DefaultAdminService) GetDashboard() (*Dashboard, error) {
	users, err := s.Users.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	servicers, err := s.Servicers.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list servicers: %w", err)
	}
	appointments, err := s.Appointments.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	latest := appointments
	if len(latest) > 5 {
		latest = latest[:5]
	}
	return &Dashboard{
		Users:              len(users),
		Servicers:          len(servicers),
		Appointments:       len(appointments),
		LatestAppointments: latest,
	}, nil
}

// ListPendingServicers lists registrations awaiting review.
func (s *DefaultAdminService) ListPendingServicers() ([]models.Servicer, error) {
	return s.Servicers.ListByStatus(models.ServicerPending)
}

// ApproveServicer marks a pending registration approved, making the servicer
// bookable and able to log in.
func (s *DefaultAdminService) ApproveServicer(servicerID string) error {
	return s.setServicerStatus(servicerID, models.ServicerApproved)
}

// RejectServicer marks a registration rejected.
func (s *DefaultAdminService) RejectServicer(servicerID string) error {
	return s.setServicerStatus(servicerID, models.ServicerRejected)
}

func (s *DefaultAdminService) setServicerStatus(servicerID, status string) error {
	ser, err := s.Servicers.GetByID(servicerID)
	if err != nil {
		return fmt.Errorf("failed to get servicer: %w", err)
	}
	if ser == nil {
		return fmt.Errorf("servicer %s: %w", servicerID, booking.ErrNotFound)
	}
	if err := s.Servicers.SetStatus(servicerID, status); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	utils.GetLogger().Info("servicer status changed",
		zap.String("servicerID", servicerID), zap.String("status", status))
	return nil
}

// SetServicerBlocked blocks or unblocks a servicer. Blocked servicers keep
// their data but cannot log in or take new bookings.
func (s *DefaultAdminService) SetServicerBlocked(servicerID string, blocked bool) error {
	ser, err := s.Servicers.GetByID(servicerID)
	if err != nil {
		return fmt.Errorf("failed to get servicer: %w", err)
	}
	if ser == nil {
		return fmt.Errorf("servicer %s: %w", servicerID, booking.ErrNotFound)
	}
	if err := s.Servicers.SetBlocked(servicerID, blocked); err != nil {
		return fmt.Errorf("failed to set blocked: %w", err)
	}
	return nil
}

// UpdateServicer edits a servicer profile on behalf of the back office.
func (s *DefaultAdminService) UpdateServicer(ser models.Servicer) (*models.Servicer, error) {
	existing, err := s.Servicers.GetByID(ser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get servicer: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("servicer %s: %w", ser.ID, booking.ErrNotFound)
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

	if err := s.Servicers.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update servicer: %w", err)
	}
	return existing, nil
}

// DeleteServicer removes a servicer account. Any remaining appointment,
// whatever its state, blocks the removal so booking history never dangles.
func (s *DefaultAdminService) DeleteServicer(servicerID string) error {
	ser, err := s.Servicers.GetByID(servicerID)
	if err != nil {
		return fmt.Errorf("failed to get servicer: %w", err)
	}
	if ser == nil {
		return fmt.Errorf("servicer %s: %w", servicerID, booking.ErrNotFound)
	}

	count, err := s.Appointments.CountByServicer(servicerID)
	if err != nil {
		return fmt.Errorf("failed to count appointments: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("servicer %s has %d appointments: %w", servicerID, count, booking.ErrReferentialGuard)
	}

	if err := s.Servicers.Delete(servicerID); err != nil {
		return fmt.Errorf("failed to delete servicer: %w", err)
	}
	utils.GetLogger().Info("servicer deleted", zap.String("servicerID", servicerID))
	return nil
}

// ListUsers lists all customer accounts.
func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	return s.Users.ListAll()
}

// DeleteUser removes a user and every appointment the user made. Returns the
// number of appointments removed in the cascade.
func (s *DefaultAdminService) DeleteUser(userID string) (int64, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return 0, fmt.Errorf("user %s: %w", userID, booking.ErrNotFound)
	}

	removed, err := s.Appointments.DeleteByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete appointments: %w", err)
	}
	if err := s.Users.Delete(userID); err != nil {
		return removed, fmt.Errorf("failed to delete user: %w", err)
	}

	utils.GetLogger().Info("user deleted",
		zap.String("userID", userID), zap.Int64("appointmentsRemoved", removed))
	return removed, nil
}

// ListServicers lists all servicer accounts regardless of status.
func (s *DefaultAdminService) ListServicers() ([]models.Servicer, error) {
	return s.Servicers.ListAll()
}

// ListAppointments lists every booking on the platform, most recent first.
func (s *DefaultAdminService) ListAppointments() ([]models.Appointment, error) {
	return s.Appointments.ListAll()
}
