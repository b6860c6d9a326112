package user

import (
	"fmt"
	"strings"
	"time"

	appointmentRepo "servana/database/repository/appointment"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// AuthResponse contains the user's ID and the JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// UserService defines business logic for customer accounts.
type UserService interface {
	// Register validates registration details, creates the user and returns
	// the new user's ID and token.
	Register(u models.User) (*AuthResponse, error)
	// Authenticate verifies credentials and returns ID and token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetByID retrieves a user profile.
	GetByID(userID string) (*models.User, error)
	// UpdateProfile updates an existing user's profile fields.
	UpdateProfile(u models.User) (*models.User, error)
	// ListAppointments lists the user's bookings, most recent first.
	ListAppointments(userID string) ([]models.Appointment, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo            userRepo.UserRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// Register validates required fields, hashes the password, persists the user
// and returns the user's ID and token.
func (s *DefaultUserService) Register(u models.User) (*AuthResponse, error) {
	if u.Name == "" || u.Email == "" || u.Password == "" || u.Phone == "" {
		return nil, fmt.Errorf("name, email, password and phone are required")
	}
	if !strings.Contains(u.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(u.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists", u.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashedPassword)
	u.Password = ""
	u.ID = uuid.New().String()

	if err := s.Repo.Create(&u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, "customer", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{ID: u.ID, Token: token}, nil
}

// Authenticate verifies credentials and returns ID and token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, "customer", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{ID: u.ID, Token: token}, nil
}

// GetByID retrieves a user profile.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return u, nil
}

// UpdateProfile updates profile fields on an existing user.
func (s *DefaultUserService) UpdateProfile(u models.User) (*models.User, error) {
	existing, err := s.Repo.GetByID(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("user with id %s not found", u.ID)
	}

	if u.Name != "" {
		existing.Name = u.Name
	}
	if u.Phone != "" {
		existing.Phone = u.Phone
	}
	if u.Address.Line1 != "" {
		existing.Address = u.Address
	}
	if u.District != "" {
		existing.District = u.District
	}
	if u.Gender != "" {
		existing.Gender = u.Gender
	}
	if u.DOB != "" {
		existing.DOB = u.DOB
	}
	if u.Image != "" {
		existing.Image = u.Image
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

// ListAppointments lists the user's bookings, most recent first.
func (s *DefaultUserService) ListAppointments(userID string) ([]models.Appointment, error) {
	appointments, err := s.AppointmentRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
