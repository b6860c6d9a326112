package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "servana/database/repository/appointment"
	servicerRepo "servana/database/repository/servicer"
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/schedule"
	"servana/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const availabilityTTL = 30 * time.Second

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Servicers    servicerRepo.ServicerRepository
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository

	// Cache holds recent availability boards so the client's status poll
	// stays cheap. Nil disables caching.
	Cache *redis.Client

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func availabilityKey(servicerID string) string {
	return "availability:" + servicerID
}

// Availability returns the seven-day slot board for a servicer, serving from
// cache when a fresh copy exists.
func (s *DefaultBookingService) Availability(servicerID string) ([][]schedule.Slot, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(context.Background(), availabilityKey(servicerID)).Result()
		if err == nil {
			var board [][]schedule.Slot
			if jsonErr := json.Unmarshal([]byte(cached), &board); jsonErr == nil {
				return board, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("availability cache read failed", zap.String("servicerID", servicerID), zap.Error(err))
		}
	}

	servicer, err := s.Servicers.GetByID(servicerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load servicer: %w", err)
	}
	if servicer == nil {
		return nil, fmt.Errorf("servicer %s: %w", servicerID, ErrNotFound)
	}

	board := schedule.DailySlots(servicer.WorkingHours, servicer.SlotsBooked, s.now())

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(board); jsonErr == nil {
			if err := s.Cache.Set(context.Background(), availabilityKey(servicerID), data, availabilityTTL).Err(); err != nil {
				logger.Warn("availability cache write failed", zap.String("servicerID", servicerID), zap.Error(err))
			}
		}
	}

	return board, nil
}

func (s *DefaultBookingService) invalidateAvailability(servicerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), availabilityKey(servicerID)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("servicerID", servicerID), zap.Error(err))
	}
}

// Book reserves the requested slot and creates the appointment record. The
// reservation is one conditional ledger update, so of two racing requests for
// the same (servicer, date, time) exactly one commits; the other sees
// ErrSlotConflict and must re-query availability.
func (s *DefaultBookingService) Book(req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	servicer, err := s.Servicers.GetByID(req.ServicerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load servicer: %w", err)
	}
	if servicer == nil {
		return nil, fmt.Errorf("servicer %s: %w", req.ServicerID, ErrNotFound)
	}
	if !servicer.Bookable() {
		return nil, fmt.Errorf("servicer %s: %w", req.ServicerID, ErrServicerUnavailable)
	}

	if req.SlotDate == "" || req.SlotTime == "" {
		return nil, fmt.Errorf("slot date and time are required: %w", ErrValidation)
	}
	if req.Address.Line1 == "" {
		return nil, fmt.Errorf("service address is required: %w", ErrValidation)
	}

	user, err := s.Users.GetByID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	// Commit point: the ledger either accepts the reservation or the slot
	// was taken since the client last fetched availability.
	if err := s.Servicers.BookSlot(req.ServicerID, req.SlotDate, req.SlotTime); err != nil {
		if errors.Is(err, servicerRepo.ErrSlotTaken) {
			return nil, fmt.Errorf("slot %s %s: %w", req.SlotDate, req.SlotTime, ErrSlotConflict)
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	appointment := &models.Appointment{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		ServicerID:   req.ServicerID,
		SlotDate:     req.SlotDate,
		SlotTime:     req.SlotTime,
		UserData:     user.Snapshot(),
		ServicerData: servicer.Snapshot(),
		ServiceType:  servicer.Speciality,
		Description:  req.Description,
		Address:      req.Address,
		Status:       models.StatusPending,
		Cancelled:    false,
		CreatedAt:    s.now(),
	}

	if err := s.Appointments.Create(appointment); err != nil {
		// The reservation is already in the ledger; give the slot back so a
		// failed insert never leaves a phantom hold.
		if relErr := s.Servicers.ReleaseSlot(req.ServicerID, req.SlotDate, req.SlotTime); relErr != nil {
			logger.Error("failed to release slot after insert failure",
				zap.String("servicerID", req.ServicerID),
				zap.String("slotDate", req.SlotDate),
				zap.String("slotTime", req.SlotTime),
				zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateAvailability(req.ServicerID)
	logger.Info("appointment booked",
		zap.String("appointmentID", appointment.ID),
		zap.String("servicerID", req.ServicerID),
		zap.String("slotDate", req.SlotDate),
		zap.String("slotTime", req.SlotTime))

	return appointment, nil
}
