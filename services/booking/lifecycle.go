package booking

import (
	"context"
	"fmt"

	appointmentRepo "servana/database/repository/appointment"
	servicerRepo "servana/database/repository/servicer"
	"servana/models"
	"servana/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultLifecycleService is the production implementation.
type DefaultLifecycleService struct {
	Servicers    servicerRepo.ServicerRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
}

// Allowed servicer-side status transitions. Rejection is reversible; nothing
// leaves completed.
var transitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusRejected},
	models.StatusRejected:  {models.StatusPending},
	models.StatusConfirmed: {models.StatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies a servicer-side workflow transition. The status of a
// cancelled appointment is frozen.
func (s *DefaultLifecycleService) UpdateStatus(servicerID, appointmentID, newStatus string) error {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appointment == nil {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}
	if appointment.ServicerID != servicerID {
		return fmt.Errorf("appointment %s does not belong to servicer %s: %w", appointmentID, servicerID, ErrUnauthorized)
	}
	if !models.ValidStatus(newStatus) {
		return fmt.Errorf("unknown status %q: %w", newStatus, ErrValidation)
	}
	if appointment.Cancelled {
		return fmt.Errorf("appointment %s is cancelled: %w", appointmentID, ErrInvalidTransition)
	}
	if !transitionAllowed(appointment.Status, newStatus) {
		return fmt.Errorf("cannot move appointment from %s to %s: %w", appointment.Status, newStatus, ErrInvalidTransition)
	}

	if err := s.Appointments.SetStatus(appointmentID, newStatus); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	utils.GetLogger().Info("appointment status updated",
		zap.String("appointmentID", appointmentID),
		zap.String("from", appointment.Status),
		zap.String("to", newStatus))
	return nil
}

// Cancel flips the cancelled flag and releases the held slot back into the
// servicer's ledger. Every booked slot is released by exactly one effective
// cancellation; cancelling an already-cancelled appointment is a no-op.
func (s *DefaultLifecycleService) Cancel(requesterID, appointmentID string, asAdmin bool) error {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appointment == nil {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}
	if !asAdmin && appointment.UserID != requesterID {
		return fmt.Errorf("appointment %s does not belong to user %s: %w", appointmentID, requesterID, ErrUnauthorized)
	}
	if appointment.Cancelled {
		return nil
	}
	if appointment.Status == models.StatusCompleted || appointment.Status == models.StatusRejected {
		return fmt.Errorf("cannot cancel a %s appointment: %w", appointment.Status, ErrInvalidTransition)
	}

	if err := s.Appointments.SetCancelled(appointmentID); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if err := s.Servicers.ReleaseSlot(appointment.ServicerID, appointment.SlotDate, appointment.SlotTime); err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}

	s.invalidateAvailability(appointment.ServicerID)
	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", appointmentID),
		zap.String("servicerID", appointment.ServicerID),
		zap.Bool("admin", asAdmin))
	return nil
}

// Delete removes a terminal appointment. Customers may delete their own
// cancelled or completed appointments; servicers only their own completed
// ones; admins any cancelled or completed record.
func (s *DefaultLifecycleService) Delete(requesterID, appointmentID, role string) error {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appointment == nil {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}

	switch role {
	case RoleCustomer:
		if appointment.UserID != requesterID {
			return fmt.Errorf("appointment %s does not belong to user %s: %w", appointmentID, requesterID, ErrUnauthorized)
		}
		if !appointment.Deletable() {
			return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotDeletable)
		}
	case RoleServicer:
		if appointment.ServicerID != requesterID {
			return fmt.Errorf("appointment %s does not belong to servicer %s: %w", appointmentID, requesterID, ErrUnauthorized)
		}
		if appointment.Status != models.StatusCompleted {
			return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotDeletable)
		}
	case RoleAdmin:
		if !appointment.Deletable() {
			return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotDeletable)
		}
	default:
		return fmt.Errorf("unknown role %q: %w", role, ErrUnauthorized)
	}

	if err := s.Appointments.Delete(appointmentID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (s *DefaultLifecycleService) invalidateAvailability(servicerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), availabilityKey(servicerID)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("servicerID", servicerID), zap.Error(err))
	}
}
