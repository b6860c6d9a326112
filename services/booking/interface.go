package booking

import (
	"servana/models"
	"servana/schedule"
)

// Requester roles for lifecycle operations.
const (
	RoleCustomer = "customer"
	RoleServicer = "servicer"
	RoleAdmin    = "admin"
)

// BookingRequest carries everything needed to reserve one slot.
type BookingRequest struct {
	UserID      string         `json:"userId"`
	ServicerID  string         `json:"servicerId"`
	SlotDate    string         `json:"slotDate"`
	SlotTime    string         `json:"slotTime"`
	Description string         `json:"description"`
	Address     models.Address `json:"address"`
}

// BookingService reserves slots and answers availability queries.
type BookingService interface {
	// Availability returns the seven-day slot board for a servicer.
	Availability(servicerID string) ([][]schedule.Slot, error)
	// Book validates the request, reserves the slot atomically and creates
	// the appointment record.
	Book(req BookingRequest) (*models.Appointment, error)
}

// LifecycleService drives an appointment through its status workflow.
type LifecycleService interface {
	// UpdateStatus applies a servicer-side status transition.
	UpdateStatus(servicerID, appointmentID, newStatus string) error
	// Cancel flips the cancelled flag and releases the held slot. Admins
	// bypass the ownership check.
	Cancel(requesterID, appointmentID string, asAdmin bool) error
	// Delete removes a terminal (cancelled or completed) appointment.
	Delete(requesterID, appointmentID, role string) error
}
