package models

import "time"

// Appointment workflow states. Cancellation is an orthogonal flag, not a
// status: a cancelled appointment keeps its last status for audit.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the workflow states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Appointment is one booked slot. UserData and ServicerData are point-in-time
// snapshots taken at booking commit; later profile edits do not touch them.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	ServicerID   string    `bson:"servicerId" json:"servicerId"`
	SlotDate     string    `bson:"slotDate" json:"slotDate"`
	SlotTime     string    `bson:"slotTime" json:"slotTime"`
	UserData     User      `bson:"userData" json:"userData"`
	ServicerData Servicer  `bson:"serData" json:"serData"`
	ServiceType  string    `bson:"serviceType" json:"serviceType"`
	Description  string    `bson:"description" json:"description"`
	Address      Address   `bson:"address" json:"address"`
	Status       string    `bson:"status" json:"status"`
	Cancelled    bool      `bson:"cancelled" json:"cancelled"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Deletable reports whether the record may be removed: only cancelled or
// completed appointments are, which guards in-flight bookings.
func (a *Appointment) Deletable() bool {
	return a.Cancelled || a.Status == StatusCompleted
}
