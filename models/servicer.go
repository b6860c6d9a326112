package models

import (
	"time"

	"servana/schedule"
)

// Servicer registration approval states.
const (
	ServicerPending  = "pending"
	ServicerApproved = "approved"
	ServicerRejected = "rejected"
)

// Servicer represents a service-provider account. The weekly working-hours
// template and the booked-slot ledger are embedded in the document so a
// booking is one conditional update against a single servicer record.
type Servicer struct {
	ID           string                `bson:"id" json:"id"`
	Name         string                `bson:"name" json:"name"`
	Email        string                `bson:"email" json:"email"`
	Password     string                `bson:"-" json:"password,omitempty"`
	PasswordHash string                `bson:"passwordHash" json:"-"`
	Image        string                `bson:"image" json:"image,omitempty"`
	Speciality   string                `bson:"speciality" json:"speciality"`
	Experience   string                `bson:"experience" json:"experience"`
	About        string                `bson:"about" json:"about"`
	Available    bool                  `bson:"available" json:"available"`
	Blocked      bool                  `bson:"blocked" json:"blocked"`
	Status       string                `bson:"status" json:"status"`
	Phone        string                `bson:"phone" json:"phone"`
	Fees         int                   `bson:"fees" json:"fees"`
	Address      Address               `bson:"address" json:"address"`
	District     string                `bson:"district" json:"district"`
	Gender       string                `bson:"gender" json:"gender,omitempty"`
	DOB          string                `bson:"dob" json:"dob,omitempty"`
	WorkingHours schedule.WorkingHours `bson:"working_hours" json:"working_hours"`
	SlotsBooked  schedule.SlotLedger   `bson:"slots_booked" json:"slots_booked"`
	CreatedAt    time.Time             `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time             `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Snapshot returns a copy safe to embed in an appointment record: credentials
// and the slot ledger are stripped, and the copy is never refreshed after
// booking, so old appointments keep the servicer data they were made against.
func (s Servicer) Snapshot() Servicer {
	s.Password = ""
	s.PasswordHash = ""
	s.SlotsBooked = nil
	return s
}

// Bookable reports whether new appointments may target this servicer.
func (s *Servicer) Bookable() bool {
	return s.Status == ServicerApproved && !s.Blocked && s.Available
}
