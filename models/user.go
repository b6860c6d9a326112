package models

import "time"

// Address is the free-form street address attached to users, servicers and
// bookings.
type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2,omitempty" json:"line2,omitempty"`
}

// User represents a customer account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      Address   `bson:"address" json:"address"`
	District     string    `bson:"district" json:"district"`
	Gender       string    `bson:"gender" json:"gender,omitempty"`
	DOB          string    `bson:"dob" json:"dob,omitempty"`
	Image        string    `bson:"image" json:"image,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Snapshot returns a copy safe to embed in an appointment record: credentials
// are stripped and the copy is never refreshed after booking.
func (u User) Snapshot() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
