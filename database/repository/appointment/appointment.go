package appointmentRepo

import (
	"context"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines data access for appointment documents.
// GetByID returns (nil, nil) when no document matches.
type AppointmentRepository interface {
	Create(a *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	SetStatus(id, status string) error
	SetCancelled(id string) error
	Delete(id string) error
	ListByUser(userID string) ([]models.Appointment, error)
	ListByServicer(servicerID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)

	// DeleteByUser removes every appointment referencing a user; used by the
	// user-deletion cascade.
	DeleteByUser(userID string) (int64, error)
	// CountByServicer counts appointments (any status) referencing a
	// servicer; used by the servicer-deletion guard.
	CountByServicer(servicerID string) (int64, error)
}

// MongoAppointmentRepo is the production implementation backed by MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository over the appointments collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.Collection("appointments")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
