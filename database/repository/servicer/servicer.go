package servicerRepo

import (
	"context"
	"errors"
	"time"

	"servana/database"
	"servana/models"
	"servana/schedule"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by BookSlot when the requested slot is already held
// in the servicer's ledger. It is the repository-level conflict signal the
// booking service maps to its own taxonomy.
var ErrSlotTaken = errors.New("slot already booked")

// ServicerRepository defines data access for servicer documents, including
// the two slot-ledger mutations. Get methods return (nil, nil) when no
// document matches.
type ServicerRepository interface {
	Create(s *models.Servicer) error
	GetByID(id string) (*models.Servicer, error)
	GetByEmail(email string) (*models.Servicer, error)
	Update(s *models.Servicer) error
	Delete(id string) error
	ListApproved() ([]models.Servicer, error)
	ListByStatus(status string) ([]models.Servicer, error)
	ListAll() ([]models.Servicer, error)

	// BookSlot atomically adds a time label to the ledger entry for a date,
	// failing with ErrSlotTaken if the label is already present.
	BookSlot(id, dateKey, timeLabel string) error
	// ReleaseSlot removes a time label from the ledger. Idempotent.
	ReleaseSlot(id, dateKey, timeLabel string) error

	SetWorkingHours(id string, hours schedule.WorkingHours) error
	SetAvailable(id string, available bool) error
	SetStatus(id, status string) error
	SetBlocked(id string, blocked bool) error
}

// MongoServicerRepo is the production implementation backed by MongoDB.
type MongoServicerRepo struct {
	coll *mongo.Collection
}

// NewMongoServicerRepo returns a repository over the servicers collection.
func NewMongoServicerRepo() *MongoServicerRepo {
	return &MongoServicerRepo{coll: database.Collection("servicers")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
