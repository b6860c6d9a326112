package servicerRepo

import (
	"errors"
	"fmt"
	"time"

	"servana/models"
	"servana/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new servicer document.
func (r *MongoServicerRepo) Create(s *models.Servicer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to create servicer: %w", err)
	}
	return nil
}

// GetByID retrieves a servicer by its unique ID.
func (r *MongoServicerRepo) GetByID(id string) (*models.Servicer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Servicer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get servicer with id %s: %w", id, err)
	}
	return &s, nil
}

// GetByEmail retrieves a servicer by email.
func (r *MongoServicerRepo) GetByEmail(email string) (*models.Servicer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Servicer
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get servicer with email %s: %w", email, err)
	}
	return &s, nil
}

// Update modifies an existing servicer document.
func (r *MongoServicerRepo) Update(s *models.Servicer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	filter := bson.M{"id": s.ID}
	update := bson.M{"$set": s}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update servicer with id %s: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("servicer with id %s not found", s.ID)
	}
	return nil
}

// Delete removes a servicer document by its ID.
func (r *MongoServicerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete servicer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("servicer with id %s not found", id)
	}
	return nil
}

func (r *MongoServicerRepo) list(filter bson.M) ([]models.Servicer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list servicers: %w", err)
	}
	defer cursor.Close(ctx)

	var servicers []models.Servicer
	if err := cursor.All(ctx, &servicers); err != nil {
		return nil, fmt.Errorf("failed to decode servicers: %w", err)
	}
	return servicers, nil
}

// ListApproved returns the approved, unblocked servicers shown on the
// customer site.
func (r *MongoServicerRepo) ListApproved() ([]models.Servicer, error) {
	return r.list(bson.M{"status": models.ServicerApproved, "blocked": bson.M{"$ne": true}})
}

// ListByStatus returns servicers in a given approval state.
func (r *MongoServicerRepo) ListByStatus(status string) ([]models.Servicer, error) {
	return r.list(bson.M{"status": status})
}

// ListAll returns every servicer document.
func (r *MongoServicerRepo) ListAll() ([]models.Servicer, error) {
	return r.list(bson.M{})
}

func (r *MongoServicerRepo) setField(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update servicer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("servicer with id %s not found", id)
	}
	return nil
}

// SetWorkingHours replaces the weekly working-hours template.
func (r *MongoServicerRepo) SetWorkingHours(id string, hours schedule.WorkingHours) error {
	return r.setField(id, bson.M{"working_hours": hours, "updatedAt": time.Now()})
}

// SetAvailable flips the service-wide availability toggle.
func (r *MongoServicerRepo) SetAvailable(id string, available bool) error {
	return r.setField(id, bson.M{"available": available, "updatedAt": time.Now()})
}

// SetStatus updates the admin approval state.
func (r *MongoServicerRepo) SetStatus(id, status string) error {
	return r.setField(id, bson.M{"status": status, "updatedAt": time.Now()})
}

// SetBlocked updates the block flag.
func (r *MongoServicerRepo) SetBlocked(id string, blocked bool) error {
	return r.setField(id, bson.M{"blocked": blocked, "updatedAt": time.Now()})
}
