package servicerRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BookSlot reserves (dateKey, timeLabel) in the servicer's ledger. The filter
// only matches documents not already holding the label for that date, so the
// check and the reservation are one conditional update: when two requests race
// for the same slot, the store accepts exactly one. MatchedCount 0 means the
// slot was taken between the caller's availability read and this commit.
func (r *MongoServicerRepo) BookSlot(id, dateKey, timeLabel string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	field := "slots_booked." + dateKey
	filter := bson.M{
		"id":  id,
		field: bson.M{"$ne": timeLabel},
	}
	update := bson.M{"$push": bson.M{field: timeLabel}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to book slot for servicer %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrSlotTaken
	}
	return nil
}

// ReleaseSlot removes (dateKey, timeLabel) from the ledger. Pulling a label
// that is not present matches the document and changes nothing, so releasing
// twice leaves the ledger exactly as releasing once does.
func (r *MongoServicerRepo) ReleaseSlot(id, dateKey, timeLabel string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	field := "slots_booked." + dateKey
	update := bson.M{"$pull": bson.M{field: timeLabel}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to release slot for servicer %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("servicer with id %s not found", id)
	}
	return nil
}
