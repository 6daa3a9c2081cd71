package bookingRepo

import (
	"fmt"
	"time"

	"cleanly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
// The provider/date index is unique over non-cancelled bookings, so two
// concurrent creates for the same slot cannot both land: the loser of the
// race hits a duplicate-key error even after passing the availability
// pre-check. Cancelled bookings are excluded so a freed slot stays bookable.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	activeStatuses := []string{
		models.BookingPending,
		models.BookingAccepted,
		models.BookingCompleted,
	}
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "bookingDate", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
