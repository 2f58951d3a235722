// internal/interface/repository/booking_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepository implements the BookingRepository interface. Each
// booking variant lives in its own collection, matching the per-variant
// models the frontend was built against.
type MongoBookingRepository struct {
	tourCollection *mongo.Collection
	trekCollection *mongo.Collection
	bikeCollection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	tour := db.Collection("tourbookings")
	trek := db.Collection("trekbookings")
	bike := db.Collection("bikebookings")

	// Index on createdAt for listing recent bookings
	ctx := context.Background()
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	tour.Indexes().CreateOne(ctx, createdAtIndex)
	trek.Indexes().CreateOne(ctx, createdAtIndex)
	bike.Indexes().CreateOne(ctx, createdAtIndex)

	return &MongoBookingRepository{
		tourCollection: tour,
		trekCollection: trek,
		bikeCollection: bike,
	}
}

// Save inserts a booking into the collection for its variant
func (r *MongoBookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	collection, err := r.collectionFor(booking.BookingType)
	if err != nil {
		return err
	}

	result, err := collection.InsertOne(ctx, booking)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

func (r *MongoBookingRepository) collectionFor(bookingType string) (*mongo.Collection, error) {
	switch bookingType {
	case entity.BookingTypeTour:
		return r.tourCollection, nil
	case entity.BookingTypeTrek:
		return r.trekCollection, nil
	case entity.BookingTypeBike:
		return r.bikeCollection, nil
	}
	return nil, fmt.Errorf("unknown booking type: %s", bookingType)
}
