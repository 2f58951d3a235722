// internal/interface/repository/membership_repo.go
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMembershipRepository implements the MembershipRepository interface
type MongoMembershipRepository struct {
	collection *mongo.Collection
}

// NewMongoMembershipRepository creates a new MongoDB membership repository
func NewMongoMembershipRepository(db *mongo.Database) repository.MembershipRepository {
	collection := db.Collection("memberships")

	// Create indexes for better performance
	ctx := context.Background()

	// Compound index for the validation lookup (email + uniqueCode)
	validationIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "uniqueCode", Value: 1},
		},
	}

	// Compound index for the expiration scan
	expirationIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "expirationNotified", Value: 1},
			{Key: "endDate", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		validationIndex,
		expirationIndex,
	})

	return &MongoMembershipRepository{
		collection: collection,
	}
}

// Save inserts a membership record
func (r *MongoMembershipRepository) Save(ctx context.Context, member *entity.Membership) error {
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return nil
}

// FindAll returns every membership record
func (r *MongoMembershipRepository) FindAll(ctx context.Context) ([]*entity.Membership, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []*entity.Membership
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// FindByEmailAndCode finds a membership by exact email and unique code match.
// Returns nil without error when no record matches.
func (r *MongoMembershipRepository) FindByEmailAndCode(ctx context.Context, email, uniqueCode string) (*entity.Membership, error) {
	var member entity.Membership
	err := r.collection.FindOne(ctx, bson.M{
		"email":      email,
		"uniqueCode": uniqueCode,
	}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindExpired finds memberships past their end date that have not been
// notified yet, oldest expiry first
func (r *MongoMembershipRepository) FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Membership, error) {
	filter := bson.M{
		"endDate":            bson.M{"$lt": cutoff},
		"expirationNotified": false,
	}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "endDate", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []*entity.Membership
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// MarkExpirationNotified flips the expirationNotified flag for one record
func (r *MongoMembershipRepository) MarkExpirationNotified(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid membership id %s: %w", id, err)
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"expirationNotified": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark expiration notified: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no membership found with id: %s", id)
	}

	return nil
}
