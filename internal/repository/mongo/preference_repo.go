package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/repository"
)

const preferenceCollectionName = "preferences"

// mongoPreferenceRepository implements repository.PreferenceRepository
type mongoPreferenceRepository struct {
	collection *mongo.Collection
}

// NewMongoPreferenceRepository creates a preference repository backed by MongoDB.
func NewMongoPreferenceRepository(db *mongo.Database) repository.PreferenceRepository {
	return &mongoPreferenceRepository{
		collection: db.Collection(preferenceCollectionName),
	}
}

// Save upserts the single preference document for a user. Every field edit
// rewrites the whole document, mirroring the debounced form auto-save.
func (r *mongoPreferenceRepository) Save(ctx context.Context, profile *domain.PreferenceProfile) error {
	if profile.OwnerID == primitive.NilObjectID {
		return errors.New("owner ID is required to save preferences")
	}
	profile.UpdatedAt = time.Now().UTC()

	filter := bson.M{"ownerId": profile.OwnerID}
	update := bson.M{
		"$set": bson.M{
			"age":         profile.Age,
			"weight":      profile.Weight,
			"height":      profile.Height,
			"gender":      profile.Gender,
			"activity":    profile.Activity,
			"fastingType": profile.FastingType,
			"startTime":   profile.StartTime,
			"allergies":   profile.Allergies,
			"dislikes":    profile.Dislikes,
			"seasonal":    profile.Seasonal,
			"calories":    profile.Calories,
			"updatedAt":   profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{"ownerId": profile.OwnerID},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetByOwner retrieves the preference document for a user.
func (r *mongoPreferenceRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.PreferenceProfile, error) {
	var profile domain.PreferenceProfile
	filter := bson.M{"ownerId": ownerID}

	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// EnsurePreferenceIndexes creates necessary indexes for the preferences collection.
func EnsurePreferenceIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
