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

const (
	customFoodCollectionName       = "custom_foods"
	customSupplementCollectionName = "custom_supplements"
)

// mongoCatalogRepository implements repository.CatalogRepository
type mongoCatalogRepository struct {
	foods       *mongo.Collection
	supplements *mongo.Collection
}

// NewMongoCatalogRepository creates a custom-catalog repository backed by MongoDB.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		foods:       db.Collection(customFoodCollectionName),
		supplements: db.Collection(customSupplementCollectionName),
	}
}

// AddFood inserts a custom food for its owner. Entries are append-only.
func (r *mongoCatalogRepository) AddFood(ctx context.Context, food *domain.Food) (primitive.ObjectID, error) {
	if food.Name == "" || food.OwnerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("food name and owner ID are required")
	}

	food.ID = primitive.NewObjectID()
	food.CreatedAt = time.Now().UTC()

	result, err := r.foods.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// AddSupplement inserts a custom supplement for its owner.
func (r *mongoCatalogRepository) AddSupplement(ctx context.Context, supp *domain.Supplement) (primitive.ObjectID, error) {
	if supp.Name == "" || supp.OwnerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("supplement name and owner ID are required")
	}

	supp.ID = primitive.NewObjectID()
	supp.CreatedAt = time.Now().UTC()

	result, err := r.supplements.InsertOne(ctx, supp)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// FoodsByOwner retrieves all custom foods for a user, oldest first so the
// catalog preserves append order.
func (r *mongoCatalogRepository) FoodsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	var foods []domain.Food
	filter := bson.M{"ownerId": ownerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.foods.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}

// SupplementsByOwner retrieves all custom supplements for a user.
func (r *mongoCatalogRepository) SupplementsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Supplement, error) {
	var supps []domain.Supplement
	filter := bson.M{"ownerId": ownerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.supplements.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &supps); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return supps, nil
}

// EnsureCatalogIndexes creates necessary indexes for both custom-entry collections.
func EnsureCatalogIndexes(ctx context.Context, foods, supplements *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := foods.Indexes().CreateMany(ctx, indexes); err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", foods.Name(), err)
	}
	if _, err := supplements.Indexes().CreateMany(ctx, indexes); err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", supplements.Name(), err)
	}
}
