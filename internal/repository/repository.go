package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// CatalogRepository stores per-user custom catalog entries. Entries are
// append-only: there is no update or delete, matching the catalog lifecycle.
type CatalogRepository interface {
	AddFood(ctx context.Context, food *domain.Food) (primitive.ObjectID, error)
	AddSupplement(ctx context.Context, supp *domain.Supplement) (primitive.ObjectID, error)
	FoodsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error)
	SupplementsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Supplement, error)
}

// PreferenceRepository stores the per-user planner form state (one document
// per user, overwritten on every save).
type PreferenceRepository interface {
	Save(ctx context.Context, profile *domain.PreferenceProfile) error
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.PreferenceProfile, error)
}

// PlanRepository stores generated plan documents.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.PlanDocument) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanDocument, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.PlanDocument, error)
}
