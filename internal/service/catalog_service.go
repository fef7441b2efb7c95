package service

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/catalog"
	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/export"
	"mcgregor/if-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCatalogValidation = errors.New("catalog entry validation failed")
)

// CatalogService exposes the built-in library plus per-user custom entries,
// including the custom-configuration import/export round trip.
type CatalogService interface {
	Foods(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error)
	Supplements(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Supplement, error)
	AddCustomFood(ctx context.Context, ownerID primitive.ObjectID, food domain.Food) (*domain.Food, error)
	AddCustomSupplement(ctx context.Context, ownerID primitive.ObjectID, supp domain.Supplement) (*domain.Supplement, error)

	// UserCatalog assembles the full catalog (built-ins plus the owner's
	// custom entries) for a planning call.
	UserCatalog(ctx context.Context, ownerID primitive.ObjectID) (*catalog.Catalog, error)

	// ExportConfig writes the owner's custom entries in the custom-config
	// wire format. ImportConfig validates and appends entries from it;
	// a validation failure applies nothing.
	ExportConfig(ctx context.Context, ownerID primitive.ObjectID) ([]byte, error)
	ImportConfig(ctx context.Context, ownerID primitive.ObjectID, r io.Reader) (foods, supps int, err error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// Foods returns built-in foods followed by the owner's custom foods.
func (s *catalogService) Foods(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	cat, err := s.UserCatalog(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return cat.Foods(), nil
}

// Supplements returns built-in supplements followed by the owner's custom ones.
func (s *catalogService) Supplements(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Supplement, error) {
	cat, err := s.UserCatalog(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return cat.Supplements(), nil
}

// AddCustomFood validates and appends a custom food for the owner.
func (s *catalogService) AddCustomFood(ctx context.Context, ownerID primitive.ObjectID, food domain.Food) (*domain.Food, error) {
	if food.Name == "" {
		return nil, ErrCatalogValidation
	}
	if food.ProteinG < 0 || food.FatG < 0 || food.CarbsG < 0 || food.Calories < 0 || food.PrepMin < 0 {
		return nil, ErrCatalogValidation
	}
	if food.Timing == "" {
		food.Timing = domain.TimingAnytime
	}
	food.OwnerID = ownerID

	id, err := s.catalogRepo.AddFood(ctx, &food)
	if err != nil {
		return nil, err
	}
	food.ID = id
	return &food, nil
}

// AddCustomSupplement validates and appends a custom supplement for the owner.
func (s *catalogService) AddCustomSupplement(ctx context.Context, ownerID primitive.ObjectID, supp domain.Supplement) (*domain.Supplement, error) {
	if supp.Name == "" || supp.Dosage == "" {
		return nil, ErrCatalogValidation
	}
	supp.OwnerID = ownerID

	id, err := s.catalogRepo.AddSupplement(ctx, &supp)
	if err != nil {
		return nil, err
	}
	supp.ID = id
	return &supp, nil
}

// UserCatalog merges built-ins with the owner's stored custom entries.
func (s *catalogService) UserCatalog(ctx context.Context, ownerID primitive.ObjectID) (*catalog.Catalog, error) {
	cat := catalog.New()

	customFoods, err := s.catalogRepo.FoodsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cat.AddFoods(customFoods...)

	customSupps, err := s.catalogRepo.SupplementsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cat.AddSupplements(customSupps...)

	return cat, nil
}

// ExportConfig serializes the owner's custom entries only (built-ins are not
// part of the config file).
func (s *catalogService) ExportConfig(ctx context.Context, ownerID primitive.ObjectID) ([]byte, error) {
	foods, err := s.catalogRepo.FoodsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	supps, err := s.catalogRepo.SupplementsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCustomConfig(&buf, foods, supps); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportConfig validates a config document and appends its entries to the
// owner's custom catalog. Appends are additive; pre-existing custom entries
// are kept.
func (s *catalogService) ImportConfig(ctx context.Context, ownerID primitive.ObjectID, r io.Reader) (int, int, error) {
	foods, supps, err := export.ReadCustomConfig(r)
	if err != nil {
		return 0, 0, err
	}

	for i := range foods {
		foods[i].OwnerID = ownerID
		if _, err := s.catalogRepo.AddFood(ctx, &foods[i]); err != nil {
			return 0, 0, err
		}
	}
	for i := range supps {
		supps[i].OwnerID = ownerID
		if _, err := s.catalogRepo.AddSupplement(ctx, &supps[i]); err != nil {
			return 0, 0, err
		}
	}
	return len(foods), len(supps), nil
}
