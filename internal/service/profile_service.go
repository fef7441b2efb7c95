package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/planner"
	"mcgregor/if-planner/internal/repository"
)

var ErrPreferencesNotFound = errors.New("no saved preferences for this user")

// ProfileService handles the planner form state: preference persistence and
// the calorie recommendation from body metrics. Calculating calories also
// stores the result alongside the preferences, so the client can show the
// last recommendation on startup without recalculating.
type ProfileService interface {
	Preferences(ctx context.Context, ownerID primitive.ObjectID) (*domain.PreferenceProfile, error)
	SavePreferences(ctx context.Context, profile domain.PreferenceProfile) (*domain.PreferenceProfile, error)
	CalculateCalories(ctx context.Context, ownerID primitive.ObjectID, metrics domain.BodyMetrics) (planner.CalorieEstimate, error)
}

type profileService struct {
	prefRepo repository.PreferenceRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(prefRepo repository.PreferenceRepository) ProfileService {
	return &profileService{prefRepo: prefRepo}
}

// Preferences returns the stored form state for a user.
func (s *profileService) Preferences(ctx context.Context, ownerID primitive.ObjectID) (*domain.PreferenceProfile, error) {
	profile, err := s.prefRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SavePreferences overwrites the stored form state. The last computed calorie
// figure is preserved unless the caller supplies a new one.
func (s *profileService) SavePreferences(ctx context.Context, profile domain.PreferenceProfile) (*domain.PreferenceProfile, error) {
	if profile.Calories == 0 {
		if existing, err := s.prefRepo.GetByOwner(ctx, profile.OwnerID); err == nil {
			profile.Calories = existing.Calories
		}
	}
	if err := s.prefRepo.Save(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CalculateCalories runs the Mifflin-St Jeor recommendation and stores the
// result with the user's preferences.
func (s *profileService) CalculateCalories(ctx context.Context, ownerID primitive.ObjectID, metrics domain.BodyMetrics) (planner.CalorieEstimate, error) {
	estimate, err := planner.EstimateCalories(metrics)
	if err != nil {
		return planner.CalorieEstimate{}, err
	}

	profile, err := s.prefRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return planner.CalorieEstimate{}, err
		}
		profile = &domain.PreferenceProfile{OwnerID: ownerID}
	}
	profile.Calories = estimate.Recommended
	if err := s.prefRepo.Save(ctx, profile); err != nil {
		return planner.CalorieEstimate{}, err
	}

	return estimate, nil
}
