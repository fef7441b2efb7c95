package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/planner"
	"mcgregor/if-planner/internal/repository"
	"mcgregor/if-planner/internal/storage"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanAccessDenied = errors.New("access denied to this plan")
	ErrArchiveDisabled  = errors.New("plan archive is not configured")
)

// PlannerService orchestrates plan generation: it assembles the user's
// catalog, runs the planner, stores the resulting document and optionally
// archives a JSON snapshot.
type PlannerService interface {
	CreateDailyPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, targetCalories int) (*domain.PlanDocument, error)
	CreateWeeklyPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, targetCalories, shoppingDays int) (*domain.PlanDocument, error)
	CreatePersonalizedPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, goals domain.NutritionalGoals, prefs domain.PersonalPreferences) (*domain.PlanDocument, error)

	GetPlan(ctx context.Context, ownerID, planID primitive.ObjectID) (*domain.PlanDocument, error)
	GetPlans(ctx context.Context, ownerID primitive.ObjectID) ([]domain.PlanDocument, error)

	// ShoppingList rebuilds a shopping list from a stored plan over the
	// given number of days.
	ShoppingList(ctx context.Context, ownerID, planID primitive.ObjectID, days int) ([]domain.ShoppingItem, error)

	// ArchivePlan uploads a JSON snapshot of a stored plan and returns a
	// temporary share URL.
	ArchivePlan(ctx context.Context, ownerID, planID primitive.ObjectID) (string, error)
}

type plannerService struct {
	catalogService  CatalogService
	planRepo        repository.PlanRepository
	archive         storage.PlanArchive // nil when archiving is not configured
	defaultCalories int
	defaultDays     int
}

// NewPlannerService creates a new instance of plannerService. archive may be
// nil, which disables the archive endpoint.
func NewPlannerService(
	catalogService CatalogService,
	planRepo repository.PlanRepository,
	archive storage.PlanArchive,
	defaultCalories, defaultDays int,
) PlannerService {
	if defaultCalories <= 0 {
		defaultCalories = 1800
	}
	if defaultDays <= 0 {
		defaultDays = 7
	}
	return &plannerService{
		catalogService:  catalogService,
		planRepo:        planRepo,
		archive:         archive,
		defaultCalories: defaultCalories,
		defaultDays:     defaultDays,
	}
}

func (s *plannerService) assembler(ctx context.Context, ownerID primitive.ObjectID) (*planner.Assembler, error) {
	cat, err := s.catalogService.UserCatalog(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return planner.NewAssembler(cat), nil
}

func (s *plannerService) store(ctx context.Context, doc *domain.PlanDocument) (*domain.PlanDocument, error) {
	id, err := s.planRepo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// CreateDailyPlan builds and stores a simple daily plan.
func (s *plannerService) CreateDailyPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, targetCalories int) (*domain.PlanDocument, error) {
	if targetCalories <= 0 {
		targetCalories = s.defaultCalories
	}
	asm, err := s.assembler(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	plan, err := asm.DailyPlan(schedule, targetCalories)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, &domain.PlanDocument{OwnerID: ownerID, Kind: domain.PlanDaily, Daily: plan})
}

// CreateWeeklyPlan builds and stores a weekly plan.
func (s *plannerService) CreateWeeklyPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, targetCalories, shoppingDays int) (*domain.PlanDocument, error) {
	if targetCalories <= 0 {
		targetCalories = s.defaultCalories
	}
	if shoppingDays <= 0 {
		shoppingDays = s.defaultDays
	}
	asm, err := s.assembler(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	plan, err := asm.WeeklyPlan(schedule, targetCalories, shoppingDays)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, &domain.PlanDocument{OwnerID: ownerID, Kind: domain.PlanWeekly, Weekly: plan})
}

// CreatePersonalizedPlan builds and stores a personalized plan.
func (s *plannerService) CreatePersonalizedPlan(ctx context.Context, ownerID primitive.ObjectID, schedule domain.FastingSchedule, goals domain.NutritionalGoals, prefs domain.PersonalPreferences) (*domain.PlanDocument, error) {
	if goals.CaloriesPerDay <= 0 {
		goals.CaloriesPerDay = s.defaultCalories
	}
	asm, err := s.assembler(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	plan, err := asm.PersonalizedPlan(schedule, goals, prefs)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, &domain.PlanDocument{OwnerID: ownerID, Kind: domain.PlanPersonalized, Daily: plan})
}

// GetPlan retrieves a stored plan, enforcing ownership.
func (s *plannerService) GetPlan(ctx context.Context, ownerID, planID primitive.ObjectID) (*domain.PlanDocument, error) {
	doc, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, ErrPlanAccessDenied
	}
	return doc, nil
}

// GetPlans retrieves all of a user's stored plans, newest first.
func (s *plannerService) GetPlans(ctx context.Context, ownerID primitive.ObjectID) ([]domain.PlanDocument, error) {
	return s.planRepo.GetByOwner(ctx, ownerID)
}

// ShoppingList rebuilds the shopping list for a stored plan. Weekly plans
// aggregate over their first day, same as at generation time.
func (s *plannerService) ShoppingList(ctx context.Context, ownerID, planID primitive.ObjectID, days int) ([]domain.ShoppingItem, error) {
	if days <= 0 {
		days = s.defaultDays
	}
	doc, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	var plan *domain.MealPlan
	switch {
	case doc.Daily != nil:
		plan = doc.Daily
	case doc.Weekly != nil && len(doc.Weekly.DailyPlans) > 0:
		plan = &doc.Weekly.DailyPlans[0]
	default:
		return nil, ErrPlanNotFound
	}
	return planner.ShoppingList(plan, days), nil
}

// ArchivePlan uploads a JSON snapshot of the plan and returns a share URL.
func (s *plannerService) ArchivePlan(ctx context.Context, ownerID, planID primitive.ObjectID) (string, error) {
	if s.archive == nil {
		return "", ErrArchiveDisabled
	}
	doc, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("plans/%s/%s.json", ownerID.Hex(), planID.Hex())
	if err := s.archive.PutPlan(ctx, objectKey, data); err != nil {
		return "", err
	}
	return s.archive.ShareURL(ctx, objectKey, storage.DefaultShareURLExpiry)
}
