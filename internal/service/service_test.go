package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/repository"
)

// In-memory repository fakes shared by the service tests. They implement the
// same append-only / write-once contracts as the mongo implementations.

type fakeCatalogRepo struct {
	foods []domain.Food
	supps []domain.Supplement
}

func (r *fakeCatalogRepo) AddFood(_ context.Context, food *domain.Food) (primitive.ObjectID, error) {
	food.ID = primitive.NewObjectID()
	food.CreatedAt = time.Now()
	r.foods = append(r.foods, *food)
	return food.ID, nil
}

func (r *fakeCatalogRepo) AddSupplement(_ context.Context, supp *domain.Supplement) (primitive.ObjectID, error) {
	supp.ID = primitive.NewObjectID()
	supp.CreatedAt = time.Now()
	r.supps = append(r.supps, *supp)
	return supp.ID, nil
}

func (r *fakeCatalogRepo) FoodsByOwner(_ context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	var out []domain.Food
	for _, f := range r.foods {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) SupplementsByOwner(_ context.Context, ownerID primitive.ObjectID) ([]domain.Supplement, error) {
	var out []domain.Supplement
	for _, s := range r.supps {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePreferenceRepo struct {
	profiles map[primitive.ObjectID]domain.PreferenceProfile
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{profiles: make(map[primitive.ObjectID]domain.PreferenceProfile)}
}

func (r *fakePreferenceRepo) Save(_ context.Context, profile *domain.PreferenceProfile) error {
	profile.UpdatedAt = time.Now()
	r.profiles[profile.OwnerID] = *profile
	return nil
}

func (r *fakePreferenceRepo) GetByOwner(_ context.Context, ownerID primitive.ObjectID) (*domain.PreferenceProfile, error) {
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

type fakePlanRepo struct {
	docs map[primitive.ObjectID]domain.PlanDocument
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{docs: make(map[primitive.ObjectID]domain.PlanDocument)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.PlanDocument) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	r.docs[plan.ID] = *plan
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.PlanDocument, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &doc, nil
}

func (r *fakePlanRepo) GetByOwner(_ context.Context, ownerID primitive.ObjectID) ([]domain.PlanDocument, error) {
	var out []domain.PlanDocument
	for _, doc := range r.docs {
		if doc.OwnerID == ownerID {
			out = append(out, doc)
		}
	}
	return out, nil
}

// fakeArchive records uploads and serves canned share URLs.
type fakeArchive struct {
	objects map[string][]byte
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{objects: make(map[string][]byte)}
}

func (a *fakeArchive) PutPlan(_ context.Context, objectKey string, data []byte) error {
	a.objects[objectKey] = data
	return nil
}

func (a *fakeArchive) GetPlan(_ context.Context, objectKey string) ([]byte, error) {
	data, ok := a.objects[objectKey]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return data, nil
}

func (a *fakeArchive) ShareURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://archive.test/" + objectKey, nil
}

func (a *fakeArchive) DeletePlan(_ context.Context, objectKey string) error {
	delete(a.objects, objectKey)
	return nil
}
