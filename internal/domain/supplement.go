// internal/domain/supplement.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplementTiming says when during the day a supplement should be taken.
// Custom entries may carry any value; unknown timings land in an ad-hoc
// bucket of the daily schedule rather than being rejected.
type SupplementTiming string

const (
	SupplementWithFood     SupplementTiming = "with_food"
	SupplementEmptyStomach SupplementTiming = "empty_stomach"
	SupplementMorning      SupplementTiming = "morning"
	SupplementEvening      SupplementTiming = "evening"
)

// Supplement is a catalog entry for a vitamin/mineral regimen item.
// Same lifecycle as Food: immutable, append-only.
type Supplement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"ownerId,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Dosage    string             `bson:"dosage" json:"dosage"` // display string, e.g. "2000-4000 IU"
	Timing    SupplementTiming   `bson:"timing" json:"timing"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"-"`
}
