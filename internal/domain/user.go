package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account that owns its preferences, custom catalog
// entries and generated plans.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PreferenceProfile persists the raw planner form inputs for a user, plus the
// last computed calorie recommendation. Values are kept as entered (strings
// for the numeric fields) so the client can repopulate its form verbatim.
type PreferenceProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"-"`
	Age         string             `bson:"age" json:"age"`
	Weight      string             `bson:"weight" json:"weight"`
	Height      string             `bson:"height" json:"height"`
	Gender      string             `bson:"gender" json:"gender"`
	Activity    string             `bson:"activity" json:"activity"`
	FastingType string             `bson:"fastingType" json:"fasting_type"` // e.g. "16:8"
	StartTime   string             `bson:"startTime" json:"start_time"`
	Allergies   string             `bson:"allergies" json:"allergies"` // comma-separated, as typed
	Dislikes    string             `bson:"dislikes" json:"dislikes"`
	Seasonal    string             `bson:"seasonal" json:"seasonal"`
	Calories    int                `bson:"calories,omitempty" json:"calories,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}
