package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned share URLs
const DefaultShareURLExpiry = 15 * time.Minute

// PlanArchive defines the interface for archiving plan snapshots in object
// storage and handing out temporary links to share them.
type PlanArchive interface {
	// PutPlan uploads a JSON plan snapshot under the given object key,
	// overwriting any existing object.
	PutPlan(ctx context.Context, objectKey string, data []byte) error

	// GetPlan downloads a previously archived plan snapshot.
	GetPlan(ctx context.Context, objectKey string) ([]byte, error)

	// ShareURL creates a temporary URL that allows GET requests for an
	// archived plan directly from the storage provider.
	ShareURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeletePlan removes an archived plan snapshot.
	DeletePlan(ctx context.Context, objectKey string) error
}
