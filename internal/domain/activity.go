package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity log actions.
const ActionCreated = "CREATED"

// ActivityLogEntry records one event against a resort. The service assigns
// the ID before handing the entry to the repo. Entries are append-only:
// written on create, removed only by the cascade when the owning resort is
// deleted, and never updated or read back by the service.
type ActivityLogEntry struct {
	ID          uuid.UUID
	ResortID    int64
	Action      string
	Description string
	CreatedAt   time.Time
}
