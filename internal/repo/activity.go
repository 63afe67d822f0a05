package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ptessari/resort-catalog/internal/domain"
)

// ActivityLogRepo defines the persistence operations for the audit trail.
// The trail is write-only: nothing in the application reads it back, so the
// interface has no query methods. Rows disappear with their resort via the
// schema's ON DELETE CASCADE.
type ActivityLogRepo interface {
	// Append inserts one log entry. The database assigns id and created_at.
	Append(ctx context.Context, entry domain.ActivityLogEntry) error
}

// pgActivityLogRepo is the Postgres implementation of ActivityLogRepo.
type pgActivityLogRepo struct {
	db db
}

// NewActivityLogRepo constructs an ActivityLogRepo backed by the provided db connection.
func NewActivityLogRepo(db db) ActivityLogRepo {
	return &pgActivityLogRepo{db: db}
}

// Append inserts one audit entry for a resort. The entry arrives with its
// UUID already assigned by the service; the database only fills created_at.
func (r *pgActivityLogRepo) Append(ctx context.Context, entry domain.ActivityLogEntry) error {
	const q = `
		INSERT INTO activity_log (id, resort_id, action, description)
		VALUES (@id, @resort_id, @action, @description)`

	args := pgx.NamedArgs{
		"id":          entry.ID,
		"resort_id":   entry.ResortID,
		"action":      entry.Action,
		"description": entry.Description,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ActivityLogRepo.Append: %w", err)
	}
	return nil
}
