// Package service contains the business logic for the resort catalog.
// Services normalize form input, stamp timestamps, compute the access score,
// and orchestrate repo calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ptessari/resort-catalog/internal/domain"
	"github.com/ptessari/resort-catalog/internal/repo"
)

// ResortService implements the catalog operations: filtered listing, create
// with audit trail, fetch, full-overwrite update, and idempotent delete.
type ResortService struct {
	resorts  repo.ResortRepo
	activity repo.ActivityLogRepo
}

// NewResortService constructs a ResortService backed by the provided repos.
func NewResortService(resorts repo.ResortRepo, activity repo.ActivityLogRepo) *ResortService {
	return &ResortService{resorts: resorts, activity: activity}
}

// List returns resorts matching the filter, each paired with its access
// score, ordered most recently updated first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ResortService) List(ctx context.Context, filter domain.ResortFilter) ([]domain.ScoredResort, error) {
	resorts, err := s.resorts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.ResortService.List: %w", err)
	}

	scored := make([]domain.ScoredResort, len(resorts))
	for i, r := range resorts {
		have, total := r.AccessScore()
		scored[i] = domain.ScoredResort{Resort: r, Have: have, Total: total}
	}
	return scored, nil
}

// Create normalizes the submitted form, stamps both timestamps with the same
// instant, persists the resort, and appends a CREATED entry to the audit
// trail. There is no validation failure path: any input is accepted after
// normalization.
func (s *ResortService) Create(ctx context.Context, input domain.ResortInput) (domain.Resort, error) {
	resort := normalizeResort(input)
	now := timestamp()
	resort.CreatedAt = now
	resort.UpdatedAt = now

	created, err := s.resorts.Create(ctx, resort)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("service.ResortService.Create: %w", err)
	}

	// Entry identity is assigned here, not by the database, so the id is
	// known before the insert ever runs.
	entry := domain.ActivityLogEntry{
		ID:          uuid.New(),
		ResortID:    created.ID,
		Action:      domain.ActionCreated,
		Description: "resort " + created.Name + " inserted",
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		return domain.Resort{}, fmt.Errorf("service.ResortService.Create: %w", err)
	}

	return created, nil
}

// GetByID returns a single resort by ID.
// Returns domain.ErrNotFound if no resort with that ID exists.
func (s *ResortService) GetByID(ctx context.Context, id int64) (domain.Resort, error) {
	resort, err := s.resorts.GetByID(ctx, id)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("service.ResortService.GetByID: %w", err)
	}
	return resort, nil
}

// Update re-normalizes the form as in Create, stamps updated_at with the
// current instant, and overwrites every submitted field of the matching row.
// created_at is left untouched.
// Returns domain.ErrNotFound if no resort with that ID exists.
func (s *ResortService) Update(ctx context.Context, id int64, input domain.ResortInput) (domain.Resort, error) {
	resort := normalizeResort(input)
	resort.ID = id
	resort.UpdatedAt = timestamp()

	updated, err := s.resorts.Update(ctx, resort)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("service.ResortService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a resort by ID. Deleting an ID that does not exist is a
// no-op, not an error, so repeated deletes always succeed. The audit trail
// rows go with the resort via the schema's cascade.
func (s *ResortService) Delete(ctx context.Context, id int64) error {
	if err := s.resorts.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ResortService.Delete: %w", err)
	}
	return nil
}

// timestamp returns the current UTC instant truncated to whole seconds,
// the resolution the catalog records timestamps at.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
