// Package repo contains all database access logic for the resort catalog.
// Each table has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ptessari/resort-catalog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResortRepo defines the persistence operations for Resorts.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ResortRepo interface {
	// Create inserts a new resort and returns the persisted record with the
	// DB-assigned id populated.
	Create(ctx context.Context, resort domain.Resort) (domain.Resort, error)

	// GetByID retrieves a single resort by its integer primary key.
	// Returns domain.ErrNotFound if no resort with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Resort, error)

	// List returns resorts matching the filter, ordered by updated_at
	// descending then created_at descending, with NULL timestamps last.
	List(ctx context.Context, filter domain.ResortFilter) ([]domain.Resort, error)

	// Update overwrites every submitted field of an existing resort and
	// returns the updated record. created_at is never touched.
	// Returns domain.ErrNotFound if no resort with that ID exists.
	Update(ctx context.Context, resort domain.Resort) (domain.Resort, error)

	// Delete removes a resort by ID. Deleting an ID that does not exist is
	// a no-op, not an error. Associated activity_log rows are removed by
	// the schema's cascade.
	Delete(ctx context.Context, id int64) error
}

// resortColumns is the canonical column list, shared by every SELECT and
// RETURNING clause so scanResort always sees the same order.
const resortColumns = `id, name, region, city, website, phone, email,
		price_week, price_period, price_notes, status, keep_flag, notes,
		wheelchair_access, beach_walkway, beach_bathroom_h, beach_job_chair,
		accessible_room, restaurant_accessible, pool_accessible, lift,
		disabled_parking, step_free_paths, staff_assistance,
		created_at, updated_at`

// pgResortRepo is the Postgres implementation of ResortRepo.
type pgResortRepo struct {
	db db
}

// NewResortRepo constructs a ResortRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewResortRepo(db db) ResortRepo {
	return &pgResortRepo{db: db}
}

// Create inserts a new resort row and returns the full persisted record.
// Timestamps arrive already stamped by the service.
func (r *pgResortRepo) Create(ctx context.Context, resort domain.Resort) (domain.Resort, error) {
	q := `
		INSERT INTO resorts (name, region, city, website, phone, email,
			price_week, price_period, price_notes, status, keep_flag, notes,
			wheelchair_access, beach_walkway, beach_bathroom_h, beach_job_chair,
			accessible_room, restaurant_accessible, pool_accessible, lift,
			disabled_parking, step_free_paths, staff_assistance,
			created_at, updated_at)
		VALUES (@name, @region, @city, @website, @phone, @email,
			@price_week, @price_period, @price_notes, @status, @keep_flag, @notes,
			@wheelchair_access, @beach_walkway, @beach_bathroom_h, @beach_job_chair,
			@accessible_room, @restaurant_accessible, @pool_accessible, @lift,
			@disabled_parking, @step_free_paths, @staff_assistance,
			@created_at, @updated_at)
		RETURNING ` + resortColumns

	row := r.db.QueryRow(ctx, q, resortArgs(resort))
	result, err := scanResort(row)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("repo.ResortRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a resort by primary key.
func (r *pgResortRepo) GetByID(ctx context.Context, id int64) (domain.Resort, error) {
	q := `SELECT ` + resortColumns + ` FROM resorts WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanResort(row)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("repo.ResortRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns resorts matching the filter, most recently updated first.
func (r *pgResortRepo) List(ctx context.Context, filter domain.ResortFilter) ([]domain.Resort, error) {
	q, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ResortRepo.List: %w", err)
	}
	defer rows.Close()

	var resorts []domain.Resort
	for rows.Next() {
		resort, err := scanResort(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ResortRepo.List: scan: %w", err)
		}
		resorts = append(resorts, resort)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ResortRepo.List: rows: %w", err)
	}

	return resorts, nil
}

// buildListQuery assembles the list SELECT from the active filters.
// Conditions are collected as parameterized fragments and joined with AND —
// user input only ever travels through named arguments, never into the SQL text.
func buildListQuery(filter domain.ResortFilter) (string, pgx.NamedArgs) {
	var conds []string
	args := pgx.NamedArgs{}

	if filter.Query != "" {
		conds = append(conds, "(name ILIKE @q OR city ILIKE @q OR notes ILIKE @q)")
		args["q"] = "%" + filter.Query + "%"
	}
	if filter.Region != "" {
		conds = append(conds, "region = @region")
		args["region"] = filter.Region
	}
	if filter.Status != "" {
		conds = append(conds, "status = @status")
		args["status"] = filter.Status
	}
	if filter.KeepOnly {
		conds = append(conds, "keep_flag")
	}
	if filter.AccessibleOnly {
		conds = append(conds, "wheelchair_access AND beach_bathroom_h AND (beach_walkway OR beach_job_chair)")
	}

	q := `SELECT ` + resortColumns + ` FROM resorts`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY updated_at DESC NULLS LAST, created_at DESC NULLS LAST"

	return q, args
}

// Update overwrites every field of a resort and returns the updated record.
// updated_at arrives already stamped by the service; created_at is not listed
// in the SET clause, so it can never change after insert.
func (r *pgResortRepo) Update(ctx context.Context, resort domain.Resort) (domain.Resort, error) {
	q := `
		UPDATE resorts
		SET name                  = @name,
		    region                = @region,
		    city                  = @city,
		    website               = @website,
		    phone                 = @phone,
		    email                 = @email,
		    price_week            = @price_week,
		    price_period          = @price_period,
		    price_notes           = @price_notes,
		    status                = @status,
		    keep_flag             = @keep_flag,
		    notes                 = @notes,
		    wheelchair_access     = @wheelchair_access,
		    beach_walkway         = @beach_walkway,
		    beach_bathroom_h      = @beach_bathroom_h,
		    beach_job_chair       = @beach_job_chair,
		    accessible_room       = @accessible_room,
		    restaurant_accessible = @restaurant_accessible,
		    pool_accessible       = @pool_accessible,
		    lift                  = @lift,
		    disabled_parking      = @disabled_parking,
		    step_free_paths       = @step_free_paths,
		    staff_assistance      = @staff_assistance,
		    updated_at            = @updated_at
		WHERE id = @id
		RETURNING ` + resortColumns

	args := resortArgs(resort)
	args["id"] = resort.ID
	delete(args, "created_at")

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanResort(row)
	if err != nil {
		return domain.Resort{}, fmt.Errorf("repo.ResortRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a resort by primary key. Idempotent: zero affected rows is
// still success, so repeated deletes and deletes of unknown ids are no-ops.
func (r *pgResortRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM resorts WHERE id = @id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.ResortRepo.Delete: %w", err)
	}
	return nil
}

// resortArgs maps a domain.Resort onto the named arguments shared by
// Create and Update. Pointer fields pass through as-is: nil becomes NULL.
func resortArgs(resort domain.Resort) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                  resort.Name,
		"region":                resort.Region,
		"city":                  resort.City,
		"website":               resort.Website,
		"phone":                 resort.Phone,
		"email":                 resort.Email,
		"price_week":            resort.PriceWeek,
		"price_period":          resort.PricePeriod,
		"price_notes":           resort.PriceNotes,
		"status":                resort.Status,
		"keep_flag":             resort.KeepFlag,
		"notes":                 resort.Notes,
		"wheelchair_access":     resort.WheelchairAccess,
		"beach_walkway":         resort.BeachWalkway,
		"beach_bathroom_h":      resort.BeachBathroomH,
		"beach_job_chair":       resort.BeachJobChair,
		"accessible_room":       resort.AccessibleRoom,
		"restaurant_accessible": resort.RestaurantAccessible,
		"pool_accessible":       resort.PoolAccessible,
		"lift":                  resort.Lift,
		"disabled_parking":      resort.DisabledParking,
		"step_free_paths":       resort.StepFreePaths,
		"staff_assistance":      resort.StaffAssistance,
		"created_at":            resort.CreatedAt,
		"updated_at":            resort.UpdatedAt,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanResort to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanResort maps a single database row into a domain.Resort.
// Timestamps are scanned through pgtype so NULL columns (possible in data
// imported from older copies of the catalog) come back as zero times instead
// of failing the scan.
func scanResort(s scanner) (domain.Resort, error) {
	var (
		r         domain.Resort
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := s.Scan(
		&r.ID, &r.Name, &r.Region, &r.City, &r.Website, &r.Phone, &r.Email,
		&r.PriceWeek, &r.PricePeriod, &r.PriceNotes, &r.Status, &r.KeepFlag, &r.Notes,
		&r.WheelchairAccess, &r.BeachWalkway, &r.BeachBathroomH, &r.BeachJobChair,
		&r.AccessibleRoom, &r.RestaurantAccessible, &r.PoolAccessible, &r.Lift,
		&r.DisabledParking, &r.StepFreePaths, &r.StaffAssistance,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Resort{}, domain.ErrNotFound
		}
		return domain.Resort{}, err
	}

	if createdAt.Valid {
		r.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		r.UpdatedAt = updatedAt.Time
	}

	return r, nil
}
