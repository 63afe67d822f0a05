package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptessari/resort-catalog/internal/domain"
	"github.com/ptessari/resort-catalog/internal/repo"
)

func TestActivityLogRepo_Append(t *testing.T) {
	tx := newTestTx(t)
	resorts := repo.NewResortRepo(tx)
	activity := repo.NewActivityLogRepo(tx)
	ctx := context.Background()

	created, err := resorts.Create(ctx, resortFixture())
	require.NoError(t, err)

	entryID := uuid.New()
	err = activity.Append(ctx, domain.ActivityLogEntry{
		ID:          entryID,
		ResortID:    created.ID,
		Action:      domain.ActionCreated,
		Description: "resort Lido Azzurro inserted",
	})
	require.NoError(t, err)

	// The trail is write-only for the application, so verify with raw SQL.
	var storedID uuid.UUID
	err = tx.QueryRow(ctx, "SELECT id FROM activity_log WHERE resort_id = $1", created.ID).Scan(&storedID)
	require.NoError(t, err)
	assert.Equal(t, entryID, storedID, "the row must keep the service-assigned id")
}

// TestActivityLogRepo_CascadeDelete verifies that deleting a resort removes
// its audit entries via the schema's ON DELETE CASCADE.
func TestActivityLogRepo_CascadeDelete(t *testing.T) {
	tx := newTestTx(t)
	resorts := repo.NewResortRepo(tx)
	activity := repo.NewActivityLogRepo(tx)
	ctx := context.Background()

	created, err := resorts.Create(ctx, resortFixture())
	require.NoError(t, err)

	require.NoError(t, activity.Append(ctx, domain.ActivityLogEntry{
		ID:       uuid.New(),
		ResortID: created.ID,
		Action:   domain.ActionCreated,
	}))

	require.NoError(t, resorts.Delete(ctx, created.ID))

	var count int
	err = tx.QueryRow(ctx, "SELECT count(*) FROM activity_log WHERE resort_id = $1", created.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "cascade must remove audit entries with their resort")
}

func TestActivityLogRepo_AppendUnknownResort(t *testing.T) {
	tx := newTestTx(t)
	activity := repo.NewActivityLogRepo(tx)

	err := activity.Append(context.Background(), domain.ActivityLogEntry{
		ID:       uuid.New(),
		ResortID: 999999999,
		Action:   domain.ActionCreated,
	})

	// The FK rejects entries for resorts that do not exist.
	assert.Error(t, err)
}
