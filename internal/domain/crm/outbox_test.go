package crm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/domain"
	"rvconsign/internal/testutil"
)

func TestPurgeOutbox_KeepsPendingAndRecentRows(t *testing.T) {
	svc, db := setupService(t, nil)
	old := time.Now().UTC().Add(-60 * 24 * time.Hour)

	rows := []struct {
		id      string
		status  string
		touched time.Time
	}{
		{"o1", domain.OutboxDone, old},
		{"o2", domain.OutboxDone, time.Now().UTC()},
		{"o3", domain.OutboxDead, old},
		{"o4", domain.OutboxPending, old},
	}
	for _, r := range rows {
		row := domain.CRMOutbox{EntityType: domain.CRMOwner, EntityID: r.id, Status: r.status}
		require.NoError(t, db.Create(&row).Error)
		require.NoError(t, db.Model(&row).UpdateColumn("updated_at", r.touched).Error)
	}

	res, err := svc.PurgeOutbox(context.Background(), 7*24*time.Hour, 30*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Done)
	assert.EqualValues(t, 1, res.Dead)

	var left []string
	require.NoError(t, db.Model(&domain.CRMOutbox{}).Order("entity_id").Pluck("entity_id", &left).Error)
	assert.Equal(t, []string{"o2", "o4"}, left)
}

func TestEnqueueOutbox_RearmedRowGetsFullRetries(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	const maxTries = 3

	load := func() domain.CRMOutbox {
		var row domain.CRMOutbox
		require.NoError(t, db.Where("entity_id = ?", "owner-1").First(&row).Error)
		return row
	}

	require.NoError(t, repo.EnqueueOutbox(ctx, domain.CRMOwner, "owner-1", "status 500"))
	id := load().ID
	for i := 0; i < maxTries; i++ {
		_, err := repo.MarkOutboxFailed(ctx, id, "status 500", maxTries)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.OutboxDead, load().Status)

	require.NoError(t, repo.EnqueueOutbox(ctx, domain.CRMOwner, "owner-1", "status 502"))
	row := load()
	assert.Equal(t, id, row.ID)
	assert.Equal(t, domain.OutboxPending, row.Status)
	assert.Zero(t, row.Attempts)

	dead, err := repo.MarkOutboxFailed(ctx, id, "status 502", maxTries)
	require.NoError(t, err)
	assert.False(t, dead)
	assert.Equal(t, 1, load().Attempts)

	// still pending: a fresh failure does not reset the count
	require.NoError(t, repo.EnqueueOutbox(ctx, domain.CRMOwner, "owner-1", "status 503"))
	row = load()
	assert.Equal(t, 1, row.Attempts)
	assert.Equal(t, "status 503", row.LastError)
}
