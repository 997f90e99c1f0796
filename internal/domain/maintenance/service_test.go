package maintenance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/testutil"
)

type crmMock struct {
	mock.Mock
}

func (m *crmMock) SyncMaintenance(_ context.Context, requestID string) error {
	return m.Called(requestID).Error(0)
}

func setupService(t *testing.T) (*Service, *crmMock, *domain.Asset) {
	t.Helper()
	db := testutil.NewDB(t)
	crm := &crmMock{}
	owner := testutil.Owner(t, db)
	asset := testutil.Asset(t, db, owner.ID)
	return NewService(NewRepository(db), crm), crm, asset
}

func TestCreate_Defaults(t *testing.T) {
	svc, crm, asset := setupService(t)
	crm.On("SyncMaintenance", mock.Anything).Return(nil)

	m, effects, err := svc.Create(context.Background(), CreateRequest{
		AssetID: asset.ID, Title: "Generator won't start",
	}, "user-1", "")
	require.NoError(t, err)

	assert.Regexp(t, `^MR-\d+-[0-9a-z]+$`, m.TicketNumber)
	assert.Equal(t, domain.MaintenanceRequested, m.Status)
	assert.Equal(t, "medium", m.Priority)
	assert.Equal(t, asset.OwnerID, m.OwnerID)
	assert.Equal(t, "user-1", m.ReportedBy)

	eff, ok := effects.Find("crm.sync_maintenance")
	require.True(t, ok)
	assert.Equal(t, outcome.StatusOK, eff.Status)
	crm.AssertCalled(t, "SyncMaintenance", m.ID)
}

func TestCreate_CRMFailureKeepsTicket(t *testing.T) {
	svc, crm, asset := setupService(t)
	crm.On("SyncMaintenance", mock.Anything).Return(errors.New("hubspot: status 500"))

	m, effects, err := svc.Create(context.Background(), CreateRequest{AssetID: asset.ID, Title: "Leak"}, "", "")
	require.NoError(t, err)
	assert.True(t, effects.Failed())

	stored, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leak", stored.Title)
}

func TestCreate_OwnerScope(t *testing.T) {
	svc, _, asset := setupService(t)

	_, _, err := svc.Create(context.Background(), CreateRequest{AssetID: asset.ID, Title: "x"}, "", "someone-else")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, _, err = svc.Create(context.Background(), CreateRequest{AssetID: "missing", Title: "x"}, "", "")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUpdate_CompleteStampsDate(t *testing.T) {
	svc, crm, asset := setupService(t)
	crm.On("SyncMaintenance", mock.Anything).Return(nil)
	ctx := context.Background()

	m, _, err := svc.Create(ctx, CreateRequest{AssetID: asset.ID, Title: "Brakes"}, "", "")
	require.NoError(t, err)

	completed, cost, vendor := "completed", 420.0, "Desert RV Service"
	updated, effects, err := svc.Update(ctx, m.ID, UpdateRequest{Status: &completed, ActualCost: &cost, VendorName: &vendor})
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceCompleted, updated.Status)
	require.NotNil(t, updated.CompletionDate)
	require.NotNil(t, updated.ActualCost)
	assert.Equal(t, 420.0, *updated.ActualCost)
	assert.Equal(t, "Desert RV Service", updated.VendorName)
	assert.False(t, effects.Failed())

	open, err := svc.List(ctx, Filter{Status: "requested"})
	require.NoError(t, err)
	assert.Empty(t, open)

	bogus := "waiting"
	_, _, err = svc.Update(ctx, m.ID, UpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = svc.Update(ctx, "missing", UpdateRequest{Status: &completed})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
