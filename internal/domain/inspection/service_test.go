package inspection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/testutil"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *domain.Booking) {
	t.Helper()
	db := testutil.NewDB(t)
	owner := testutil.Owner(t, db)
	asset := testutil.Asset(t, db, owner.ID)
	renter := testutil.Renter(t, db, "")
	b := testutil.Booking(t, db, asset, renter.ID, "2025-06-01", "2025-06-08", domain.BookingCheckedOut)
	return NewService(NewRepository(db)), db, b
}

func countDamage(t *testing.T, db *gorm.DB, inspectionID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.DamageReport{}).Where("inspection_id = ?", inspectionID).Count(&n).Error)
	return n
}

func TestCreate_NoDamage(t *testing.T) {
	svc, db, b := setupService(t)

	res, err := svc.Create(context.Background(), CreateRequest{
		BookingID:      b.ID,
		InspectionType: domain.InspectionCheckin,
		FuelLevel:      "full",
		ChecklistItems: map[string]any{"awning": true},
	}, "inspector-1")
	require.NoError(t, err)

	assert.Nil(t, res.DamageReport)
	assert.Equal(t, b.AssetID, res.Inspection.AssetID)
	assert.Equal(t, "inspector-1", res.Inspection.InspectorID)
	assert.Zero(t, countDamage(t, db, res.Inspection.ID))
}

func TestCreate_DamageSeverityThreshold(t *testing.T) {
	cases := []struct {
		cost     float64
		severity string
	}{
		{cost: 120, severity: domain.SeverityMinor},
		{cost: 500, severity: domain.SeverityMinor},
		{cost: 500.01, severity: domain.SeverityMajor},
		{cost: 2400, severity: domain.SeverityMajor},
	}

	for _, tc := range cases {
		svc, db, b := setupService(t)
		res, err := svc.Create(context.Background(), CreateRequest{
			BookingID:           b.ID,
			InspectionType:      domain.InspectionCheckout,
			DamagesFound:        true,
			DamageDescription:   "Cracked rear bumper",
			EstimatedRepairCost: tc.cost,
		}, "")
		require.NoError(t, err)
		require.NotNil(t, res.DamageReport)

		d := res.DamageReport
		assert.Equal(t, tc.severity, d.Severity, "cost %.2f", tc.cost)
		assert.Equal(t, "Damage found during checkout", d.Title)
		assert.Equal(t, "Cracked rear bumper", d.Description)
		assert.Equal(t, domain.DamageReported, d.Status)
		assert.Equal(t, b.RenterID, d.RenterID)
		assert.Equal(t, res.Inspection.ID, d.InspectionID)
		assert.Regexp(t, `^DMG-\d+-[0-9a-z]+$`, d.ReportNumber)
		assert.EqualValues(t, 1, countDamage(t, db, res.Inspection.ID))
	}
}

func TestCreate_Errors(t *testing.T) {
	svc, _, b := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{BookingID: "missing", InspectionType: "checkin"}, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Create(ctx, CreateRequest{BookingID: b.ID, InspectionType: "walkaround"}, "")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestList_ScopesAndOrder(t *testing.T) {
	svc, db, b := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{BookingID: b.ID, InspectionType: "checkin", InspectionDate: "2025-06-01"}, "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{BookingID: b.ID, InspectionType: "checkout", InspectionDate: "2025-06-08"}, "")
	require.NoError(t, err)

	rows, err := svc.List(ctx, Filter{BookingID: b.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "checkout", rows[0].InspectionType)

	rows, err = svc.List(ctx, Filter{OwnerID: b.OwnerID})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	other := testutil.Owner(t, db)
	rows, err = svc.List(ctx, Filter{OwnerID: other.ID})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateDamage_Resolve(t *testing.T) {
	svc, _, b := setupService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateRequest{
		BookingID: b.ID, InspectionType: "checkout", DamagesFound: true, EstimatedRepairCost: 800,
	}, "")
	require.NoError(t, err)

	resolved, cost := domain.DamageResolved, 650.0
	d, err := svc.UpdateDamage(ctx, res.DamageReport.ID, DamageUpdateRequest{Status: &resolved, ActualRepairCost: &cost})
	require.NoError(t, err)
	assert.Equal(t, domain.DamageResolved, d.Status)
	require.NotNil(t, d.ActualRepairCost)
	assert.Equal(t, 650.0, *d.ActualRepairCost)
	assert.NotNil(t, d.ResolutionDate)

	list, err := svc.ListDamage(ctx, DamageFilter{Status: domain.DamageResolved})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	bogus := "lost"
	_, err = svc.UpdateDamage(ctx, res.DamageReport.ID, DamageUpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateDamage(ctx, "missing", DamageUpdateRequest{Status: &resolved})
	assert.ErrorIs(t, err, ErrDamageReportNotFound)
}
