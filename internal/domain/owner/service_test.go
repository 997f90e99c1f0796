package owner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/notify"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/testutil"
)

type crmMock struct {
	mock.Mock
}

func (m *crmMock) SyncOwner(_ context.Context, ownerID string) error {
	return m.Called(ownerID).Error(0)
}

func (m *crmMock) CreateOnboardingContact(_ context.Context, email, firstName, lastName, phone, company string) (string, error) {
	args := m.Called(email, firstName, lastName, phone, company)
	return args.String(0), args.Error(1)
}

func (m *crmMock) CreateOnboardingDeal(_ context.Context, contactID, dealName string, amount float64) error {
	return m.Called(contactID, dealName, amount).Error(0)
}

type recordingNotifier struct {
	sent []notify.Message
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, msg notify.Message) error {
	n.sent = append(n.sent, msg)
	return n.err
}

func setupService(t *testing.T, teamEmail string) (*Service, *crmMock, *recordingNotifier, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	crm := &crmMock{}
	n := &recordingNotifier{}
	return NewService(NewRepository(db), crm, n, teamEmail), crm, n, db
}

func onboardRequest() OnboardRequest {
	return OnboardRequest{
		FirstName: "Dana", LastName: "Reyes", Email: "Dana@Example.com", Phone: "555-0100",
		Company: "Reyes RV Rentals", VehicleYear: 2022, VehicleMake: "Airstream", VehicleModel: "Interstate",
		BasePrice: 250, Notes: "Garage kept",
	}
}

func TestOnboard_FullFlow(t *testing.T) {
	svc, crm, n, db := setupService(t, "team@fleet.example")
	crm.On("CreateOnboardingContact", "dana@example.com", "Dana", "Reyes", "555-0100", "Reyes RV Rentals").
		Return("contact-9", nil)
	crm.On("CreateOnboardingDeal", "contact-9", "New Owner Onboarding - Reyes RV Rentals", 7500.0).Return(nil)

	res, effects, err := svc.Onboard(context.Background(), onboardRequest())
	require.NoError(t, err)

	assert.Equal(t, "Reyes RV Rentals", res.Owner.BusinessName)
	assert.Equal(t, "Dana Reyes", res.Owner.ContactName)
	assert.Equal(t, domain.OwnerPendingApproval, res.Owner.Status)
	assert.Equal(t, 70.0, res.Owner.RevenueSplitPercentage)
	assert.Equal(t, "standard", res.Owner.ContractType)
	assert.Equal(t, "contact-9", res.Owner.HubspotContactID)

	assert.Equal(t, "2022 Airstream Interstate", res.Asset.Name)
	assert.Equal(t, res.Owner.ID, res.Asset.OwnerID)
	assert.Equal(t, domain.AssetPendingApproval, res.Asset.Status)
	assert.Equal(t, 75.0, res.Asset.CleaningFee)

	assert.False(t, effects.Failed())
	assert.Len(t, effects, 3)
	require.Len(t, n.sent, 1)
	assert.Equal(t, "team@fleet.example", n.sent[0].To)
	crm.AssertExpectations(t)

	var assets int64
	require.NoError(t, db.Model(&domain.Asset{}).Where("owner_id = ?", res.Owner.ID).Count(&assets).Error)
	assert.EqualValues(t, 1, assets)
}

func TestOnboard_CRMDisabledStillSaves(t *testing.T) {
	svc, crm, n, _ := setupService(t, "")
	skipped := fmt.Errorf("%w: hubspot not configured", outcome.ErrSkipped)
	crm.On("CreateOnboardingContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", skipped)
	crm.On("CreateOnboardingDeal", "", "New Owner Onboarding - Reyes RV Rentals", 7500.0).Return(skipped)

	res, effects, err := svc.Onboard(context.Background(), onboardRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Owner.ID)
	assert.False(t, effects.Failed())

	for _, eff := range effects {
		assert.Equal(t, outcome.StatusSkipped, eff.Status, eff.Name)
	}
	assert.Empty(t, n.sent)
}

func TestOnboard_NoCompanyUsesName(t *testing.T) {
	svc, crm, _, _ := setupService(t, "team@fleet.example")
	crm.On("CreateOnboardingContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return("c1", nil)
	crm.On("CreateOnboardingDeal", "c1", "New Owner Onboarding - Dana Reyes", mock.Anything).Return(errors.New("hubspot: status 500"))

	req := onboardRequest()
	req.Company = ""
	res, effects, err := svc.Onboard(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", res.Owner.BusinessName)
	assert.True(t, effects.Failed())
}

func TestUpdate_ContractTerms(t *testing.T) {
	svc, crm, _, db := setupService(t, "")
	crm.On("SyncOwner", mock.Anything).Return(nil)
	o := testutil.Owner(t, db)
	ctx := context.Background()

	split, active := 75.0, "active"
	updated, effects, err := svc.Update(ctx, o.ID, UpdateRequest{RevenueSplitPercentage: &split, Status: &active})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.RevenueSplitPercentage)
	assert.Equal(t, domain.OwnerActive, updated.Status)
	_, ok := effects.Find("crm.sync_owner")
	assert.True(t, ok)
	crm.AssertCalled(t, "SyncOwner", o.ID)

	bad := 120.0
	_, _, err = svc.Update(ctx, o.ID, UpdateRequest{RevenueSplitPercentage: &bad})
	assert.ErrorIs(t, err, ErrInvalidSplit)

	bogus := "frozen"
	_, _, err = svc.Update(ctx, o.ID, UpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = svc.Update(ctx, "missing", UpdateRequest{Status: &active})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestListGetEarnings(t *testing.T) {
	svc, _, _, db := setupService(t, "")
	o := testutil.Owner(t, db)
	asset := testutil.Asset(t, db, o.ID)
	testutil.Asset(t, db, o.ID)
	testutil.Booking(t, db, asset, "", "2025-06-01", "2025-06-08", domain.BookingCompleted)
	testutil.Booking(t, db, asset, "", "2025-07-01", "2025-07-03", domain.BookingConfirmed)
	testutil.Expense(t, db, asset, 100, "2025-06-15", domain.ExpenseApproved)
	require.NoError(t, db.Create(&domain.Remittance{
		RemittanceNumber: "REM-1-a", OwnerID: o.ID, OwnerPayoutAmount: 900, Status: domain.RemittancePaid,
		PeriodStart: testutil.Date("2025-05-01"), PeriodEnd: testutil.Date("2025-05-31"),
	}).Error)
	require.NoError(t, db.Create(&domain.Remittance{
		RemittanceNumber: "REM-2-b", OwnerID: o.ID, OwnerPayoutAmount: 964.95, Status: domain.RemittancePending,
		PeriodStart: testutil.Date("2025-06-01"), PeriodEnd: testutil.Date("2025-06-30"),
	}).Error)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].AssetCount)

	detail, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Assets, 2)

	e, err := svc.Earnings(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 1615.0, e.TotalRevenue)
	assert.Equal(t, 1, e.CompletedBookings)
	assert.Equal(t, 100.0, e.ApprovedExpenses)
	assert.Equal(t, 900.0, e.PaidOut)
	assert.Equal(t, 964.95, e.PendingPayout)
	assert.Equal(t, 2, e.AssetCount)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}
