package remittance

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/notify"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/testutil"
)

type recordingNotifier struct {
	mu   sync.Mutex
	err  error
	sent []notify.Message
}

func (n *recordingNotifier) Send(_ context.Context, msg notify.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

// seedFleet builds the owner (70% split) with one $200/night asset and a
// completed 7-night booking ending 2025-06-08.
func seedFleet(t *testing.T, db *gorm.DB) (*domain.Owner, *domain.Asset) {
	t.Helper()
	owner := testutil.Owner(t, db)
	asset := testutil.Asset(t, db, owner.ID)
	testutil.Booking(t, db, asset, "", "2025-06-01", "2025-06-08", domain.BookingCompleted)
	return owner, asset
}

func setupService(t *testing.T) (*Service, *recordingNotifier, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	n := &recordingNotifier{}
	return NewService(NewRepository(db), n), n, db
}

func TestCalculate_SingleCompletedBooking(t *testing.T) {
	svc, _, db := setupService(t)
	owner, asset := seedFleet(t, db)

	calc, err := svc.Calculate(context.Background(), PeriodRequest{
		OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 1615.0, calc.GrossIncome)
	assert.Equal(t, 161.5, calc.PlatformFees)
	assert.Equal(t, 75.0, calc.CleaningFees)
	assert.Equal(t, 0.0, calc.Expenses)
	assert.Equal(t, 236.5, calc.TotalDeductions)
	assert.Equal(t, 1378.5, calc.NetIncome)
	assert.InDelta(t, 964.95, calc.OwnerPayout, 0.001)
	assert.Equal(t, 1, calc.BookingsCount)
	assert.Equal(t, asset.Name, calc.Bookings[0].AssetName)
	assert.Equal(t, 1615.0, calc.Bookings[0].Amount)
	assert.Equal(t, Period{Start: "2025-06-01", End: "2025-06-30"}, calc.Period)
	assert.Equal(t, 70.0, calc.Owner.RevenueSplitPercentage)
}

func TestCalculate_FiltersByStatusAndPeriod(t *testing.T) {
	svc, _, db := setupService(t)
	owner, asset := seedFleet(t, db)

	testutil.Booking(t, db, asset, "", "2025-06-10", "2025-06-12", domain.BookingConfirmed)
	testutil.Booking(t, db, asset, "", "2025-05-20", "2025-05-31", domain.BookingCompleted)
	testutil.Expense(t, db, asset, 100, "2025-06-15", domain.ExpenseApproved)
	testutil.Expense(t, db, asset, 999, "2025-06-16", domain.ExpensePending)
	testutil.Expense(t, db, asset, 50, "2025-07-01", domain.ExpenseApproved)

	other := testutil.Owner(t, db, func(o *domain.Owner) { o.Email = "other@example.com" })
	otherAsset := testutil.Asset(t, db, other.ID)
	testutil.Booking(t, db, otherAsset, "", "2025-06-02", "2025-06-05", domain.BookingCompleted)

	calc, err := svc.Calculate(context.Background(), PeriodRequest{
		OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calc.BookingsCount)
	assert.Equal(t, 1, calc.ExpensesCount)
	assert.Equal(t, 100.0, calc.Expenses)
	// (1615 - 161.5 - 75 - 100) * 0.7
	assert.InDelta(t, 894.95, calc.OwnerPayout, 0.001)
}

func TestCalculate_PeriodEndIsInclusive(t *testing.T) {
	svc, _, db := setupService(t)
	owner, _ := seedFleet(t, db)

	calc, err := svc.Calculate(context.Background(), PeriodRequest{
		OwnerID: owner.ID, PeriodStart: "2025-06-08", PeriodEnd: "2025-06-08",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calc.BookingsCount)
}

func TestCalculate_Errors(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Calculate(ctx, PeriodRequest{OwnerID: "o", PeriodStart: "2025-06-01"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Calculate(ctx, PeriodRequest{OwnerID: "o", PeriodStart: "2025-06-30", PeriodEnd: "2025-06-01"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.Calculate(ctx, PeriodRequest{OwnerID: "missing", PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestSend_TwiceCreatesTwoRemittances(t *testing.T) {
	svc, n, db := setupService(t)
	owner, _ := seedFleet(t, db)
	req := PeriodRequest{OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30"}
	ctx := context.Background()

	first, effects, err := svc.Send(ctx, req)
	require.NoError(t, err)
	second, _, err := svc.Send(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.RemittanceNumber, second.RemittanceNumber)
	assert.Regexp(t, `^REM-\d+-[0-9a-z]+$`, first.RemittanceNumber)
	assert.Equal(t, domain.RemittancePending, first.Status)
	assert.InDelta(t, 964.95, first.OwnerPayoutAmount, 0.001)
	assert.Len(t, first.BookingIDs, 1)
	assert.NotNil(t, first.SentAt)

	rows, err := svc.List(ctx, Filter{OwnerID: owner.ID})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	eff, ok := effects.Find("notify.owner_statement")
	require.True(t, ok)
	assert.Equal(t, outcome.StatusOK, eff.Status)
	require.Len(t, n.sent, 2)
	assert.Equal(t, owner.Email, n.sent[0].To)
	assert.Contains(t, n.sent[0].PlainText, "$964.95")
}

func TestSend_NotifyFailureKeepsRemittance(t *testing.T) {
	svc, n, db := setupService(t)
	n.err = errors.New("sendgrid: status 401")
	owner, _ := seedFleet(t, db)

	rem, effects, err := svc.Send(context.Background(), PeriodRequest{
		OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30",
	})
	require.NoError(t, err)
	assert.True(t, effects.Failed())

	stored, err := svc.Get(context.Background(), rem.ID)
	require.NoError(t, err)
	assert.Equal(t, rem.RemittanceNumber, stored.RemittanceNumber)
}

func TestSend_NoEmailIsSkipped(t *testing.T) {
	svc, n, db := setupService(t)
	owner := testutil.Owner(t, db, func(o *domain.Owner) { o.Email = "" })

	_, effects, err := svc.Send(context.Background(), PeriodRequest{
		OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30",
	})
	require.NoError(t, err)
	eff, _ := effects.Find("notify.owner_statement")
	assert.Equal(t, outcome.StatusSkipped, eff.Status)
	assert.Empty(t, n.sent)
}

func TestUpdate_MarkPaid(t *testing.T) {
	svc, _, db := setupService(t)
	owner, _ := seedFleet(t, db)
	ctx := context.Background()

	rem, _, err := svc.Send(ctx, PeriodRequest{OwnerID: owner.ID, PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30"})
	require.NoError(t, err)

	paid, ref := "paid", "ACH-1234"
	updated, err := svc.Update(ctx, rem.ID, UpdateRequest{Status: &paid, PaymentReference: &ref})
	require.NoError(t, err)
	assert.Equal(t, domain.RemittancePaid, updated.Status)
	assert.Equal(t, "ACH-1234", updated.PaymentReference)
	assert.NotNil(t, updated.PaymentDate)

	bogus := "wired"
	_, err = svc.Update(ctx, rem.ID, UpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(ctx, "missing", UpdateRequest{Status: &paid})
	assert.ErrorIs(t, err, ErrRemittanceNotFound)
}
