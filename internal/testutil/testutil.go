// Package testutil builds in-memory databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"rvconsign/internal/database"
	"rvconsign/internal/domain"
)

// NewDB opens a private shared-cache in-memory SQLite database and migrates it.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:rv_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := database.ConnectQuiet(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustCreate(t testing.TB, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("failed to create %T: %v", v, err)
	}
}

func Date(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func Profile(t testing.TB, db *gorm.DB, role domain.UserRole, email string) *domain.Profile {
	t.Helper()
	p := &domain.Profile{Email: email, PasswordHash: "x", FullName: "Test " + string(role), Role: role}
	mustCreate(t, db, p)
	return p
}

func Owner(t testing.TB, db *gorm.DB, mutate ...func(*domain.Owner)) *domain.Owner {
	t.Helper()
	o := &domain.Owner{
		BusinessName:           "Sunny RV LLC",
		ContactName:            "Sam Sunny",
		Email:                  "sam@sunny.example",
		RevenueSplitPercentage: domain.DefaultRevenueSplitPercentage,
		PlatformFeePercentage:  domain.DefaultPlatformFeePercentage,
		ContractType:           domain.DefaultContractType,
		Status:                 domain.OwnerActive,
	}
	for _, m := range mutate {
		m(o)
	}
	mustCreate(t, db, o)
	return o
}

func Asset(t testing.TB, db *gorm.DB, ownerID string, mutate ...func(*domain.Asset)) *domain.Asset {
	t.Helper()
	a := &domain.Asset{
		OwnerID:             ownerID,
		Name:                "2021 Winnebago View",
		Year:                2021,
		Make:                "Winnebago",
		Model:               "View",
		RVType:              "class_c",
		Status:              domain.AssetAvailable,
		BasePricePerNight:   200,
		CleaningFee:         75,
		SecurityDeposit:     500,
		MinimumRentalNights: 2,
	}
	for _, m := range mutate {
		m(a)
	}
	mustCreate(t, db, a)
	return a
}

func Renter(t testing.TB, db *gorm.DB, userID string) *domain.Renter {
	t.Helper()
	r := &domain.Renter{UserID: userID}
	mustCreate(t, db, r)
	return r
}

var bookingSeq atomic.Int64

// Booking inserts a priced booking directly, bypassing the service.
func Booking(t testing.TB, db *gorm.DB, asset *domain.Asset, renterID string, start, end string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	s, e := Date(start), Date(end)
	nights := int(e.Sub(s).Hours() / 24)
	subtotal := asset.BasePricePerNight * float64(nights)
	platform := subtotal * 0.10
	b := &domain.Booking{
		BookingNumber: fmt.Sprintf("BK-%s-%04d", s.Format("20060102"), bookingSeq.Add(1)%10000),
		AssetID:       asset.ID,
		RenterID:      renterID,
		OwnerID:       asset.OwnerID,
		StartDate:     s,
		EndDate:       e,
		TotalNights:   nights,
		NightlyRate:   asset.BasePricePerNight,
		Subtotal:      subtotal,
		CleaningFee:   asset.CleaningFee,
		PlatformFee:   platform,
		TotalAmount:   subtotal + asset.CleaningFee + platform,
		Status:        status,
	}
	mustCreate(t, db, b)
	return b
}

func Expense(t testing.TB, db *gorm.DB, asset *domain.Asset, amount float64, date string, status domain.ExpenseStatus) *domain.Expense {
	t.Helper()
	e := &domain.Expense{
		AssetID:                    asset.ID,
		OwnerID:                    asset.OwnerID,
		Category:                   domain.ExpenseRepair,
		Amount:                     amount,
		Description:                "Awning repair",
		Status:                     status,
		DeductFromOwner:            true,
		OwnerResponsiblePercentage: 100,
		ExpenseDate:                Date(date),
	}
	mustCreate(t, db, e)
	return e
}
