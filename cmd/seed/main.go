package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rvconsign/internal/database"
	"rvconsign/internal/domain"
	"rvconsign/internal/domain/ledger"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/pricing"
	"rvconsign/internal/pkg/refnum"
)

func main() {
	_ = godotenv.Load(".env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rvconsign.db"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	// Cleanup old data, children first
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"crm_outbox", "communications", "damage_reports", "inspections", "documents",
		"maintenance_requests", "remittances", "transactions", "expenses", "bookings",
		"assets", "renters", "owners", "profiles",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	log.Println("Creating accounts...")
	manager := mustProfile(db, "manager@rvfleet.test", "Morgan Fleet", domain.RoleManager, "manager123")
	_ = mustProfile(db, "admin@rvfleet.test", "Ari Admin", domain.RoleAdmin, "admin123")

	owners := make([]domain.Owner, 0, 2)
	for i, name := range []string{"Sunny RV LLC", "Trailhead Rentals"} {
		p := mustProfile(db, fmt.Sprintf("owner%d@rvfleet.test", i+1), fmt.Sprintf("Owner %d", i+1), domain.RoleOwner, "owner123")
		o := domain.Owner{
			UserID:                 p.ID,
			BusinessName:           name,
			ContactName:            p.FullName,
			Email:                  p.Email,
			RevenueSplitPercentage: domain.DefaultRevenueSplitPercentage,
			PlatformFeePercentage:  domain.DefaultPlatformFeePercentage,
			ContractType:           domain.DefaultContractType,
			Status:                 domain.OwnerActive,
		}
		must(db.Create(&o).Error)
		owners = append(owners, o)
	}

	renters := make([]domain.Renter, 0, 2)
	for i := 0; i < 2; i++ {
		p := mustProfile(db, fmt.Sprintf("renter%d@rvfleet.test", i+1), fmt.Sprintf("Renter %d", i+1), domain.RoleRenter, "renter123")
		r := domain.Renter{UserID: p.ID, City: "Denver", State: "CO"}
		must(db.Create(&r).Error)
		renters = append(renters, r)
	}

	log.Println("Creating assets...")
	specs := []struct {
		year        int
		make, model string
		rvType      string
		rate        float64
	}{
		{2021, "Winnebago", "View", "class_c", 200},
		{2019, "Airstream", "Flying Cloud", "travel_trailer", 150},
		{2022, "Thor", "Tuscany", "class_a", 325},
	}
	assets := make([]domain.Asset, 0, len(specs))
	for i, s := range specs {
		a := domain.Asset{
			OwnerID:             owners[i%len(owners)].ID,
			Name:                fmt.Sprintf("%d %s %s", s.year, s.make, s.model),
			Year:                s.year,
			Make:                s.make,
			Model:               s.model,
			RVType:              s.rvType,
			Status:              domain.AssetAvailable,
			BasePricePerNight:   s.rate,
			CleaningFee:         domain.DefaultCleaningFee,
			SecurityDeposit:     domain.DefaultSecurityDeposit,
			MinimumRentalNights: domain.DefaultMinimumRentalNights,
			City:                "Denver",
			State:               "CO",
		}
		must(db.Create(&a).Error)
		assets = append(assets, a)
	}

	log.Println("Creating bookings...")
	today := dates.Today()
	plans := []struct {
		asset, renter int
		offset, nights int
		status         domain.BookingStatus
	}{
		{0, 0, -40, 7, domain.BookingCompleted},
		{1, 1, -20, 4, domain.BookingCompleted},
		{2, 0, 10, 5, domain.BookingConfirmed},
		{0, 1, 30, 3, domain.BookingInquiry},
	}
	for _, p := range plans {
		a := assets[p.asset]
		start := today.AddDate(0, 0, p.offset)
		q := pricing.QuoteBooking(a.BasePricePerNight, p.nights, a.CleaningFee)
		b := domain.Booking{
			BookingNumber:   refnum.Booking(dates.Now()),
			AssetID:         a.ID,
			RenterID:        renters[p.renter].ID,
			OwnerID:         a.OwnerID,
			StartDate:       start,
			EndDate:         start.AddDate(0, 0, p.nights),
			TotalNights:     q.Nights,
			NightlyRate:     q.NightlyRate,
			Subtotal:        q.Subtotal,
			CleaningFee:     q.CleaningFee,
			SecurityDeposit: a.SecurityDeposit,
			PlatformFee:     q.PlatformFee,
			TotalAmount:     q.Total,
			Status:          p.status,
		}
		must(db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&b).Error; err != nil {
				return err
			}
			income := ledger.RentalIncome(&b)
			if b.Status == domain.BookingCompleted {
				income.Status = domain.TxStatusCompleted
			}
			return tx.Create(income).Error
		}))
		time.Sleep(2 * time.Millisecond)
	}

	log.Println("Creating expenses and maintenance...")
	must(db.Create(&domain.Expense{
		AssetID:                    assets[0].ID,
		OwnerID:                    assets[0].OwnerID,
		Category:                   domain.ExpenseRepair,
		Amount:                     240,
		Description:                "Awning arm replacement",
		Status:                     domain.ExpensePending,
		DeductFromOwner:            true,
		OwnerResponsiblePercentage: 100,
		ExpenseDate:                today.AddDate(0, 0, -5),
	}).Error)
	must(db.Create(&domain.MaintenanceRequest{
		TicketNumber: refnum.MaintenanceTicket(dates.Now()),
		AssetID:      assets[1].ID,
		OwnerID:      assets[1].OwnerID,
		ReportedBy:   manager.ID,
		Title:        "Water heater not igniting",
		Priority:     "high",
		Status:       domain.MaintenanceRequested,
	}).Error)

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Manager: manager@rvfleet.test / manager123")
	log.Println("Admin: admin@rvfleet.test / admin123")
	log.Println("Owners: owner1@rvfleet.test, owner2@rvfleet.test / owner123")
	log.Println("Renters: renter1@rvfleet.test, renter2@rvfleet.test / renter123")
}

func mustProfile(db *gorm.DB, email, name string, role domain.UserRole, password string) *domain.Profile {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	must(err)
	p := &domain.Profile{Email: email, PasswordHash: string(hash), FullName: name, Role: role}
	must(db.Create(p).Error)
	return p
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
