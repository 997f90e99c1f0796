package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"rvconsign/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	return Open(dsn, &gorm.Config{TranslateError: true})
}

// ConnectQuiet is Connect with SQL logging silenced, used by tests and tools.
func ConnectQuiet(dsn string) (*gorm.DB, error) {
	return Open(dsn, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

func Open(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if IsPostgres(dsn) {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&domain.Profile{},
		&domain.Owner{},
		&domain.Renter{},
		&domain.Asset{},
		&domain.Booking{},
		&domain.Transaction{},
		&domain.Expense{},
		&domain.Remittance{},
		&domain.Inspection{},
		&domain.DamageReport{},
		&domain.Document{},
		&domain.MaintenanceRequest{},
		&domain.Communication{},
		&domain.CRMOutbox{},
	}
}

func Migrate(db *gorm.DB) error {
	log.Println("Running AutoMigrate...")
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
