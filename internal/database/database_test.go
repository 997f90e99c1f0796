package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/rv"))
	assert.True(t, IsPostgres("postgresql://localhost/rv"))
	assert.False(t, IsPostgres("rvconsign.db"))
	assert.False(t, IsPostgres("file:test?mode=memory&cache=shared"))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db, err := ConnectQuiet(fmt.Sprintf("file:database_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{
		"profiles", "owners", "renters", "assets", "bookings", "transactions", "expenses",
		"remittances", "inspections", "damage_reports", "documents", "maintenance_requests",
		"communications", "crm_outbox",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
