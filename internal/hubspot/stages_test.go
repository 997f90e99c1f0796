package hubspot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStageMap(t *testing.T) {
	m := DefaultStageMap()

	assert.Equal(t, "appointmentscheduled", m.DealStage("inquiry"))
	assert.Equal(t, "qualifiedtobuy", m.DealStage("confirmed"))
	assert.Equal(t, "closedwon", m.DealStage("checked_out"))
	assert.Equal(t, "closedwon", m.DealStage("completed"))
	assert.Equal(t, "closedlost", m.DealStage("cancelled"))
	assert.Equal(t, "appointmentscheduled", m.DealStage("unknown"))

	assert.Equal(t, "completed", m.BookingStatus("closedwon"))
	assert.Equal(t, "checked_in", m.BookingStatus("presentationscheduled"))
	assert.Equal(t, "inquiry", m.BookingStatus("somethingelse"))

	assert.Equal(t, "3", m.TicketStage("in_progress"))
	assert.Equal(t, "1", m.TicketStage("bogus"))
	assert.Equal(t, "cancelled", m.MaintenanceStatus("5"))
	assert.Equal(t, "requested", m.MaintenanceStatus("99"))
}

func TestLoadStageMap_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
deal_stages:
  confirmed: "contractsent"
booking_statuses:
  contractsent: confirmed
ticket_stages:
  completed: "closed"
default_deal_stage: "newlead"
`), 0o644))

	m, err := LoadStageMap(path)
	require.NoError(t, err)

	assert.Equal(t, "contractsent", m.DealStage("confirmed"))
	assert.Equal(t, "confirmed", m.BookingStatus("contractsent"))
	assert.Equal(t, "closed", m.TicketStage("completed"))
	assert.Equal(t, "newlead", m.DealStage("nope"))
	// untouched entries keep their defaults
	assert.Equal(t, "closedlost", m.DealStage("cancelled"))
}

func TestLoadStageMap_BadFile(t *testing.T) {
	_, err := LoadStageMap(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
