package outcome

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	var effects Effects
	effects.Record("crm.sync_booking", nil)
	effects.Record("crm.sync_owner", fmt.Errorf("%w: hubspot not configured", ErrSkipped))
	effects.Record("notify.owner_statement", errors.New("sendgrid error: status 401"))

	assert.Len(t, effects, 3)
	assert.Equal(t, StatusOK, effects[0].Status)
	assert.Equal(t, StatusSkipped, effects[1].Status)
	assert.Equal(t, StatusFailed, effects[2].Status)
	assert.True(t, effects.Failed())

	eff, ok := effects.Find("notify.owner_statement")
	assert.True(t, ok)
	assert.Contains(t, eff.Error, "401")
}

func TestFailed_NoFailures(t *testing.T) {
	var effects Effects
	effects.Record("a", nil)
	effects.Record("b", ErrSkipped)
	assert.False(t, effects.Failed())
}
