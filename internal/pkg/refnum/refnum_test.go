package refnum

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_MatchesCRMPattern(t *testing.T) {
	n := Booking(time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^BK-20250203-\d{4}$`), n)
	assert.Regexp(t, regexp.MustCompile(`BK-\d+-\d+`), "BK-20250203-0042 - 2021 Winnebago View")
}

func TestPrefixes(t *testing.T) {
	now := time.UnixMilli(1735689600000)

	assert.Regexp(t, `^REM-1735689600000-[0-9a-z]+$`, Remittance(now))
	assert.Regexp(t, `^DMG-1735689600000-[0-9a-z]+$`, DamageReport(now))
	assert.Regexp(t, `^MR-1735689600000-[0-9a-z]+$`, MaintenanceTicket(now))
	assert.Equal(t, "EXP-abc", ExpenseReference("abc"))
}

func TestSameMillisecondNumbersDiffer(t *testing.T) {
	now := time.UnixMilli(1735689600000)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[DamageReport(now)] = true
		seen[MaintenanceTicket(now)] = true
	}
	assert.Greater(t, len(seen), 30)
}
