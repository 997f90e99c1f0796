// Package refnum generates the human readable reference numbers printed on
// bookings, remittances, damage reports and maintenance tickets.
package refnum

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// Booking returns BK-YYYYMMDD-NNNN. CRM deal names embed it and inbound
// webhooks find the booking again with `BK-\d+-\d+`.
func Booking(now time.Time) string {
	return fmt.Sprintf("BK-%s-%04d", now.UTC().Format("20060102"), rand.IntN(10000))
}

// Remittance returns REM-{unix ms}-{base36}.
func Remittance(now time.Time) string {
	return fmt.Sprintf("REM-%d-%s", now.UnixMilli(), suffix())
}

// DamageReport returns DMG-{unix ms}-{base36}.
func DamageReport(now time.Time) string {
	return fmt.Sprintf("DMG-%d-%s", now.UnixMilli(), suffix())
}

// MaintenanceTicket returns MR-{unix ms}-{base36}.
func MaintenanceTicket(now time.Time) string {
	return fmt.Sprintf("MR-%d-%s", now.UnixMilli(), suffix())
}

// ExpenseReference links an expense to its ledger row.
func ExpenseReference(expenseID string) string {
	return "EXP-" + expenseID
}

func suffix() string {
	return strconv.FormatInt(rand.Int64N(36*36*36*36*36), 36)
}
