// Package ledger owns the signed transaction log. Rows are written only as a
// consequence of bookings and approved expenses.
package ledger

import (
	"fmt"
	"math"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/refnum"
)

// RentalIncome is the income row recorded with a new booking.
func RentalIncome(b *domain.Booking) *domain.Transaction {
	status := domain.TxStatusPending
	if b.Status == domain.BookingCompleted {
		status = domain.TxStatusCompleted
	}
	return &domain.Transaction{
		BookingID:       b.ID,
		AssetID:         b.AssetID,
		OwnerID:         b.OwnerID,
		RenterID:        b.RenterID,
		TransactionType: domain.TxRentalIncome,
		Amount:          b.TotalAmount,
		Description:     fmt.Sprintf("Rental income for booking %s", b.BookingNumber),
		Status:          status,
		TransactionDate: b.StartDate,
	}
}

// ExpenseCharge is the negative row recorded when an expense is approved.
func ExpenseCharge(e *domain.Expense) *domain.Transaction {
	return &domain.Transaction{
		AssetID:         e.AssetID,
		OwnerID:         e.OwnerID,
		ExpenseID:       e.ID,
		TransactionType: e.Category.LedgerType(),
		Amount:          -math.Abs(e.Amount),
		Description:     e.Description,
		Category:        string(e.Category),
		ReferenceNumber: refnum.ExpenseReference(e.ID),
		PaymentMethod:   e.PaymentMethod,
		Status:          domain.TxStatusCompleted,
		TransactionDate: e.ExpenseDate,
	}
}
