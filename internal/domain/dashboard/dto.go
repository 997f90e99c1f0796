package dashboard

// ManagerStats is the fleet manager's overview.
type ManagerStats struct {
	AssetsByStatus      map[string]int `json:"assets_by_status"`
	TotalAssets         int            `json:"total_assets"`
	ActiveBookings      int            `json:"active_bookings"`
	CompletedBookings   int            `json:"completed_bookings"`
	TotalRevenue        float64        `json:"total_revenue"`
	PendingExpenses     int            `json:"pending_expenses"`
	PendingExpenseTotal float64        `json:"pending_expense_total"`
	OpenMaintenance     int            `json:"open_maintenance"`
	OwnerCount          int            `json:"owner_count"`
}

type Financials struct {
	TotalRevenue     float64 `json:"total_revenue"`
	PlatformFees     float64 `json:"platform_fees"`
	ApprovedExpenses float64 `json:"approved_expenses"`
	PaidRemittances  float64 `json:"paid_remittances"`
	PendingPayouts   float64 `json:"pending_payouts"`
}
