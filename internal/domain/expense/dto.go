package expense

type CreateRequest struct {
	AssetID                    string   `json:"asset_id" validate:"required"`
	OwnerID                    string   `json:"owner_id"`
	MaintenanceRequestID       string   `json:"maintenance_request_id"`
	Category                   string   `json:"category" validate:"required"`
	Amount                     float64  `json:"amount" validate:"gt=0"`
	Description                string   `json:"description" validate:"required"`
	Vendor                     string   `json:"vendor"`
	PaidTo                     string   `json:"paid_to"`
	PaymentMethod              string   `json:"payment_method"`
	ReceiptURL                 string   `json:"receipt_url"`
	ExpenseDate                string   `json:"expense_date" validate:"omitempty,date"`
	DeductFromOwner            *bool    `json:"deduct_from_owner"`
	OwnerResponsiblePercentage *float64 `json:"owner_responsible_percentage" validate:"omitempty,gte=0,lte=100"`
}

type UpdateRequest struct {
	ID                         string   `json:"id"`
	Category                   *string  `json:"category"`
	Amount                     *float64 `json:"amount" validate:"omitempty,gt=0"`
	Description                *string  `json:"description"`
	Vendor                     *string  `json:"vendor"`
	Status                     *string  `json:"status"`
	PaidTo                     *string  `json:"paid_to"`
	PaymentMethod              *string  `json:"payment_method"`
	PaymentDate                *string  `json:"payment_date" validate:"omitempty,date"`
	ReceiptURL                 *string  `json:"receipt_url"`
	ExpenseDate                *string  `json:"expense_date" validate:"omitempty,date"`
	DeductFromOwner            *bool    `json:"deduct_from_owner"`
	OwnerResponsiblePercentage *float64 `json:"owner_responsible_percentage" validate:"omitempty,gte=0,lte=100"`
}

type Filter struct {
	Status  string
	AssetID string
	OwnerID string
}
