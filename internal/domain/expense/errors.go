package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrAssetNotFound   = errors.New("asset not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrInvalidStatus   = errors.New("invalid expense status")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingID       = errors.New("expense id is required")
	ErrStaffOnly       = errors.New("only staff can change the approval status")
)
