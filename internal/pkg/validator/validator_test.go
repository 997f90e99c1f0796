package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	OwnerID     string  `json:"owner_id" validate:"required"`
	PeriodStart string  `json:"period_start" validate:"required,date"`
	Amount      float64 `json:"amount" validate:"gt=0"`
}

func TestValidate_ReportsJSONNames(t *testing.T) {
	errs := Validate(&sample{PeriodStart: "01/02/2025"})

	assert.Equal(t, "required", errs["owner_id"])
	assert.Equal(t, "date", errs["period_start"])
	assert.Equal(t, "gt", errs["amount"])
}

func TestValidate_OK(t *testing.T) {
	errs := Validate(&sample{OwnerID: "o1", PeriodStart: "2025-01-02", Amount: 1})
	assert.Nil(t, errs)
}
