package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductFilterValidate(t *testing.T) {
	assert.NoError(t, ProductFilter{}.Validate())
	assert.NoError(t, ProductFilter{MinPrice: decPtr("1.00"), MaxPrice: decPtr("5.00")}.Validate())
	assert.NoError(t, ProductFilter{MinPrice: decPtr("5.00"), MaxPrice: decPtr("5.00")}.Validate())

	assert.ErrorIs(t, ProductFilter{MinPrice: decPtr("-1")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ProductFilter{MaxPrice: decPtr("-1")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ProductFilter{MinPrice: decPtr("10"), MaxPrice: decPtr("5")}.Validate(), ErrInvalidInput)
}

func TestOrderFilterValidate(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.AddDate(0, 1, 0)

	assert.NoError(t, OrderFilter{}.Validate())
	assert.NoError(t, OrderFilter{From: &earlier, To: &later}.Validate())
	assert.NoError(t, OrderFilter{From: &earlier, To: &earlier}.Validate())

	assert.ErrorIs(t, OrderFilter{MinAmount: decPtr("-0.01")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, OrderFilter{MaxAmount: decPtr("-1")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, OrderFilter{MinAmount: decPtr("100"), MaxAmount: decPtr("50")}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, OrderFilter{From: &later, To: &earlier}.Validate(), ErrInvalidInput)
}
