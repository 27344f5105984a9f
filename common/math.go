package common

import "github.com/shopspring/decimal"

// DecimalToFixed rounds num (half away from zero) to precision decimal places.
// Rounding goes through a decimal so that 1.005 rounds like a human expects.
func DecimalToFixed(num float64, precision int) float64 {
	return decimal.NewFromFloat(num).Round(int32(precision)).InexactFloat64()
}
