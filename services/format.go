package services

import (
	"fmt"
	"strconv"
)

// FormatMoney formats an amount for display on the quotation document:
// the fixed rupee symbol followed by the amount with exactly 2 decimals.
// All rounding happens here, never in the pricing calculations.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// FormatQuantity renders a quantity without trailing zeros ("4", "2.5").
func FormatQuantity(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}
