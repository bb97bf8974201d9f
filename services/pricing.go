// Package services provides the pricing and document-generation core for
// the quotation tool.
package services

import "math"

// defaultItemsPerBox is the packaging fallback applied when a tile product
// has no usable items-per-box value.
const defaultItemsPerBox = 3

// DiscountedPrice returns basePrice reduced by discountPercent.
// The range of discountPercent is the caller's responsibility; out-of-range
// values propagate arithmetically because historical records may carry them.
func DiscountedPrice(basePrice, discountPercent float64) float64 {
	return basePrice - basePrice*discountPercent/100
}

// LineItemCalc holds the computed amounts for a single quotation line.
type LineItemCalc struct {
	Subtotal       float64 `json:"subtotal"`       // UnitPrice * Quantity
	DiscountAmount float64 `json:"discountAmount"` // Subtotal * DiscountPercent / 100
	Total          float64 `json:"total"`          // Subtotal - DiscountAmount
}

// CalcLineItem computes the amounts for one line item.
func CalcLineItem(unitPrice, quantity, discountPercent float64) LineItemCalc {
	subtotal := unitPrice * quantity
	discountAmount := subtotal * discountPercent / 100
	return LineItemCalc{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

// CalcBoxCount returns the number of boxes needed to cover areaRequired.
// A non-positive itemsPerBox falls back to the packaging default of 3.
// areaRequired of zero yields zero boxes; negative area is rejected upstream.
func CalcBoxCount(areaRequired, itemsPerBox float64) int {
	if itemsPerBox <= 0 {
		itemsPerBox = defaultItemsPerBox
	}
	if areaRequired == 0 {
		return 0
	}
	return int(math.Ceil(areaRequired / itemsPerBox))
}

// QuotationTotals holds the aggregate amounts for a quotation.
type QuotationTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"taxAmount"`
	GrandTotal float64 `json:"grandTotal"`
}

// CalcQuotationTotals sums the line totals in input order and applies the tax
// rate. Intermediate values stay at full float64 precision; rounding to two
// decimals happens only at display time in FormatMoney.
func CalcQuotationTotals(items []LineItemCalc, taxRatePercent float64) QuotationTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}

	taxAmount := subtotal * taxRatePercent / 100

	return QuotationTotals{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}
