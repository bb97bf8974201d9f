package services

// QuoteLineItem is a snapshot of one catalog product plus its purchase
// parameters at the moment it was added to a quotation. Saved quotations
// embed these snapshots; they never reference live catalog records.
type QuoteLineItem struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"productId"`
	Category    Category `json:"category"`
	Brand       string   `json:"brand"`
	ProductCode string   `json:"productCode,omitempty"`
	Description string   `json:"description,omitempty"`
	Quantity    float64  `json:"quantity"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
}

// QuotationDraft is an in-progress quotation: the stored inputs plus the
// derived per-line and aggregate amounts.
type QuotationDraft struct {
	Items     []QuoteLineItem `json:"items"`
	TaxRate   float64         `json:"taxRate"`
	LineCalcs []LineItemCalc  `json:"lineCalcs"`
	Totals    QuotationTotals `json:"totals"`
}

// RecalculateDraft returns d with every derived field recomputed from the
// stored inputs. It is a pure reducer: any edit to a line item or the tax
// rate goes through here, so totals can never be edited independently.
func RecalculateDraft(d QuotationDraft) QuotationDraft {
	calcs := make([]LineItemCalc, len(d.Items))
	for i, item := range d.Items {
		calcs[i] = CalcLineItem(item.Price, item.Quantity, item.Discount)
	}
	d.LineCalcs = calcs
	d.Totals = CalcQuotationTotals(calcs, d.TaxRate)
	return d
}
