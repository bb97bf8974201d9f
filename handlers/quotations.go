package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// QuotationSummary is the list view of a saved quotation.
type QuotationSummary struct {
	ID           string  `json:"id"`
	Number       string  `json:"number"`
	IssueDate    string  `json:"issueDate"`
	CustomerName string  `json:"customerName"`
	StaffName    string  `json:"staffName"`
	GrandTotal   float64 `json:"grandTotal"`
}

// HandleQuotationList returns saved quotations, newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			return errorJSON(e, http.StatusInternalServerError, "Failed to load quotations")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotations: failed to list: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load quotations")
		}

		out := []QuotationSummary{}
		for _, r := range records {
			out = append(out, QuotationSummary{
				ID:           r.Id,
				Number:       r.GetString("number"),
				IssueDate:    r.GetString("issue_date"),
				CustomerName: r.GetString("customer_name"),
				StaffName:    r.GetString("staff_name"),
				GrandTotal:   r.GetFloat("grand_total"),
			})
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleQuotationView returns one saved quotation with its full line item
// snapshot and recomputed totals.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Quotation")
		}

		var items []services.QuoteLineItem
		if raw := record.GetString("items"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				log.Printf("quotations: malformed items on %s: %v", record.Id, err)
				return errorJSON(e, http.StatusInternalServerError, "Quotation data is corrupted")
			}
		}

		draft := services.RecalculateDraft(services.QuotationDraft{
			Items:   items,
			TaxRate: record.GetFloat("tax_rate"),
		})

		return e.JSON(http.StatusOK, quotationResponse(record, items, draft.Totals))
	}
}

// HandleQuotationDelete removes a saved quotation.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Quotation")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotations: failed to delete %s: %v", record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to delete quotation")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}
