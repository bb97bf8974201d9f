package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// ReviseDraft is a fresh, unsaved draft seeded from an existing quotation.
// Saving it goes through the normal create endpoint and produces a new
// record; the original stays untouched.
type ReviseDraft struct {
	Number          string                   `json:"number"`
	IssueDate       string                   `json:"issueDate"`
	ValidityDays    int                      `json:"validityDays"`
	CustomerName    string                   `json:"customerName"`
	CustomerEmail   string                   `json:"customerEmail"`
	CustomerPhone   string                   `json:"customerPhone"`
	CustomerAddress string                   `json:"customerAddress"`
	StaffID         string                   `json:"staffId"`
	Items           []services.QuoteLineItem `json:"items"`
	TaxRate         float64                  `json:"taxRate"`
	Terms           string                   `json:"terms"`
	Totals          services.QuotationTotals `json:"totals"`
}

// HandleQuotationRevise seeds a new draft from a saved quotation: same
// parties, items and terms, but a fresh number and today's issue date.
func HandleQuotationRevise(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Quotation")
		}

		var items []services.QuoteLineItem
		if raw := record.GetString("items"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				log.Printf("quotation_revise: malformed items on %s: %v", record.Id, err)
				return errorJSON(e, http.StatusInternalServerError, "Quotation data is corrupted")
			}
		}

		now := time.Now()
		draft := services.RecalculateDraft(services.QuotationDraft{
			Items:   items,
			TaxRate: record.GetFloat("tax_rate"),
		})

		return e.JSON(http.StatusOK, ReviseDraft{
			Number:          services.GenerateQuotationNumber(now),
			IssueDate:       now.Format("2006-01-02"),
			ValidityDays:    record.GetInt("validity_days"),
			CustomerName:    record.GetString("customer_name"),
			CustomerEmail:   record.GetString("customer_email"),
			CustomerPhone:   record.GetString("customer_phone"),
			CustomerAddress: record.GetString("customer_address"),
			StaffID:         record.GetString("staff_id"),
			Items:           items,
			TaxRate:         record.GetFloat("tax_rate"),
			Terms:           record.GetString("terms"),
			Totals:          draft.Totals,
		})
	}
}
