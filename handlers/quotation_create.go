package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// QuotationRequest is the payload for creating a quotation. Customer details
// are inlined (walk-in customers need no catalog entry); the staff member is
// referenced by id and snapshotted at save time.
type QuotationRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	StaffID string `json:"staffId"`

	IssueDate    string                   `json:"issueDate"`
	ValidityDays int                      `json:"validityDays"`
	TaxRate      *float64                 `json:"taxRate"`
	Items        []services.QuoteLineItem `json:"items"`
	Terms        string                   `json:"terms"`
}

// QuotationResponse is the saved quotation as returned to the client.
type QuotationResponse struct {
	ID           string                   `json:"id"`
	Number       string                   `json:"number"`
	IssueDate    string                   `json:"issueDate"`
	ExpiryDate   string                   `json:"expiryDate"`
	ValidityDays int                      `json:"validityDays"`
	CustomerName string                   `json:"customerName"`
	StaffName    string                   `json:"staffName"`
	Items        []services.QuoteLineItem `json:"items"`
	TaxRate      float64                  `json:"taxRate"`
	Subtotal     float64                  `json:"subtotal"`
	TaxAmount    float64                  `json:"taxAmount"`
	GrandTotal   float64                  `json:"grandTotal"`
}

func validateQuotationRequest(req QuotationRequest) error {
	if req.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}
	if req.StaffID == "" {
		return fmt.Errorf("staff member is required")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i, item := range req.Items {
		if !services.ValidCategory(item.Category) {
			return fmt.Errorf("line %d: unknown category %q", i+1, item.Category)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be greater than zero", i+1)
		}
		if item.Price < 0 {
			return fmt.Errorf("line %d: price cannot be negative", i+1)
		}
		if item.Discount < 0 || item.Discount > 100 {
			return fmt.Errorf("line %d: discount must be between 0 and 100", i+1)
		}
	}
	return nil
}

// HandleQuotationCreate validates a quotation request, snapshots every party
// involved and saves it under a freshly generated number.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req QuotationRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := validateQuotationRequest(req); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		staff, err := app.FindRecordById("staff", req.StaffID)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Staff member not found")
		}

		settings, err := findSettingsRecord(app)
		if err != nil {
			log.Printf("quotation_create: failed to load settings: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load settings")
		}

		now := time.Now()
		issueDate := req.IssueDate
		if issueDate == "" {
			issueDate = now.Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", issueDate); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Issue date must be YYYY-MM-DD")
		}

		validityDays := req.ValidityDays
		taxRate := 0.0
		terms := req.Terms
		if settings != nil {
			if validityDays <= 0 {
				validityDays = settings.GetInt("default_validity_days")
			}
			taxRate = settings.GetFloat("default_tax_rate")
			if terms == "" {
				terms = settings.GetString("terms")
			}
		}
		if req.TaxRate != nil {
			if *req.TaxRate < 0 || *req.TaxRate > 100 {
				return errorJSON(e, http.StatusBadRequest, "Tax rate must be between 0 and 100")
			}
			taxRate = *req.TaxRate
		}

		items := make([]services.QuoteLineItem, len(req.Items))
		for i, item := range req.Items {
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			items[i] = item
		}

		draft := services.RecalculateDraft(services.QuotationDraft{Items: items, TaxRate: taxRate})

		itemsJSON, err := json.Marshal(items)
		if err != nil {
			log.Printf("quotation_create: failed to marshal items: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save quotation")
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			return errorJSON(e, http.StatusInternalServerError, "Failed to save quotation")
		}

		record := core.NewRecord(col)
		record.Set("number", services.GenerateQuotationNumber(now))
		record.Set("issue_date", issueDate)
		record.Set("validity_days", validityDays)
		record.Set("customer_name", req.CustomerName)
		record.Set("customer_email", req.CustomerEmail)
		record.Set("customer_phone", req.CustomerPhone)
		record.Set("customer_address", req.CustomerAddress)
		record.Set("staff_id", staff.Id)
		record.Set("staff_name", staff.GetString("name"))
		record.Set("staff_position", staff.GetString("position"))
		record.Set("staff_code", staff.GetString("staff_code"))
		setCompanySnapshot(record, settings, staff)
		record.Set("items", string(itemsJSON))
		record.Set("tax_rate", taxRate)
		record.Set("subtotal", draft.Totals.Subtotal)
		record.Set("tax_amount", draft.Totals.TaxAmount)
		record.Set("grand_total", draft.Totals.GrandTotal)
		record.Set("terms", terms)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: failed to save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save quotation")
		}

		return e.JSON(http.StatusCreated, quotationResponse(record, items, draft.Totals))
	}
}

// setCompanySnapshot freezes the issuing company block on the quotation.
// A staff member attached to a branch stamps the branch address instead of
// the head office one.
func setCompanySnapshot(record *core.Record, settings, staff *core.Record) {
	if settings != nil {
		record.Set("company_name", settings.GetString("business_name"))
		record.Set("company_address", settings.GetString("business_address"))
		record.Set("company_city", settings.GetString("business_city"))
		record.Set("company_state", settings.GetString("business_state"))
		record.Set("company_zip", settings.GetString("business_zip"))
		record.Set("company_phone", settings.GetString("business_phone"))
		record.Set("company_email", settings.GetString("business_email"))
	}
	if staff != nil && staff.GetString("branch_address") != "" {
		record.Set("company_address", staff.GetString("branch_address"))
		record.Set("company_city", staff.GetString("branch_city"))
		record.Set("company_state", staff.GetString("branch_state"))
		record.Set("company_zip", staff.GetString("branch_zip"))
	}
}

func quotationResponse(record *core.Record, items []services.QuoteLineItem, totals services.QuotationTotals) QuotationResponse {
	expiry, err := services.ExpiryDate(record.GetString("issue_date"), record.GetInt("validity_days"))
	if err != nil {
		expiry = ""
	}
	return QuotationResponse{
		ID:           record.Id,
		Number:       record.GetString("number"),
		IssueDate:    record.GetString("issue_date"),
		ExpiryDate:   expiry,
		ValidityDays: record.GetInt("validity_days"),
		CustomerName: record.GetString("customer_name"),
		StaffName:    record.GetString("staff_name"),
		Items:        items,
		TaxRate:      record.GetFloat("tax_rate"),
		Subtotal:     totals.Subtotal,
		TaxAmount:    totals.TaxAmount,
		GrandTotal:   totals.GrandTotal,
	}
}

// HandleQuotationRecalculate recomputes derived amounts for an in-progress
// draft without persisting anything. The client calls this on every edit so
// totals always come from the same arithmetic that will be saved.
func HandleQuotationRecalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var draft services.QuotationDraft
		if err := e.BindBody(&draft); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if draft.TaxRate < 0 || draft.TaxRate > 100 {
			return errorJSON(e, http.StatusBadRequest, "Tax rate must be between 0 and 100")
		}
		return e.JSON(http.StatusOK, services.RecalculateDraft(draft))
	}
}
