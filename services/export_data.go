package services

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// QuotationExportData holds everything the compositor needs to lay out one
// quotation document. All party information is the snapshot stored on the
// quotation record, never a live lookup of the current catalog or settings.
type QuotationExportData struct {
	Number       string
	IssueDate    string
	ValidityDays int

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string

	StaffName     string
	StaffPosition string

	CompanyName    string
	CompanyAddress string
	CompanyCity    string
	CompanyState   string
	CompanyZip     string
	CompanyPhone   string
	CompanyEmail   string

	Items   []QuoteLineItem
	TaxRate float64
	Terms   string
}

// ExportFilename returns the download name for the rendered document.
func (d QuotationExportData) ExportFilename() string {
	return fmt.Sprintf("Quotation-%s.pdf", d.Number)
}

// BuildQuotationExportData assembles export data and the resolved company
// logo for one saved quotation. The logo comes from current business
// settings; everything else is the record's frozen snapshot.
func BuildQuotationExportData(app *pocketbase.PocketBase, quotationID string) (*QuotationExportData, *Logo, error) {
	record, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, nil, fmt.Errorf("quotation not found: %w", err)
	}

	var items []QuoteLineItem
	if raw := record.GetString("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, nil, fmt.Errorf("quotation %s has malformed line items: %w", quotationID, err)
		}
	}

	data := &QuotationExportData{
		Number:          record.GetString("number"),
		IssueDate:       record.GetString("issue_date"),
		ValidityDays:    record.GetInt("validity_days"),
		CustomerName:    record.GetString("customer_name"),
		CustomerEmail:   record.GetString("customer_email"),
		CustomerPhone:   record.GetString("customer_phone"),
		CustomerAddress: record.GetString("customer_address"),
		StaffName:       record.GetString("staff_name"),
		StaffPosition:   record.GetString("staff_position"),
		CompanyName:     record.GetString("company_name"),
		CompanyAddress:  record.GetString("company_address"),
		CompanyCity:     record.GetString("company_city"),
		CompanyState:    record.GetString("company_state"),
		CompanyZip:      record.GetString("company_zip"),
		CompanyPhone:    record.GetString("company_phone"),
		CompanyEmail:    record.GetString("company_email"),
		Items:           items,
		TaxRate:         record.GetFloat("tax_rate"),
		Terms:           record.GetString("terms"),
	}

	logo, err := resolveSettingsLogo(app)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve company logo: %w", err)
	}

	return data, logo, nil
}

// resolveSettingsLogo loads and decodes the logo from business settings.
func resolveSettingsLogo(app *pocketbase.PocketBase) (*Logo, error) {
	records, err := app.FindAllRecords("business_settings")
	if err != nil || len(records) == 0 {
		return nil, nil
	}
	return ResolveLogo(records[0].GetString("logo"))
}
