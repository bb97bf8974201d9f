package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// HandleQuotationExportPDF renders a saved quotation as a PDF download.
// A stored logo that cannot be decoded aborts the export; a missing logo is
// fine and produces the placeholder layout.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing quotation ID")
		}

		if _, err := app.FindRecordById("quotations", id); err != nil {
			return notFound(e, "Quotation")
		}

		data, logo, err := services.BuildQuotationExportData(app, id)
		if err != nil {
			log.Printf("quotation_export: failed to build data for %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to prepare document data")
		}

		compositor := services.Compositor{}
		instructions, err := compositor.Compose(*data, logo)
		if err != nil {
			log.Printf("quotation_export: failed to compose %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to compose document")
		}

		pdfBytes, err := services.RenderPDF(instructions)
		if err != nil {
			log.Printf("quotation_export: failed to render %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := sanitizeFilename(data.ExportFilename())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
