package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// HandlePriceListExportPDF generates a price list PDF for one catalog
// category and serves it as a download.
func HandlePriceListExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category, ok := requestCategory(e)
		if !ok {
			return errorJSON(e, http.StatusBadRequest, "Unknown product category")
		}

		data, err := services.BuildPriceListData(app, category, time.Now().Format("2006-01-02"))
		if err != nil {
			log.Printf("pricelist_export: failed to build data for %s: %v", category, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to build price list")
		}

		pdfBytes, err := services.GeneratePriceListPDF(data)
		if err != nil {
			log.Printf("pricelist_export: failed to generate PDF for %s: %v", category, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := sanitizeFilename(fmt.Sprintf("PriceList-%s-%s.pdf", data.Title, data.GeneratedOn))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
