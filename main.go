package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/collections"
	"tilequote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the browser client from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/products/{category}", handlers.HandleProductList(app))
		se.Router.POST("/api/products/{category}", handlers.HandleProductCreate(app))
		se.Router.PATCH("/api/products/{category}/{id}", handlers.HandleProductUpdate(app))
		se.Router.DELETE("/api/products/{category}/{id}", handlers.HandleProductDelete(app))
		se.Router.GET("/api/products/{category}/pricelist", handlers.HandlePriceListExportPDF(app))

		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/api/customers", handlers.HandleCustomerList(app))
		se.Router.POST("/api/customers", handlers.HandleCustomerCreate(app))
		se.Router.PATCH("/api/customers/{id}", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/api/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Staff ────────────────────────────────────────────────
		se.Router.GET("/api/staff", handlers.HandleStaffList(app))
		se.Router.POST("/api/staff", handlers.HandleStaffCreate(app))
		se.Router.PATCH("/api/staff/{id}", handlers.HandleStaffUpdate(app))
		se.Router.DELETE("/api/staff/{id}", handlers.HandleStaffDelete(app))

		// ── Business settings ────────────────────────────────────
		se.Router.GET("/api/settings", handlers.HandleSettingsGet(app))
		se.Router.POST("/api/settings", handlers.HandleSettingsSave(app))

		// ── Quotations ───────────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.POST("/api/quotations/recalculate", handlers.HandleQuotationRecalculate(app))
		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationView(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))
		se.Router.POST("/api/quotations/{id}/revise", handlers.HandleQuotationRevise(app))
		se.Router.GET("/api/quotations/{id}/export", handlers.HandleQuotationExportPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
