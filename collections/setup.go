// Package collections defines the PocketBase collections backing the
// quotation tool and seeds the initial business profile.
package collections

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures every collection the tool uses:
// the three catalog categories, customers, staff, business settings and
// saved quotations.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "tiles", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "area_of_application"})
		c.Fields.Add(&core.TextField{Name: "shade_name"})
		c.Fields.Add(&core.TextField{Name: "image"})
		c.Fields.Add(&core.TextField{Name: "dimensions"})
		c.Fields.Add(&core.TextField{Name: "surface"})
		c.Fields.Add(&core.NumberField{Name: "mrp", Required: true})
		c.Fields.Add(&core.NumberField{Name: "discount"})
		c.Fields.Add(&core.NumberField{Name: "discounted_price"})
		c.Fields.Add(&core.NumberField{Name: "area_required"})
		c.Fields.Add(&core.NumberField{Name: "items_per_box"})
		c.Fields.Add(&core.NumberField{Name: "no_of_boxes"})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "adhesives", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "category"})
		c.Fields.Add(&core.NumberField{Name: "mrp", Required: true})
		c.Fields.Add(&core.NumberField{Name: "d_price"})
		c.Fields.Add(&core.NumberField{Name: "no_of_bags"})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "fittings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_code"})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.TextField{Name: "image"})
		c.Fields.Add(&core.NumberField{Name: "mrp", Required: true})
		c.Fields.Add(&core.NumberField{Name: "d_price"})
		c.Fields.Add(&core.NumberField{Name: "nos"})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "staff", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "position"})
		c.Fields.Add(&core.TextField{Name: "staff_code"})
		c.Fields.Add(&core.TextField{Name: "branch"})
		c.Fields.Add(&core.TextField{Name: "branch_address"})
		c.Fields.Add(&core.TextField{Name: "branch_city"})
		c.Fields.Add(&core.TextField{Name: "branch_state"})
		c.Fields.Add(&core.TextField{Name: "branch_zip"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "business_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "business_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "business_address"})
		c.Fields.Add(&core.TextField{Name: "business_city"})
		c.Fields.Add(&core.TextField{Name: "business_state"})
		c.Fields.Add(&core.TextField{Name: "business_zip"})
		c.Fields.Add(&core.TextField{Name: "business_phone"})
		c.Fields.Add(&core.TextField{Name: "business_email"})
		// Logo stored as a base64 data URL, the way the browser client
		// submits it.
		c.Fields.Add(&core.TextField{Name: "logo", Max: 2_000_000})
		c.Fields.Add(&core.NumberField{Name: "default_tax_rate"})
		c.Fields.Add(&core.NumberField{Name: "default_validity_days"})
		c.Fields.Add(&core.TextField{Name: "terms", Max: 10_000})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "issue_date", Required: true})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_email"})
		c.Fields.Add(&core.TextField{Name: "customer_phone"})
		c.Fields.Add(&core.TextField{Name: "customer_address"})
		c.Fields.Add(&core.TextField{Name: "staff_id"})
		c.Fields.Add(&core.TextField{Name: "staff_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "staff_position"})
		c.Fields.Add(&core.TextField{Name: "staff_code"})
		c.Fields.Add(&core.TextField{Name: "company_name"})
		c.Fields.Add(&core.TextField{Name: "company_address"})
		c.Fields.Add(&core.TextField{Name: "company_city"})
		c.Fields.Add(&core.TextField{Name: "company_state"})
		c.Fields.Add(&core.TextField{Name: "company_zip"})
		c.Fields.Add(&core.TextField{Name: "company_phone"})
		c.Fields.Add(&core.TextField{Name: "company_email"})
		// Line items are a frozen snapshot; quotations never reference
		// live catalog records.
		c.Fields.Add(&core.JSONField{Name: "items"})
		c.Fields.Add(&core.NumberField{Name: "tax_rate"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.NumberField{Name: "tax_amount"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.TextField{Name: "terms", Max: 10_000})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Printf("Failed to create collection %q: %v\n", name, err)
		return collection
	}

	log.Printf("Created collection %q.\n", name)
	return collection
}
