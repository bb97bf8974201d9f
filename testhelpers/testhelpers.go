// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", "customer@example.com")
	record.Set("phone", "9876501234")
	record.Set("address", "42 Market Road, Mumbai")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestStaff creates a staff record with the given name and returns it.
func CreateTestStaff(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		t.Fatalf("failed to find staff collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("position", "Sales Executive")
	record.Set("staff_code", "ST-01")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test staff: %v", err)
	}

	return record
}

// CreateTestTile creates a tile record with the given brand and pricing.
func CreateTestTile(t *testing.T, app *pocketbase.PocketBase, brand string, mrp, discount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("tiles")
	if err != nil {
		t.Fatalf("failed to find tiles collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("shade_name", "Pearl White")
	record.Set("dimensions", "600x600")
	record.Set("surface", "Glossy")
	record.Set("mrp", mrp)
	record.Set("discount", discount)
	record.Set("discounted_price", mrp-mrp*discount/100)
	record.Set("items_per_box", 4)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test tile: %v", err)
	}

	return record
}

// CreateTestAdhesive creates an adhesive record with the given brand.
func CreateTestAdhesive(t *testing.T, app *pocketbase.PocketBase, brand string, mrp, dPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("adhesives")
	if err != nil {
		t.Fatalf("failed to find adhesives collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("category", "Tile Adhesive")
	record.Set("mrp", mrp)
	record.Set("d_price", dPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test adhesive: %v", err)
	}

	return record
}

// CreateTestFitting creates a fitting record with the given brand.
func CreateTestFitting(t *testing.T, app *pocketbase.PocketBase, brand string, mrp, dPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("fittings")
	if err != nil {
		t.Fatalf("failed to find fittings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("product_code", "FT-100")
	record.Set("description", "Chrome basin mixer")
	record.Set("mrp", mrp)
	record.Set("d_price", dPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test fitting: %v", err)
	}

	return record
}

// CreateTestSettings creates the business settings record, optionally with a
// logo data URL.
func CreateTestSettings(t *testing.T, app *pocketbase.PocketBase, logoDataURL string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("business_settings")
	if err != nil {
		t.Fatalf("failed to find business_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("business_name", "Prateek Tiles and Marble")
	record.Set("business_address", "123 Main Street")
	record.Set("business_city", "Mumbai")
	record.Set("business_state", "Maharashtra")
	record.Set("business_zip", "400001")
	record.Set("business_phone", "+91 9876543210")
	record.Set("business_email", "info@prateektiles.com")
	record.Set("default_tax_rate", 18)
	record.Set("default_validity_days", 15)
	record.Set("terms", "1. Prices valid as above.\n2. Payment in advance.")
	if logoDataURL != "" {
		record.Set("logo", logoDataURL)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test settings: %v", err)
	}

	return record
}

// CreateTestQuotation creates a saved quotation record with the given number
// and a pre-marshaled line item snapshot.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, number, itemsJSON string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", number)
	record.Set("issue_date", "2024-06-01")
	record.Set("validity_days", 15)
	record.Set("customer_name", "Asha Builders")
	record.Set("customer_phone", "9876501234")
	record.Set("customer_address", "42 Market Road, Mumbai")
	record.Set("staff_name", "Ravi Kumar")
	record.Set("staff_position", "Sales Executive")
	record.Set("company_name", "Prateek Tiles and Marble")
	record.Set("company_address", "123 Main Street")
	record.Set("company_city", "Mumbai")
	record.Set("company_state", "Maharashtra")
	record.Set("company_zip", "400001")
	record.Set("company_phone", "+91 9876543210")
	record.Set("company_email", "info@prateektiles.com")
	record.Set("items", itemsJSON)
	record.Set("tax_rate", 18)
	record.Set("terms", "1. Prices valid as above.")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}
