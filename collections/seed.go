package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const defaultTerms = `1. Prices are valid for the period mentioned above.
2. Payment terms: 50% advance, balance before delivery.
3. Delivery within 7-10 working days from order confirmation.
4. Goods once sold will not be taken back or exchanged.
5. Subject to Mumbai jurisdiction only.`

// Seed inserts the default business profile when the settings collection is
// empty, so a fresh install can export quotations without any manual setup.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindAllRecords("business_settings")
	if err != nil {
		return fmt.Errorf("failed to query business settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	collection, err := app.FindCollectionByNameOrId("business_settings")
	if err != nil {
		return fmt.Errorf("failed to find business_settings collection: %w", err)
	}

	record := core.NewRecord(collection)
	record.Set("business_name", "Prateek Tiles and Marble")
	record.Set("business_address", "123 Main Street")
	record.Set("business_city", "Mumbai")
	record.Set("business_state", "Maharashtra")
	record.Set("business_zip", "400001")
	record.Set("business_phone", "+91 9876543210")
	record.Set("business_email", "info@prateektiles.com")
	record.Set("default_tax_rate", 18)
	record.Set("default_validity_days", 15)
	record.Set("terms", defaultTerms)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("failed to seed business settings: %w", err)
	}

	log.Println("Seeded default business settings.")
	return nil
}
