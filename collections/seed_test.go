package collections_test

import (
	"testing"

	"tilequote/collections"
	"tilequote/testhelpers"
)

func TestSeed_CreatesDefaultSettings(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindAllRecords("business_settings")
	if err != nil {
		t.Fatalf("failed to query business settings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 settings record, got %d", len(records))
	}

	settings := records[0]
	if got := settings.GetString("business_name"); got != "Prateek Tiles and Marble" {
		t.Errorf("business_name = %q", got)
	}
	if got := settings.GetFloat("default_tax_rate"); got != 18 {
		t.Errorf("default_tax_rate = %v, want 18", got)
	}
	if got := settings.GetInt("default_validity_days"); got != 15 {
		t.Errorf("default_validity_days = %d, want 15", got)
	}
	if got := settings.GetString("terms"); got == "" {
		t.Error("expected default terms to be seeded")
	}
}

func TestSeed_DoesNotOverwriteExisting(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSettings(t, app, "")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindAllRecords("business_settings")
	if err != nil {
		t.Fatalf("failed to query business settings: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected existing record to be kept, got %d records", len(records))
	}
}
