package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// BusinessSettings is the wire shape of the single business profile record.
// Logo is a base64 data URL as submitted by the client.
type BusinessSettings struct {
	BusinessName        string  `json:"businessName"`
	BusinessAddress     string  `json:"businessAddress"`
	BusinessCity        string  `json:"businessCity"`
	BusinessState       string  `json:"businessState"`
	BusinessZip         string  `json:"businessZip"`
	BusinessPhone       string  `json:"businessPhone"`
	BusinessEmail       string  `json:"businessEmail"`
	Logo                string  `json:"logo"`
	DefaultTaxRate      float64 `json:"defaultTaxRate"`
	DefaultValidityDays int     `json:"defaultValidityDays"`
	Terms               string  `json:"terms"`
}

func settingsFromRecord(r *core.Record) BusinessSettings {
	return BusinessSettings{
		BusinessName:        r.GetString("business_name"),
		BusinessAddress:     r.GetString("business_address"),
		BusinessCity:        r.GetString("business_city"),
		BusinessState:       r.GetString("business_state"),
		BusinessZip:         r.GetString("business_zip"),
		BusinessPhone:       r.GetString("business_phone"),
		BusinessEmail:       r.GetString("business_email"),
		Logo:                r.GetString("logo"),
		DefaultTaxRate:      r.GetFloat("default_tax_rate"),
		DefaultValidityDays: r.GetInt("default_validity_days"),
		Terms:               r.GetString("terms"),
	}
}

// findSettingsRecord returns the first (and only) business settings record,
// or nil when none exists yet.
func findSettingsRecord(app *pocketbase.PocketBase) (*core.Record, error) {
	records, err := app.FindAllRecords("business_settings")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// HandleSettingsGet returns the business profile.
func HandleSettingsGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := findSettingsRecord(app)
		if err != nil {
			log.Printf("settings: failed to load: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load settings")
		}
		if record == nil {
			return e.JSON(http.StatusOK, BusinessSettings{})
		}
		return e.JSON(http.StatusOK, settingsFromRecord(record))
	}
}

// HandleSettingsSave upserts the business profile. A submitted logo must be
// a decodable PNG or JPEG data URL; a malformed one is rejected here rather
// than discovered at export time.
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var s BusinessSettings
		if err := e.BindBody(&s); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if s.BusinessName == "" {
			return errorJSON(e, http.StatusBadRequest, "Business name is required")
		}
		if s.DefaultTaxRate < 0 || s.DefaultTaxRate > 100 {
			return errorJSON(e, http.StatusBadRequest, "Tax rate must be between 0 and 100")
		}
		if s.Logo != "" {
			if _, err := services.ResolveLogo(s.Logo); err != nil {
				return errorJSON(e, http.StatusBadRequest, "Logo must be a PNG or JPEG data URL")
			}
		}

		record, err := findSettingsRecord(app)
		if err != nil {
			log.Printf("settings: failed to load: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load settings")
		}
		if record == nil {
			col, err := app.FindCollectionByNameOrId("business_settings")
			if err != nil {
				return errorJSON(e, http.StatusInternalServerError, "Failed to load settings")
			}
			record = core.NewRecord(col)
		}

		record.Set("business_name", s.BusinessName)
		record.Set("business_address", s.BusinessAddress)
		record.Set("business_city", s.BusinessCity)
		record.Set("business_state", s.BusinessState)
		record.Set("business_zip", s.BusinessZip)
		record.Set("business_phone", s.BusinessPhone)
		record.Set("business_email", s.BusinessEmail)
		record.Set("logo", s.Logo)
		record.Set("default_tax_rate", s.DefaultTaxRate)
		record.Set("default_validity_days", s.DefaultValidityDays)
		record.Set("terms", s.Terms)

		if err := app.Save(record); err != nil {
			log.Printf("settings: failed to save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save settings")
		}

		return e.JSON(http.StatusOK, settingsFromRecord(record))
	}
}
