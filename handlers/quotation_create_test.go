package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"tilequote/testhelpers"
)

func quotationBody(staffID string) string {
	return `{
		"customerName": "Asha Builders",
		"customerPhone": "9876501234",
		"staffId": "` + staffID + `",
		"issueDate": "2024-06-01",
		"items": [
			{"productId":"p1","category":"tiles","brand":"Kajaria","description":"Pearl White 600x600","quantity":2,"price":100,"discount":10},
			{"productId":"p2","category":"fittings","brand":"Jaquar","productCode":"FT-100","quantity":1,"price":450,"discount":0}
		]
	}`
}

func TestHandleQuotationCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSettings(t, app, "")
	staff := testhelpers.CreateTestStaff(t, app, "Ravi Kumar")
	handler := HandleQuotationCreate(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations", quotationBody(staff.Id))
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuotationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !regexp.MustCompile(`^PTM-240601-\d{3}$`).MatchString(resp.Number) {
		t.Errorf("number = %q, want PTM-240601-NNN", resp.Number)
	}
	if resp.ExpiryDate != "2024-06-16" {
		t.Errorf("expiryDate = %q, want 2024-06-16 (15 default validity days)", resp.ExpiryDate)
	}
	if math.Abs(resp.Subtotal-630) > 0.001 {
		t.Errorf("subtotal = %v, want 630", resp.Subtotal)
	}
	if math.Abs(resp.TaxAmount-113.40) > 0.001 {
		t.Errorf("taxAmount = %v, want 113.40", resp.TaxAmount)
	}
	if math.Abs(resp.GrandTotal-743.40) > 0.001 {
		t.Errorf("grandTotal = %v, want 743.40", resp.GrandTotal)
	}
	for i, item := range resp.Items {
		if item.ID == "" {
			t.Errorf("item %d has no generated id", i)
		}
	}

	saved, err := app.FindRecordById("quotations", resp.ID)
	if err != nil {
		t.Fatalf("saved quotation not found: %v", err)
	}
	if got := saved.GetString("company_name"); got != "Prateek Tiles and Marble" {
		t.Errorf("company_name = %q", got)
	}
	if got := saved.GetString("staff_name"); got != "Ravi Kumar" {
		t.Errorf("staff_name = %q", got)
	}
}

func TestHandleQuotationCreate_BranchOverridesAddress(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSettings(t, app, "")
	staff := testhelpers.CreateTestStaff(t, app, "Ravi Kumar")
	staff.Set("branch_address", "9 Link Road")
	staff.Set("branch_city", "Pune")
	staff.Set("branch_state", "Maharashtra")
	staff.Set("branch_zip", "411001")
	if err := app.Save(staff); err != nil {
		t.Fatalf("failed to update staff: %v", err)
	}

	handler := HandleQuotationCreate(app)
	req := newJSONRequest(http.MethodPost, "/api/quotations", quotationBody(staff.Id))
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuotationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	saved, err := app.FindRecordById("quotations", resp.ID)
	if err != nil {
		t.Fatalf("saved quotation not found: %v", err)
	}
	if got := saved.GetString("company_address"); got != "9 Link Road" {
		t.Errorf("company_address = %q, want branch address", got)
	}
	if got := saved.GetString("company_city"); got != "Pune" {
		t.Errorf("company_city = %q, want Pune", got)
	}
	// Name stays the head office business name.
	if got := saved.GetString("company_name"); got != "Prateek Tiles and Marble" {
		t.Errorf("company_name = %q", got)
	}
}

func TestHandleQuotationCreate_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSettings(t, app, "")
	staff := testhelpers.CreateTestStaff(t, app, "Ravi Kumar")
	handler := HandleQuotationCreate(app)

	cases := []struct {
		name string
		body string
	}{
		{
			"missing customer name",
			`{"staffId":"` + staff.Id + `","items":[{"category":"tiles","brand":"K","quantity":1,"price":10}]}`,
		},
		{
			"no items",
			`{"customerName":"Asha","staffId":"` + staff.Id + `","items":[]}`,
		},
		{
			"zero quantity",
			`{"customerName":"Asha","staffId":"` + staff.Id + `","items":[{"category":"tiles","brand":"K","quantity":0,"price":10}]}`,
		},
		{
			"discount above 100",
			`{"customerName":"Asha","staffId":"` + staff.Id + `","items":[{"category":"tiles","brand":"K","quantity":1,"price":10,"discount":110}]}`,
		},
		{
			"unknown category",
			`{"customerName":"Asha","staffId":"` + staff.Id + `","items":[{"category":"marble","brand":"K","quantity":1,"price":10}]}`,
		},
		{
			"unknown staff",
			`{"customerName":"Asha","staffId":"nope","items":[{"category":"tiles","brand":"K","quantity":1,"price":10}]}`,
		},
		{
			"bad issue date",
			`{"customerName":"Asha","staffId":"` + staff.Id + `","issueDate":"01-06-2024","items":[{"category":"tiles","brand":"K","quantity":1,"price":10}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, "/api/quotations", tc.body)
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleQuotationRecalculate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationRecalculate(app)

	body := `{"items":[{"category":"tiles","brand":"K","quantity":2,"price":100,"discount":10}],"taxRate":18,"totals":{"subtotal":999}}`
	req := newJSONRequest(http.MethodPost, "/api/quotations/recalculate", body)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var out struct {
		Totals struct {
			Subtotal   float64 `json:"subtotal"`
			TaxAmount  float64 `json:"taxAmount"`
			GrandTotal float64 `json:"grandTotal"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Submitted totals are ignored; everything is recomputed.
	if math.Abs(out.Totals.Subtotal-180) > 0.001 {
		t.Errorf("subtotal = %v, want 180", out.Totals.Subtotal)
	}
	if math.Abs(out.Totals.GrandTotal-212.40) > 0.001 {
		t.Errorf("grandTotal = %v, want 212.40", out.Totals.GrandTotal)
	}
}
