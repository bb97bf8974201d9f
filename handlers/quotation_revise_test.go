package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"tilequote/testhelpers"
)

func TestHandleQuotationRevise(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "PTM-240601-042", sampleItemsJSON)
	handler := HandleQuotationRevise(app)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/revise", nil)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var draft ReviseDraft
	if err := json.Unmarshal(rec.Body.Bytes(), &draft); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if draft.Number == "PTM-240601-042" {
		t.Error("revise must generate a fresh number")
	}
	if !regexp.MustCompile(`^PTM-\d{6}-\d{3}$`).MatchString(draft.Number) {
		t.Errorf("number = %q", draft.Number)
	}
	if draft.IssueDate != time.Now().Format("2006-01-02") {
		t.Errorf("issueDate = %q, want today", draft.IssueDate)
	}
	if draft.CustomerName != "Asha Builders" {
		t.Errorf("customerName = %q", draft.CustomerName)
	}
	if len(draft.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(draft.Items))
	}
	if math.Abs(draft.Totals.GrandTotal-743.40) > 0.001 {
		t.Errorf("grandTotal = %v, want 743.40", draft.Totals.GrandTotal)
	}

	// The original record is untouched.
	original, err := app.FindRecordById("quotations", quotation.Id)
	if err != nil {
		t.Fatalf("original quotation missing: %v", err)
	}
	if got := original.GetString("number"); got != "PTM-240601-042" {
		t.Errorf("original number changed to %q", got)
	}
}

func TestHandleQuotationRevise_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationRevise(app)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/nope/revise", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
