package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tilequote/testhelpers"
)

func TestHandlePriceListExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSettings(t, app, "")
	testhelpers.CreateTestTile(t, app, "Kajaria", 100, 10)
	testhelpers.CreateTestTile(t, app, "Somany", 150, 10)
	handler := HandlePriceListExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/api/products/tiles/pricelist", nil)
	req.SetPathValue("category", "tiles")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected content-type application/pdf, got %s", ct)
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, "PriceList-Tiles") {
		t.Errorf("Content-Disposition = %q", disp)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body does not start with a PDF header")
	}
}

func TestHandlePriceListExportPDF_UnknownCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandlePriceListExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/api/products/marble/pricelist", nil)
	req.SetPathValue("category", "marble")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePriceListExportPDF_EmptyCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandlePriceListExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/api/products/adhesives/pricelist", nil)
	req.SetPathValue("category", "adhesives")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty PDF body")
	}
}
