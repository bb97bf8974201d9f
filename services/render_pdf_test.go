package services

import (
	"bytes"
	"testing"
)

func TestRenderPDF_Complete(t *testing.T) {
	ins, err := Compositor{}.Compose(sampleExportData(), nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	pdf, err := RenderPDF(ins)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("RenderPDF() returned empty bytes")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with PDF header, got %q", pdf[:8])
	}
}

func TestRenderPDF_WithLogo(t *testing.T) {
	logo := &Logo{Data: testPNG(t), Format: "PNG"}
	ins, err := Compositor{}.Compose(sampleExportData(), logo)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	pdf, err := RenderPDF(ins)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("RenderPDF() returned empty bytes")
	}
}

func TestRenderPDF_EmptyStream(t *testing.T) {
	pdf, err := RenderPDF(nil)
	if err != nil {
		t.Fatalf("RenderPDF(nil) error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("empty stream should still produce a valid single-page document")
	}
}
