package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF replays a compositor instruction stream onto a single A4
// portrait page and returns the PDF bytes. The renderer adds no layout of
// its own; every coordinate comes from the instructions.
func RenderPDF(instructions []Instruction) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()

	for i, instruction := range instructions {
		switch v := instruction.(type) {
		case TextInstruction:
			renderText(pdf, v)
		case RectInstruction:
			renderRect(pdf, v)
		case LineInstruction:
			pdf.SetLineWidth(v.LineWidth)
			pdf.SetDrawColor(v.Color.R, v.Color.G, v.Color.B)
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		case ImageInstruction:
			renderImage(pdf, v, i)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quotation PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func renderText(pdf *gofpdf.Fpdf, v TextInstruction) {
	style := ""
	if v.Bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, v.FontSize)
	pdf.SetTextColor(v.Color.R, v.Color.G, v.Color.B)

	if v.MaxWidth > 0 {
		// Word-wrapped run: each wrapped line advances by the font's
		// natural leading.
		leading := v.FontSize * 0.3528 * 1.2
		for i, line := range pdf.SplitText(v.Text, v.MaxWidth) {
			pdf.Text(alignedX(pdf, v, line), v.Y+float64(i)*leading, line)
		}
		return
	}

	pdf.Text(alignedX(pdf, v, v.Text), v.Y, v.Text)
}

// alignedX resolves the instruction's alignment against its X coordinate:
// X is the right edge for right-aligned text and the center for centered
// text, matching the compositor's coordinate contract.
func alignedX(pdf *gofpdf.Fpdf, v TextInstruction, line string) float64 {
	switch v.Align {
	case AlignRight:
		return v.X - pdf.GetStringWidth(line)
	case AlignCenter:
		return v.X - pdf.GetStringWidth(line)/2
	default:
		return v.X
	}
}

func renderRect(pdf *gofpdf.Fpdf, v RectInstruction) {
	if v.Fill {
		pdf.SetFillColor(v.Color.R, v.Color.G, v.Color.B)
		pdf.Rect(v.X, v.Y, v.W, v.H, "F")
		return
	}
	if v.LineWidth > 0 {
		pdf.SetLineWidth(v.LineWidth)
	}
	pdf.SetDrawColor(v.Color.R, v.Color.G, v.Color.B)
	pdf.Rect(v.X, v.Y, v.W, v.H, "D")
}

func renderImage(pdf *gofpdf.Fpdf, v ImageInstruction, seq int) {
	name := fmt.Sprintf("instruction-image-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: v.Format}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(v.Data))
	pdf.ImageOptions(name, v.X, v.Y, v.W, v.H, false, opts, 0, "")
}
