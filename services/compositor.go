package services

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"
)

// Page geometry, in millimetres on an A4 portrait page. Every instruction
// the compositor emits is positioned absolutely against this geometry.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 15.0

	// Tables are inset 5mm from the page margin on both sides.
	tableLeft  = pageMargin + 5
	tableWidth = pageWidth - 2*pageMargin - 10

	lineItemRowHeight = 20.0
	headerRowHeight   = 10.0
	termsLineHeight   = 7.0

	logoWidth  = 40.0
	logoHeight = 20.0
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

var (
	accentColor = RGB{R: 0, G: 166, B: 126}
	mutedColor  = RGB{R: 100, G: 100, B: 100}
	whiteColor  = RGB{R: 255, G: 255, B: 255}
	blackColor  = RGB{R: 0, G: 0, B: 0}
)

// Text alignment relative to the instruction's X coordinate.
const (
	AlignLeft   = "L"
	AlignRight  = "R"
	AlignCenter = "C"
)

// Instruction is one absolute-positioned drawing primitive. The compositor
// emits an ordered stream of these; the renderer replays them verbatim and
// performs all actual drawing.
type Instruction interface {
	isInstruction()
}

// TextInstruction places a text run at (X, Y) with Y as the baseline.
// A non-zero MaxWidth requests word wrapping within that width.
type TextInstruction struct {
	X, Y     float64
	Text     string
	FontSize float64
	Bold     bool
	Align    string
	Color    RGB
	MaxWidth float64
}

// RectInstruction draws a rectangle, filled or stroked.
type RectInstruction struct {
	X, Y, W, H float64
	LineWidth  float64
	Fill       bool
	Color      RGB
}

// LineInstruction draws a straight line between two points.
type LineInstruction struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64
	Color          RGB
}

// ImageInstruction places a pre-resolved encoded image.
type ImageInstruction struct {
	X, Y, W, H float64
	Data       []byte
	Format     string
}

func (TextInstruction) isInstruction()  {}
func (RectInstruction) isInstruction()  {}
func (LineInstruction) isInstruction()  {}
func (ImageInstruction) isInstruction() {}

// ColumnBoundary returns the x coordinate of boundary k of an n-column grid
// spanning the table area. Header and body rows of the same table must both
// use these boundaries so their edges stay aligned.
func ColumnBoundary(k, n int) float64 {
	return tableLeft + float64(k)*tableWidth/float64(n)
}

// Compositor translates a finalized quotation into a drawing instruction
// stream. By default an undecodable logo aborts composition before any
// instruction is produced; HeaderLogoFallback instead omits the header
// placement and lets the signature placement degrade to its placeholder.
type Compositor struct {
	HeaderLogoFallback bool
}

// Compose builds the complete instruction stream for one quotation.
// The logo, if any, must already be resolved to in-memory bytes.
func (c Compositor) Compose(q QuotationExportData, logo *Logo) ([]Instruction, error) {
	expiry, err := ExpiryDate(q.IssueDate, q.ValidityDays)
	if err != nil {
		return nil, err
	}

	logoOK := logo != nil && decodableImage(logo.Data)
	if logo != nil && !logoOK && !c.HeaderLogoFallback {
		return nil, fmt.Errorf("company logo is not a decodable image")
	}

	var ins []Instruction
	ins = appendFrame(ins)
	ins = appendHeader(ins, q, expiry, logo, logoOK)
	ins = appendPartyBlocks(ins, q)
	ins = appendMetaTable(ins, q)
	ins, y := appendLineItems(ins, q)
	ins, y = appendTotals(ins, q, y)
	ins, y = appendTerms(ins, q, y)
	ins = appendSignature(ins, q, logo, logoOK, y)

	return ins, nil
}

// appendFrame emits the page border rectangle.
func appendFrame(ins []Instruction) []Instruction {
	return append(ins, RectInstruction{
		X: pageMargin, Y: pageMargin,
		W: pageWidth - 2*pageMargin, H: pageHeight - 2*pageMargin,
		LineWidth: 0.5,
		Color:     accentColor,
	})
}

// appendHeader emits the QUOTE title, the date/number/expiry block and the
// header logo placement.
func appendHeader(ins []Instruction, q QuotationExportData, expiry string, logo *Logo, logoOK bool) []Instruction {
	ins = append(ins, TextInstruction{
		X: pageMargin + 5, Y: pageMargin + 20,
		Text: "QUOTE", FontSize: 28, Color: mutedColor,
	})

	rightX := pageWidth - pageMargin - 60
	ins = append(ins,
		TextInstruction{X: rightX, Y: pageMargin + 15, Text: fmt.Sprintf("Date: %s", q.IssueDate), FontSize: 10, Align: AlignRight, Color: mutedColor},
		TextInstruction{X: rightX, Y: pageMargin + 22, Text: fmt.Sprintf("Invoice # %s", q.Number), FontSize: 10, Align: AlignRight, Color: mutedColor},
		TextInstruction{X: rightX, Y: pageMargin + 29, Text: fmt.Sprintf("Expiration Date: %s", expiry), FontSize: 10, Align: AlignRight, Color: mutedColor},
	)

	if logoOK {
		ins = append(ins, ImageInstruction{
			X: pageMargin + 5, Y: pageMargin + 5,
			W: logoWidth, H: logoHeight,
			Data: logo.Data, Format: logo.Format,
		})
	}

	return ins
}

// appendPartyBlocks emits the company block on the left and the customer
// block on the right at parallel vertical offsets.
func appendPartyBlocks(ins []Instruction, q QuotationExportData) []Instruction {
	leftX := pageMargin + 5
	left := func(y float64, s string) TextInstruction {
		return TextInstruction{X: leftX, Y: y, Text: s, FontSize: 10, Color: mutedColor}
	}

	ins = append(ins,
		left(pageMargin+40, q.CompanyName),
		left(pageMargin+47, q.CompanyAddress),
		left(pageMargin+54, fmt.Sprintf("%s, %s %s", q.CompanyCity, q.CompanyState, q.CompanyZip)),
		left(pageMargin+61, fmt.Sprintf("Phone: %s", q.CompanyPhone)),
		left(pageMargin+68, fmt.Sprintf("Email: %s", q.CompanyEmail)),
	)

	rightX := pageWidth - pageMargin - 60
	right := func(y float64, s string) TextInstruction {
		return TextInstruction{X: rightX, Y: y, Text: s, FontSize: 10, Align: AlignRight, Color: mutedColor}
	}

	ins = append(ins, right(pageMargin+40, q.CustomerName))
	if q.CustomerAddress != "" {
		ins = append(ins, right(pageMargin+47, q.CustomerAddress))
	}
	if q.CustomerPhone != "" {
		ins = append(ins, right(pageMargin+54, fmt.Sprintf("Phone: %s", q.CustomerPhone)))
	}
	ins = append(ins, right(pageMargin+61, fmt.Sprintf("Customer ID: %s", CustomerRef(q.Number))))

	return ins
}

// appendMetaTable emits the 4-column salesperson/terms table. Column
// boundaries are computed once and shared by the header and data rows.
func appendMetaTable(ins []Instruction, q QuotationExportData) []Instruction {
	y := pageMargin + 75
	colW := tableWidth / 4

	for k := 0; k < 4; k++ {
		ins = append(ins, RectInstruction{
			X: ColumnBoundary(k, 4), Y: y, W: colW, H: headerRowHeight,
			Fill: true, Color: accentColor,
		})
	}

	headers := []string{"Salesperson", "Job", "Payment Terms", "Due Date"}
	for k, h := range headers {
		ins = append(ins, TextInstruction{
			X: ColumnBoundary(k, 4) + 5, Y: y + 6,
			Text: h, FontSize: 10, Color: whiteColor,
		})
	}

	for k := 0; k < 4; k++ {
		ins = append(ins, RectInstruction{
			X: ColumnBoundary(k, 4), Y: y + headerRowHeight, W: colW, H: headerRowHeight,
			LineWidth: 0.5, Color: accentColor,
		})
	}

	values := []string{q.StaffName, q.StaffPosition, "Due on receipt", q.IssueDate}
	for k, v := range values {
		ins = append(ins, TextInstruction{
			X: ColumnBoundary(k, 4) + 5, Y: y + headerRowHeight + 6,
			Text: v, FontSize: 10, Color: blackColor,
		})
	}

	return ins
}

// appendLineItems emits the product table on a 5-unit column grid: quantity
// (1 unit), description (3 units), unit price and line total (1 unit each).
// Row height is fixed; overflowing descriptions are a known limitation.
// It returns the y coordinate just below the last row.
func appendLineItems(ins []Instruction, q QuotationExportData) ([]Instruction, float64) {
	y := pageMargin + 105
	colW := tableWidth / 5

	headerCells := []struct {
		col, span int
		label     string
	}{
		{0, 1, "Quantity"},
		{1, 3, "Description"},
		{3, 1, "Unit Price"},
		{4, 1, "Line Total"},
	}
	for _, c := range headerCells {
		ins = append(ins, RectInstruction{
			X: ColumnBoundary(c.col, 5), Y: y, W: float64(c.span) * colW, H: headerRowHeight,
			Fill: true, Color: accentColor,
		})
	}
	for _, c := range headerCells {
		ins = append(ins, TextInstruction{
			X: ColumnBoundary(c.col, 5) + 5, Y: y + 6,
			Text: c.label, FontSize: 10, Color: whiteColor,
		})
	}

	currentY := y + headerRowHeight
	for _, item := range q.Items {
		calc := CalcLineItem(item.Price, item.Quantity, item.Discount)
		netUnitPrice := DiscountedPrice(item.Price, item.Discount)

		cells := []struct{ col, span int }{{0, 1}, {1, 3}, {3, 1}, {4, 1}}
		for _, c := range cells {
			ins = append(ins, RectInstruction{
				X: ColumnBoundary(c.col, 5), Y: currentY,
				W: float64(c.span) * colW, H: lineItemRowHeight,
				LineWidth: 0.5, Color: accentColor,
			})
		}

		ins = append(ins, TextInstruction{
			X: ColumnBoundary(0, 5) + 5, Y: currentY + 10,
			Text: FormatQuantity(item.Quantity), FontSize: 10, Color: blackColor,
		})

		desc := item.Brand
		if item.ProductCode != "" {
			if desc != "" {
				desc += " - " + item.ProductCode
			} else {
				desc = item.ProductCode
			}
		}
		ins = append(ins, TextInstruction{
			X: ColumnBoundary(1, 5) + 5, Y: currentY + 7,
			Text: desc, FontSize: 10, Color: blackColor,
		})
		if item.Description != "" {
			ins = append(ins, TextInstruction{
				X: ColumnBoundary(1, 5) + 5, Y: currentY + 14,
				Text: item.Description, FontSize: 9, Color: blackColor,
				MaxWidth: 3*colW - 10,
			})
		}

		// Only the post-discount unit price appears on the document;
		// the gross MRP is never shown.
		ins = append(ins,
			TextInstruction{
				X: ColumnBoundary(3, 5) + 5, Y: currentY + 10,
				Text: FormatMoney(netUnitPrice), FontSize: 10, Color: blackColor,
			},
			TextInstruction{
				X: ColumnBoundary(4, 5) + 5, Y: currentY + 10,
				Text: FormatMoney(calc.Total), FontSize: 10, Color: blackColor,
			},
		)

		currentY += lineItemRowHeight
	}

	return ins, currentY
}

// appendTotals emits the subtotal, tax and grand-total lines right of the
// line-item table. It returns the starting y of the block.
func appendTotals(ins []Instruction, q QuotationExportData, currentY float64) ([]Instruction, float64) {
	draft := RecalculateDraft(QuotationDraft{Items: q.Items, TaxRate: q.TaxRate})
	totals := draft.Totals

	labelX := pageWidth - pageMargin - 60
	valueX := pageWidth - pageMargin - 10
	totalsY := currentY + 10

	ins = append(ins,
		TextInstruction{X: labelX, Y: totalsY, Text: "Subtotal", FontSize: 10, Color: blackColor},
		TextInstruction{X: valueX, Y: totalsY, Text: FormatMoney(totals.Subtotal), FontSize: 10, Align: AlignRight, Color: blackColor},
		TextInstruction{X: labelX, Y: totalsY + 10, Text: fmt.Sprintf("GST (%s%%)", FormatQuantity(q.TaxRate)), FontSize: 10, Color: blackColor},
		TextInstruction{X: valueX, Y: totalsY + 10, Text: FormatMoney(totals.TaxAmount), FontSize: 10, Align: AlignRight, Color: blackColor},
		TextInstruction{X: labelX, Y: totalsY + 20, Text: "Total", FontSize: 10, Bold: true, Color: blackColor},
		TextInstruction{X: valueX, Y: totalsY + 20, Text: FormatMoney(totals.GrandTotal), FontSize: 10, Bold: true, Align: AlignRight, Color: blackColor},
	)

	return ins, totalsY
}

// appendTerms emits the prepared-by line and the free-text terms block, one
// instruction per pre-wrapped line at fixed leading. It returns the y just
// below the last terms line.
func appendTerms(ins []Instruction, q QuotationExportData, totalsY float64) ([]Instruction, float64) {
	leftX := pageMargin + 5

	ins = append(ins,
		TextInstruction{
			X: leftX, Y: totalsY + 40,
			Text: fmt.Sprintf("Quotation prepared by: %s", q.StaffName), FontSize: 10, Color: blackColor,
		},
		TextInstruction{
			X: leftX, Y: totalsY + 50,
			Text: "This is a quotation on the goods named, subject to the conditions noted below:", FontSize: 10, Color: blackColor,
		},
	)

	termsY := totalsY + 60
	for _, line := range splitLines(q.Terms) {
		ins = append(ins, TextInstruction{X: leftX, Y: termsY, Text: line, FontSize: 10, Color: blackColor})
		termsY += termsLineHeight
	}

	return ins, termsY
}

// appendSignature emits the acceptance line and the footer logo. A missing
// or undecodable logo degrades to a bordered placeholder with the company
// name centered inside it.
func appendSignature(ins []Instruction, q QuotationExportData, logo *Logo, logoOK bool, termsY float64) []Instruction {
	leftX := pageMargin + 5

	ins = append(ins,
		TextInstruction{
			X: leftX, Y: termsY + 10,
			Text: "To accept this quotation, sign here and return:", FontSize: 10, Color: blackColor,
		},
		LineInstruction{
			X1: leftX, Y1: termsY + 20,
			X2: pageWidth - pageMargin - 5, Y2: termsY + 20,
			LineWidth: 0.5, Color: accentColor,
		},
	)

	if logoOK {
		ins = append(ins, ImageInstruction{
			X: leftX, Y: termsY + 30, W: logoWidth, H: logoHeight,
			Data: logo.Data, Format: logo.Format,
		})
	} else {
		ins = append(ins,
			RectInstruction{
				X: leftX, Y: termsY + 30, W: logoWidth, H: logoHeight,
				LineWidth: 0.5, Color: accentColor,
			},
			TextInstruction{
				X: leftX + logoWidth/2, Y: termsY + 40,
				Text: q.CompanyName, FontSize: 10, Align: AlignCenter, Color: blackColor,
			},
		)
	}

	ins = append(ins, TextInstruction{
		X: pageWidth - pageMargin - 60, Y: termsY + 40,
		Text: "Thank you for your business", FontSize: 10, Align: AlignRight, Color: blackColor,
	})

	return ins
}

// decodableImage reports whether data parses as a supported image header.
func decodableImage(data []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// splitLines splits pre-wrapped terms text into its lines, tolerating both
// LF and CRLF endings. Empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
