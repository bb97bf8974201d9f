package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pocketbase/pocketbase"
)

// PriceListData holds everything needed to print a catalog price list for
// one category.
type PriceListData struct {
	CompanyName string
	Category    Category
	Title       string
	GeneratedOn string
	Rows        []PriceListRow
}

// PriceListRow is one catalog entry on the price list. Detail carries the
// category-specific descriptor (shade/dimensions for tiles, adhesive
// category, fitting code and description).
type PriceListRow struct {
	Brand    string
	Detail   string
	MRP      float64
	NetPrice float64
}

// GeneratePriceListPDF renders a flow-layout price list document and
// returns the PDF bytes.
func GeneratePriceListPDF(data PriceListData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPriceListHeader(m, data)
	addPriceListTableHeader(m)
	for i, r := range data.Rows {
		addPriceListRow(m, r, i%2 == 1)
	}
	addPriceListFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate price list PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addPriceListHeader(m core.Maroto, data PriceListData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("PRICE LIST", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 0, Green: 166, Blue: 126},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedOn), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addPriceListTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 0, Green: 166, Blue: 126}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Brand", headerTextLeft)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Product", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("MRP", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Net Price", headerText)).WithStyle(&headerCell),
		),
	)
}

func addPriceListRow(m core.Maroto, r PriceListRow, alternate bool) {
	bodyLeft := props.Text{Size: 7, Align: align.Left}
	bodyRight := props.Text{Size: 7, Align: align.Right}

	var cellStyle *props.Cell
	if alternate {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 249, Blue: 250}}
	}

	colBrand := col.New(3).Add(text.New(r.Brand, bodyLeft))
	colDetail := col.New(5).Add(text.New(r.Detail, bodyLeft))
	colMRP := col.New(2).Add(text.New(FormatMoney(r.MRP), bodyRight))
	colNet := col.New(2).Add(text.New(FormatMoney(r.NetPrice), bodyRight))

	if cellStyle != nil {
		colBrand = colBrand.WithStyle(cellStyle)
		colDetail = colDetail.WithStyle(cellStyle)
		colMRP = colMRP.WithStyle(cellStyle)
		colNet = colNet.WithStyle(cellStyle)
	}

	m.AddRows(row.New(7).Add(colBrand, colDetail, colMRP, colNet))
}

func addPriceListFooter(m core.Maroto, data PriceListData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedOn),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// BuildPriceListData assembles the price list for one catalog category from
// the stored records.
func BuildPriceListData(app *pocketbase.PocketBase, category Category, generatedOn string) (PriceListData, error) {
	if !ValidCategory(category) {
		return PriceListData{}, fmt.Errorf("unknown catalog category %q", category)
	}

	companyName := "Prateek Tiles and Marble"
	if settings, err := app.FindAllRecords("business_settings"); err == nil && len(settings) > 0 {
		if name := settings[0].GetString("business_name"); name != "" {
			companyName = name
		}
	}

	data := PriceListData{
		CompanyName: companyName,
		Category:    category,
		GeneratedOn: generatedOn,
	}

	records, err := app.FindAllRecords(string(category))
	if err != nil {
		return PriceListData{}, fmt.Errorf("load %s: %w", category, err)
	}

	switch category {
	case CategoryTile:
		data.Title = "Tiles"
		for _, r := range records {
			detail := r.GetString("shade_name")
			if dims := r.GetString("dimensions"); dims != "" {
				detail = fmt.Sprintf("%s (%s)", detail, dims)
			}
			data.Rows = append(data.Rows, PriceListRow{
				Brand:    r.GetString("brand"),
				Detail:   detail,
				MRP:      r.GetFloat("mrp"),
				NetPrice: NetPrice(r.GetFloat("discounted_price"), r.GetFloat("mrp")),
			})
		}
	case CategoryAdhesive:
		data.Title = "Adhesives"
		for _, r := range records {
			data.Rows = append(data.Rows, PriceListRow{
				Brand:    r.GetString("brand"),
				Detail:   r.GetString("category"),
				MRP:      r.GetFloat("mrp"),
				NetPrice: NetPrice(r.GetFloat("d_price"), r.GetFloat("mrp")),
			})
		}
	case CategoryFitting:
		data.Title = "CP & Sanitaryware"
		for _, r := range records {
			detail := r.GetString("product_code")
			if desc := r.GetString("description"); desc != "" {
				if detail != "" {
					detail += " - "
				}
				detail += desc
			}
			data.Rows = append(data.Rows, PriceListRow{
				Brand:    r.GetString("brand"),
				Detail:   detail,
				MRP:      r.GetFloat("mrp"),
				NetPrice: NetPrice(r.GetFloat("d_price"), r.GetFloat("mrp")),
			})
		}
	}

	return data, nil
}
