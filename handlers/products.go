package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tilequote/services"
)

// requestCategory extracts and validates the {category} path value.
func requestCategory(e *core.RequestEvent) (services.Category, bool) {
	c := services.Category(e.Request.PathValue("category"))
	return c, services.ValidCategory(c)
}

// HandleProductList returns every product of one catalog category.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category, ok := requestCategory(e)
		if !ok {
			return errorJSON(e, http.StatusBadRequest, "Unknown product category")
		}

		records, err := app.FindAllRecords(string(category))
		if err != nil {
			log.Printf("products: failed to list %s: %v", category, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load products")
		}

		switch category {
		case services.CategoryTile:
			out := []services.TileProduct{}
			for _, r := range records {
				out = append(out, tileFromRecord(r))
			}
			return e.JSON(http.StatusOK, out)
		case services.CategoryAdhesive:
			out := []services.AdhesiveProduct{}
			for _, r := range records {
				out = append(out, adhesiveFromRecord(r))
			}
			return e.JSON(http.StatusOK, out)
		default:
			out := []services.FittingProduct{}
			for _, r := range records {
				out = append(out, fittingFromRecord(r))
			}
			return e.JSON(http.StatusOK, out)
		}
	}
}

// HandleProductCreate validates and saves a new product of one category.
// Derived fields are always recomputed server-side before saving.
func HandleProductCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category, ok := requestCategory(e)
		if !ok {
			return errorJSON(e, http.StatusBadRequest, "Unknown product category")
		}

		col, err := app.FindCollectionByNameOrId(string(category))
		if err != nil {
			log.Printf("products: collection %s not found: %v", category, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load products")
		}

		record := core.NewRecord(col)
		if err := bindProduct(e, category, record); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		if err := app.Save(record); err != nil {
			log.Printf("products: failed to save %s: %v", category, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save product")
		}

		return productJSON(e, http.StatusCreated, category, record)
	}
}

// HandleProductUpdate applies edits to an existing product and recomputes
// its derived fields.
func HandleProductUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category, ok := requestCategory(e)
		if !ok {
			return errorJSON(e, http.StatusBadRequest, "Unknown product category")
		}

		record, err := app.FindRecordById(string(category), e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Product")
		}

		if err := bindProduct(e, category, record); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		if err := app.Save(record); err != nil {
			log.Printf("products: failed to update %s %s: %v", category, record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save product")
		}

		return productJSON(e, http.StatusOK, category, record)
	}
}

// HandleProductDelete removes a product from its category collection. Saved
// quotations are unaffected: their line items are snapshots.
func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category, ok := requestCategory(e)
		if !ok {
			return errorJSON(e, http.StatusBadRequest, "Unknown product category")
		}

		record, err := app.FindRecordById(string(category), e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Product")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("products: failed to delete %s %s: %v", category, record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to delete product")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// bindProduct binds the request body for one category onto record, running
// the category's reducer so derived fields can never be set by the client.
func bindProduct(e *core.RequestEvent, category services.Category, record *core.Record) error {
	switch category {
	case services.CategoryTile:
		var p services.TileProduct
		if err := e.BindBody(&p); err != nil {
			return errInvalidBody
		}
		if err := validateBase(p.Brand, p.MRP); err != nil {
			return err
		}
		p = services.RecalcTile(p)
		record.Set("brand", p.Brand)
		record.Set("area_of_application", p.AreaOfApplication)
		record.Set("shade_name", p.ShadeName)
		record.Set("image", p.Image)
		record.Set("dimensions", p.Dimensions)
		record.Set("surface", p.Surface)
		record.Set("mrp", p.MRP)
		record.Set("discount", p.Discount)
		record.Set("discounted_price", p.DiscountedPrice)
		record.Set("area_required", p.AreaRequired)
		record.Set("items_per_box", p.ItemsPerBox)
		record.Set("no_of_boxes", p.NoOfBoxes)
		record.Set("total_amount", p.TotalAmount)

	case services.CategoryAdhesive:
		var p services.AdhesiveProduct
		if err := e.BindBody(&p); err != nil {
			return errInvalidBody
		}
		if err := validateBase(p.Brand, p.MRP); err != nil {
			return err
		}
		p = services.RecalcAdhesive(p)
		record.Set("brand", p.Brand)
		record.Set("category", p.Category)
		record.Set("mrp", p.MRP)
		record.Set("d_price", p.DPrice)
		record.Set("no_of_bags", p.NoOfBags)
		record.Set("total_amount", p.TotalAmount)

	case services.CategoryFitting:
		var p services.FittingProduct
		if err := e.BindBody(&p); err != nil {
			return errInvalidBody
		}
		if err := validateBase(p.Brand, p.MRP); err != nil {
			return err
		}
		p = services.RecalcFitting(p)
		record.Set("brand", p.Brand)
		record.Set("product_code", p.ProductCode)
		record.Set("description", p.Description)
		record.Set("image", p.Image)
		record.Set("mrp", p.MRP)
		record.Set("d_price", p.DPrice)
		record.Set("nos", p.Nos)
		record.Set("total_amount", p.TotalAmount)
	}
	return nil
}

var (
	errInvalidBody = validationError("Invalid request body")
	errBrand       = validationError("Brand is required")
	errMRP         = validationError("MRP must be greater than zero")
)

type validationError string

func (v validationError) Error() string { return string(v) }

func validateBase(brand string, mrp float64) error {
	if brand == "" {
		return errBrand
	}
	if mrp <= 0 {
		return errMRP
	}
	return nil
}

func productJSON(e *core.RequestEvent, status int, category services.Category, r *core.Record) error {
	switch category {
	case services.CategoryTile:
		return e.JSON(status, tileFromRecord(r))
	case services.CategoryAdhesive:
		return e.JSON(status, adhesiveFromRecord(r))
	default:
		return e.JSON(status, fittingFromRecord(r))
	}
}

func tileFromRecord(r *core.Record) services.TileProduct {
	return services.TileProduct{
		ID:                r.Id,
		Brand:             r.GetString("brand"),
		AreaOfApplication: r.GetString("area_of_application"),
		ShadeName:         r.GetString("shade_name"),
		Image:             r.GetString("image"),
		Dimensions:        r.GetString("dimensions"),
		Surface:           r.GetString("surface"),
		MRP:               r.GetFloat("mrp"),
		Discount:          r.GetFloat("discount"),
		DiscountedPrice:   r.GetFloat("discounted_price"),
		AreaRequired:      r.GetFloat("area_required"),
		ItemsPerBox:       r.GetFloat("items_per_box"),
		NoOfBoxes:         r.GetInt("no_of_boxes"),
		TotalAmount:       r.GetFloat("total_amount"),
	}
}

func adhesiveFromRecord(r *core.Record) services.AdhesiveProduct {
	return services.AdhesiveProduct{
		ID:          r.Id,
		Brand:       r.GetString("brand"),
		Category:    r.GetString("category"),
		MRP:         r.GetFloat("mrp"),
		DPrice:      r.GetFloat("d_price"),
		NoOfBags:    r.GetInt("no_of_bags"),
		TotalAmount: r.GetFloat("total_amount"),
	}
}

func fittingFromRecord(r *core.Record) services.FittingProduct {
	return services.FittingProduct{
		ID:          r.Id,
		Brand:       r.GetString("brand"),
		ProductCode: r.GetString("product_code"),
		Description: r.GetString("description"),
		Image:       r.GetString("image"),
		MRP:         r.GetFloat("mrp"),
		DPrice:      r.GetFloat("d_price"),
		Nos:         r.GetInt("nos"),
		TotalAmount: r.GetFloat("total_amount"),
	}
}
