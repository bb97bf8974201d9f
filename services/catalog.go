package services

// Category identifies a catalog product variant. Each category has its own
// field set and its own collection; a product record never mixes categories.
type Category string

const (
	CategoryTile     Category = "tiles"
	CategoryAdhesive Category = "adhesives"
	CategoryFitting  Category = "fittings"
)

// ValidCategory reports whether c names a known catalog category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryTile, CategoryAdhesive, CategoryFitting:
		return true
	}
	return false
}

// TileProduct is the tile catalog variant. DiscountedPrice, NoOfBoxes and
// TotalAmount are derived; RecalcTile is the single place they are computed.
type TileProduct struct {
	ID                string  `json:"id"`
	Brand             string  `json:"brand"`
	AreaOfApplication string  `json:"areaOfApplication"`
	ShadeName         string  `json:"shadeName"`
	Image             string  `json:"image"`
	Dimensions        string  `json:"dimensions"`
	Surface           string  `json:"surface"`
	MRP               float64 `json:"mrp"`
	Discount          float64 `json:"discount"`
	DiscountedPrice   float64 `json:"discountedPrice"`
	AreaRequired      float64 `json:"areaRequired"`
	ItemsPerBox       float64 `json:"itemsPerBox"`
	NoOfBoxes         int     `json:"noOfBoxes"`
	TotalAmount       float64 `json:"totalAmount"`
}

// AdhesiveProduct is the adhesive catalog variant.
type AdhesiveProduct struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	MRP         float64 `json:"mrp"`
	DPrice      float64 `json:"dPrice"`
	NoOfBags    int     `json:"noOfBags"`
	TotalAmount float64 `json:"totalAmount"`
}

// FittingProduct is the CP & sanitaryware catalog variant.
type FittingProduct struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	ProductCode string  `json:"productCode"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	MRP         float64 `json:"mrp"`
	DPrice      float64 `json:"dPrice"`
	Nos         int     `json:"nos"`
	TotalAmount float64 `json:"totalAmount"`
}

// RecalcTile returns p with every derived field recomputed from its inputs.
// Handlers call this after any field edit so the dependent values can never
// drift from the stored inputs.
func RecalcTile(p TileProduct) TileProduct {
	p.DiscountedPrice = DiscountedPrice(p.MRP, p.Discount)
	p.NoOfBoxes = CalcBoxCount(p.AreaRequired, p.ItemsPerBox)
	p.TotalAmount = p.DiscountedPrice * p.AreaRequired * float64(p.NoOfBoxes)
	return p
}

// RecalcAdhesive returns p with its derived total recomputed.
func RecalcAdhesive(p AdhesiveProduct) AdhesiveProduct {
	p.TotalAmount = p.DPrice * float64(p.NoOfBags)
	return p
}

// RecalcFitting returns p with its derived total recomputed.
func RecalcFitting(p FittingProduct) FittingProduct {
	p.TotalAmount = p.DPrice * float64(p.Nos)
	return p
}

// NetPrice returns the selling price a quotation line should default to for
// a product of the given category: the discounted/net figure when set,
// otherwise the list price.
func NetPrice(netPrice, mrp float64) float64 {
	if netPrice > 0 {
		return netPrice
	}
	return mrp
}
