package services

import (
	"math"
	"testing"
)

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     bool
	}{
		{"tiles", CategoryTile, true},
		{"adhesives", CategoryAdhesive, true},
		{"fittings", CategoryFitting, true},
		{"unknown", Category("paint"), false},
		{"empty", Category(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCategory(tt.category); got != tt.want {
				t.Errorf("ValidCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestRecalcTile(t *testing.T) {
	p := TileProduct{
		Brand:        "Kajaria",
		MRP:          100,
		Discount:     10,
		AreaRequired: 10,
		ItemsPerBox:  3,
	}

	got := RecalcTile(p)

	if math.Abs(got.DiscountedPrice-90) > 0.001 {
		t.Errorf("DiscountedPrice = %v, want 90", got.DiscountedPrice)
	}
	if got.NoOfBoxes != 4 {
		t.Errorf("NoOfBoxes = %v, want 4", got.NoOfBoxes)
	}
	if math.Abs(got.TotalAmount-3600) > 0.001 {
		t.Errorf("TotalAmount = %v, want 3600", got.TotalAmount)
	}
}

func TestRecalcTile_DerivedFieldsNeverStale(t *testing.T) {
	p := RecalcTile(TileProduct{MRP: 200, Discount: 25, AreaRequired: 6, ItemsPerBox: 3})

	// Editing an input and recalculating must refresh every derived field.
	p.Discount = 50
	p = RecalcTile(p)

	if math.Abs(p.DiscountedPrice-100) > 0.001 {
		t.Errorf("DiscountedPrice = %v, want 100", p.DiscountedPrice)
	}
	if p.NoOfBoxes != 2 {
		t.Errorf("NoOfBoxes = %v, want 2", p.NoOfBoxes)
	}
}

func TestRecalcTile_DefaultPackaging(t *testing.T) {
	// Missing items-per-box falls back to 3 per box.
	got := RecalcTile(TileProduct{MRP: 50, AreaRequired: 10})
	if got.NoOfBoxes != 4 {
		t.Errorf("NoOfBoxes = %v, want 4 (default packaging)", got.NoOfBoxes)
	}
}

func TestRecalcAdhesive(t *testing.T) {
	got := RecalcAdhesive(AdhesiveProduct{Brand: "Laticrete", DPrice: 450, NoOfBags: 3})
	if math.Abs(got.TotalAmount-1350) > 0.001 {
		t.Errorf("TotalAmount = %v, want 1350", got.TotalAmount)
	}
}

func TestRecalcFitting(t *testing.T) {
	got := RecalcFitting(FittingProduct{Brand: "Jaquar", DPrice: 1200, Nos: 2})
	if math.Abs(got.TotalAmount-2400) > 0.001 {
		t.Errorf("TotalAmount = %v, want 2400", got.TotalAmount)
	}
}

func TestNetPrice(t *testing.T) {
	tests := []struct {
		name     string
		netPrice float64
		mrp      float64
		want     float64
	}{
		{"net set", 90, 100, 90},
		{"net unset falls back to mrp", 0, 100, 100},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetPrice(tt.netPrice, tt.mrp); got != tt.want {
				t.Errorf("NetPrice(%v, %v) = %v, want %v", tt.netPrice, tt.mrp, got, tt.want)
			}
		})
	}
}
