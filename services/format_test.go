package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole number", 180, "₹180.00"},
		{"two decimals", 129.6, "₹129.60"},
		{"rounds up", 12.346, "₹12.35"},
		{"rounds down", 12.344, "₹12.34"},
		{"zero", 0, "₹0.00"},
		{"large amount", 1234567.89, "₹1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.amount)
			if got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		want string
	}{
		{"whole number", 4, "4"},
		{"decimal", 2.5, "2.5"},
		{"zero", 0, "0"},
		{"trailing zeros trimmed", 3.10, "3.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuantity(tt.qty)
			if got != tt.want {
				t.Errorf("FormatQuantity(%v) = %q, want %q", tt.qty, got, tt.want)
			}
		})
	}
}
