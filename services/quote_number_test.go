package services

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatQuotationNumber(t *testing.T) {
	date := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		t      time.Time
		suffix int
		want   string
	}{
		{"basic", date, 7, "PTM-240305-007"},
		{"three digit suffix", date, 999, "PTM-240305-999"},
		{"zero suffix", date, 0, "PTM-240305-000"},
		{"year end", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 42, "PTM-251231-042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatQuotationNumber(tt.t, tt.suffix)
			if got != tt.want {
				t.Errorf("formatQuotationNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateQuotationNumber(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^PTM-240615-\d{3}$`)

	for i := 0; i < 20; i++ {
		got := GenerateQuotationNumber(now)
		if !pattern.MatchString(got) {
			t.Fatalf("GenerateQuotationNumber() = %q, does not match %v", got, pattern)
		}
	}
}

func TestCustomerRef(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"standard number", "PTM-240305-007", "240305-007"},
		{"no prefix", "240305-007", "240305-007"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CustomerRef(tt.number)
			if got != tt.want {
				t.Errorf("CustomerRef(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestExpiryDate(t *testing.T) {
	tests := []struct {
		name         string
		issueDate    string
		validityDays int
		want         string
	}{
		{"within month", "2024-01-01", 15, "2024-01-16"},
		{"month rollover", "2024-01-25", 10, "2024-02-04"},
		{"leap february", "2024-02-20", 10, "2024-03-01"},
		{"non-leap february", "2023-02-20", 10, "2023-03-02"},
		{"year rollover", "2024-12-25", 10, "2025-01-04"},
		{"zero days", "2024-05-10", 0, "2024-05-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpiryDate(tt.issueDate, tt.validityDays)
			if err != nil {
				t.Fatalf("ExpiryDate(%q, %d) error = %v", tt.issueDate, tt.validityDays, err)
			}
			if got != tt.want {
				t.Errorf("ExpiryDate(%q, %d) = %q, want %q", tt.issueDate, tt.validityDays, got, tt.want)
			}
		})
	}
}

func TestExpiryDate_InvalidDate(t *testing.T) {
	if _, err := ExpiryDate("not-a-date", 15); err == nil {
		t.Error("expected error for malformed issue date")
	}
	if _, err := ExpiryDate("15/01/2024", 15); err == nil {
		t.Error("expected error for non-ISO issue date")
	}
}
