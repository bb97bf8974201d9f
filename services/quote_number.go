package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const quoteNumberPrefix = "PTM"

// formatQuotationNumber constructs the business number from its components.
// Format: PTM-YYMMDD-RRR where RRR is a zero-padded 3-digit suffix.
func formatQuotationNumber(t time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%03d", quoteNumberPrefix, t.Format("060102"), suffix)
}

// GenerateQuotationNumber creates a new quotation number for the given day
// with a random 3-digit suffix. Uniqueness is probabilistic, matching the
// single-tenant scale of the tool.
func GenerateQuotationNumber(now time.Time) string {
	return formatQuotationNumber(now, rand.Intn(1000))
}

// CustomerRef derives the short customer reference printed on the document
// from a quotation number by dropping the business prefix.
func CustomerRef(quotationNumber string) string {
	return strings.TrimPrefix(quotationNumber, quoteNumberPrefix+"-")
}

// ExpiryDate adds validityDays calendar days to an ISO issue date.
// Calendar arithmetic handles month and year rollover exactly, rather than
// approximating a day as 24 hours.
func ExpiryDate(issueDate string, validityDays int) (string, error) {
	t, err := time.Parse("2006-01-02", issueDate)
	if err != nil {
		return "", fmt.Errorf("invalid issue date %q: %w", issueDate, err)
	}
	return t.AddDate(0, 0, validityDays).Format("2006-01-02"), nil
}
