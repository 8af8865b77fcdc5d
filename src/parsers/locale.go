// backend/src/parsers/locale.go
package parsers

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseGermanDate normalizes a date token from a German bank export to
// ISO 8601 (YYYY-MM-DD). Tokens that already contain a dash are treated as
// ISO and passed through unchanged, so the function is idempotent. Expected
// input is DD.MM.YYYY or DD.MM.YY; two-digit years above 50 map to 19xx,
// the rest to 20xx.
//
// Malformed tokens (wrong segment count) are returned unchanged. Validation
// of the result is deliberately left to downstream review: a wrong-looking
// date in one row must not abort a multi-thousand-line import.
func ParseGermanDate(token string) string {
	token = strings.TrimSpace(token)
	if strings.Contains(token, "-") {
		return token
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}

	day, month, year := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	if len(year) == 2 {
		if y, err := strconv.Atoi(year); err == nil {
			if y > 50 {
				year = "19" + year
			} else {
				year = "20" + year
			}
		}
	}

	return year + "-" + pad2(month) + "-" + pad2(day)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseGermanNumber decodes an amount token using German formatting
// conventions: `.` is the thousands separator and `,` the decimal separator,
// so "1.234,56" becomes 1234.56.
//
// Empty or unparsable input yields zero, never an error. This leniency is a
// deliberate product policy: partial-row failures must not abort an import,
// and zero-amount records are flagged for human review downstream.
func ParseGermanNumber(token string) decimal.Decimal {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePlainNumber decodes an amount token from dot-decimal exports
// (Revolut, N26, Kontist, Finom), tolerating `,` thousands separators.
// Same leniency policy as ParseGermanNumber: bad input yields zero.
func ParsePlainNumber(token string) decimal.Decimal {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
