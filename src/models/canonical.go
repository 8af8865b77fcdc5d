// backend/src/models/canonical.go
package models

import "github.com/shopspring/decimal"

// CanonicalTransaction is the unified representation of one bank statement
// entry. Every statement parser (CSV dialect, MT940, CAMT.053) produces this
// record, so downstream consumers never need to know which source format a
// transaction came from.
type CanonicalTransaction struct {
	// Booking date in ISO 8601 form (YYYY-MM-DD). Never empty on a
	// successfully produced record. Malformed source tokens are carried
	// through as-is for downstream review.
	Date string `json:"date"`
	// Settlement date. Equals Date when the source format has no
	// separate value date column.
	ValueDate string `json:"value_date"`
	// Signed amount: positive = credit/inflow, negative = debit/outflow.
	// Unparsable amount tokens normalize to zero rather than failing the row.
	Amount decimal.Decimal `json:"amount"`
	// Free-text narrative, already de-escaped from source-specific
	// continuation or sub-field syntax.
	Description string `json:"description"`
	// Bank-assigned reference or mandate code. Empty string when absent.
	Reference string `json:"reference"`

	CounterpartName string `json:"counterpart_name,omitempty"`
	CounterpartIBAN string `json:"counterpart_iban,omitempty"`
	// Bank-assigned category when the dialect exposes one. Informational only.
	Category string `json:"category,omitempty"`
}

// ParseWarning reports a row or entry that was skipped or only partially
// decoded. Warnings never abort an import; they exist so the review surface
// can show the user what was dropped.
type ParseWarning struct {
	// 1-based line number in the source file, or the entry index for XML
	// input. Zero when no position is known.
	Line    int    `json:"line"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
}
