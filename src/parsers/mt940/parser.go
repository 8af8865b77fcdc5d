// backend/src/parsers/mt940/parser.go

// Package mt940 parses SWIFT MT940 customer statement messages: block-tagged
// plain text in which each booked turnover is a `:61:` statement line
// followed by a `:86:` narrative block.
package mt940

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/kontoflow/backend/src/logger"
	"github.com/username/kontoflow/backend/src/models"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// tagRe finds SWIFT block tags (:20:, :61:, :86:, :62F:, ...) at line starts.
var tagRe = regexp.MustCompile(`(?m)^:(\d{2}[A-Z]?):`)

// statementLineRe decodes the machine-readable part of a :61: line:
// value date (YYMMDD), optional booking date (MMDD), credit/debit/reversal
// marker, optional funds code letter, comma-decimal amount, optional
// transaction type (Nxxx) and customer reference up to the `//` bank
// reference separator.
var statementLineRe = regexp.MustCompile(`^(\d{6})(\d{4})?(RC|RD|C|D)([A-Z])?(\d+(?:,\d*)?)(?:N([A-Z0-9]{3}))?([^/\r\n]*)`)

// subfieldRe matches SWIFT :86: sub-field markers such as ?20 or ?32.
var subfieldRe = regexp.MustCompile(`\?\d{2}`)

// Parse scans the whole message text. Records are emitted only for a :61:
// line directly answered by a :86: narrative; any other text is simply not
// a transaction. The tag scan is the sole source of record boundaries, so a
// torn statement line costs exactly one record, never the file.
func (p *Parser) Parse(r io.Reader) ([]models.CanonicalTransaction, []models.ParseWarning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading MT940 file: %w", err)
	}
	content := string(raw)

	var txs []models.CanonicalTransaction
	var warnings []models.ParseWarning

	matches := tagRe.FindAllStringSubmatchIndex(content, -1)
	var pending *models.CanonicalTransaction

	for i, m := range matches {
		tag := content[m[2]:m[3]]
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := content[m[1]:bodyEnd]

		switch tag {
		case "61":
			if pending != nil {
				logger.L.Warn("MT940 statement line without narrative block")
				warnings = append(warnings, models.ParseWarning{
					Message: "statement line :61: without :86: narrative, dropped",
				})
			}
			tx, ok := parseStatementLine(body)
			if !ok {
				warnings = append(warnings, models.ParseWarning{
					Message: "unparsable :61: statement line",
					Raw:     strings.TrimSpace(body),
				})
				pending = nil
				continue
			}
			pending = &tx
		case "86":
			if pending == nil {
				continue
			}
			pending.Description = cleanNarrative(body)
			txs = append(txs, *pending)
			pending = nil
		}
	}

	if pending != nil {
		warnings = append(warnings, models.ParseWarning{
			Message: "statement line :61: without :86: narrative, dropped",
		})
	}
	return txs, warnings, nil
}

func parseStatementLine(body string) (models.CanonicalTransaction, bool) {
	line, _, _ := strings.Cut(body, "\n")
	m := statementLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return models.CanonicalTransaction{}, false
	}

	valueDate := decodeSwiftDate(m[1])
	date := valueDate
	if m[2] != "" {
		// The optional 4-digit date is the MMDD booking date in the
		// value date's year.
		date = decodeSwiftDate(m[1][:2] + m[2])
	}

	amount := decodeSwiftAmount(m[5])
	if m[3] == "D" || m[3] == "RD" {
		amount = amount.Neg()
	}

	reference := strings.TrimSpace(m[7])
	if reference == "NONREF" {
		reference = ""
	}

	return models.CanonicalTransaction{
		Date:      date,
		ValueDate: valueDate,
		Amount:    amount,
		Reference: reference,
	}, true
}

// decodeSwiftDate converts a 6-digit YYMMDD token to ISO 8601. Two-digit
// years above 50 land in the 1900s, the rest in the 2000s — the same pivot
// the CSV locale decoder uses, re-applied here because the wire format
// differs from delimited text.
func decodeSwiftDate(token string) string {
	year := token[:2]
	if year > "50" {
		year = "19" + year
	} else {
		year = "20" + year
	}
	return year + "-" + token[2:4] + "-" + token[4:6]
}

// decodeSwiftAmount parses the comma-decimal SWIFT amount. Unparsable input
// yields zero, matching the CSV leniency policy.
func decodeSwiftAmount(token string) decimal.Decimal {
	cleaned := strings.ReplaceAll(token, ",", ".")
	cleaned = strings.TrimSuffix(cleaned, ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cleanNarrative flattens a :86: block into a single description string:
// ?XX sub-field markers become spaces and line breaks collapse.
func cleanNarrative(body string) string {
	s := subfieldRe.ReplaceAllString(body, " ")
	return strings.Join(strings.Fields(s), " ")
}
