// backend/src/parsers/detect.go
package parsers

import (
	"strings"

	"github.com/username/kontoflow/backend/src/models"
)

// Outbank exports start with a literal `#` row-number column followed by the
// semicolon-delimited header, which no other supported dialect does.
const outbankHeaderPrefix = "#;"

// headerProfile is the pre-digested view of a file's first line that the
// detector rules match against.
type headerProfile struct {
	firstLine string
	// Lower-cased, quote-stripped column names from the first line.
	columns []string
	// Comma-delimited means the first line uses `,` and no `;`.
	comma     bool
	semicolon bool
}

// hasColumn reports whether any column name contains the given token.
// Tokens are expected in lower case.
func (h headerProfile) hasColumn(token string) bool {
	for _, c := range h.columns {
		if strings.Contains(c, token) {
			return true
		}
	}
	return false
}

// hasExactColumn reports whether a column name equals the given token.
func (h headerProfile) hasExactColumn(token string) bool {
	for _, c := range h.columns {
		if c == token {
			return true
		}
	}
	return false
}

func profileHeader(content string) headerProfile {
	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSuffix(firstLine, "\r")

	h := headerProfile{
		firstLine: firstLine,
		semicolon: strings.Contains(firstLine, ";"),
		comma:     strings.Contains(firstLine, ",") && !strings.Contains(firstLine, ";"),
	}

	var raw []string
	if h.semicolon {
		raw = SplitSemicolonLine(firstLine)
	} else {
		raw = ParseCSVLine(firstLine)
	}
	for _, c := range raw {
		h.columns = append(h.columns, strings.ToLower(strings.TrimSpace(stripQuotes(c))))
	}
	return h
}

// formatRule pairs a header predicate with the dialect it identifies.
type formatRule struct {
	format models.FormatIdentifier
	match  func(h headerProfile) bool
}

// formatRules is the detector: a greedy, ordered rule list evaluated top to
// bottom, first match wins. Column-name vocabularies overlap heavily across
// German banks (almost everyone has a Buchungstag), so only uniquely named
// columns discriminate reliably and the rules must run from most specific to
// least specific. The order is a compatibility contract: changing it silently
// reclassifies previously working imports.
var formatRules = []formatRule{
	{models.FormatOutbank, func(h headerProfile) bool {
		return strings.HasPrefix(h.firstLine, outbankHeaderPrefix)
	}},

	// Comma-delimited dialects.
	{models.FormatC24, func(h headerProfile) bool {
		return h.comma && h.hasColumn("buchungsdatum") && h.hasColumn("buchungstyp")
	}},
	{models.FormatRevolut, func(h headerProfile) bool {
		return h.comma && h.hasColumn("started date") && h.hasColumn("completed date")
	}},
	{models.FormatN26, func(h headerProfile) bool {
		return h.comma && h.hasExactColumn("payee") && h.hasExactColumn("account number")
	}},
	{models.FormatTomorrow, func(h headerProfile) bool {
		return h.comma && h.hasColumn("empfänger") && h.hasColumn("betrag")
	}},
	{models.FormatKontist, func(h headerProfile) bool {
		return h.comma && h.hasColumn("booking date") && h.hasColumn("amount (eur)")
	}},
	{models.FormatFinom, func(h headerProfile) bool {
		return h.comma && h.hasColumn("counterparty") && h.hasColumn("payment reference")
	}},

	// Semicolon-delimited dialects.
	{models.FormatCommerzbank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("umsatzart")
	}},
	{models.FormatDeutscheBank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("buchungsart")
	}},
	{models.FormatING, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("auftraggeber/empfänger")
	}},
	{models.FormatDKB, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("umsatztyp")
	}},
	{models.FormatDKBLegacy, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("wertstellung") && h.hasColumn("kontonummer")
	}},
	{models.FormatHypovereinsbank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("empfänger/auftraggeber")
	}},
	{models.FormatComdirect, func(h headerProfile) bool {
		return h.semicolon && (h.hasColumn("wertstellung (valuta)") || h.hasExactColumn("valuta"))
	}},
	{models.FormatPostbank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("empfänger/zahlungspflichtiger")
	}},
	{models.FormatTargobank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("transaktionsart")
	}},
	{models.FormatConsorsbank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("buchungstext") && !h.hasColumn("auftragskonto")
	}},
	{models.FormatVolksbank, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("kundenreferenz")
	}},
	{models.FormatSparkasse, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("auftragskonto")
	}},
	{models.FormatSparkasse, func(h headerProfile) bool {
		return h.semicolon && h.hasColumn("buchungstag") && h.hasColumn("valutadatum")
	}},
}

// DetectFormat inspects a statement file's header line and returns the
// best-guess dialect, or FormatUnrecognized when no rule matches.
func DetectFormat(content string) models.FormatIdentifier {
	h := profileHeader(content)
	for _, rule := range formatRules {
		if rule.match(h) {
			return rule.format
		}
	}
	return models.FormatUnrecognized
}

// ResolveFormat combines detection with a caller-supplied dialect hint.
// Detection always wins over the hint: repeated imports from the same bank
// must self-correct even when the user's stored selection has gone stale.
// The hint is consulted only when detection yields unrecognized, and the
// final fallback is the structural `general` layout.
func ResolveFormat(content string, hint models.FormatIdentifier) models.FormatIdentifier {
	if detected := DetectFormat(content); detected != models.FormatUnrecognized {
		return detected
	}
	if hint != "" && hint.Valid() {
		return hint
	}
	return models.FormatGeneral
}
