// backend/src/parsers/csv.go
package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/username/kontoflow/backend/src/logger"
	"github.com/username/kontoflow/backend/src/models"
)

// CSVStatementParser parses a delimited-text bank export in one concrete
// dialect. The dialect is normally chosen by DetectFormat; callers may force
// one via ResolveFormat's hint path.
type CSVStatementParser struct {
	format models.FormatIdentifier
	layout columnLayout
}

// NewCSVParser returns a parser for the given dialect. Unknown identifiers
// fall back to the general layout.
func NewCSVParser(format models.FormatIdentifier) *CSVStatementParser {
	layout, ok := dialectLayouts[format]
	if !ok {
		format = models.FormatGeneral
		layout = dialectLayouts[models.FormatGeneral]
	}
	return &CSVStatementParser{format: format, layout: layout}
}

// Format returns the dialect this parser maps.
func (p *CSVStatementParser) Format() models.FormatIdentifier { return p.format }

// Parse reads the whole file and maps every data row through the dialect's
// column layout. The first line is treated as the header. Rows with fewer
// columns than the layout requires are skipped with a warning; this is a
// per-row skip, never a per-file abort.
func (p *CSVStatementParser) Parse(r io.Reader) ([]models.CanonicalTransaction, []models.ParseWarning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading statement file: %w", err)
	}
	content := NormalizeContent(raw)

	var txs []models.CanonicalTransaction
	var warnings []models.ParseWarning

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}

		rec := p.tokenize(line)
		if len(rec) < p.layout.minFields {
			logger.L.Warn("Skipping statement row with too few columns",
				"format", p.format, "line", i+1, "columns", len(rec), "required", p.layout.minFields)
			warnings = append(warnings, models.ParseWarning{
				Line:    i + 1,
				Message: fmt.Sprintf("row has %d columns, dialect %s requires %d", len(rec), p.format, p.layout.minFields),
				Raw:     line,
			})
			continue
		}

		txs = append(txs, p.layout.mapRow(rec))
	}
	return txs, warnings, nil
}

func (p *CSVStatementParser) tokenize(line string) []string {
	if p.format == models.FormatGeneral {
		// The fallback layout has no fixed delimiter contract; follow
		// whatever the line actually uses.
		if strings.Contains(line, ";") {
			return SplitSemicolonLine(line)
		}
		return ParseCSVLine(line)
	}
	if p.layout.comma {
		return ParseCSVLine(line)
	}
	return SplitSemicolonLine(line)
}
