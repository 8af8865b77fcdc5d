// backend/src/parsers/factory.go
package parsers

import (
	"github.com/username/kontoflow/backend/src/models"
	"github.com/username/kontoflow/backend/src/parsers/camt"
	"github.com/username/kontoflow/backend/src/parsers/mt940"
)

// ParserForFile classifies the file and returns the parser to use, along
// with the detected file kind and, for delimited text, the resolved dialect.
// For MT940 and CAMT.053 the returned format is empty: those formats are
// self-describing and have no dialect vocabulary.
func ParserForFile(fileName, content string, hint models.FormatIdentifier) (StatementParser, models.FileKind, models.FormatIdentifier) {
	switch kind := DetectFileKind(fileName, content); kind {
	case models.FileKindCAMT053:
		return camt.NewParser(), kind, ""
	case models.FileKindMT940:
		return mt940.NewParser(), kind, ""
	default:
		format := ResolveFormat(content, hint)
		return NewCSVParser(format), models.FileKindCSV, format
	}
}
